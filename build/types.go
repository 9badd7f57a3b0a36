package build

// Uint32 is the 32-bit unsigned type with a registered default.
type Uint32 uint32

// Build returns the fixed Uint32 default. The value is an arbitrary
// marker that identifies which implementation ran.
func (Uint32) Build() Uint32 { return 31 }

// Uint64 is the 64-bit unsigned type with a registered default.
type Uint64 uint64

// Build returns the fixed Uint64 default.
func (Uint64) Build() Uint64 { return 63 }

var (
	_ Builder[Uint32] = Uint32(0)
	_ Builder[Uint64] = Uint64(0)
)
