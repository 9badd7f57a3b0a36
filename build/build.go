package build

// Builder is the capability contract. A type opts in by supplying a Build
// method that returns a fully constructed value of the type itself.
// Implementations must be pure and total: same value every call, no side
// effects, no failure path.
type Builder[T any] interface {
	Build() T
}

// Produce returns T's registered default value, delegating to T's Build
// unchanged. The binding is fixed at compile time from the type argument:
// a type without a Build method fails instantiation, and a call with no
// type argument fails inference. Neither failure exists at runtime.
func Produce[T Builder[T]]() T {
	var b T
	return b.Build()
}

// TryBuilder is the fallible variant of the capability. Types whose
// construction can fail implement TryBuild and surface the error
// explicitly instead of panicking or returning a degraded value.
type TryBuilder[T any] interface {
	TryBuild() (T, error)
}

// TryProduce resolves T's TryBuild implementation under the same
// compile-time rules as Produce.
func TryProduce[T TryBuilder[T]]() (T, error) {
	var b T
	return b.TryBuild()
}
