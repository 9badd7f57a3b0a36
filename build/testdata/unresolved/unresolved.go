// Package unresolved intentionally does not compile. It pins the two
// static failure modes of the resolver; run `go build ./build/testdata/...`
// by hand to observe both diagnostics.
package unresolved

import "github.com/danmuck/defaultctl/build"

// uint32 carries no Build method, so instantiation is rejected:
// "uint32 does not satisfy build.Builder[uint32]".
var _ = build.Produce[uint32]()

// Discarded result with no type argument: "cannot infer T".
var _ = build.Produce()
