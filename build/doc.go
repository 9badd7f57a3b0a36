// Package build owns capability-bounded default construction.
//
// Ownership boundary:
// - the Builder capability contract
// - the generic Produce/TryProduce resolvers
// - the fixed sentinel bindings (Uint32, Uint64)
//
// Resolution is purely compile time: a call site names its target type and
// the type checker binds it to that type's Build method. There is no
// reflection, no runtime registry, and no fallback for types without an
// implementation.
package build
