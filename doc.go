// Package typereg implements a generic named registry of type references.
//
// A Registry associates string keys with opaque, caller-owned items
// (typically types, constructors, or factory values) and defers all
// instantiation to the caller. The registry stores and retrieves references;
// it never inspects, invokes, or manages the lifecycle of what it holds.
//
// # Core Types
//
// Registry is the container. It is generic over the caller's item contract:
//
//	reg := typereg.New[Vehicle]()
//	err := reg.Register("sedan", Sedan{})
//	item, err := reg.Get("sedan")
//
// Provider is the read-only view of a Registry, enabling dependency
// injection and mock substitution in tests.
//
// # Key Normalization
//
// A registry is case-sensitive by default. Constructed with
// WithCaseInsensitive, every key is folded to lower case before each store
// and lookup, so "sedan", "SEDAN", and "SeDaN" all address the same entry.
// The original casing is not retained.
//
// # Default Naming
//
// Register requires an explicit key. RegisterDerived, RegisterSlice, and
// FromSlice derive the key from the item's declared type name via
// reflection (pointers are followed to their element type). Unnamed types —
// function values, anonymous structs — have no declared name and must be
// registered with an explicit key.
//
// # Registration Rules
//
// Registering a key that already exists fails with ErrDuplicateKey; the
// registry never silently overwrites. Update is the explicit replacement
// path and fails with ErrNotFound rather than creating an entry. Bulk
// registration (RegisterMap, RegisterSlice) applies items one at a time and
// stops at the first failure, leaving prior insertions intact; this partial
// application is a documented contract, not an oversight — see the method
// docs.
//
// All operations are safe for concurrent use.
package typereg
