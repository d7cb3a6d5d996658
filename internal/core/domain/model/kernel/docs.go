// Package kernel provides core domain primitives shared across the cargo
// tracking model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UNLocode: The United Nations location code identifying a port or station
//   - Location: A value object representing a physical place in the transport network
//   - TrackingID: The identity of a cargo, opaque to everything but equality
//   - UUID: A value object for surrogate identifiers with validation and comparison
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
