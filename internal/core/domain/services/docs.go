// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the cargo tracking system.
// It implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - RoutingService: filters route candidates against a route specification
//
// Domain services coordinate between aggregates and external producers,
// implementing business logic that spans bounded contexts following
// Domain-Driven Design principles.
package services
