// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"cargotracker/internal/pkg/guard"
)

var ErrGetAllLocationsQueryIsNotConstructed = errors.New(
	"GetAllLocationsQuery must be created via NewGetAllLocationsQuery constructor",
)

// GetAllLocationsQuery retrieves all locations known to the system.
// Used to populate booking and handling report forms.
//
// Example:
//
//	query := NewGetAllLocationsQuery()
//	handler := NewGetAllLocationsQueryHandler(db)
//
//	locations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve locations: %w", err)
//	}
//
//	for _, location := range locations {
//	    fmt.Printf("%s (%s)\n", location.Name, location.UNLocode)
//	}
type GetAllLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLocationsQuery creates a query to retrieve all locations.
// This is a parameterless query that fetches the complete location list.
func NewGetAllLocationsQuery() GetAllLocationsQuery {
	return GetAllLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllLocationsQueryIsNotConstructed if validation fails.
func (q GetAllLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLocationsQueryIsNotConstructed)
}

// GetAllLocationsQueryResponse represents location reference data in the
// read model.
type GetAllLocationsQueryResponse struct {
	UNLocode string
	Name     string
}
