package queries

import (
	"errors"
	"time"

	"cargotracker/internal/pkg/guard"
)

var ErrGetAllCargosQueryIsNotConstructed = errors.New(
	"GetAllCargosQuery must be created via NewGetAllCargosQuery constructor",
)

// GetAllCargosQuery retrieves a routing overview of all booked cargos.
//
// Example:
//
//	query := NewGetAllCargosQuery()
//	handler := NewGetAllCargosQueryHandler(db)
//
//	cargos, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cargos: %w", err)
//	}
//
//	fmt.Printf("Found %d cargos\n", len(cargos))
type GetAllCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCargosQuery creates a query to retrieve the cargo overview.
// This is a parameterless query that fetches every booked cargo.
func NewGetAllCargosQuery() GetAllCargosQuery {
	return GetAllCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCargosQueryIsNotConstructed if validation fails.
func (q GetAllCargosQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCargosQueryIsNotConstructed)
}

// GetAllCargosQueryResponse represents one cargo in the routing overview.
type GetAllCargosQueryResponse struct {
	TrackingID      string
	Origin          string
	Destination     string
	ArrivalDeadline time.Time
	RoutingStatus   string
	TransportStatus string
	IsMisdirected   bool
}
