package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrTrackCargoQueryIsNotConstructed = errors.New(
	"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
)

// TrackCargoQuery retrieves the public tracking view of one cargo: the
// delivery snapshot, the assigned itinerary and the handling history.
//
// Example:
//
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking id: %w", err)
//	}
//
//	handler := NewTrackCargoQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrCargoNotFound) {
//	    // Unknown tracking id
//	}
type TrackCargoQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query to track one cargo.
func NewTrackCargoQuery(trackingID kernel.TrackingID) (TrackCargoQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackCargoQuery{}, err
	}

	return TrackCargoQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackCargoQueryIsNotConstructed if validation fails.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the identity of the tracked cargo.
func (q TrackCargoQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackCargoQueryResponse is the tracking read model of one cargo.
type TrackCargoQueryResponse struct {
	TrackingID              string
	Origin                  string
	Destination             string
	ArrivalDeadline         time.Time
	TransportStatus         string
	RoutingStatus           string
	LastKnownLocation       *string
	CurrentVoyage           *string
	IsMisdirected           bool
	IsUnloadedAtDestination bool
	ETA                     *time.Time
	Legs                    []TrackCargoLeg
	HandlingEvents          []TrackCargoHandlingEvent
}

// TrackCargoLeg is one itinerary hop in the tracking read model.
type TrackCargoLeg struct {
	VoyageNumber   string
	LoadLocation   string
	UnloadLocation string
	LoadTime       time.Time
	UnloadTime     time.Time
}

// TrackCargoHandlingEvent is one handling fact in the tracking read model,
// ordered ascending by completion time.
type TrackCargoHandlingEvent struct {
	EventType        string
	Location         string
	VoyageNumber     *string
	CompletionTime   time.Time
	RegistrationTime time.Time
}
