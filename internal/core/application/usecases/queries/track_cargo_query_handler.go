package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// ErrCargoNotFound is returned when tracking an unknown tracking id.
var ErrCargoNotFound = errors.New("cargo not found")

// TrackCargoQueryHandler assembles the tracking view of one cargo from the
// cargos, legs and handling_events tables. Uses direct SQL queries for
// optimal read performance in the CQRS pattern.
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns ErrCargoNotFound when the tracking id is unknown.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	trackingID := query.TrackingID().String()

	view, err := h.loadCargo(ctx, trackingID)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	if view.Legs, err = h.loadLegs(ctx, trackingID); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	if view.HandlingEvents, err = h.loadHandlingEvents(ctx, trackingID); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	return view, nil
}

func (h TrackCargoQueryHandler) loadCargo(
	ctx context.Context,
	trackingID string,
) (TrackCargoQueryResponse, error) {
	var view TrackCargoQueryResponse
	var lastKnownLocation, currentVoyage sql.NullString
	var eta sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline,
			transport_status,
			routing_status,
			last_known_location,
			current_voyage,
			is_misdirected,
			is_unloaded_at_destination,
			eta
		FROM cargos
		WHERE tracking_id = ?
	`, trackingID).Row()

	err := row.Scan(
		&view.TrackingID,
		&view.Origin,
		&view.Destination,
		&view.ArrivalDeadline,
		&view.TransportStatus,
		&view.RoutingStatus,
		&lastKnownLocation,
		&currentVoyage,
		&view.IsMisdirected,
		&view.IsUnloadedAtDestination,
		&eta,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackCargoQueryResponse{}, ErrCargoNotFound
	}
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	if lastKnownLocation.Valid {
		view.LastKnownLocation = &lastKnownLocation.String
	}
	if currentVoyage.Valid {
		view.CurrentVoyage = &currentVoyage.String
	}
	if eta.Valid {
		view.ETA = &eta.Time
	}

	return view, nil
}

func (h TrackCargoQueryHandler) loadLegs(
	ctx context.Context,
	trackingID string,
) ([]TrackCargoLeg, error) {
	legs := make([]TrackCargoLeg, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			voyage_number,
			load_location,
			unload_location,
			load_time,
			unload_time
		FROM legs
		WHERE cargo_tracking_id = ?
		ORDER BY leg_index
	`, trackingID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var leg TrackCargoLeg

		err = rows.Scan(
			&leg.VoyageNumber,
			&leg.LoadLocation,
			&leg.UnloadLocation,
			&leg.LoadTime,
			&leg.UnloadTime,
		)
		if err != nil {
			return nil, err
		}

		legs = append(legs, leg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return legs, nil
}

func (h TrackCargoQueryHandler) loadHandlingEvents(
	ctx context.Context,
	trackingID string,
) ([]TrackCargoHandlingEvent, error) {
	events := make([]TrackCargoHandlingEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			location,
			voyage_number,
			completion_time,
			registration_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time
	`, trackingID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackCargoHandlingEvent
		var voyageNumber sql.NullString

		err = rows.Scan(
			&event.EventType,
			&event.Location,
			&voyageNumber,
			&event.CompletionTime,
			&event.RegistrationTime,
		)
		if err != nil {
			return nil, err
		}

		if voyageNumber.Valid {
			event.VoyageNumber = &voyageNumber.String
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
