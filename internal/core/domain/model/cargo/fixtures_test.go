package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createLocation(t *testing.T, code kernel.UNLocode, name string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(code, name)
	require.NoError(t, err)
	return loc
}

func createTrackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return trackingID
}

// onDay returns midnight UTC of the given day in March 2024, the month all
// fixture schedules live in.
func onDay(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func createVoyage(t *testing.T, number string, stops ...kernel.Location) *voyage.Voyage {
	t.Helper()
	require.GreaterOrEqual(t, len(stops), 2)

	departure := onDay(1)
	movements := make([]voyage.CarrierMovement, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		m, err := voyage.NewCarrierMovement(stops[i], stops[i+1], departure, departure.Add(24*time.Hour))
		require.NoError(t, err)
		movements = append(movements, m)
		departure = departure.Add(48 * time.Hour)
	}

	n, err := voyage.NewNumber(number)
	require.NoError(t, err)
	schedule, err := voyage.NewSchedule(movements)
	require.NoError(t, err)
	v, err := voyage.NewVoyage(n, schedule)
	require.NoError(t, err)
	return v
}

func createLeg(
	t *testing.T,
	legVoyage *voyage.Voyage,
	from, to kernel.Location,
	loadDay, unloadDay int,
) cargo.Leg {
	t.Helper()
	leg, err := cargo.NewLeg(legVoyage, from, to, onDay(loadDay), onDay(unloadDay))
	require.NoError(t, err)
	return leg
}

func createItinerary(t *testing.T, legs ...cargo.Leg) *cargo.Itinerary {
	t.Helper()
	itinerary, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return itinerary
}

func createRouteSpecification(
	t *testing.T,
	origin, destination kernel.Location,
	deadline time.Time,
) cargo.RouteSpecification {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(origin, destination, deadline)
	require.NoError(t, err)
	return spec
}

func createEvent(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	location kernel.Location,
	eventVoyage *voyage.Voyage,
	completionTime time.Time,
) handling.HandlingEvent {
	t.Helper()
	event, err := handling.NewHandlingEvent(
		kernel.NewUUID(), trackingID, eventType, location, eventVoyage,
		completionTime, completionTime.Add(time.Hour))
	require.NoError(t, err)
	return event
}

func createHistory(t *testing.T, events ...handling.HandlingEvent) handling.History {
	t.Helper()
	history, err := handling.NewHistory(events)
	require.NoError(t, err)
	return history
}
