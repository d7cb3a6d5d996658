package handling

import (
	"fmt"
	"slices"

	"cargotracker/internal/pkg/errs"
)

// History is the append-only fact set of handling events for one cargo.
//
// The underlying collection may contain events whose completion times
// coincide (re-registrations or corrections of the same real-world fact).
// History never mutates its membership; the derived views resolve ordering
// and duplication on every call.
type History struct {
	events []HandlingEvent
}

// EmptyHistory returns the history of a cargo that has not been handled yet.
func EmptyHistory() History {
	return History{}
}

// NewHistory creates a History from a collection of handling events, in the
// order they were added to the underlying collection. All events must be
// properly constructed and concern the same cargo.
func NewHistory(events []HandlingEvent) (History, error) {
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return History{}, errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("events[%d]", i), err)
		}
		if !event.TrackingID().IsEqual(events[0].TrackingID()) {
			return History{}, errs.NewValueIsInvalidErrorWithCause(
				"events", fmt.Errorf("event %d concerns cargo %s, expected %s",
					i, event.TrackingID(), events[0].TrackingID()))
		}
	}

	return History{events: append([]HandlingEvent(nil), events...)}, nil
}

// IsEmpty reports whether the history contains no events.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// DistinctEventsByCompletionTime returns the events ordered ascending by
// completion time, with at most one event per distinct completion time.
//
// Tie-break: when several events share the exact same completion time, the
// one added earliest to the underlying collection wins and later duplicates
// are discarded, regardless of their registration times or other fields.
// This models correction streams where a later registration restates the
// same completed fact; completion-time equality alone identifies the fact.
func (h History) DistinctEventsByCompletionTime() []HandlingEvent {
	// Ordered unique-key structure keyed by completion time: insert in input
	// order, an insertion whose key already exists is a no-op.
	byCompletionTime := make(map[int64]HandlingEvent, len(h.events))
	completionTimes := make([]int64, 0, len(h.events))

	for _, event := range h.events {
		key := event.CompletionTime().UnixNano()
		if _, taken := byCompletionTime[key]; taken {
			continue
		}
		byCompletionTime[key] = event
		completionTimes = append(completionTimes, key)
	}

	slices.Sort(completionTimes)

	distinct := make([]HandlingEvent, 0, len(completionTimes))
	for _, key := range completionTimes {
		distinct = append(distinct, byCompletionTime[key])
	}
	return distinct
}

// MostRecentlyCompletedEvent returns the event with the maximum completion
// time, i.e. the last element of DistinctEventsByCompletionTime.
// The second return value is false when the history is empty.
func (h History) MostRecentlyCompletedEvent() (HandlingEvent, bool) {
	distinct := h.DistinctEventsByCompletionTime()
	if len(distinct) == 0 {
		return HandlingEvent{}, false
	}
	return distinct[len(distinct)-1], true
}
