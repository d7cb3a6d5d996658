package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrHandlingEventIsNotConstructed is returned when attempting to use an
// improperly initialized HandlingEvent.
var ErrHandlingEventIsNotConstructed = errs.NewValueIsRequiredError(
	"handling event must be created via NewHandlingEvent constructor")

// HandlingEvent is an immutable fact: a cargo was handled at a location, at a
// completion time, of a given type, optionally on a voyage. The registration
// time records when the fact entered the system, which may be well after (or,
// for pre-registered events, before) the completion time.
//
// A HandlingEvent never changes once created. Corrections are modeled as new
// events restating the same completion time; History resolves which
// restatement counts.
type HandlingEvent struct { //nolint:recvcheck //using for validation
	id               kernel.UUID
	trackingID       kernel.TrackingID
	eventType        EventType
	location         kernel.Location
	voyage           *voyage.Voyage
	completionTime   time.Time
	registrationTime time.Time
	guard            guard.ConstructorGuard
}

// NewHandlingEvent creates a HandlingEvent.
//
// Validation rules:
//   - id, trackingID, eventType and location must all be valid
//   - completionTime and registrationTime must be set
//   - Load and Unload events require a voyage
//   - Receive, Claim and Customs events must not carry a voyage
func NewHandlingEvent(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	eventType EventType,
	location kernel.Location,
	eventVoyage *voyage.Voyage,
	completionTime time.Time,
	registrationTime time.Time,
) (HandlingEvent, error) {
	event := HandlingEvent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setID(id),
		event.setTrackingID(trackingID),
		event.setEventType(eventType),
		event.setLocation(location),
		event.setCompletionTime(completionTime),
		event.setRegistrationTime(registrationTime),
	); err != nil {
		return HandlingEvent{}, err
	}

	if err := event.setVoyage(eventVoyage); err != nil {
		return HandlingEvent{}, err
	}

	return event, nil
}

// Validate checks if the HandlingEvent was properly constructed.
func (e HandlingEvent) Validate() error {
	return e.guard.Validate(ErrHandlingEventIsNotConstructed)
}

// ID returns the event's surrogate identifier.
func (e HandlingEvent) ID() kernel.UUID {
	return e.id
}

// TrackingID returns the identity of the cargo the event concerns.
func (e HandlingEvent) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Type returns what kind of handling took place.
func (e HandlingEvent) Type() EventType {
	return e.eventType
}

// Location returns where the handling took place.
func (e HandlingEvent) Location() kernel.Location {
	return e.location
}

// Voyage returns the voyage the cargo was loaded onto or unloaded from,
// or nil for event types that happen on the ground.
func (e HandlingEvent) Voyage() *voyage.Voyage {
	return e.voyage
}

// CompletionTime returns when the handling was completed in the real world.
func (e HandlingEvent) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the fact was registered with the system.
func (e HandlingEvent) RegistrationTime() time.Time {
	return e.registrationTime
}

// IsEqual compares two handling events by their surrogate identifiers.
func (e HandlingEvent) IsEqual(other HandlingEvent) bool {
	return e.id.IsEqual(other.id)
}

// String implements fmt.Stringer, e.g. "Load (DEHAM) cargo ABC123".
func (e HandlingEvent) String() string {
	return fmt.Sprintf("%s (%s) cargo %s", e.eventType, e.location.UNLocode(), e.trackingID)
}

func (e *HandlingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *HandlingEvent) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *HandlingEvent) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *HandlingEvent) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	e.location = location
	return nil
}

func (e *HandlingEvent) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	e.completionTime = completionTime
	return nil
}

func (e *HandlingEvent) setRegistrationTime(registrationTime time.Time) error {
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}
	e.registrationTime = registrationTime
	return nil
}

func (e *HandlingEvent) setVoyage(eventVoyage *voyage.Voyage) error {
	if e.eventType.RequiresVoyage() && eventVoyage == nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"voyage", fmt.Errorf("%s events require a voyage", e.eventType))
	}
	if e.eventType.ProhibitsVoyage() && eventVoyage != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"voyage", fmt.Errorf("%s events must not carry a voyage", e.eventType))
	}

	e.voyage = eventVoyage
	return nil
}
