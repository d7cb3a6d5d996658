package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
		"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
	)
	ErrCompletionTimeIsRequired = errors.New("completion time is required")
	ErrVoyageNumberIsRequired   = errors.New("voyage number is required for load and unload events")
	ErrVoyageNumberIsForbidden  = errors.New("voyage number must be absent for ground events")
)

// RegisterHandlingEventCommand represents an incident report: a cargo was
// handled somewhere in the network. The voyage number is required for load
// and unload events and must be absent for receive, claim and customs.
//
// Example:
//
//	cmd, err := NewRegisterHandlingEventCommand(
//	    trackingID, handling.Load, "SESTO", "V0100", completed)
//	if err != nil {
//	    return fmt.Errorf("invalid handling report: %w", err)
//	}
//
//	handler := NewRegisterHandlingEventCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register handling event: %w", err)
//	}
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	trackingID     kernel.TrackingID
	eventType      handling.EventType
	location       kernel.UNLocode
	voyageNumber   string
	completionTime time.Time

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command to register a handling
// event. An empty voyage number means no voyage.
func NewRegisterHandlingEventCommand(
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	location string,
	voyageNumber string,
	completionTime time.Time,
) (RegisterHandlingEventCommand, error) {
	registerCommand := RegisterHandlingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingID.Validate(); err != nil {
		return RegisterHandlingEventCommand{}, err
	}
	if err := eventType.Validate(); err != nil {
		return RegisterHandlingEventCommand{}, err
	}
	code, err := kernel.NewUNLocode(location)
	if err != nil {
		return RegisterHandlingEventCommand{}, err
	}
	if completionTime.IsZero() {
		return RegisterHandlingEventCommand{}, ErrCompletionTimeIsRequired
	}
	if eventType.RequiresVoyage() && voyageNumber == "" {
		return RegisterHandlingEventCommand{}, ErrVoyageNumberIsRequired
	}
	if eventType.ProhibitsVoyage() && voyageNumber != "" {
		return RegisterHandlingEventCommand{}, ErrVoyageNumberIsForbidden
	}

	registerCommand.trackingID = trackingID
	registerCommand.eventType = eventType
	registerCommand.location = code
	registerCommand.voyageNumber = voyageNumber
	registerCommand.completionTime = completionTime

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterHandlingEventCommandIsNotConstructed if validation fails.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// TrackingID returns the identity of the handled cargo.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// EventType returns what kind of handling took place.
func (c RegisterHandlingEventCommand) EventType() handling.EventType {
	return c.eventType
}

// Location returns the UN/LOCODE where the handling took place.
func (c RegisterHandlingEventCommand) Location() kernel.UNLocode {
	return c.location
}

// VoyageNumber returns the voyage number, empty for ground events.
func (c RegisterHandlingEventCommand) VoyageNumber() string {
	return c.voyageNumber
}

// CompletionTime returns when the handling was completed.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}
