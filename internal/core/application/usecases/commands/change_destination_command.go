package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a customer's request to reroute a
// booked cargo to a new destination. The origin and arrival deadline of the
// existing route specification are kept.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	destination kernel.UNLocode

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to change a cargo's destination.
func NewChangeDestinationCommand(
	trackingID kernel.TrackingID,
	destination string,
) (ChangeDestinationCommand, error) {
	changeCommand := ChangeDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingID.Validate(); err != nil {
		return ChangeDestinationCommand{}, err
	}

	code, err := kernel.NewUNLocode(destination)
	if err != nil {
		return ChangeDestinationCommand{}, err
	}

	changeCommand.trackingID = trackingID
	changeCommand.destination = code

	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDestinationCommandIsNotConstructed if validation fails.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo being rerouted.
func (c ChangeDestinationCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Destination returns the UN/LOCODE of the new destination.
func (c ChangeDestinationCommand) Destination() kernel.UNLocode {
	return c.destination
}
