package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrBookCargoCommandIsNotConstructed = errors.New(
		"BookCargoCommand must be created via NewBookCargoCommand constructor",
	)
	ErrArrivalDeadlineIsRequired = errors.New("arrival deadline is required")
	ErrSameOriginAndDestination  = errors.New("origin and destination must differ")
)

// BookCargoCommand represents a request to book a new cargo shipment from an
// origin to a destination with an arrival deadline.
//
// Example:
//
//	trackingID := kernel.NextTrackingID()
//	cmd, err := NewBookCargoCommand(trackingID, "SESTO", "AUMEL", deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book cargo: %w", err)
//	}
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	origin          kernel.UNLocode
	destination     kernel.UNLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo.
// Validates that the tracking id and both UN/LOCODEs are well-formed, that
// origin and destination differ, and that a deadline is set.
func NewBookCargoCommand(
	trackingID kernel.TrackingID,
	origin string,
	destination string,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	bookCommand := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setTrackingID(trackingID),
		bookCommand.setOrigin(origin),
		bookCommand.setDestination(destination),
		bookCommand.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	if bookCommand.origin == bookCommand.destination {
		return BookCargoCommand{}, ErrSameOriginAndDestination
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookCargoCommandIsNotConstructed if validation fails.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// TrackingID returns the identity assigned to the new cargo.
func (c BookCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the UN/LOCODE the cargo must be routed from.
func (c BookCargoCommand) Origin() kernel.UNLocode {
	return c.origin
}

// Destination returns the UN/LOCODE the cargo must be routed to.
func (c BookCargoCommand) Destination() kernel.UNLocode {
	return c.destination
}

// ArrivalDeadline returns when the cargo must have arrived.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *BookCargoCommand) setOrigin(origin string) error {
	code, err := kernel.NewUNLocode(origin)
	if err != nil {
		return err
	}

	c.origin = code
	return nil
}

func (c *BookCargoCommand) setDestination(destination string) error {
	code, err := kernel.NewUNLocode(destination)
	if err != nil {
		return err
	}

	c.destination = code
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return ErrArrivalDeadlineIsRequired
	}

	c.arrivalDeadline = arrivalDeadline
	return nil
}
