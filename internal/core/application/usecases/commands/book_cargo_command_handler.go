package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// BookCargoCommandHandler handles the business logic for booking a new cargo.
// Resolves the origin and destination locations, creates the cargo with an
// initial unrouted delivery snapshot, and persists it.
//
// Example:
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	cmd, _ := NewBookCargoCommand(kernel.NextTrackingID(), "SESTO", "AUMEL", deadline)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
type BookCargoCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewBookCargoCommandHandler creates a handler for cargo booking operations.
// Requires a BookingUoWFactory for transactional persistence.
func NewBookCargoCommandHandler(uowFactory BookingUoWFactory) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command.
// Looks up both locations, builds the route specification and persists a new
// cargo aggregate within one transaction.
func (h *BookCargoCommandHandler) Handle(ctx context.Context, cmd BookCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()
	origin, err := locationRepo.Get(ctx, cmd.Origin())
	if err != nil {
		return err
	}

	destination, err := locationRepo.Get(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	routeSpecification, err := cargo.NewRouteSpecification(origin, destination, cmd.ArrivalDeadline())
	if err != nil {
		return err
	}

	booked, err := cargo.NewCargo(cmd.TrackingID(), routeSpecification)
	if err != nil {
		return err
	}

	if err = uow.CargoRepository().Add(ctx, booked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
