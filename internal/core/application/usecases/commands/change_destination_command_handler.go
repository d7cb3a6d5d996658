package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// ChangeDestinationCommandHandler handles the business logic for destination
// changes. The cargo keeps its origin and deadline but gets a new route
// specification, which typically misroutes a previously routed cargo until a
// new itinerary is assigned.
type ChangeDestinationCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeDestinationCommandHandler creates a handler for destination change
// operations.
func NewChangeDestinationCommandHandler(uowFactory UoWFactory) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change command.
// Loads the cargo and its handling history, replaces the route specification
// keeping origin and deadline, and persists the cargo with its re-derived
// delivery snapshot.
func (h *ChangeDestinationCommandHandler) Handle(ctx context.Context, cmd ChangeDestinationCommand) error {
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

	cargoRepo := uow.CargoRepository()
	tracked, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}
	if err = tracked.DeriveDeliveryProgress(history); err != nil {
		return err
	}

	destination, err := uow.LocationRepository().Get(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	current := tracked.RouteSpecification()
	routeSpecification, err := cargo.NewRouteSpecification(
		current.Origin(), destination, current.ArrivalDeadline())
	if err != nil {
		return err
	}

	if err = tracked.SpecifyNewRoute(routeSpecification); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
