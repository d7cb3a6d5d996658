package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/voyage"
)

// AssignCargoToRouteCommandHandler handles the business logic for route
// assignment. Resolves the requested legs against the voyage and location
// repositories, builds the itinerary and lets the cargo aggregate re-derive
// its delivery snapshot against its recorded handling history.
type AssignCargoToRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCargoToRouteCommandHandler creates a handler for route assignment
// operations. Requires a UoWFactory for coordinating lookups and the cargo
// update in one transaction.
func NewAssignCargoToRouteCommandHandler(uowFactory UoWFactory) AssignCargoToRouteCommandHandler {
	return AssignCargoToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route assignment command.
// Loads the cargo and its handling history, resolves every requested leg
// into a domain Leg, assigns the itinerary and persists the cargo with its
// re-derived delivery snapshot.
func (h *AssignCargoToRouteCommandHandler) Handle(ctx context.Context, cmd AssignCargoToRouteCommand) error {
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

	itinerary, err := h.resolveItinerary(ctx, uow, cmd.Legs())
	if err != nil {
		return err
	}

	if err = tracked.AssignToRoute(itinerary); err != nil {
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

// resolveItinerary turns the requested route legs into a validated domain
// itinerary, looking up each voyage and location.
func (h *AssignCargoToRouteCommandHandler) resolveItinerary(
	ctx context.Context,
	uow UoW,
	routeLegs []RouteLeg,
) (*cargo.Itinerary, error) {
	voyageRepo := uow.VoyageRepository()
	locationRepo := uow.LocationRepository()

	legs := make([]cargo.Leg, 0, len(routeLegs))
	for _, routeLeg := range routeLegs {
		number, err := voyage.NewNumber(routeLeg.VoyageNumber())
		if err != nil {
			return nil, err
		}

		legVoyage, err := voyageRepo.Get(ctx, number)
		if err != nil {
			return nil, err
		}

		loadLocation, err := locationRepo.Get(ctx, routeLeg.LoadLocation())
		if err != nil {
			return nil, err
		}

		unloadLocation, err := locationRepo.Get(ctx, routeLeg.UnloadLocation())
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(
			legVoyage, loadLocation, unloadLocation, routeLeg.LoadTime(), routeLeg.UnloadTime())
		if err != nil {
			return nil, err
		}

		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}
