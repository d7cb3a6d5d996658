package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// RegisterHandlingEventCommandHandler handles incident reports. It appends
// the immutable handling event to the cargo's history and re-derives the
// cargo's delivery snapshot from the full history within one transaction, so
// a reader never observes the event without its effect.
type RegisterHandlingEventCommandHandler struct {
	uowFactory UoWFactory
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling event
// registration.
func NewRegisterHandlingEventCommandHandler(uowFactory UoWFactory) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Resolves the location and the optional voyage, stores the event with the
// current wall-clock registration time, reloads the cargo's full history and
// persists the cargo with its re-derived delivery snapshot.
func (h *RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) error {
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

	location, err := uow.LocationRepository().Get(ctx, cmd.Location())
	if err != nil {
		return err
	}

	var eventVoyage *voyage.Voyage
	if cmd.VoyageNumber() != "" {
		number, numberErr := voyage.NewNumber(cmd.VoyageNumber())
		if numberErr != nil {
			return numberErr
		}
		if eventVoyage, err = uow.VoyageRepository().Get(ctx, number); err != nil {
			return err
		}
	}

	event, err := handling.NewHandlingEvent(
		kernel.NewUUID(),
		cmd.TrackingID(),
		cmd.EventType(),
		location,
		eventVoyage,
		cmd.CompletionTime(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	eventRepo := uow.HandlingEventRepository()
	if err = eventRepo.Add(ctx, event); err != nil {
		return err
	}

	history, err := eventRepo.GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	if err = tracked.DeriveDeliveryProgress(history); err != nil {
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
