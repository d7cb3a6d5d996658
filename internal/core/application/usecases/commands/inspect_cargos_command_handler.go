package commands

import (
	"context"
)

// InspectCargosCommandHandler orchestrates the periodic inspection sweep.
// For every unclaimed cargo it reloads the handling history, re-derives the
// delivery snapshot and persists the result. All updates occur within a
// single transaction.
type InspectCargosCommandHandler struct {
	uowFactory CargoHistoryUoWFactory
}

// NewInspectCargosCommandHandler creates a handler for cargo inspection
// operations. Requires a CargoHistoryUoWFactory for coordinating cargo and
// handling history reads.
func NewInspectCargosCommandHandler(uowFactory CargoHistoryUoWFactory) InspectCargosCommandHandler {
	return InspectCargosCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection command.
func (h *InspectCargosCommandHandler) Handle(ctx context.Context, cmd InspectCargosCommand) error {
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
	eventRepo := uow.HandlingEventRepository()

	cargos, err := cargoRepo.GetAllUnclaimed(ctx)
	if err != nil {
		return err
	}

	for _, tracked := range cargos {
		history, historyErr := eventRepo.GetHistory(ctx, tracked.TrackingID())
		if historyErr != nil {
			return historyErr
		}

		if err = tracked.DeriveDeliveryProgress(history); err != nil {
			return err
		}

		if err = cargoRepo.Update(ctx, tracked); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
