package jobs

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CargoInspectionJob periodically re-derives the delivery snapshot of every
// unclaimed cargo. Handling registration keeps snapshots fresh inline; the
// job catches events that arrived late or out of order.
type CargoInspectionJob struct {
	handler commands.InspectCargosCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCargoInspectionJob creates a new job for inspecting cargo deliveries.
// Uses InspectCargosCommandHandler to refresh delivery snapshots once a minute.
func NewCargoInspectionJob(handler commands.InspectCargosCommandHandler, logger *slog.Logger) *CargoInspectionJob {
	return &CargoInspectionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cargo_inspection_job"),
	}
}

// Start begins the cargo inspection job to run once a minute.
func (j *CargoInspectionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewInspectCargosCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cargo inspection job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cargo inspection job started (running every minute)")
	return nil
}

// Stop stops the cargo inspection job.
func (j *CargoInspectionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cargo inspection job stopped")
}
