// Package jobs provides scheduled background tasks for the cargo tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. CargoInspectionJob - Periodically re-derives the delivery snapshot of every
// unclaimed cargo against its full handling history, picking up events that were
// registered late or out of order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(inspectCargosHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The inspection job uses the cron expression "0 * * * * *", running once a
// minute. Handling registration already re-derives the affected cargo inline;
// the job is a safety net, so minute granularity is enough.
//
// # Error Handling
//
// Inspection failures are logged and retried on the next tick; a failed job
// start stops any already running jobs.
package jobs
