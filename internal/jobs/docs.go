// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs daily shortly after midnight to flag schedules
// that missed their delivery date as delayed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagOverdueHandler, logger)
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
// The sweep uses the cron expression "5 0 * * *", running once per day at
// 00:05 local time. A delivery is overdue once its date is strictly before
// the current day, so sweeping just after midnight flags yesterday's
// missed slots promptly.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
