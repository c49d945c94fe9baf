// Package jobs provides scheduled background tasks for the production
// pipeline service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. PipelineSnapshotJob - Runs every minute to log the distribution of
// active orders across the three phases and two buffers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The snapshot job is observational: failures are logged and the next tick
// retries. It never mutates pipeline state, so a missed run has no effect
// on order movement.
package jobs
