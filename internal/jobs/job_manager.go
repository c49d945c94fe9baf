package jobs

import (
	"fmt"
	"log/slog"

	"production/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pipelineSnapshotJob *PipelineSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOrdersHandler queries.GetProductionOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pipelineSnapshotJob: NewPipelineSnapshotJob(getOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pipelineSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start pipeline snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pipelineSnapshotJob.Stop()
}
