package jobs

import (
	"context"
	"log/slog"

	"production/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PipelineSnapshotJob periodically logs the distribution of active orders
// across phases and buffers. It is read-only; orders move only through the
// API.
type PipelineSnapshotJob struct {
	handler queries.GetProductionOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPipelineSnapshotJob creates a job that reports pipeline occupancy.
// Uses GetProductionOrdersQueryHandler to read the current order state.
func NewPipelineSnapshotJob(handler queries.GetProductionOrdersQueryHandler, logger *slog.Logger) *PipelineSnapshotJob {
	return &PipelineSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pipeline_snapshot_job"),
	}
}

// Start begins the snapshot job to run at the top of every minute.
func (j *PipelineSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetProductionOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pipeline snapshot job failed", "error", err)
			return
		}

		byLocation := make(map[string]int)
		active := 0
		for _, o := range orders {
			if o.Status != "active" {
				continue
			}
			active++
			switch {
			case o.Phase != nil:
				byLocation[*o.Phase]++
			case o.Buffer != nil:
				byLocation[*o.Buffer]++
			}
		}

		j.logger.InfoContext(ctx, "Pipeline snapshot",
			"active_orders", active,
			"charging", byLocation["charging"],
			"charging_mixing_buffer", byLocation["charging_mixing_buffer"],
			"mixing", byLocation["mixing"],
			"mixing_extrusion_buffer", byLocation["mixing_extrusion_buffer"],
			"extrusion", byLocation["extrusion"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pipeline snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *PipelineSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pipeline snapshot job stopped")
}
