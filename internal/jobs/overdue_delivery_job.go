package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob sweeps the calendar shortly after midnight and flags
// schedules that missed their slot as delayed.
type OverdueDeliveryJob struct {
	handler commands.FlagOverdueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a job for flagging overdue deliveries.
// Uses FlagOverdueDeliveriesCommandHandler to run the daily sweep.
func NewOverdueDeliveryJob(handler commands.FlagOverdueDeliveriesCommandHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery sweep, running daily at 00:05.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewFlagOverdueDeliveriesCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep misconfigured", "error", err)
			return
		}

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Flagged overdue deliveries as delayed", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running daily at 00:05)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
