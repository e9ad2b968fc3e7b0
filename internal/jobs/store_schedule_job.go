package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StoreScheduleJob reconciles every vendor's store-open flag with its weekly
// working hours. Runs at the top of every minute; schedule granularity is
// "HH:MM" so a finer tick would never observe a different state.
type StoreScheduleJob struct {
	handler commands.SyncStoreHoursCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStoreScheduleJob creates a job that keeps store state in line with the
// configured working hours.
func NewStoreScheduleJob(handler commands.SyncStoreHoursCommandHandler, logger *slog.Logger) *StoreScheduleJob {
	return &StoreScheduleJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "store_schedule_job"),
	}
}

// Start begins the reconciliation job, running at every full minute.
func (j *StoreScheduleJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewSyncStoreHoursCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Store schedule job could not build command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Store schedule job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store schedule job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *StoreScheduleJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store schedule job stopped")
}
