package jobs

import (
	"context"
	"log/slog"

	"packagetracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many notices one drain pass picks up. A slow
// mail provider then delays at most one batch, not the whole backlog.
const relayBatchSize = 20

// NotificationRelayJob drains the notification outbox on a schedule.
// Runs every five seconds; notices survive process restarts because they
// live in the database until marked sent.
type NotificationRelayJob struct {
	handler commands.DispatchNoticesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying outbox notices.
func NewNotificationRelayJob(handler commands.DispatchNoticesCommandHandler, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job to run every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchNoticesCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", cmdErr)
			return
		}

		sent, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", handleErr)
			return
		}
		if sent > 0 {
			j.logger.InfoContext(ctx, "Notices relayed", "sent", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every five seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
