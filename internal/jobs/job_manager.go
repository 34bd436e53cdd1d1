package jobs

import (
	"fmt"
	"log/slog"

	"packagetracker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	notificationRelayJob *NotificationRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchNoticesHandler commands.DispatchNoticesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRelayJob: NewNotificationRelayJob(dispatchNoticesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
}
