package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"opsboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pickupArchivalJob *PickupArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	archiveHandler commands.ArchivePickupsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pickupArchivalJob: NewPickupArchivalJob(archiveHandler, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pickupArchivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup archival job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupArchivalJob.Stop()
}
