package jobs

import (
	"context"
	"log/slog"
	"time"

	"opsboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PickupArchivalJob sweeps completed pickup runs into the archived state
// once they age past the retention window. Runs nightly at 03:00.
type PickupArchivalJob struct {
	handler   commands.ArchivePickupsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPickupArchivalJob creates the archival job. retention is how long a
// completed run stays visible on the board before the sweep picks it up.
func NewPickupArchivalJob(
	handler commands.ArchivePickupsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *PickupArchivalJob {
	return &PickupArchivalJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "pickup_archival_job"),
	}
}

// Start schedules the nightly sweep.
func (j *PickupArchivalJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup archival job started (running nightly)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the archival job.
func (j *PickupArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup archival job stopped")
}

func (j *PickupArchivalJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewArchivePickupsCommand(time.Now().UTC().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup archival sweep misconfigured", "error", err)
		return
	}

	archived, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup archival sweep failed", "error", err)
		return
	}

	if archived > 0 {
		j.logger.InfoContext(ctx, "Pickup archival sweep finished", "archived", archived)
	}
}
