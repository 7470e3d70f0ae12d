package commands

import (
	"errors"
	"time"

	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrArchivePickupsCommandIsNotConstructed = errors.New(
	"ArchivePickupsCommand must be created via NewArchivePickupsCommand constructor",
)

// ArchivePickupsCommand sweeps completed pickup runs older than the cutoff
// into the archived state. Issued by the retention job, not by operators,
// so it carries no organization scope: the sweep crosses tenants.
type ArchivePickupsCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewArchivePickupsCommand creates an archival sweep command.
func NewArchivePickupsCommand(cutoff time.Time) (ArchivePickupsCommand, error) {
	if cutoff.IsZero() {
		return ArchivePickupsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ArchivePickupsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchivePickupsCommand) Validate() error {
	return c.guard.Validate(ErrArchivePickupsCommandIsNotConstructed)
}

// Cutoff returns the scheduled-date threshold; completed runs scheduled
// before it are archived.
func (c ArchivePickupsCommand) Cutoff() time.Time {
	return c.cutoff
}
