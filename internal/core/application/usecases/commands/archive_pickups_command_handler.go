package commands

import (
	"context"

	"opsboard/internal/core/ports"
)

// ArchivePickupsCommandHandler archives completed pickup runs past the
// retention window. Archived runs keep their order references but stop
// claiming the orders and stop counting against pickup quota.
type ArchivePickupsCommandHandler struct {
	uowFactory PickupUoWFactory
	publisher  ports.EventPublisher
}

// NewArchivePickupsCommandHandler creates a handler for archival sweeps.
func NewArchivePickupsCommandHandler(
	uowFactory PickupUoWFactory, publisher ports.EventPublisher,
) ArchivePickupsCommandHandler {
	return ArchivePickupsCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle archives every completed pickup scheduled before the cutoff and
// returns how many runs were archived.
func (h *ArchivePickupsCommandHandler) Handle(ctx context.Context, cmd ArchivePickupsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRepository()
	expired, err := pickupRepo.GetCompletedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, target := range expired {
		if err = target.Archive(); err != nil {
			return 0, err
		}
		if err = pickupRepo.Update(ctx, target); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, target := range expired {
		publishEvent(ctx, h.publisher, target.OrganizationID(), EntityTypePickup, target.ID(), "archived")
	}
	return len(expired), nil
}
