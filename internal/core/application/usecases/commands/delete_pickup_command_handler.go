package commands

import (
	"context"

	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
)

// DeletePickupCommandHandler handles pickup deletion. Releasing the
// pickup's claims and removing the pickup commit together, so no order is
// left pointing at a pickup that no longer exists.
type DeletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	publisher  ports.EventPublisher
	allocator  services.OrderAllocator
}

// NewDeletePickupCommandHandler creates a handler for pickup deletion operations.
func NewDeletePickupCommandHandler(
	uowFactory PickupUoWFactory, publisher ports.EventPublisher,
) DeletePickupCommandHandler {
	return DeletePickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		allocator:  services.NewOrderAllocator(),
	}
}

// Handle processes the pickup deletion command.
func (h *DeletePickupCommandHandler) Handle(ctx context.Context, cmd DeletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRepository()
	target, err := pickupRepo.Get(ctx, cmd.OrganizationID(), cmd.PickupID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDs(ctx, cmd.OrganizationID(), target.OrderIDs())
	if err != nil {
		return err
	}
	if err = h.allocator.Release(target, orders); err != nil {
		return err
	}

	if err = pickupRepo.Delete(ctx, cmd.OrganizationID(), cmd.PickupID()); err != nil {
		return err
	}
	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypePickup, cmd.PickupID(), "deleted")
	return nil
}
