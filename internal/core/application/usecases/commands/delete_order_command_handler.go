package commands

import (
	"context"
	"fmt"

	"opsboard/internal/core/ports"
)

// DeleteOrderCommandHandler handles order deletion. An order that is still
// listed by a non-archived pickup or return cannot be deleted; the caller
// must release or archive the holder first. Archived holders do not block
// deletion and may keep a dangling reference in their historical order set.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrganizationID(), cmd.OrderID()); err != nil {
		return err
	}

	claimers, err := uow.PickupRepository().GetActiveByOrder(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return err
	}
	if len(claimers) > 0 {
		return fmt.Errorf("%w: pickup %s", ErrOrderStillReferenced, claimers[0].ID())
	}

	holders, err := uow.ReturnRepository().GetActiveByOrder(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return err
	}
	if len(holders) > 0 {
		return fmt.Errorf("%w: return %s", ErrOrderStillReferenced, holders[0].ID())
	}

	if err = orderRepo.Delete(ctx, cmd.OrganizationID(), cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeOrder, cmd.OrderID(), "deleted")
	return nil
}
