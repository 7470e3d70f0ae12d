package commands

import (
	"context"

	"opsboard/internal/core/ports"
)

// UpdateOrderCommandHandler handles full updates of an order's mutable
// fields. The write goes through the version-guarded repository update, so
// concurrent edits surface as version conflicts rather than lost writes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeDetails(cmd.Details()); err != nil {
		return err
	}
	if err = aggregate.ChangePriority(cmd.Priority()); err != nil {
		return err
	}
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeOrder, cmd.OrderID(), "updated")
	return nil
}
