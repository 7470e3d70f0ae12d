package commands

import (
	"context"

	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The organization's plan quota is checked before anything is persisted, so
// a denied request leaves no partial state behind.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	quota      ports.QuotaChecker
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, quota ports.QuotaChecker, publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		quota:      quota,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	decision, err := h.quota.CheckUsage(ctx, cmd.OrganizationID(), ports.QuotaActionCreateOrder)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return errs.NewQuotaExceededError(string(ports.QuotaActionCreateOrder), decision.Reason)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.OrganizationID(), cmd.Details(), cmd.Priority())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeOrder, cmd.OrderID(), "created")
	return nil
}
