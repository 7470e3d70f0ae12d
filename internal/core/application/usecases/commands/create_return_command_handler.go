package commands

import (
	"context"
	"fmt"

	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/core/ports"
)

// CreateReturnCommandHandler handles return scheduling. Every order in the
// batch must be return-eligible at creation time: it has to have been
// picked up or delivered. Unlike pickups, returns take no claim on their
// orders, so no back-references are written.
type CreateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateReturnCommandHandler creates a handler for return scheduling operations.
func NewCreateReturnCommandHandler(uowFactory ReturnUoWFactory, publisher ports.EventPublisher) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the return creation command.
func (h *CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) error {
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

	orders, err := resolveOrders(ctx, uow.OrderRepository(), cmd.OrganizationID(), cmd.OrderIDs())
	if err != nil {
		return err
	}
	if err = checkReturnEligibility(orders); err != nil {
		return err
	}

	aggregate, err := returns.NewReturn(
		cmd.ReturnID(), cmd.OrganizationID(),
		cmd.Name(), cmd.DriverID(), cmd.ScheduledDate(),
		cmd.OrderIDs(), cmd.Priority(), cmd.Status(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReturnRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeReturn, cmd.ReturnID(), "created")
	return nil
}

// checkReturnEligibility rejects the batch on the first order that has not
// reached a returnable status.
func checkReturnEligibility(orders []*order.Order) error {
	for _, o := range orders {
		if !o.ReturnEligible() {
			return fmt.Errorf("%w: order %s is %s", ErrOrderNotReturnEligible, o.ID(), o.Status())
		}
	}
	return nil
}
