package commands

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

// ErrReturnIsArchived is returned when a command targets an archived return
// that must be reactivated first.
var ErrReturnIsArchived = errors.New("return is archived; reactivate it before editing")

// UpdateReturnCommandHandler handles full updates of a return. Eligibility
// is re-checked only for orders newly added to the set.
type UpdateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateReturnCommandHandler creates a handler for return update operations.
func NewUpdateReturnCommandHandler(uowFactory ReturnUoWFactory, publisher ports.EventPublisher) UpdateReturnCommandHandler {
	return UpdateReturnCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the return update command.
func (h *UpdateReturnCommandHandler) Handle(ctx context.Context, cmd UpdateReturnCommand) error {
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

	returnRepo := uow.ReturnRepository()
	aggregate, err := returnRepo.Get(ctx, cmd.OrganizationID(), cmd.ReturnID())
	if err != nil {
		return err
	}
	if aggregate.Status() == returns.StatusArchived {
		return errs.NewValueIsInvalidErrorWithCause("returnId", ErrReturnIsArchived)
	}

	addedIDs := aggregate.AddedOrders(cmd.OrderIDs())
	added, err := resolveOrders(ctx, uow.OrderRepository(), cmd.OrganizationID(), addedIDs)
	if err != nil {
		return err
	}
	if err = checkReturnEligibility(added); err != nil {
		return err
	}

	if err = errors.Join(
		aggregate.Rename(cmd.Name()),
		aggregate.ChangeDriver(cmd.DriverID()),
		aggregate.Reschedule(cmd.ScheduledDate()),
		aggregate.ChangePriority(cmd.Priority()),
		aggregate.SetOrders(cmd.OrderIDs()),
	); err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeReturn, cmd.ReturnID(), "updated")
	return nil
}
