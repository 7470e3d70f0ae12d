package commands

import (
	"context"

	"opsboard/internal/core/ports"
)

// TransitionReturnCommandHandler handles return lifecycle transitions.
// Returns take no claims, so unlike pickup reactivation there is nothing to
// re-check when an archived return comes back to scheduled.
type TransitionReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	publisher  ports.EventPublisher
}

// NewTransitionReturnCommandHandler creates a handler for return transitions.
func NewTransitionReturnCommandHandler(
	uowFactory ReturnUoWFactory, publisher ports.EventPublisher,
) TransitionReturnCommandHandler {
	return TransitionReturnCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the return transition command.
func (h *TransitionReturnCommandHandler) Handle(ctx context.Context, cmd TransitionReturnCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeReturn, cmd.ReturnID(), cmd.Target().String())
	return nil
}
