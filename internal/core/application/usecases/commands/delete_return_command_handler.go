package commands

import (
	"context"

	"opsboard/internal/core/ports"
)

// DeleteReturnCommandHandler handles return deletion.
type DeleteReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteReturnCommandHandler creates a handler for return deletion operations.
func NewDeleteReturnCommandHandler(uowFactory ReturnUoWFactory, publisher ports.EventPublisher) DeleteReturnCommandHandler {
	return DeleteReturnCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the return deletion command.
func (h *DeleteReturnCommandHandler) Handle(ctx context.Context, cmd DeleteReturnCommand) error {
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
	if _, err := returnRepo.Get(ctx, cmd.OrganizationID(), cmd.ReturnID()); err != nil {
		return err
	}

	if err := returnRepo.Delete(ctx, cmd.OrganizationID(), cmd.ReturnID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypeReturn, cmd.ReturnID(), "deleted")
	return nil
}
