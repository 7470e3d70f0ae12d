package commands

import (
	"context"

	"opsboard/internal/core/domain/model/roster"
	"opsboard/internal/core/ports"
)

// CreateDesignerCommandHandler handles roster designer creation.
type CreateDesignerCommandHandler struct {
	designers ports.DesignerRepository
}

// NewCreateDesignerCommandHandler creates a handler for designer creation operations.
func NewCreateDesignerCommandHandler(designers ports.DesignerRepository) CreateDesignerCommandHandler {
	return CreateDesignerCommandHandler{designers: designers}
}

// Handle processes the designer creation command.
func (h *CreateDesignerCommandHandler) Handle(ctx context.Context, cmd CreateDesignerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	designer, err := roster.NewDesigner(
		cmd.DesignerID(), cmd.OrganizationID(),
		cmd.Name(), cmd.Email(), cmd.Phone(),
	)
	if err != nil {
		return err
	}

	return h.designers.Add(ctx, designer)
}
