package commands

import (
	"context"

	"opsboard/internal/core/domain/model/roster"
	"opsboard/internal/core/ports"
)

// CreateDriverCommandHandler handles roster driver creation. Roster inserts
// are single-statement writes, so the handler talks to the repository
// directly instead of opening a unit of work.
type CreateDriverCommandHandler struct {
	drivers ports.DriverRepository
}

// NewCreateDriverCommandHandler creates a handler for driver creation operations.
func NewCreateDriverCommandHandler(drivers ports.DriverRepository) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{drivers: drivers}
}

// Handle processes the driver creation command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	driver, err := roster.NewDriver(
		cmd.DriverID(), cmd.OrganizationID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Vehicle(),
	)
	if err != nil {
		return err
	}

	return h.drivers.Add(ctx, driver)
}
