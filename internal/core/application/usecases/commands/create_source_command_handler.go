package commands

import (
	"context"

	"opsboard/internal/core/domain/model/roster"
	"opsboard/internal/core/ports"
)

// CreateSourceCommandHandler handles roster source creation.
type CreateSourceCommandHandler struct {
	sources ports.SourceRepository
}

// NewCreateSourceCommandHandler creates a handler for source creation operations.
func NewCreateSourceCommandHandler(sources ports.SourceRepository) CreateSourceCommandHandler {
	return CreateSourceCommandHandler{sources: sources}
}

// Handle processes the source creation command.
func (h *CreateSourceCommandHandler) Handle(ctx context.Context, cmd CreateSourceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	source, err := roster.NewSource(
		cmd.SourceID(), cmd.OrganizationID(),
		cmd.Name(), cmd.Address(), cmd.PhoneNumber(), cmd.MainContact(),
	)
	if err != nil {
		return err
	}

	return h.sources.Add(ctx, source)
}
