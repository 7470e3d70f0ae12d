package http

import (
	"net/http"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"

	"github.com/labstack/echo/v4"
)

// GetReturns handles GET /api/v1/returns - lists the organization's return
// runs. Archived runs appear only with ?includeArchived=true.
func (s *Server) GetReturns(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	includeArchived := ctx.QueryParam("includeArchived") == "true"
	query, err := queries.NewGetReturnsQuery(organizationID, includeArchived)
	if err != nil {
		return s.respondError(ctx, err)
	}

	runs, err := s.handlers.GetReturns.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Return, len(runs))
	for i, r := range runs {
		var driverID *string
		if r.DriverID != nil {
			id := r.DriverID.String()
			driverID = &id
		}

		response[i] = Return{
			ID:            r.ID.String(),
			Name:          r.Name,
			DriverID:      driverID,
			DriverName:    r.DriverName,
			ScheduledDate: r.ScheduledDate,
			Status:        r.Status,
			Priority:      r.Priority,
			OrderIDs:      uuidsToStrings(r.OrderIDs),
			Version:       r.Version,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateReturn handles POST /api/v1/returns - schedules a return run.
// The driver may be left unassigned.
func (s *Server) CreateReturn(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload ReturnPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := parseOptionalUUID(payload.DriverID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderIDs, err := parseUUIDs(payload.OrderIDs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	priority, err := kernel.PriorityFromString(payload.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var status returns.Status
	if payload.Status != "" {
		if status, err = returns.StatusFromString(payload.Status); err != nil {
			return s.respondError(ctx, err)
		}
	}

	returnID := kernel.NewUUID()
	cmd, err := commands.NewCreateReturnCommand(
		returnID, organizationID, payload.Name, driverID,
		payload.ScheduledDate, orderIDs, priority, status,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: returnID.String()})
}

// UpdateReturn handles PUT /api/v1/returns/:returnId - replaces the run's
// details and order list.
func (s *Server) UpdateReturn(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	returnID, err := pathUUID(ctx, "returnId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload ReturnPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := parseOptionalUUID(payload.DriverID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderIDs, err := parseUUIDs(payload.OrderIDs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	priority, err := kernel.PriorityFromString(payload.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnCommand(
		returnID, organizationID, payload.Name, driverID,
		payload.ScheduledDate, orderIDs, priority,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionReturn handles POST /api/v1/returns/:returnId/status - moves the
// run through its lifecycle.
func (s *Server) TransitionReturn(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	returnID, err := pathUUID(ctx, "returnId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload StatusChange
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := returns.StatusFromString(payload.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionReturnCommand(returnID, organizationID, target)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.TransitionReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteReturn handles DELETE /api/v1/returns/:returnId - removes the run.
func (s *Server) DeleteReturn(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	returnID, err := pathUUID(ctx, "returnId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteReturnCommand(returnID, organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
