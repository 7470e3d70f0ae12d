package http

import (
	"net/http"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"

	"github.com/labstack/echo/v4"
)

// GetPickups handles GET /api/v1/pickups - lists the organization's pickup
// runs. Archived runs appear only with ?includeArchived=true.
func (s *Server) GetPickups(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	includeArchived := ctx.QueryParam("includeArchived") == "true"
	query, err := queries.NewGetPickupsQuery(organizationID, includeArchived)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pickups, err := s.handlers.GetPickups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Pickup, len(pickups))
	for i, p := range pickups {
		response[i] = Pickup{
			ID:            p.ID.String(),
			Name:          p.Name,
			DriverID:      p.DriverID.String(),
			DriverName:    p.DriverName,
			ScheduledDate: p.ScheduledDate,
			Status:        p.Status,
			Priority:      p.Priority,
			OrderIDs:      uuidsToStrings(p.OrderIDs),
			Version:       p.Version,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePickup handles POST /api/v1/pickups - schedules a pickup run and
// claims its orders.
func (s *Server) CreatePickup(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload PickupPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(payload.DriverID)
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

	var status pickup.Status
	if payload.Status != "" {
		if status, err = pickup.StatusFromString(payload.Status); err != nil {
			return s.respondError(ctx, err)
		}
	}

	pickupID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickupCommand(
		pickupID, organizationID, payload.Name, driverID,
		payload.ScheduledDate, orderIDs, priority, status,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreatePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: pickupID.String()})
}

// EditPickup handles PUT /api/v1/pickups/:pickupId - replaces the run's
// details and reconciles which orders it claims.
func (s *Server) EditPickup(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pickupID, err := pathUUID(ctx, "pickupId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload PickupPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(payload.DriverID)
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

	cmd, err := commands.NewEditPickupCommand(
		pickupID, organizationID, payload.Name, driverID,
		payload.ScheduledDate, orderIDs, priority,
	)
	// payload.Status is deliberately not read here; lifecycle moves go
	// through the status endpoint so the transition table stays enforced.
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.EditPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionPickup handles POST /api/v1/pickups/:pickupId/status - moves the
// run through its lifecycle.
func (s *Server) TransitionPickup(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pickupID, err := pathUUID(ctx, "pickupId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload StatusChange
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := pickup.StatusFromString(payload.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionPickupCommand(pickupID, organizationID, target)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.TransitionPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeletePickup handles DELETE /api/v1/pickups/:pickupId - removes the run
// and releases its order claims.
func (s *Server) DeletePickup(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pickupID, err := pathUUID(ctx, "pickupId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeletePickupCommand(pickupID, organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeletePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPickupManifest handles GET /api/v1/pickups/:pickupId/manifest - builds
// the printable driver sheet for one run.
func (s *Server) GetPickupManifest(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pickupID, err := pathUUID(ctx, "pickupId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPickupManifestQuery(pickupID, organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	manifest, err := s.handlers.GetPickupManifest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines := make([]ManifestLine, len(manifest.Lines))
	for i, line := range manifest.Lines {
		lines[i] = ManifestLine{
			OrderID:         line.OrderID.String(),
			JobName:         line.JobName,
			JobNumber:       line.JobNumber,
			OrderNumber:     line.OrderNumber,
			SourceName:      line.SourceName,
			SourceAddress:   line.SourceAddress,
			DesignerName:    line.DesignerName,
			DestinationName: line.DestinationName,
			Cost:            line.Cost.Dollars(),
		}
	}

	return ctx.JSON(http.StatusOK, Manifest{
		PickupID:      manifest.PickupID.String(),
		Name:          manifest.Name,
		DriverName:    manifest.DriverName,
		Vehicle:       manifest.Vehicle,
		ScheduledDate: manifest.ScheduledDate,
		Status:        manifest.Status,
		Lines:         lines,
	})
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromString(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func uuidsToStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
