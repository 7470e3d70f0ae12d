package http

import (
	"net/http"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRoster handles GET /api/v1/roster - lists the organization's drivers,
// designers and sources in one response.
func (s *Server) GetRoster(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetRosterQuery(organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	roster, err := s.handlers.GetRoster.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := Roster{
		Drivers:   make([]Driver, len(roster.Drivers)),
		Designers: make([]Designer, len(roster.Designers)),
		Sources:   make([]Source, len(roster.Sources)),
	}
	for i, d := range roster.Drivers {
		response.Drivers[i] = Driver{
			ID:      d.ID.String(),
			Name:    d.Name,
			Email:   d.Email,
			Phone:   d.Phone,
			Vehicle: d.Vehicle,
		}
	}
	for i, d := range roster.Designers {
		response.Designers[i] = Designer{
			ID:    d.ID.String(),
			Name:  d.Name,
			Email: d.Email,
			Phone: d.Phone,
		}
	}
	for i, src := range roster.Sources {
		response.Sources[i] = Source{
			ID:          src.ID.String(),
			Name:        src.Name,
			Address:     src.Address,
			PhoneNumber: src.PhoneNumber,
			MainContact: src.MainContact,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/roster/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload NewDriver
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, organizationID, payload.Name, payload.Email, payload.Phone, payload.Vehicle,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: driverID.String()})
}

// CreateDesigner handles POST /api/v1/roster/designers.
func (s *Server) CreateDesigner(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload NewDesigner
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	designerID := kernel.NewUUID()
	cmd, err := commands.NewCreateDesignerCommand(
		designerID, organizationID, payload.Name, payload.Email, payload.Phone,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateDesigner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: designerID.String()})
}

// CreateSource handles POST /api/v1/roster/sources.
func (s *Server) CreateSource(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload NewSource
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sourceID := kernel.NewUUID()
	cmd, err := commands.NewCreateSourceCommand(
		sourceID, organizationID, payload.Name, payload.Address,
		payload.PhoneNumber, payload.MainContact,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateSource.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: sourceID.String()})
}

// GetUsageMetrics handles GET /api/v1/usage - reports plan consumption.
func (s *Server) GetUsageMetrics(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetUsageMetricsQuery(organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	usage, err := s.handlers.GetUsageMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UsageMetrics{
		Plan:        usage.Plan,
		OrderCount:  usage.OrderCount,
		OrderLimit:  usage.OrderLimit,
		PickupCount: usage.PickupCount,
		PickupLimit: usage.PickupLimit,
		ReturnCount: usage.ReturnCount,
	})
}
