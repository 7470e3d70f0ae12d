// Package http exposes the operations board over a JSON REST API.
// Every request is scoped to one organization through the
// X-Organization-ID header; handlers translate domain errors into
// HTTP status codes and never leak aggregates to the wire.
package http

import (
	"errors"
	"net/http"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderOrganizationID carries the tenant every request operates on.
const HeaderOrganizationID = "X-Organization-ID"

// Handlers collects the command and query handlers the server routes to.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	CreatePickup     commands.CreatePickupCommandHandler
	EditPickup       commands.EditPickupCommandHandler
	TransitionPickup commands.TransitionPickupCommandHandler
	DeletePickup     commands.DeletePickupCommandHandler

	CreateReturn     commands.CreateReturnCommandHandler
	UpdateReturn     commands.UpdateReturnCommandHandler
	TransitionReturn commands.TransitionReturnCommandHandler
	DeleteReturn     commands.DeleteReturnCommandHandler

	CreateDriver   commands.CreateDriverCommandHandler
	CreateDesigner commands.CreateDesignerCommandHandler
	CreateSource   commands.CreateSourceCommandHandler

	GetOrders         queries.GetOrdersQueryHandler
	GetPickups        queries.GetPickupsQueryHandler
	GetReturns        queries.GetReturnsQueryHandler
	GetRoster         queries.GetRosterQueryHandler
	GetPickupManifest queries.GetPickupManifestQueryHandler
	GetUsageMetrics   queries.GetUsageMetricsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server routing to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/pickups", s.GetPickups)
	api.POST("/pickups", s.CreatePickup)
	api.PUT("/pickups/:pickupId", s.EditPickup)
	api.POST("/pickups/:pickupId/status", s.TransitionPickup)
	api.DELETE("/pickups/:pickupId", s.DeletePickup)
	api.GET("/pickups/:pickupId/manifest", s.GetPickupManifest)

	api.GET("/returns", s.GetReturns)
	api.POST("/returns", s.CreateReturn)
	api.PUT("/returns/:returnId", s.UpdateReturn)
	api.POST("/returns/:returnId/status", s.TransitionReturn)
	api.DELETE("/returns/:returnId", s.DeleteReturn)

	api.GET("/roster", s.GetRoster)
	api.POST("/roster/drivers", s.CreateDriver)
	api.POST("/roster/designers", s.CreateDesigner)
	api.POST("/roster/sources", s.CreateSource)

	api.GET("/usage", s.GetUsageMetrics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// organizationID resolves the tenant from the X-Organization-ID header.
func (s *Server) organizationID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderOrganizationID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(HeaderOrganizationID)
	}
	return kernel.UUIDFromString(raw)
}

// pathUUID parses a UUID route parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// respondError maps domain errors onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderNotReturnEligible):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrQuotaExceeded):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStatusTransition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, services.ErrOrderAlreadyClaimed),
		errors.Is(err, commands.ErrOrderStillReferenced):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
