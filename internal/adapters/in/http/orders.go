package http

import (
	"net/http"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - lists the organization's orders,
// optionally filtered by ?status= and ?unassignedOnly=true.
func (s *Server) GetOrders(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	unassignedOnly := ctx.QueryParam("unassignedOnly") == "true"
	query, err := queries.NewGetOrdersQuery(organizationID, ctx.QueryParam("status"), unassignedOnly)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderToJSON(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
// New orders always start pending; the Status field of the payload is ignored.
func (s *Server) CreateOrder(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload OrderPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := payload.details()
	if err != nil {
		return s.respondError(ctx, err)
	}

	priority, err := kernel.PriorityFromString(payload.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, organizationID, details, priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - replaces the order's
// details, priority and status.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var payload OrderPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := payload.details()
	if err != nil {
		return s.respondError(ctx, err)
	}

	priority, err := kernel.PriorityFromString(payload.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := order.StatusFromString(payload.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, organizationID, details, priority, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes an order
// that no active pickup or return still references.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, organizationID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (p OrderPayload) details() (order.Details, error) {
	designerID, err := kernel.UUIDFromString(p.DesignerID)
	if err != nil {
		return order.Details{}, err
	}

	sourceID, err := kernel.UUIDFromString(p.SourceID)
	if err != nil {
		return order.Details{}, err
	}

	cost, err := kernel.NewCostFromDollars(p.Cost)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		JobName:         p.JobName,
		JobNumber:       p.JobNumber,
		OrderNumber:     p.OrderNumber,
		PurchaseOrder:   p.PurchaseOrder,
		DesignerID:      designerID,
		SourceID:        sourceID,
		DestinationName: p.DestinationName,
		Cost:            cost,
	}, nil
}

func orderToJSON(o queries.GetOrdersQueryResponse) Order {
	var pickupID *string
	if o.PickupID != nil {
		id := o.PickupID.String()
		pickupID = &id
	}

	return Order{
		ID:              o.ID.String(),
		JobName:         o.JobName,
		JobNumber:       o.JobNumber,
		OrderNumber:     o.OrderNumber,
		PurchaseOrder:   o.PurchaseOrder,
		DesignerID:      o.DesignerID.String(),
		SourceID:        o.SourceID.String(),
		DestinationName: o.DestinationName,
		Cost:            o.Cost.Dollars(),
		Status:          o.Status,
		Priority:        o.Priority,
		PickupID:        pickupID,
		Version:         o.Version,
	}
}
