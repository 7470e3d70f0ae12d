package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists an organization's orders from the database.
// Uses direct SQL for read performance; no aggregates are materialized.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by job name for stable
// listings; the status filter is applied in SQL when present.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			job_name,
			job_number,
			order_number,
			purchase_order,
			designer_id,
			source_id,
			destination_name,
			cost_cents,
			status,
			priority,
			pickup_id,
			version
		FROM orders
		WHERE organization_id = ?
	`
	args := []any{query.OrganizationID().Bytes()}
	if query.StatusFilter() != "" {
		sql += ` AND status = ?`
		args = append(args, query.StatusFilter())
	}
	if query.UnassignedOnly() {
		sql += ` AND pickup_id IS NULL`
	}
	sql += ` ORDER BY job_name, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, designerID, sourceID uuid.UUID
		var pickupID uuid.NullUUID
		var costCents int64

		err = rows.Scan(
			&id,
			&resp.JobName,
			&resp.JobNumber,
			&resp.OrderNumber,
			&resp.PurchaseOrder,
			&designerID,
			&sourceID,
			&resp.DestinationName,
			&costCents,
			&resp.Status,
			&resp.Priority,
			&pickupID,
			&resp.Version,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DesignerID, err = kernel.UUIDFromBytes(designerID[:]); err != nil {
			return nil, err
		}
		if resp.SourceID, err = kernel.UUIDFromBytes(sourceID[:]); err != nil {
			return nil, err
		}
		if pickupID.Valid {
			claimer, idErr := kernel.UUIDFromBytes(pickupID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.PickupID = &claimer
		}

		cost, costErr := kernel.NewCost(costCents)
		if costErr != nil {
			return nil, costErr
		}
		resp.Cost = cost

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
