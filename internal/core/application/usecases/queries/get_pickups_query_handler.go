package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetPickupsQueryHandler lists an organization's pickup runs, joined with
// driver names for display.
type GetPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupsQueryHandler creates a handler for pickup listing queries.
func NewGetPickupsQueryHandler(db *gorm.DB) GetPickupsQueryHandler {
	return GetPickupsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by scheduled date so the
// board reads top to bottom as a timeline.
func (h GetPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetPickupsQuery,
) ([]GetPickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id,
			p.name,
			p.driver_id,
			COALESCE(d.name, ''),
			p.scheduled_date,
			p.status,
			p.priority,
			p.order_ids,
			p.version
		FROM pickups p
		LEFT JOIN drivers d ON d.id = p.driver_id
		WHERE p.organization_id = ?
	`
	args := []any{query.OrganizationID().Bytes()}
	if !query.IncludeArchived() {
		sql += ` AND p.status != ?`
		args = append(args, pickup.StatusArchived.String())
	}
	sql += ` ORDER BY p.scheduled_date, p.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pickups := make([]GetPickupsQueryResponse, 0)
	for rows.Next() {
		var resp GetPickupsQueryResponse
		var id, driverID uuid.UUID
		var orderIDs pq.StringArray

		err = rows.Scan(
			&id,
			&resp.Name,
			&driverID,
			&resp.DriverName,
			&resp.ScheduledDate,
			&resp.Status,
			&resp.Priority,
			&orderIDs,
			&resp.Version,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}

		resp.OrderIDs = make([]kernel.UUID, 0, len(orderIDs))
		for _, raw := range orderIDs {
			orderID, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderIDs = append(resp.OrderIDs, orderID)
		}

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
