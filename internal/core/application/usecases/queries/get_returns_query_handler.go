package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetReturnsQueryHandler lists an organization's return runs, joined with
// driver names where a driver is assigned.
type GetReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnsQueryHandler creates a handler for return listing queries.
func NewGetReturnsQueryHandler(db *gorm.DB) GetReturnsQueryHandler {
	return GetReturnsQueryHandler{db: db}
}

// Handle executes the query, sorted by scheduled date.
func (h GetReturnsQueryHandler) Handle(
	ctx context.Context,
	query GetReturnsQuery,
) ([]GetReturnsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.name,
			r.driver_id,
			COALESCE(d.name, ''),
			r.scheduled_date,
			r.status,
			r.priority,
			r.order_ids,
			r.version
		FROM returns r
		LEFT JOIN drivers d ON d.id = r.driver_id
		WHERE r.organization_id = ?
	`
	args := []any{query.OrganizationID().Bytes()}
	if !query.IncludeArchived() {
		sql += ` AND r.status != ?`
		args = append(args, returns.StatusArchived.String())
	}
	sql += ` ORDER BY r.scheduled_date, r.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]GetReturnsQueryResponse, 0)
	for rows.Next() {
		var resp GetReturnsQueryResponse
		var id uuid.UUID
		var driverID uuid.NullUUID
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
		if driverID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &assigned
		}

		resp.OrderIDs = make([]kernel.UUID, 0, len(orderIDs))
		for _, raw := range orderIDs {
			orderID, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderIDs = append(resp.OrderIDs, orderID)
		}

		runs = append(runs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
