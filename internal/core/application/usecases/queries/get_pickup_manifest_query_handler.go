package queries

import (
	"context"
	"database/sql"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickupManifestQueryHandler assembles the driver sheet for a pickup run.
// Two reads: the run header joined with its driver, then the order lines
// joined with their designers and sources.
type GetPickupManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupManifestQueryHandler creates a handler for manifest queries.
func NewGetPickupManifestQueryHandler(db *gorm.DB) GetPickupManifestQueryHandler {
	return GetPickupManifestQueryHandler{db: db}
}

// Handle executes the query. A pickup outside the caller's organization is
// indistinguishable from a missing one.
func (h GetPickupManifestQueryHandler) Handle(
	ctx context.Context,
	query GetPickupManifestQuery,
) (GetPickupManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickupManifestQueryResponse{}, err
	}

	resp, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetPickupManifestQueryResponse{}, err
	}

	resp.Lines, err = h.loadLines(ctx, query)
	if err != nil {
		return GetPickupManifestQueryResponse{}, err
	}

	return resp, nil
}

func (h GetPickupManifestQueryHandler) loadHeader(
	ctx context.Context,
	query GetPickupManifestQuery,
) (GetPickupManifestQueryResponse, error) {
	var resp GetPickupManifestQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			COALESCE(d.name, ''),
			COALESCE(d.vehicle, ''),
			p.scheduled_date,
			p.status
		FROM pickups p
		LEFT JOIN drivers d ON d.id = p.driver_id
		WHERE p.id = ? AND p.organization_id = ?
	`, query.PickupID().Bytes(), query.OrganizationID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.DriverName,
		&resp.Vehicle,
		&resp.ScheduledDate,
		&resp.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPickupManifestQueryResponse{}, errs.NewObjectNotFoundError(
			"pickupId", query.PickupID().String(),
		)
	}
	if err != nil {
		return GetPickupManifestQueryResponse{}, err
	}

	if resp.PickupID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetPickupManifestQueryResponse{}, err
	}
	return resp, nil
}

func (h GetPickupManifestQueryHandler) loadLines(
	ctx context.Context,
	query GetPickupManifestQuery,
) ([]ManifestLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.job_name,
			o.job_number,
			o.order_number,
			COALESCE(s.name, ''),
			COALESCE(s.address, ''),
			COALESCE(de.name, ''),
			o.destination_name,
			o.cost_cents
		FROM orders o
		LEFT JOIN sources s ON s.id = o.source_id
		LEFT JOIN designers de ON de.id = o.designer_id
		WHERE o.pickup_id = ? AND o.organization_id = ?
		ORDER BY s.name, o.job_number
	`, query.PickupID().Bytes(), query.OrganizationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]ManifestLine, 0)
	for rows.Next() {
		var line ManifestLine
		var id uuid.UUID
		var costCents int64

		err = rows.Scan(
			&id,
			&line.JobName,
			&line.JobNumber,
			&line.OrderNumber,
			&line.SourceName,
			&line.SourceAddress,
			&line.DesignerName,
			&line.DestinationName,
			&costCents,
		)
		if err != nil {
			return nil, err
		}

		if line.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		cost, costErr := kernel.NewCost(costCents)
		if costErr != nil {
			return nil, costErr
		}
		line.Cost = cost

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
