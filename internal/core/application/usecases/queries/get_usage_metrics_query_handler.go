package queries

import (
	"context"
	"database/sql"
	"errors"

	"opsboard/internal/core/domain/model/organization"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUsageMetricsQueryHandler computes an organization's usage counters and
// resolves its plan limits from the domain model.
type GetUsageMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetUsageMetricsQueryHandler creates a handler for usage metrics queries.
func NewGetUsageMetricsQueryHandler(db *gorm.DB) GetUsageMetricsQueryHandler {
	return GetUsageMetricsQueryHandler{db: db}
}

// Handle executes the query. One round trip: the plan and the three counts
// come back as a single row.
func (h GetUsageMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetUsageMetricsQuery,
) (GetUsageMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsageMetricsQueryResponse{}, err
	}

	orgID := query.OrganizationID().Bytes()
	var planStr string
	var resp GetUsageMetricsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.plan,
			(SELECT COUNT(*) FROM orders WHERE organization_id = o.id),
			(SELECT COUNT(*) FROM pickups WHERE organization_id = o.id AND status != ?),
			(SELECT COUNT(*) FROM returns WHERE organization_id = o.id AND status != ?)
		FROM organizations o
		WHERE o.id = ?
	`, pickup.StatusArchived.String(), returns.StatusArchived.String(), orgID).Row()

	err := row.Scan(&planStr, &resp.OrderCount, &resp.PickupCount, &resp.ReturnCount)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUsageMetricsQueryResponse{}, errs.NewObjectNotFoundError(
			"organizationId", query.OrganizationID().String(),
		)
	}
	if err != nil {
		return GetUsageMetricsQueryResponse{}, err
	}

	plan, err := organization.PlanFromString(planStr)
	if err != nil {
		return GetUsageMetricsQueryResponse{}, err
	}

	limits := plan.Limits()
	resp.Plan = plan.String()
	resp.OrderLimit = limits.MaxOrders
	resp.PickupLimit = limits.MaxPickups

	return resp, nil
}
