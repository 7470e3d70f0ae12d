package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opsboard/internal/adapters/out/postgres/orderrepo"
	"opsboard/internal/adapters/out/postgres/pickuprepo"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/organization"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuotaChecker implements ports.QuotaChecker against live table counts.
// Orders count every row; pickups count only non-archived runs, so archiving
// old runs is how an organization reclaims pickup quota.
type GormQuotaChecker struct {
	db *gorm.DB
}

// NewGormQuotaChecker creates a quota checker backed by the given database.
func NewGormQuotaChecker(db *gorm.DB) *GormQuotaChecker {
	return &GormQuotaChecker{db: db}
}

// CheckUsage resolves the organization's plan and compares current usage
// against the limit for the requested action.
func (c *GormQuotaChecker) CheckUsage(
	ctx context.Context,
	organizationID kernel.UUID,
	action ports.QuotaAction,
) (ports.QuotaDecision, error) {
	if err := organizationID.Validate(); err != nil {
		return ports.QuotaDecision{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	plan, err := c.loadPlan(ctx, organizationID)
	if err != nil {
		return ports.QuotaDecision{}, err
	}
	limits := plan.Limits()

	switch action {
	case ports.QuotaActionCreateOrder:
		return c.checkOrders(ctx, organizationID, limits)
	case ports.QuotaActionCreatePickup:
		return c.checkPickups(ctx, organizationID, limits)
	default:
		return ports.QuotaDecision{}, errs.NewValueIsInvalidErrorWithCause(
			"action", fmt.Errorf("%q is not a quota-gated action", action),
		)
	}
}

func (c *GormQuotaChecker) loadPlan(ctx context.Context, organizationID kernel.UUID) (organization.Plan, error) {
	var planStr string
	row := c.db.WithContext(ctx).
		Raw(`SELECT plan FROM organizations WHERE id = ?`, organizationID.Bytes()).
		Row()

	err := row.Scan(&planStr)
	if errors.Is(err, sql.ErrNoRows) {
		return organization.PlanUnknown, errs.NewObjectNotFoundError(
			"organizationId", organizationID.String(),
		)
	}
	if err != nil {
		return organization.PlanUnknown, err
	}

	return organization.PlanFromString(planStr)
}

func (c *GormQuotaChecker) checkOrders(
	ctx context.Context, organizationID kernel.UUID, limits organization.Limits,
) (ports.QuotaDecision, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&orderrepo.OrderDTO{}).
		Where("organization_id = ?", organizationID.Bytes()).
		Count(&count).Error
	if err != nil {
		return ports.QuotaDecision{}, err
	}

	if !limits.AllowsOrder(int(count)) {
		return ports.QuotaDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("order limit reached (%d)", limits.MaxOrders),
		}, nil
	}
	return ports.QuotaDecision{Allowed: true}, nil
}

func (c *GormQuotaChecker) checkPickups(
	ctx context.Context, organizationID kernel.UUID, limits organization.Limits,
) (ports.QuotaDecision, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&pickuprepo.PickupDTO{}).
		Where("organization_id = ? AND status <> ?",
			organizationID.Bytes(), pickup.StatusArchived.String()).
		Count(&count).Error
	if err != nil {
		return ports.QuotaDecision{}, err
	}

	if !limits.AllowsPickup(int(count)) {
		return ports.QuotaDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("pickup limit reached (%d)", limits.MaxPickups),
		}, nil
	}
	return ports.QuotaDecision{Allowed: true}, nil
}
