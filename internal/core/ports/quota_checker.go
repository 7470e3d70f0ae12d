package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
)

// QuotaAction names a creation the quota checker can gate.
type QuotaAction string

const (
	// QuotaActionCreateOrder gates order creation against the plan's order
	// ceiling.
	QuotaActionCreateOrder QuotaAction = "create_order"
	// QuotaActionCreatePickup gates pickup creation against the plan's
	// pickup ceiling.
	QuotaActionCreatePickup QuotaAction = "create_pickup"
)

// QuotaDecision is the outcome of a quota check. Reason is only set when
// the action is denied.
type QuotaDecision struct {
	Allowed bool
	Reason  string
}

// QuotaChecker decides whether an organization's plan permits another
// resource creation. Handlers consult it before any state is persisted.
type QuotaChecker interface {
	CheckUsage(ctx context.Context, organizationID kernel.UUID, action QuotaAction) (QuotaDecision, error)
}
