package organization

import "opsboard/internal/pkg/errs"

// Plan is the subscription tier of an organization.
type Plan int

const (
	// PlanUnknown is the zero value and is not a valid plan.
	PlanUnknown Plan = iota
	// PlanFree is the default tier for new organizations.
	PlanFree
	// PlanPro is the paid tier with raised limits.
	PlanPro
	// PlanEnterprise has no usage limits.
	PlanEnterprise
)

// Unlimited marks a limit that is never exhausted.
const Unlimited = -1

var planNames = map[Plan]string{
	PlanFree:       "free",
	PlanPro:        "pro",
	PlanEnterprise: "enterprise",
}

// Limits is the resource ceiling a plan grants. A value of Unlimited means
// the resource is not capped.
type Limits struct {
	MaxOrders  int
	MaxPickups int
}

var planLimits = map[Plan]Limits{
	PlanFree:       {MaxOrders: 50, MaxPickups: 20},
	PlanPro:        {MaxOrders: 1000, MaxPickups: 500},
	PlanEnterprise: {MaxOrders: Unlimited, MaxPickups: Unlimited},
}

// PlanFromString parses the persisted plan name. An empty string maps to
// PlanFree so that organizations created before plans existed keep working.
func PlanFromString(value string) (Plan, error) {
	if value == "" {
		return PlanFree, nil
	}
	for plan, name := range planNames {
		if name == value {
			return plan, nil
		}
	}
	return PlanUnknown, errs.NewValueIsInvalidError("plan")
}

// String returns the persisted name of the plan.
func (p Plan) String() string {
	if name, ok := planNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether the plan is one of the known tiers.
func (p Plan) IsValid() bool {
	_, ok := planNames[p]
	return ok
}

// Limits returns the plan's resource ceilings. Unknown plans get the free
// tier's limits.
func (p Plan) Limits() Limits {
	if limits, ok := planLimits[p]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// AllowsOrder reports whether one more order fits under the plan's ceiling.
func (l Limits) AllowsOrder(current int) bool {
	return l.MaxOrders == Unlimited || current < l.MaxOrders
}

// AllowsPickup reports whether one more pickup fits under the plan's ceiling.
func (l Limits) AllowsPickup(current int) bool {
	return l.MaxPickups == Unlimited || current < l.MaxPickups
}
