package kernel

import (
	"fmt"
	"math"

	"opsboard/internal/pkg/errs"
)

// Cost is a non-negative monetary amount held in cents to avoid floating
// point drift in sums and comparisons. The zero value is a valid zero cost.
type Cost struct {
	cents int64
}

// NewCost creates a Cost from an amount in cents.
// Negative amounts are rejected.
func NewCost(cents int64) (Cost, error) {
	if cents < 0 {
		return Cost{}, errs.NewValueIsOutOfRangeError("costCents", cents, 0, int64(math.MaxInt64))
	}
	return Cost{cents: cents}, nil
}

// NewCostFromDollars creates a Cost from a decimal dollar amount, rounding to
// the nearest cent. Intake forms submit dollar values.
func NewCostFromDollars(dollars float64) (Cost, error) {
	return NewCost(int64(math.Round(dollars * 100)))
}

// Cents returns the amount in cents.
func (c Cost) Cents() int64 {
	return c.cents
}

// Dollars returns the amount as a decimal dollar value.
func (c Cost) Dollars() float64 {
	return float64(c.cents) / 100
}

// IsEqual compares two costs by value.
func (c Cost) IsEqual(other Cost) bool {
	return c.cents == other.cents
}

// String renders the cost as a dollar amount, e.g. "125.00".
func (c Cost) String() string {
	return fmt.Sprintf("%d.%02d", c.cents/100, c.cents%100)
}
