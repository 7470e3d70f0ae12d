package kernel

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Priority ranks how urgently an order, pickup or return should be handled.
// It is shared by all three aggregates; each defaults to PriorityStandard
// when the caller does not specify one.
type Priority int

const (
	// PriorityUnknown is the invalid zero value, kept to catch
	// uninitialized priorities coming from external sources.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityStandard
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:      "low",
		PriorityStandard: "standard",
		PriorityHigh:     "high",
		PriorityUrgent:   "urgent",
	}
}

// PriorityFromString parses the wire/persistence representation of a
// priority. An empty string resolves to PriorityStandard, matching the
// intake default.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityStandard, nil
	}
	for p, str := range getPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks the Priority holds one of the defined ranks.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "unknown".
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
