package order

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Unlike pickups and returns, orders have no transition table: the status is
// operator-set through intake and edit operations. The only behavior hanging
// off Status is return eligibility, which requires the goods to have left the
// building (picked_up or delivered).
type Status int

const (
	// StatusUnknown is the invalid zero value, kept to catch
	// uninitialized Status values coming from external sources.
	StatusUnknown Status = iota

	StatusPending
	StatusInProgress
	StatusReadyForPickup
	StatusPickedUp
	StatusInTransit
	StatusDelivered
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:        "pending",
		StatusInProgress:     "in_progress",
		StatusReadyForPickup: "ready_for_pickup",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses the persistence/wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks the Status holds one of the defined fulfillment states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ReturnEligible reports whether an order in this status can be placed on a
// return. Only goods that were picked up or delivered can come back.
func (s Status) ReturnEligible() bool {
	return s == StatusPickedUp || s == StatusDelivered
}
