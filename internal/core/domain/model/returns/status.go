package returns

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a return. The label set matches
// the pickup lifecycle but the machine is independent: scheduled and
// in-progress returns can be cancelled, completed and cancelled returns can
// only be archived, and reactivation brings an archived return back to
// scheduled. Re-archiving an archived return is a no-op success.
type Status int

const (
	// StatusUnknown is the invalid zero value, kept to catch
	// uninitialized Status values coming from external sources.
	StatusUnknown Status = iota

	StatusScheduled
	StatusInProgress
	StatusCompleted
	StatusCancelled
	StatusArchived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusScheduled:  "scheduled",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
		StatusArchived:   "archived",
	}
}

func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusScheduled:  {StatusInProgress, StatusCancelled, StatusArchived},
		StatusInProgress: {StatusCompleted, StatusCancelled, StatusArchived},
		StatusCompleted:  {StatusArchived},
		StatusCancelled:  {StatusArchived},
		StatusArchived:   {StatusScheduled},
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
		"returnStatus", fmt.Errorf("%q is not a valid return status", s),
	)
}

// Validate checks the Status holds one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnStatus", fmt.Errorf("%d is not a valid return status", s),
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

// CanTransitionTo reports whether the transition table allows moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after a transition, enforcing the
// transition table. Archiving an archived return succeeds without change.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s == StatusArchived && target == StatusArchived {
		return StatusArchived, nil
	}

	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStatusTransitionError("return", s.String(), target.String())
	}

	return target, nil
}
