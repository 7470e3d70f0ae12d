package returns

import (
	"errors"
	"fmt"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrReturnIsNotConstructed is returned when a Return instance was not
// created through NewReturn or RestoreReturn.
var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn or RestoreReturn")

// Return is the aggregate root for a scheduled send-back of orders.
//
// Invariants:
//   - Owned by exactly one organization.
//   - The order set is never empty.
//   - Referenced orders must be delivered or picked_up when they are first
//     added; the check is not re-run for orders already on the return, so a
//     later status change does not retroactively invalidate it.
//   - Unlike a pickup, a return writes no back-reference onto its orders and
//     does not claim them exclusively.
//
// The driver is optional: a return can be scheduled before anyone is
// assigned to run it.
type Return struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	orderIDs       []kernel.UUID
	driverID       *kernel.UUID
	status         Status
	priority       kernel.Priority
	scheduledDate  time.Time
	version        int

	guard guard.ConstructorGuard
}

// NewReturn creates a return with an initial, non-empty order set. A zero
// status defaults to scheduled and a zero priority to standard.
func NewReturn(
	id, organizationID kernel.UUID,
	name string,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status Status,
) (*Return, error) {
	if status == StatusUnknown {
		status = StatusScheduled
	}
	if priority == kernel.PriorityUnknown {
		priority = kernel.PriorityStandard
	}

	r := &Return{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrganizationID(organizationID),
		r.setName(name),
		r.setDriverID(driverID),
		r.setScheduledDate(scheduledDate),
		r.setOrderIDs(orderIDs),
		r.setPriority(priority),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReturn reconstructs a return from persistence, including its
// version counter.
func RestoreReturn(
	id, organizationID kernel.UUID,
	name string,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status Status,
	version int,
) (*Return, error) {
	r, err := NewReturn(id, organizationID, name, driverID, scheduledDate, orderIDs, priority, status)
	if err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", version),
		)
	}

	r.version = version
	return r, nil
}

// Validate ensures the Return was created through a constructor.
func (r *Return) Validate() error {
	if r == nil {
		return ErrReturnIsNotConstructed
	}
	return r.guard.Validate(ErrReturnIsNotConstructed)
}

// ID returns the return's unique identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// OrganizationID returns the owning organization.
func (r *Return) OrganizationID() kernel.UUID {
	return r.organizationID
}

// Name returns the display name of the return.
func (r *Return) Name() string {
	return r.name
}

// OrderIDs returns a copy of the order set.
func (r *Return) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.orderIDs))
	copy(ids, r.orderIDs)
	return ids
}

// DriverID returns the assigned driver, or nil when none is assigned yet.
func (r *Return) DriverID() *kernel.UUID {
	return r.driverID
}

// Status returns the current lifecycle status.
func (r *Return) Status() Status {
	return r.status
}

// Priority returns the handling priority.
func (r *Return) Priority() kernel.Priority {
	return r.priority
}

// ScheduledDate returns when the send-back is planned.
func (r *Return) ScheduledDate() time.Time {
	return r.scheduledDate
}

// Version returns the optimistic-concurrency counter as read from storage.
func (r *Return) Version() int {
	return r.version
}

// HasOrder reports whether the given order id is on the return.
func (r *Return) HasOrder(orderID kernel.UUID) bool {
	for _, id := range r.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AddedOrders reports which of the given ids are not yet on the return.
// Update operations re-check eligibility only for these.
func (r *Return) AddedOrders(orderIDs []kernel.UUID) []kernel.UUID {
	added := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if !r.HasOrder(id) {
			added = append(added, id)
		}
	}
	return added
}

// Rename updates the display name.
func (r *Return) Rename(name string) error {
	return r.setName(name)
}

// ChangeDriver assigns or clears the driver.
func (r *Return) ChangeDriver(driverID *kernel.UUID) error {
	return r.setDriverID(driverID)
}

// Reschedule moves the planned send-back date.
func (r *Return) Reschedule(scheduledDate time.Time) error {
	return r.setScheduledDate(scheduledDate)
}

// ChangePriority updates the handling priority.
func (r *Return) ChangePriority(priority kernel.Priority) error {
	return r.setPriority(priority)
}

// SetOrders replaces the order set. The new set must be non-empty.
// Eligibility of newly added orders is the caller's responsibility, checked
// against live order state inside the mutating use case.
func (r *Return) SetOrders(orderIDs []kernel.UUID) error {
	return r.setOrderIDs(orderIDs)
}

// Start moves the return from scheduled to in_progress.
func (r *Return) Start() error {
	return r.transition(StatusInProgress)
}

// Complete marks an in-progress return as completed.
func (r *Return) Complete() error {
	return r.transition(StatusCompleted)
}

// Cancel cancels a scheduled or in-progress return.
func (r *Return) Cancel() error {
	return r.transition(StatusCancelled)
}

// Archive hides the return from default views; idempotent.
func (r *Return) Archive() error {
	return r.transition(StatusArchived)
}

// Reactivate returns an archived return to scheduled.
func (r *Return) Reactivate() error {
	return r.transition(StatusScheduled)
}

// TransitionTo moves the return to the given target status, enforcing the
// transition table.
func (r *Return) TransitionTo(target Status) error {
	return r.transition(target)
}

func (r *Return) transition(target Status) error {
	newStatus, err := r.status.TransitionTo(target)
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *Return) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Return) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	r.organizationID = id
	return nil
}

func (r *Return) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Return) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}
	r.driverID = driverID
	return nil
}

func (r *Return) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	r.scheduledDate = scheduledDate
	return nil
}

func (r *Return) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	deduped := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", err)
		}
		seen := false
		for _, existing := range deduped {
			if existing.IsEqual(id) {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, id)
		}
	}

	r.orderIDs = deduped
	return nil
}

func (r *Return) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	r.priority = priority
	return nil
}

func (r *Return) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
