package pickup

import (
	"errors"
	"fmt"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrPickupIsNotConstructed is returned when a Pickup instance was not
// created through NewPickup or RestorePickup.
var ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup or RestorePickup")

// Pickup is the aggregate root for a scheduled collection event.
//
// Invariants:
//   - Owned by exactly one organization.
//   - The order set is never empty; creation and edits that would leave a
//     pickup without orders are rejected.
//   - Every order id in the set belongs to an order whose pickupId equals
//     this pickup's id (symmetry, maintained by the allocation service).
//   - Status transitions follow the table in Status.
//   - version increments on every persisted mutation; repositories use it
//     for optimistic concurrency control.
type Pickup struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	orderIDs       []kernel.UUID
	driverID       kernel.UUID
	status         Status
	priority       kernel.Priority
	scheduledDate  time.Time
	version        int

	guard guard.ConstructorGuard
}

// NewPickup creates a pickup with an initial, non-empty order set. A zero
// status defaults to scheduled and a zero priority to standard, matching the
// scheduling form defaults.
func NewPickup(
	id, organizationID kernel.UUID,
	name string,
	driverID kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status Status,
) (*Pickup, error) {
	if status == StatusUnknown {
		status = StatusScheduled
	}
	if priority == kernel.PriorityUnknown {
		priority = kernel.PriorityStandard
	}

	p := &Pickup{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrganizationID(organizationID),
		p.setName(name),
		p.setDriverID(driverID),
		p.setScheduledDate(scheduledDate),
		p.setOrderIDs(orderIDs),
		p.setPriority(priority),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePickup reconstructs a pickup from persistence, including its
// version counter.
func RestorePickup(
	id, organizationID kernel.UUID,
	name string,
	driverID kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status Status,
	version int,
) (*Pickup, error) {
	p, err := NewPickup(id, organizationID, name, driverID, scheduledDate, orderIDs, priority, status)
	if err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", version),
		)
	}

	p.version = version
	return p, nil
}

// Validate ensures the Pickup was created through a constructor.
func (p *Pickup) Validate() error {
	if p == nil {
		return ErrPickupIsNotConstructed
	}
	return p.guard.Validate(ErrPickupIsNotConstructed)
}

// IsEqual compares two pickups by identifier.
func (p *Pickup) IsEqual(other *Pickup) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pickup's unique identifier.
func (p *Pickup) ID() kernel.UUID {
	return p.id
}

// OrganizationID returns the owning organization.
func (p *Pickup) OrganizationID() kernel.UUID {
	return p.organizationID
}

// Name returns the display name of the pickup.
func (p *Pickup) Name() string {
	return p.name
}

// OrderIDs returns a copy of the order set.
func (p *Pickup) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.orderIDs))
	copy(ids, p.orderIDs)
	return ids
}

// DriverID returns the assigned driver.
func (p *Pickup) DriverID() kernel.UUID {
	return p.driverID
}

// Status returns the current lifecycle status.
func (p *Pickup) Status() Status {
	return p.status
}

// Priority returns the handling priority.
func (p *Pickup) Priority() kernel.Priority {
	return p.priority
}

// ScheduledDate returns when the collection is planned.
func (p *Pickup) ScheduledDate() time.Time {
	return p.scheduledDate
}

// Version returns the optimistic-concurrency counter as read from storage.
func (p *Pickup) Version() int {
	return p.version
}

// HasOrder reports whether the given order id is in the pickup's set.
func (p *Pickup) HasOrder(orderID kernel.UUID) bool {
	for _, id := range p.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// IsActive reports whether the pickup can claim orders. Archived pickups
// keep their order references for record-keeping but no longer claim the
// orders, so their contents may be re-scheduled elsewhere.
func (p *Pickup) IsActive() bool {
	return p.status != StatusArchived
}

// Rename updates the display name.
func (p *Pickup) Rename(name string) error {
	return p.setName(name)
}

// ChangeDriver reassigns the pickup to another driver.
func (p *Pickup) ChangeDriver(driverID kernel.UUID) error {
	return p.setDriverID(driverID)
}

// Reschedule moves the planned collection date.
func (p *Pickup) Reschedule(scheduledDate time.Time) error {
	return p.setScheduledDate(scheduledDate)
}

// ChangePriority updates the handling priority.
func (p *Pickup) ChangePriority(priority kernel.Priority) error {
	return p.setPriority(priority)
}

// SetOrders replaces the order set. The new set must be non-empty; callers
// are responsible for relinking the affected orders through the allocation
// service.
func (p *Pickup) SetOrders(orderIDs []kernel.UUID) error {
	return p.setOrderIDs(orderIDs)
}

// Start moves the pickup from scheduled to in_progress.
func (p *Pickup) Start() error {
	return p.transition(StatusInProgress)
}

// Complete marks an in-progress pickup as completed.
func (p *Pickup) Complete() error {
	return p.transition(StatusCompleted)
}

// Cancel cancels a scheduled or in-progress pickup.
func (p *Pickup) Cancel() error {
	return p.transition(StatusCancelled)
}

// Archive hides the pickup from default views. Archiving an already
// archived pickup is a no-op success. Order linkage is not touched, so the
// archived pickup's contents remain viewable and exportable.
func (p *Pickup) Archive() error {
	return p.transition(StatusArchived)
}

// Reactivate returns an archived pickup to scheduled.
func (p *Pickup) Reactivate() error {
	return p.transition(StatusScheduled)
}

// TransitionTo moves the pickup to the given target status, enforcing the
// transition table.
func (p *Pickup) TransitionTo(target Status) error {
	return p.transition(target)
}

func (p *Pickup) transition(target Status) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Pickup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pickup) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	p.organizationID = id
	return nil
}

func (p *Pickup) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Pickup) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	p.driverID = driverID
	return nil
}

func (p *Pickup) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	p.scheduledDate = scheduledDate
	return nil
}

func (p *Pickup) setOrderIDs(orderIDs []kernel.UUID) error {
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

	p.orderIDs = deduped
	return nil
}

func (p *Pickup) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *Pickup) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
