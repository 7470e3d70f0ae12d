package order

import (
	"errors"
	"fmt"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder, so its invariants cannot be trusted.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Details groups the intake fields of an order. Job name, job number,
// designer and source are required; order number, purchase order and
// destination name are free-form references filled in when known.
type Details struct {
	JobName         string
	JobNumber       string
	OrderNumber     string
	PurchaseOrder   string
	DesignerID      kernel.UUID
	SourceID        kernel.UUID
	DestinationName string
	Cost            kernel.Cost
}

// Order is the aggregate root for a unit of work to be delivered.
//
// Invariants:
//   - Owned by exactly one organization; all operations are org-scoped.
//   - Required intake fields are present and cost is non-negative.
//   - pickupID, when set, mirrors membership in that pickup's order set
//     (referential symmetry, maintained by the allocation service).
//   - version increments on every persisted mutation; repositories use it
//     for optimistic concurrency control.
type Order struct {
	id             kernel.UUID
	organizationID kernel.UUID
	details        Details
	status         Status
	priority       kernel.Priority
	pickupID       *kernel.UUID
	version        int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in pending status with no pickup attached.
// A zero priority defaults to standard, matching the intake form default.
func NewOrder(id, organizationID kernel.UUID, details Details, priority kernel.Priority) (*Order, error) {
	if priority == kernel.PriorityUnknown {
		priority = kernel.PriorityStandard
	}

	o := &Order{
		status:  StatusPending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrganizationID(organizationID),
		o.setDetails(details),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status, pickup link and version counter.
func RestoreOrder(
	id, organizationID kernel.UUID,
	details Details,
	status Status,
	priority kernel.Priority,
	pickupID *kernel.UUID,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, organizationID, details, priority)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if pickupID != nil {
		if err = pickupID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid version", version),
		)
	}

	o.status = status
	o.pickupID = pickupID
	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrganizationID returns the owning organization.
func (o *Order) OrganizationID() kernel.UUID {
	return o.organizationID
}

// Details returns the intake fields.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the handling priority.
func (o *Order) Priority() kernel.Priority {
	return o.priority
}

// PickupID returns the claiming pickup's identifier, or nil when unclaimed.
func (o *Order) PickupID() *kernel.UUID {
	return o.pickupID
}

// Version returns the optimistic-concurrency counter as read from storage.
func (o *Order) Version() int {
	return o.version
}

// ChangeDetails replaces the intake fields after validating them.
func (o *Order) ChangeDetails(details Details) error {
	return o.setDetails(details)
}

// ChangeStatus moves the order to the given fulfillment status. Orders have
// no transition table; any defined status is reachable from any other.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ChangePriority updates the handling priority.
func (o *Order) ChangePriority(priority kernel.Priority) error {
	return o.setPriority(priority)
}

// AssignToPickup claims the order for a pickup. An order already claimed by
// a different pickup cannot be double-booked; releasing it first is the
// editing pickup's responsibility.
func (o *Order) AssignToPickup(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	if o.pickupID != nil && !o.pickupID.IsEqual(pickupID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupId",
			fmt.Errorf("order %s is already scheduled on pickup %s", o.id, o.pickupID),
		)
	}

	o.pickupID = &pickupID
	return nil
}

// ReleaseFromPickup clears the pickup link. Releasing an unclaimed order is
// a no-op.
func (o *Order) ReleaseFromPickup() {
	o.pickupID = nil
}

// IsClaimedBy reports whether this order is linked to the given pickup.
func (o *Order) IsClaimedBy(pickupID kernel.UUID) bool {
	return o.pickupID != nil && o.pickupID.IsEqual(pickupID)
}

// IsClaimed reports whether any pickup currently holds this order.
func (o *Order) IsClaimed() bool {
	return o.pickupID != nil
}

// ReturnEligible reports whether the order can be placed on a new return.
func (o *Order) ReturnEligible() bool {
	return o.status.ReturnEligible()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	o.organizationID = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.JobName == "" {
		return errs.NewValueIsRequiredError("jobName")
	}
	if details.JobNumber == "" {
		return errs.NewValueIsRequiredError("jobNumber")
	}
	if err := details.DesignerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("designerId", err)
	}
	if err := details.SourceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sourceId", err)
	}

	o.details = details
	return nil
}

func (o *Order) setPriority(priority kernel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
