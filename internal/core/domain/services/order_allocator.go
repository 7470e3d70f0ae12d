package services

import (
	"errors"
	"fmt"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/pkg/errs"
)

// ErrOrderAlreadyClaimed is returned when an order is requested for a pickup
// while another active pickup still holds it. An order belongs to at most
// one non-archived pickup at a time.
var ErrOrderAlreadyClaimed = errors.New("order is already on an active pickup")

// OrderAllocator is a domain service that moves orders onto and off a
// pickup while keeping the order-side back-reference consistent with the
// pickup-side order set.
//
// Allocation rules:
//   - An order may be claimed by at most one active pickup.
//   - A claim held by an archived pickup does not block reallocation; the
//     stale back-reference is released before the new claim is made.
//   - Allocating an order the target pickup already holds is a no-op.
type OrderAllocator struct{}

// NewOrderAllocator creates a new OrderAllocator instance.
func NewOrderAllocator() OrderAllocator {
	return OrderAllocator{}
}

// Allocate claims every order in orders for the target pickup and replaces
// the pickup's order set with exactly those orders. claimers must contain
// the pickups currently referenced by any already-claimed order in the
// batch; archived claimers are treated as released.
//
// On success every order's back-reference points at target and
// target.OrderIDs matches the batch. On failure the target pickup is left
// unchanged; orders mutated before the failing one keep their new claim,
// so callers should discard the batch instead of persisting it.
func (a OrderAllocator) Allocate(target *pickup.Pickup, orders []*order.Order, claimers []*pickup.Pickup) error {
	if err := target.Validate(); err != nil {
		return err
	}

	claimerByID := make(map[kernel.UUID]*pickup.Pickup, len(claimers))
	for _, c := range claimers {
		if err := c.Validate(); err != nil {
			return err
		}
		claimerByID[c.ID()] = c
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		if err := a.claim(target, o, claimerByID); err != nil {
			return err
		}
		orderIDs = append(orderIDs, o.ID())
	}

	return target.SetOrders(orderIDs)
}

// Release drops the target pickup's claim on every order in orders. Orders
// claimed by a different pickup are left untouched.
func (a OrderAllocator) Release(target *pickup.Pickup, orders []*order.Order) error {
	if err := target.Validate(); err != nil {
		return err
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.IsClaimedBy(target.ID()) {
			o.ReleaseFromPickup()
		}
	}
	return nil
}

func (a OrderAllocator) claim(target *pickup.Pickup, o *order.Order, claimerByID map[kernel.UUID]*pickup.Pickup) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.IsClaimed() || o.IsClaimedBy(target.ID()) {
		return o.AssignToPickup(target.ID())
	}

	claimer, ok := claimerByID[*o.PickupID()]
	if !ok {
		return errs.NewObjectNotFoundError("pickupId", o.PickupID().String())
	}

	if claimer.IsActive() {
		return fmt.Errorf("%w: order %s is on pickup %s", ErrOrderAlreadyClaimed, o.ID(), claimer.ID())
	}

	o.ReleaseFromPickup()
	return o.AssignToPickup(target.ID())
}
