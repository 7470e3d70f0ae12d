package commands

import (
	"context"

	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

// TransitionPickupCommandHandler handles pickup lifecycle transitions.
// Reactivation is the delicate case: while a pickup sat archived its orders
// were free to be claimed elsewhere, so the handler re-runs the allocation
// checks before the pickup returns to the scheduled state.
type TransitionPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	publisher  ports.EventPublisher
	allocator  services.OrderAllocator
}

// NewTransitionPickupCommandHandler creates a handler for pickup transitions.
func NewTransitionPickupCommandHandler(
	uowFactory PickupUoWFactory, publisher ports.EventPublisher,
) TransitionPickupCommandHandler {
	return TransitionPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		allocator:  services.NewOrderAllocator(),
	}
}

// Handle processes the pickup transition command.
func (h *TransitionPickupCommandHandler) Handle(ctx context.Context, cmd TransitionPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRepository()
	target, err := pickupRepo.Get(ctx, cmd.OrganizationID(), cmd.PickupID())
	if err != nil {
		return err
	}

	reactivating := target.Status() == pickup.StatusArchived && cmd.Target() == pickup.StatusScheduled

	var reclaimed []*order.Order
	if reactivating {
		reclaimed, err = h.reclaimOrders(ctx, uow, target)
		if err != nil {
			return err
		}
	}

	if err = target.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, target); err != nil {
		return err
	}
	for _, o := range reclaimed {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypePickup, cmd.PickupID(), cmd.Target().String())
	return nil
}

// reclaimOrders re-establishes the pickup's claims on its order set before
// reactivation. Orders deleted while the pickup was archived are dropped
// from the set; orders claimed by another active pickup block reactivation.
func (h *TransitionPickupCommandHandler) reclaimOrders(
	ctx context.Context, uow PickupUoW, target *pickup.Pickup,
) ([]*order.Order, error) {
	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDs(ctx, target.OrganizationID(), target.OrderIDs())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderIds",
			errs.NewObjectNotFoundError("orderIds", "all orders of the pickup were deleted"))
	}

	claimers, err := resolveClaimers(ctx, uow.PickupRepository(), target.OrganizationID(), orders)
	if err != nil {
		return nil, err
	}

	if err = h.allocator.Allocate(target, orders, claimers); err != nil {
		return nil, err
	}
	return orders, nil
}
