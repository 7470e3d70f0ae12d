package commands

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

// ErrPickupIsArchived is returned when a command targets an archived pickup
// that must be reactivated first.
var ErrPickupIsArchived = errors.New("pickup is archived; reactivate it before editing")

// EditPickupCommandHandler handles full updates of a pickup, including
// replacing its order set. Claims released from dropped orders and claims
// taken on added orders commit atomically with the pickup itself.
type EditPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	publisher  ports.EventPublisher
	allocator  services.OrderAllocator
}

// NewEditPickupCommandHandler creates a handler for pickup edit operations.
func NewEditPickupCommandHandler(uowFactory PickupUoWFactory, publisher ports.EventPublisher) EditPickupCommandHandler {
	return EditPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		allocator:  services.NewOrderAllocator(),
	}
}

// Handle processes the pickup edit command.
func (h *EditPickupCommandHandler) Handle(ctx context.Context, cmd EditPickupCommand) error {
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
	if !target.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("pickupId", ErrPickupIsArchived)
	}

	orderRepo := uow.OrderRepository()

	droppedIDs := missingFrom(target.OrderIDs(), cmd.OrderIDs())
	dropped, err := resolveOrders(ctx, orderRepo, cmd.OrganizationID(), droppedIDs)
	if err != nil {
		return err
	}
	if err = h.allocator.Release(target, dropped); err != nil {
		return err
	}

	orders, err := resolveOrders(ctx, orderRepo, cmd.OrganizationID(), cmd.OrderIDs())
	if err != nil {
		return err
	}
	claimers, err := resolveClaimers(ctx, pickupRepo, cmd.OrganizationID(), orders)
	if err != nil {
		return err
	}
	if err = h.allocator.Allocate(target, orders, claimers); err != nil {
		return err
	}

	if err = errors.Join(
		target.Rename(cmd.Name()),
		target.ChangeDriver(cmd.DriverID()),
		target.Reschedule(cmd.ScheduledDate()),
		target.ChangePriority(cmd.Priority()),
	); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, target); err != nil {
		return err
	}
	for _, o := range append(dropped, orders...) {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypePickup, cmd.PickupID(), "updated")
	return nil
}

// missingFrom returns the ids in have that are absent from want.
func missingFrom(have, want []kernel.UUID) []kernel.UUID {
	wanted := make(map[kernel.UUID]struct{}, len(want))
	for _, id := range want {
		wanted[id] = struct{}{}
	}

	var missing []kernel.UUID
	for _, id := range have {
		if _, ok := wanted[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
