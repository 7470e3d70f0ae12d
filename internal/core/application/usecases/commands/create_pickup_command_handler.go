package commands

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

// CreatePickupCommandHandler handles pickup scheduling. Creating a pickup
// claims every order in the batch, so the pickup insert and all order
// back-reference writes share one transaction: if any order cannot be
// claimed, nothing is persisted.
type CreatePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	quota      ports.QuotaChecker
	publisher  ports.EventPublisher
	allocator  services.OrderAllocator
}

// NewCreatePickupCommandHandler creates a handler for pickup scheduling operations.
func NewCreatePickupCommandHandler(
	uowFactory PickupUoWFactory, quota ports.QuotaChecker, publisher ports.EventPublisher,
) CreatePickupCommandHandler {
	return CreatePickupCommandHandler{
		uowFactory: uowFactory,
		quota:      quota,
		publisher:  publisher,
		allocator:  services.NewOrderAllocator(),
	}
}

// Handle processes the pickup creation command.
func (h *CreatePickupCommandHandler) Handle(ctx context.Context, cmd CreatePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	decision, err := h.quota.CheckUsage(ctx, cmd.OrganizationID(), ports.QuotaActionCreatePickup)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return errs.NewQuotaExceededError(string(ports.QuotaActionCreatePickup), decision.Reason)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := resolveOrders(ctx, orderRepo, cmd.OrganizationID(), cmd.OrderIDs())
	if err != nil {
		return err
	}

	pickupRepo := uow.PickupRepository()
	claimers, err := resolveClaimers(ctx, pickupRepo, cmd.OrganizationID(), orders)
	if err != nil {
		return err
	}

	target, err := pickup.NewPickup(
		cmd.PickupID(), cmd.OrganizationID(),
		cmd.Name(), cmd.DriverID(), cmd.ScheduledDate(),
		cmd.OrderIDs(), cmd.Priority(), cmd.Status(),
	)
	if err != nil {
		return err
	}

	if err = h.allocator.Allocate(target, orders, claimers); err != nil {
		return err
	}

	if err = pickupRepo.Add(ctx, target); err != nil {
		return err
	}
	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, cmd.OrganizationID(), EntityTypePickup, cmd.PickupID(), "created")
	return nil
}

// resolveOrders loads the full batch and fails with not-found on the first
// identifier that does not resolve within the organization.
func resolveOrders(
	ctx context.Context, repo ports.OrderRepository, organizationID kernel.UUID, ids []kernel.UUID,
) ([]*order.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	orders, err := repo.GetByIDs(ctx, organizationID, ids)
	if err != nil {
		return nil, err
	}

	if len(orders) != len(ids) {
		found := make(map[kernel.UUID]struct{}, len(orders))
		for _, o := range orders {
			found[o.ID()] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, errs.NewObjectNotFoundError("orderId", id.String())
			}
		}
	}

	return orders, nil
}

// resolveClaimers loads every pickup referenced by an already-claimed order
// in the batch so the allocator can tell live claims from archived ones.
func resolveClaimers(
	ctx context.Context, repo ports.PickupRepository, organizationID kernel.UUID, orders []*order.Order,
) ([]*pickup.Pickup, error) {
	seen := make(map[kernel.UUID]struct{})
	var claimerIDs []kernel.UUID
	for _, o := range orders {
		if !o.IsClaimed() {
			continue
		}
		id := *o.PickupID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		claimerIDs = append(claimerIDs, id)
	}

	if len(claimerIDs) == 0 {
		return nil, nil
	}
	return repo.GetByIDs(ctx, organizationID, claimerIDs)
}
