package commands_test

import (
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClaimedOrder(t *testing.T, orgID, pickupID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), orgID, validOrderDetails(),
		order.StatusPending, kernel.PriorityStandard, &pickupID, 3,
	)
	require.NoError(t, err)
	return o
}

func TestEditPickupCommandHandler_Handle_SwapsOrders(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	pickupID := kernel.NewUUID()

	kept := newClaimedOrder(t, orgID, pickupID)
	dropped := newClaimedOrder(t, orgID, pickupID)
	added := newStoredOrder(t, orgID)

	target, err := pickup.RestorePickup(
		pickupID, orgID, "Thursday Run", kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{kept.ID(), dropped.ID()},
		kernel.PriorityStandard, pickup.StatusScheduled, 2,
	)
	require.NoError(t, err)

	cmd, err := commands.NewEditPickupCommand(
		pickupID, orgID, "Thursday Run Revised", kernel.NewUUID(),
		time.Date(2024, 3, 8, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{kept.ID(), added.ID()},
		kernel.PriorityHigh,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, pickupID).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{dropped.ID()}).
			Return([]*order.Order{dropped}, nil).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).
			Return([]*order.Order{kept, added}, nil).Once(),
		pickupRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{pickupID}).
			Return([]*pickup.Pickup{target}, nil).Once(),
		pickupRepo.On("Update", ctx, target).Return(nil).Once(),
		orderRepo.On("Update", ctx, dropped).Return(nil).Once(),
		orderRepo.On("Update", ctx, kept).Return(nil).Once(),
		orderRepo.On("Update", ctx, added).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditPickupCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, dropped.IsClaimed(), "dropped order should lose its claim")
	assert.True(t, kept.IsClaimedBy(pickupID))
	assert.True(t, added.IsClaimedBy(pickupID))
	assert.True(t, target.HasOrder(added.ID()))
	assert.False(t, target.HasOrder(dropped.ID()))
	assert.Equal(t, "Thursday Run Revised", target.Name())
	assert.Equal(t, kernel.PriorityHigh, target.Priority())

	pickupRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestEditPickupCommandHandler_Handle_ArchivedPickupRejected(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := restoreTestPickup(t, orgID, pickup.StatusArchived)

	cmd, err := commands.NewEditPickupCommand(
		target.ID(), orgID, "Thursday Run", target.DriverID(),
		target.ScheduledDate(), target.OrderIDs(), kernel.PriorityStandard,
	)
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditPickupCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "archived")
	pickupRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestEditPickupCommandHandler_Handle_AddedOrderClaimedElsewhere(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	pickupID := kernel.NewUUID()
	holderID := kernel.NewUUID()

	kept := newClaimedOrder(t, orgID, pickupID)
	contested := newClaimedOrder(t, orgID, holderID)

	target, err := pickup.RestorePickup(
		pickupID, orgID, "Thursday Run", kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{kept.ID()},
		kernel.PriorityStandard, pickup.StatusScheduled, 2,
	)
	require.NoError(t, err)

	holder, err := pickup.RestorePickup(
		holderID, orgID, "Holder Run", kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{contested.ID()},
		kernel.PriorityStandard, pickup.StatusScheduled, 2,
	)
	require.NoError(t, err)

	cmd, err := commands.NewEditPickupCommand(
		pickupID, orgID, "Thursday Run", target.DriverID(),
		target.ScheduledDate(), []kernel.UUID{kept.ID(), contested.ID()},
		kernel.PriorityStandard,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, pickupID).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).
			Return([]*order.Order{kept, contested}, nil).Once(),
		pickupRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{pickupID, holderID}).
			Return([]*pickup.Pickup{target, holder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditPickupCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOrderAlreadyClaimed)
	assert.True(t, contested.IsClaimedBy(holderID), "claim should remain with the holder")
	pickupRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}
