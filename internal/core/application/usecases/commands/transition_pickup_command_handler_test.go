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

func restoreTestPickup(t *testing.T, orgID kernel.UUID, status pickup.Status, orderIDs ...kernel.UUID) *pickup.Pickup {
	t.Helper()
	if len(orderIDs) == 0 {
		orderIDs = []kernel.UUID{kernel.NewUUID()}
	}
	p, err := pickup.RestorePickup(
		kernel.NewUUID(), orgID, "Thursday Run", kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		orderIDs, kernel.PriorityStandard, status, 2,
	)
	require.NoError(t, err)
	return p
}

func TestTransitionPickupCommandHandler_Handle_StartRun(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := restoreTestPickup(t, orgID, pickup.StatusScheduled)

	cmd, err := commands.NewTransitionPickupCommand(target.ID(), orgID, pickup.StatusInProgress)
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		pickupRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionPickupCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.StatusInProgress, target.Status())
}

func TestTransitionPickupCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := restoreTestPickup(t, orgID, pickup.StatusCompleted)

	cmd, err := commands.NewTransitionPickupCommand(target.ID(), orgID, pickup.StatusInProgress)
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

	handler := commands.NewTransitionPickupCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	assert.Equal(t, pickup.StatusCompleted, target.Status())
	pickupRepo.AssertNotCalled(t, "Update")
}

func TestTransitionPickupCommandHandler_Handle_ArchiveIsIdempotent(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := restoreTestPickup(t, orgID, pickup.StatusArchived)

	cmd, err := commands.NewTransitionPickupCommand(target.ID(), orgID, pickup.StatusArchived)
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		pickupRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionPickupCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.StatusArchived, target.Status())
}

func TestTransitionPickupCommandHandler_Handle_ReactivateReclaimsOrders(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	ord := newStoredOrder(t, orgID)
	target := restoreTestPickup(t, orgID, pickup.StatusArchived, ord.ID())

	cmd, err := commands.NewTransitionPickupCommand(target.ID(), orgID, pickup.StatusScheduled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, target.OrderIDs()).Return([]*order.Order{ord}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionPickupCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.StatusScheduled, target.Status())
	assert.True(t, ord.IsClaimedBy(target.ID()))
}

func TestTransitionPickupCommandHandler_Handle_ReactivateBlockedByNewClaim(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	newHolderID := kernel.NewUUID()
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), orgID, validOrderDetails(),
		order.StatusPending, kernel.PriorityStandard, &newHolderID, 4,
	)
	require.NoError(t, err)

	newHolder, err := pickup.RestorePickup(
		newHolderID, orgID, "Friday Run", kernel.NewUUID(),
		time.Date(2024, 3, 8, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{ord.ID()}, kernel.PriorityStandard, pickup.StatusScheduled, 1,
	)
	require.NoError(t, err)

	target := restoreTestPickup(t, orgID, pickup.StatusArchived, ord.ID())

	cmd, err := commands.NewTransitionPickupCommand(target.ID(), orgID, pickup.StatusScheduled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, target.OrderIDs()).Return([]*order.Order{ord}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{newHolderID}).
			Return([]*pickup.Pickup{newHolder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionPickupCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOrderAlreadyClaimed)
	assert.Equal(t, pickup.StatusArchived, target.Status())
	pickupRepo.AssertNotCalled(t, "Update")
}
