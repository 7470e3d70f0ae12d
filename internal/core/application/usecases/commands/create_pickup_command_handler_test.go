package commands_test

import (
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, orgID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), orgID, validOrderDetails(), kernel.PriorityStandard)
	require.NoError(t, err)
	return o
}

func newCreatePickupCommand(t *testing.T, orgID kernel.UUID, orderIDs ...kernel.UUID) commands.CreatePickupCommand {
	t.Helper()
	cmd, err := commands.NewCreatePickupCommand(
		kernel.NewUUID(), orgID,
		"Thursday Run",
		kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		orderIDs,
		kernel.PriorityStandard,
		pickup.StatusUnknown,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreatePickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	order1 := newStoredOrder(t, orgID)
	order2 := newStoredOrder(t, orgID)
	cmd := newCreatePickupCommand(t, orgID, order1.ID(), order2.ID())

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)
	publisher := new(MockEventPublisher)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).Return([]*order.Order{order1, order2}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Add", ctx, mock.AnythingOfType("*pickup.Pickup")).Return(nil).Once(),
		orderRepo.On("Update", ctx, order1).Return(nil).Once(),
		orderRepo.On("Update", ctx, order2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePickupCommandHandler(factory, quota, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, order1.IsClaimedBy(cmd.PickupID()))
	assert.True(t, order2.IsClaimedBy(cmd.PickupID()))

	addCall := pickupRepo.Calls[0]
	created := addCall.Arguments[1].(*pickup.Pickup)
	assert.True(t, created.HasOrder(order1.ID()))
	assert.True(t, created.HasOrder(order2.ID()))
	assert.Equal(t, pickup.StatusScheduled, created.Status())

	pickupRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePickupCommandHandler_Handle_ExplicitInitialStatus(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	order1 := newStoredOrder(t, orgID)
	cmd, err := commands.NewCreatePickupCommand(
		kernel.NewUUID(), orgID,
		"Same-Day Run",
		kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{order1.ID()},
		kernel.PriorityUrgent,
		pickup.StatusInProgress,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)
	publisher := new(MockEventPublisher)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).Return([]*order.Order{order1}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Add", ctx, mock.AnythingOfType("*pickup.Pickup")).Return(nil).Once(),
		orderRepo.On("Update", ctx, order1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePickupCommandHandler(factory, quota, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	created := pickupRepo.Calls[0].Arguments[1].(*pickup.Pickup)
	assert.Equal(t, pickup.StatusInProgress, created.Status())
}

func TestCreatePickupCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	order1 := newStoredOrder(t, orgID)
	missingID := kernel.NewUUID()
	cmd := newCreatePickupCommand(t, orgID, order1.ID(), missingID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).Return([]*order.Order{order1}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePickupCommandHandler(factory, quota, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreatePickupCommandHandler_Handle_OrderAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	holderID := kernel.NewUUID()
	claimed, err := order.RestoreOrder(
		kernel.NewUUID(), orgID, validOrderDetails(),
		order.StatusPending, kernel.PriorityStandard, &holderID, 3,
	)
	require.NoError(t, err)

	holder, err := pickup.RestorePickup(
		holderID, orgID, "Holder Run", kernel.NewUUID(),
		time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{claimed.ID()}, kernel.PriorityStandard, pickup.StatusScheduled, 2,
	)
	require.NoError(t, err)

	cmd := newCreatePickupCommand(t, orgID, claimed.ID())

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).Return([]*order.Order{claimed}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{holderID}).Return([]*pickup.Pickup{holder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePickupCommandHandler(factory, quota, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOrderAlreadyClaimed)
	assert.True(t, claimed.IsClaimedBy(holderID), "claim should remain with the holder")
	uow.AssertNotCalled(t, "Commit")
	pickupRepo.AssertNotCalled(t, "Add")
}

func TestCreatePickupCommandHandler_Handle_ArchivedClaimIsReleased(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	holderID := kernel.NewUUID()
	claimed, err := order.RestoreOrder(
		kernel.NewUUID(), orgID, validOrderDetails(),
		order.StatusPending, kernel.PriorityStandard, &holderID, 3,
	)
	require.NoError(t, err)

	holder, err := pickup.RestorePickup(
		holderID, orgID, "Old Run", kernel.NewUUID(),
		time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{claimed.ID()}, kernel.PriorityStandard, pickup.StatusArchived, 4,
	)
	require.NoError(t, err)

	cmd := newCreatePickupCommand(t, orgID, claimed.ID())

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)
	publisher := new(MockEventPublisher)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByIDs", ctx, orgID, cmd.OrderIDs()).Return([]*order.Order{claimed}, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetByIDs", ctx, orgID, []kernel.UUID{holderID}).Return([]*pickup.Pickup{holder}, nil).Once(),
		pickupRepo.On("Add", ctx, mock.AnythingOfType("*pickup.Pickup")).Return(nil).Once(),
		orderRepo.On("Update", ctx, claimed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePickupCommandHandler(factory, quota, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, claimed.IsClaimedBy(cmd.PickupID()))
}

func TestCreatePickupCommandHandler_Handle_QuotaDenied(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	cmd := newCreatePickupCommand(t, orgID, kernel.NewUUID())

	quota := new(MockQuotaChecker)
	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreatePickup).
		Return(ports.QuotaDecision{Allowed: false, Reason: "pickup limit reached (20)"}, nil).Once()

	factory := new(MockPickupUoWFactory)
	handler := commands.NewCreatePickupCommandHandler(factory, quota, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrQuotaExceeded)
	factory.AssertNotCalled(t, "Create")
}
