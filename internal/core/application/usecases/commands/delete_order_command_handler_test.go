package commands_test

import (
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := newStoredOrder(t, orgID)

	cmd, err := commands.NewDeleteOrderCommand(target.ID(), orgID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetActiveByOrder", ctx, orgID, target.ID()).Return([]*pickup.Pickup{}, nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("GetActiveByOrder", ctx, orgID, target.ID()).Return([]*returns.Return{}, nil).Once(),
		orderRepo.On("Delete", ctx, orgID, target.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_BlockedByActivePickup(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := newStoredOrder(t, orgID)

	holder, err := pickup.RestorePickup(
		kernel.NewUUID(), orgID, "Holder Run", kernel.NewUUID(),
		time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{target.ID()}, kernel.PriorityStandard, pickup.StatusScheduled, 1,
	)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteOrderCommand(target.ID(), orgID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetActiveByOrder", ctx, orgID, target.ID()).Return([]*pickup.Pickup{holder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderStillReferenced)
	orderRepo.AssertNotCalled(t, "Delete")
	uow.AssertNotCalled(t, "Commit")
}

func TestDeleteOrderCommandHandler_Handle_BlockedByActiveReturn(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	target := newStoredOrder(t, orgID)

	holder, err := returns.RestoreReturn(
		kernel.NewUUID(), orgID, "Damaged Goods Return", nil,
		time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		[]kernel.UUID{target.ID()}, kernel.PriorityStandard, returns.StatusScheduled, 1,
	)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteOrderCommand(target.ID(), orgID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pickupRepo := new(MockPickupRepository)
	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orgID, target.ID()).Return(target, nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("GetActiveByOrder", ctx, orgID, target.ID()).Return([]*pickup.Pickup{}, nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("GetActiveByOrder", ctx, orgID, target.ID()).Return([]*returns.Return{holder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderStillReferenced)
	orderRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(orderID, orgID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orgID, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
