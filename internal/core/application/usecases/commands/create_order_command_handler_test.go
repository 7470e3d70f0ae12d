package commands_test

import (
	"errors"
	"testing"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orgID, validOrderDetails(), kernel.PriorityStandard)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)
	publisher := new(MockEventPublisher)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreateOrder).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.DomainEvent")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, quota, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	quota.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_QuotaDenied(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orgID, validOrderDetails(), kernel.PriorityStandard)
	require.NoError(t, err)

	quota := new(MockQuotaChecker)
	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreateOrder).
		Return(ports.QuotaDecision{Allowed: false, Reason: "order limit reached (50)"}, nil).Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, quota, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrQuotaExceeded)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_QuotaCheckError(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orgID, validOrderDetails(), kernel.PriorityStandard)
	require.NoError(t, err)

	quota := new(MockQuotaChecker)
	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreateOrder).
		Return(ports.QuotaDecision{}, errors.New("usage query failed")).Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, quota, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "usage query failed")
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orgID, validOrderDetails(), kernel.PriorityStandard)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	quota := new(MockQuotaChecker)
	publisher := new(MockEventPublisher)

	quota.On("CheckUsage", ctx, orgID, ports.QuotaActionCreateOrder).
		Return(ports.QuotaDecision{Allowed: true}, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, quota, publisher)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	publisher.AssertNotCalled(t, "Publish")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateOrderCommand

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, new(MockQuotaChecker), new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
