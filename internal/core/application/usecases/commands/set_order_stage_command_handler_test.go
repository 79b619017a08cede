package commands_test

import (
	"testing"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetOrderStageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)

	cmd, err := commands.NewSetOrderStageCommand(orderID, purchaseorder.Ordered)
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderStageCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, purchaseorder.Ordered, result.Status())
	uow.AssertExpectations(t)
}

func TestSetOrderStageCommandHandler_Handle_DerivedStatusRejected(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order, item := storedOrderWithLine(t, orderID, 10)
	require.NoError(t, order.ReceiveLineItem(item.ID(), 4))

	cmd, err := commands.NewSetOrderStageCommand(orderID, purchaseorder.Ordered)
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderStageCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestSetOrderStageCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)
	require.NoError(t, order.Close())

	cmd, err := commands.NewSetOrderStageCommand(orderID, purchaseorder.Ordered)
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderStageCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, purchaseorder.ErrOrderIsClosed)
	uow.AssertExpectations(t)
}

func TestSetOrderStageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetOrderStageCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewSetOrderStageCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
