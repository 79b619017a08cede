package commands_test

import (
	"testing"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order, item := storedOrderWithLine(t, orderID, 10)

	cmd, err := commands.NewRemoveLineItemCommand(orderID, item.ID())
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	store := new(MockLineItemStore)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("LineItemStore").Return(store).Once(),
		store.On("Delete", mock.Anything, item.ID()).Return(nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveLineItemCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.LineItems())
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveLineItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RemoveLineItemCommand{} // not constructed properly

	factory := new(MockSettlementUoWFactory)
	h := commands.NewRemoveLineItemCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRemoveLineItemCommandHandler_Handle_LineItemNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)

	cmd, err := commands.NewRemoveLineItemCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRemoveLineItemCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order, item := storedOrderWithLine(t, orderID, 10)
	require.NoError(t, order.Close())

	cmd, err := commands.NewRemoveLineItemCommand(orderID, item.ID())
	require.NoError(t, err)

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, purchaseorder.ErrOrderIsClosed)
	uow.AssertExpectations(t)
}
