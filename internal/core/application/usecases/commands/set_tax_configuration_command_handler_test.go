package commands_test

import (
	"testing"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetTaxConfigurationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)
	taxMode := purchaseorder.TaxBoth
	tax1 := decimal.RequireFromString("10")
	tax2 := decimal.RequireFromString("5")

	cmd, err := commands.NewSetTaxConfigurationCommand(orderID, &taxMode, &tax1, &tax2)
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

	h := commands.NewSetTaxConfigurationCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, purchaseorder.TaxBoth, result.TaxMode())
	assert.True(t, result.Tax1Rate().Equal(tax1))
	assert.True(t, result.Tax2Rate().Equal(tax2))
	uow.AssertExpectations(t)
}

func TestSetTaxConfigurationCommandHandler_Handle_PartialChange(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)
	require.NoError(t, order.ChangeTaxMode(purchaseorder.Tax1))
	require.NoError(t, order.ChangeTax1Rate(decimal.RequireFromString("7")))
	tax2 := decimal.RequireFromString("3")

	cmd, err := commands.NewSetTaxConfigurationCommand(orderID, nil, nil, &tax2)
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

	h := commands.NewSetTaxConfigurationCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, purchaseorder.Tax1, result.TaxMode(), "nil tax mode keeps the current one")
	assert.True(t, result.Tax1Rate().Equal(decimal.RequireFromString("7")))
	assert.True(t, result.Tax2Rate().Equal(tax2))
	uow.AssertExpectations(t)
}

func TestSetTaxConfigurationCommandHandler_Handle_RateOutOfRange(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)
	tax1 := decimal.RequireFromString("101")

	cmd, err := commands.NewSetTaxConfigurationCommand(orderID, nil, &tax1, nil)
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

	h := commands.NewSetTaxConfigurationCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertExpectations(t)
}

func TestSetTaxConfigurationCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	order := storedOrder(t, orderID)
	require.NoError(t, order.Close())
	taxMode := purchaseorder.Tax1

	cmd, err := commands.NewSetTaxConfigurationCommand(orderID, &taxMode, nil, nil)
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

	h := commands.NewSetTaxConfigurationCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, purchaseorder.ErrOrderIsClosed)
	uow.AssertExpectations(t)
}

func TestSetTaxConfigurationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetTaxConfigurationCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewSetTaxConfigurationCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
