package commands_test

import (
	"context"
	"testing"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/catalog"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetAllOpen(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchaseorder.PurchaseOrder), args.Error(1)
}

type MockLineItemStore struct{ mock.Mock }

func (m *MockLineItemStore) Upsert(ctx context.Context, item *purchaseorder.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemStore) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLineItemStore) ListByOrder(ctx context.Context, purchaseOrderID kernel.UUID) ([]*purchaseorder.LineItem, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchaseorder.LineItem), args.Error(1)
}

type MockCatalogItemRepository struct{ mock.Mock }

func (m *MockCatalogItemRepository) Add(ctx context.Context, aggregate *catalog.CatalogItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogItemRepository) Update(ctx context.Context, aggregate *catalog.CatalogItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CatalogItem), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSettlementUoW struct{ mock.Mock }

func (m *MockSettlementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockSettlementUoW) LineItemStore() ports.LineItemStore {
	args := m.Called()
	return args.Get(0).(ports.LineItemStore)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) CatalogItemRepository() ports.CatalogItemRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogItemRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) LineItemStore() ports.LineItemStore {
	args := m.Called()
	return args.Get(0).(ports.LineItemStore)
}

func (m *MockUoW) CatalogItemRepository() ports.CatalogItemRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogItemRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func storedOrder(t *testing.T, orderID kernel.UUID) *purchaseorder.PurchaseOrder {
	t.Helper()
	order, err := purchaseorder.NewPurchaseOrder(orderID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return order
}

func storedOrderWithLine(t *testing.T, orderID kernel.UUID, quantityOrdered int) (*purchaseorder.PurchaseOrder, *purchaseorder.LineItem) {
	t.Helper()
	order := storedOrder(t, orderID)
	item, err := purchaseorder.NewLineItem(
		kernel.NewUUID(), orderID, kernel.NewUUID(), quantityOrdered, mustMoney(t, "10.00"))
	require.NoError(t, err)
	require.NoError(t, order.UpsertLineItem(item))
	return order, item
}
