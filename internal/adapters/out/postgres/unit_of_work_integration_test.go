package postgres_test

import (
	"context"
	"errors"
	"testing"

	postgres_adapter "fleetops/internal/adapters/out/postgres"
	"fleetops/internal/adapters/out/postgres/catalogitemrepo"
	"fleetops/internal/adapters/out/postgres/purchaseorderrepo"
	"fleetops/internal/core/domain/model/catalog"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/ports"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.LineItemDTO{},
		&catalogitemrepo.CatalogItemDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE purchase_orders, purchase_order_items, catalog_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.PurchaseOrderRepository(), "First instance should provide purchase order repository")
	suite.NotNil(uow1.LineItemStore(), "First instance should provide line-item store")
	suite.NotNil(uow1.CatalogItemRepository(), "First instance should provide catalog item repository")
	suite.NotNil(uow2.PurchaseOrderRepository(), "Second instance should provide purchase order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestPurchaseOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
	suite.Equal(purchaseorder.Requisition, retrievedOrder.Status())
}

// TestUnitOfWork_ReceivingWorkflow runs the complete receiving flow: the
// line-item write and the order-row write commit together, so the derived
// status is never observable out of sync with the received quantities.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReceivingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestPurchaseOrder(suite.T())
	item := addTestLineItem(suite.T(), testOrder, 10)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Receive part of the line item in a second unit of work
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = loaded.ReceiveLineItem(item.ID(), 4)
	suite.Require().NoError(err)

	loadedItem, err := loaded.LineItem(item.ID())
	suite.Require().NoError(err)

	err = uow.LineItemStore().Upsert(ctx, loadedItem)
	suite.Require().NoError(err)

	err = uow.PurchaseOrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the derived status and quantities landed together
	newUow := suite.factory.Create()
	retrieved, err := newUow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.ReceivedPartial, retrieved.Status())

	retrievedItem, err := retrieved.LineItem(item.ID())
	suite.Require().NoError(err)
	suite.Equal(4, retrievedItem.QuantityReceived())

	// Version advanced with the guarded write
	suite.Equal(loaded.Version(), retrieved.Version())
	suite.Greater(retrieved.Version(), testOrder.Version())
}

// TestUnitOfWork_ConcurrencyConflict verifies that the version-guarded
// order-row write rejects a stale aggregate.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrencyConflict() {
	ctx := context.Background()

	testOrder := createTestPurchaseOrder(suite.T())

	setupUow := suite.factory.Create()
	err := setupUow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two readers load the same snapshot
	first, err := suite.factory.Create().PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = first.ToggleStage(purchaseorder.Ordered)
	suite.Require().NoError(err)
	err = suite.factory.Create().PurchaseOrderRepository().Update(ctx, first)
	suite.Require().NoError(err)

	// The second writer holds a stale version
	err = second.ToggleStage(purchaseorder.Requisition)
	suite.Require().NoError(err)
	err = suite.factory.Create().PurchaseOrderRepository().Update(ctx, second)
	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrConcurrencyConflict), "Stale write should surface a concurrency conflict")

	// The first write is the one that stuck
	final, err := suite.factory.Create().PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.Ordered, final.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestPurchaseOrder(suite.T())
	testItem := createTestCatalogItem(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CatalogItemRepository().Add(ctx, testItem)
	suite.Require().NoError(err)

	// Both exist within the transaction
	_, err = uow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.CatalogItemRepository().Get(ctx, testItem.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither exists after rollback
	newUow := suite.factory.Create()

	_, err = newUow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Purchase order should not exist after rollback")

	_, err = newUow.CatalogItemRepository().Get(ctx, testItem.ID())
	suite.Require().Error(err, "Catalog item should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestPurchaseOrder(suite.T())
	order2 := createTestPurchaseOrder(suite.T())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.PurchaseOrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.PurchaseOrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction sees only its own changes
	_, err = uow1.PurchaseOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.PurchaseOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.PurchaseOrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.PurchaseOrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.PurchaseOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.PurchaseOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestPurchaseOrder(suite.T())

	// Add order without beginning transaction (should auto-commit)
	err := uow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_CloseWorkflow closes an order with outstanding quantities
// and verifies every line item lands fully received alongside the terminal
// status.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CloseWorkflow() {
	ctx := context.Background()

	testOrder := createTestPurchaseOrder(suite.T())
	addTestLineItem(suite.T(), testOrder, 10)
	addTestLineItem(suite.T(), testOrder, 3)

	setupUow := suite.factory.Create()
	err := setupUow.PurchaseOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = loaded.Close()
	suite.Require().NoError(err)

	for _, item := range loaded.LineItems() {
		err = uow.LineItemStore().Upsert(ctx, item)
		suite.Require().NoError(err)
	}

	err = uow.PurchaseOrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().PurchaseOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.Closed, retrieved.Status())
	for _, item := range retrieved.LineItems() {
		suite.Equal(item.QuantityOrdered(), item.QuantityReceived(),
			"Every line item should be fully received after close")
	}
}

// createTestPurchaseOrder creates a valid purchase order for testing purposes.
func createTestPurchaseOrder(t *testing.T) *purchaseorder.PurchaseOrder {
	t.Helper()
	testOrder, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	if err != nil {
		t.Fatalf("failed to create test purchase order: %v", err)
	}
	return testOrder
}

// createTestCatalogItem creates a valid catalog item for testing purposes.
func createTestCatalogItem(t *testing.T) *catalog.CatalogItem {
	t.Helper()
	cost, err := kernel.MoneyFromString("5.00")
	if err != nil {
		t.Fatalf("failed to create test money: %v", err)
	}
	item, err := catalog.NewCatalogItem(kernel.NewUUID(), "Test Item", cost)
	if err != nil {
		t.Fatalf("failed to create test catalog item: %v", err)
	}
	return item
}

// addTestLineItem attaches a new line item with the given ordered quantity.
func addTestLineItem(t *testing.T, order *purchaseorder.PurchaseOrder, quantity int) *purchaseorder.LineItem {
	t.Helper()
	cost, err := kernel.MoneyFromString("12.50")
	if err != nil {
		t.Fatalf("failed to create test money: %v", err)
	}
	item, err := purchaseorder.NewLineItem(kernel.NewUUID(), order.ID(), kernel.NewUUID(), quantity, cost)
	if err != nil {
		t.Fatalf("failed to create test line item: %v", err)
	}
	if err = order.UpsertLineItem(item); err != nil {
		t.Fatalf("failed to attach test line item: %v", err)
	}
	return item
}
