package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every settlement
// command runs inside exactly one unit of work: it reads a fresh aggregate
// snapshot, applies the mutation, and commits the line-item writes and the
// order-row write together. Client code must explicitly manage the
// transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PurchaseOrderRepository returns a repository bound to the current transaction.
	PurchaseOrderRepository() PurchaseOrderRepository

	// LineItemStore returns a line-item store bound to the current transaction.
	LineItemStore() LineItemStore

	// CatalogItemRepository returns a repository bound to the current transaction.
	CatalogItemRepository() CatalogItemRepository
}
