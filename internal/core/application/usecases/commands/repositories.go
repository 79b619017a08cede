// Package commands contains the settlement engine's write operations.
// Implements the Command pattern for the CQRS architecture: every command
// validates its construction, opens one unit of work, reads a fresh
// aggregate snapshot, applies the mutation through the domain model, and
// commits the line-item writes and the order-row write together. The
// atomic commit is what keeps received quantities and the derived order
// status consistent for every reader.
package commands

import (
	"context"

	"fleetops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PurchaseOrderRepoFactory provides access to the purchase order
	// repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// LineItemStoreFactory provides access to the line-item store within
	// a transaction.
	LineItemStoreFactory interface {
		LineItemStore() ports.LineItemStore
	}

	// CatalogItemRepoFactory provides access to the catalog item
	// repository within a transaction.
	CatalogItemRepoFactory interface {
		CatalogItemRepository() ports.CatalogItemRepository
	}

	// OrderUoW manages transactions for commands touching only the order row.
	OrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW manages transactions for commands that mutate line
	// items and the order row together.
	SettlementUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		LineItemStoreFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogItemRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across all repositories. Used by commands
	// that price line items from the catalog while mutating an order.
	UoW interface {
		TxManager
		PurchaseOrderRepoFactory
		LineItemStoreFactory
		CatalogItemRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
