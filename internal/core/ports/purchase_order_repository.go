package ports

import (
	"context"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase
// order aggregates.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order aggregate, including any line
	// items it already carries.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists the order row (status, tax configuration, freight)
	// of an existing aggregate. The write is guarded by the aggregate's
	// loaded version: a concurrent writer having bumped the version first
	// surfaces errs.ErrConcurrencyConflict. Line items are persisted
	// through LineItemStore, inside the same unit of work.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves a purchase order aggregate with its line items.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// GetAllOpen retrieves every order that has not reached the terminal
	// Closed status.
	GetAllOpen(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error)
}
