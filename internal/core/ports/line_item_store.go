package ports

import (
	"context"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
)

// LineItemStore defines row-level persistence for purchase-order line
// items. Handlers mutate line items through the aggregate and then persist
// the affected rows here, inside the same unit of work that writes the
// order row; the two writes commit together or not at all.
type LineItemStore interface {
	// Upsert persists a line item, inserting or updating by id. Repeated
	// calls with an identical item are idempotent.
	Upsert(ctx context.Context, item *purchaseorder.LineItem) error

	// Delete removes a line item by id. Returns
	// errs.ErrObjectNotFound when no such row exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByOrder retrieves the line items of one purchase order in
	// insertion order.
	ListByOrder(ctx context.Context, purchaseOrderID kernel.UUID) ([]*purchaseorder.LineItem, error)
}
