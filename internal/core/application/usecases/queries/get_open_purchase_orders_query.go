package queries

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/guard"
)

var ErrGetOpenPurchaseOrdersQueryIsNotConstructed = errors.New(
	"GetOpenPurchaseOrdersQuery must be created via NewGetOpenPurchaseOrdersQuery constructor",
)

// GetOpenPurchaseOrdersQuery retrieves all purchase orders that are not yet
// closed. Returns orders in any open status for receiving dashboards.
//
// Example:
//
//	query := NewGetOpenPurchaseOrdersQuery()
//	handler := NewGetOpenPurchaseOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("Found %d open orders\n", len(orders))
type GetOpenPurchaseOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenPurchaseOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-closed orders.
func NewGetOpenPurchaseOrdersQuery() GetOpenPurchaseOrdersQuery {
	return GetOpenPurchaseOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenPurchaseOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPurchaseOrdersQueryIsNotConstructed)
}

// GetOpenPurchaseOrdersQueryResponse represents one open purchase order in
// the listing.
type GetOpenPurchaseOrdersQueryResponse struct {
	ID        kernel.UUID
	VendorRef kernel.UUID
	Status    purchaseorder.Status
}
