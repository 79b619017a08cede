package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/domain/services"
	"fleetops/internal/pkg/guard"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery retrieves one purchase order with its line items
// and the computed settlement totals.
//
// Example:
//
//	query, err := NewGetPurchaseOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPurchaseOrderQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get purchase order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s, total %s\n",
//	    view.ID, view.Status, view.Totals.Total)
type GetPurchaseOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query for one purchase order.
func NewGetPurchaseOrderQuery(orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	query := GetPurchaseOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPurchaseOrderQueryIsNotConstructed if validation fails.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetPurchaseOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetPurchaseOrderLineItemResponse represents one line of the order view.
type GetPurchaseOrderLineItemResponse struct {
	ID               kernel.UUID
	CatalogItemRef   kernel.UUID
	QuantityOrdered  int
	QuantityReceived int
	UnitCost         kernel.Money
	LineTotal        kernel.Money
}

// GetPurchaseOrderQueryResponse represents a purchase order, its line items
// and the settlement totals derived from the current tax configuration.
type GetPurchaseOrderQueryResponse struct {
	ID           kernel.UUID
	VendorRef    kernel.UUID
	WarehouseRef kernel.UUID
	Status       purchaseorder.Status
	TaxMode      purchaseorder.TaxMode
	Tax1Rate     decimal.Decimal
	Tax2Rate     decimal.Decimal
	Freight      kernel.Money
	Version      int64
	LineItems    []GetPurchaseOrderLineItemResponse
	Totals       services.Totals
}
