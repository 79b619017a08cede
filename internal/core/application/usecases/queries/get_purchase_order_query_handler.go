package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/domain/services"
	"fleetops/internal/pkg/errs"
)

// GetPurchaseOrderQueryHandler reads one purchase order from the database
// and computes its settlement totals. Totals are derived on read rather
// than stored, so they can never drift from the line items they summarize.
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for the purchase order
// view. Requires a GORM database connection for query execution.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// exists with the requested identifier.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	order, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	totals, err := services.NewTotalsCalculator().Calculate(order)
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	items := make([]GetPurchaseOrderLineItemResponse, 0, len(order.LineItems()))
	for _, item := range order.LineItems() {
		items = append(items, GetPurchaseOrderLineItemResponse{
			ID:               item.ID(),
			CatalogItemRef:   item.CatalogItemRef(),
			QuantityOrdered:  item.QuantityOrdered(),
			QuantityReceived: item.QuantityReceived(),
			UnitCost:         item.UnitCost(),
			LineTotal:        item.LineTotal(),
		})
	}

	return GetPurchaseOrderQueryResponse{
		ID:           order.ID(),
		VendorRef:    order.VendorRef(),
		WarehouseRef: order.WarehouseRef(),
		Status:       order.Status(),
		TaxMode:      order.TaxMode(),
		Tax1Rate:     order.Tax1Rate(),
		Tax2Rate:     order.Tax2Rate(),
		Freight:      order.Freight(),
		Version:      order.Version(),
		LineItems:    items,
		Totals:       totals,
	}, nil
}

func (h GetPurchaseOrderQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*purchaseorder.PurchaseOrder, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_ref,
			warehouse_ref,
			status,
			tax_mode,
			tax1_rate,
			tax2_rate,
			freight,
			version
		FROM purchase_orders
		WHERE id = ?
	`, orderID.String()).Row()

	var (
		id, vendorRef, warehouseRef uuid.UUID
		status, taxMode             int
		tax1Rate, tax2Rate, freight decimal.Decimal
		version                     int64
	)

	if err := row.Scan(
		&id,
		&vendorRef,
		&warehouseRef,
		&status,
		&taxMode,
		&tax1Rate,
		&tax2Rate,
		&freight,
		&version,
	); err != nil {
		return nil, errs.NewObjectNotFoundError("purchaseOrder", orderID)
	}

	items, err := h.loadLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderUUID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	vendorUUID, err := kernel.UUIDFromBytes(vendorRef[:])
	if err != nil {
		return nil, err
	}
	warehouseUUID, err := kernel.UUIDFromBytes(warehouseRef[:])
	if err != nil {
		return nil, err
	}
	freightMoney, err := kernel.NewMoney(freight)
	if err != nil {
		return nil, err
	}

	return purchaseorder.RestorePurchaseOrder(
		orderUUID,
		vendorUUID,
		warehouseUUID,
		purchaseorder.Status(status),
		purchaseorder.TaxMode(taxMode),
		tax1Rate,
		tax2Rate,
		freightMoney,
		version,
		items,
	)
}

func (h GetPurchaseOrderQueryHandler) loadLineItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*purchaseorder.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			catalog_item_ref,
			quantity_ordered,
			quantity_received,
			unit_cost
		FROM purchase_order_items
		WHERE purchase_order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*purchaseorder.LineItem, 0)

	for rows.Next() {
		var (
			id, catalogItemRef              uuid.UUID
			quantityOrdered, quantityRecved int
			unitCost                        decimal.Decimal
		)

		if err = rows.Scan(
			&id,
			&catalogItemRef,
			&quantityOrdered,
			&quantityRecved,
			&unitCost,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		catalogRef, refErr := kernel.UUIDFromBytes(catalogItemRef[:])
		if refErr != nil {
			return nil, refErr
		}
		cost, costErr := kernel.NewMoney(unitCost)
		if costErr != nil {
			return nil, costErr
		}

		item, itemErr := purchaseorder.RestoreLineItem(
			itemID,
			orderID,
			catalogRef,
			quantityOrdered,
			quantityRecved,
			cost,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
