package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
)

// GetOpenPurchaseOrdersQueryHandler retrieves non-closed purchase orders
// from the database for receiving dashboards.
type GetOpenPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPurchaseOrdersQueryHandler creates a handler for open order
// queries. Requires a GORM database connection for query execution.
func NewGetOpenPurchaseOrdersQueryHandler(db *gorm.DB) GetOpenPurchaseOrdersQueryHandler {
	return GetOpenPurchaseOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open purchase orders.
// Results are sorted by order ID for consistent output.
func (h GetOpenPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPurchaseOrdersQuery,
) ([]GetOpenPurchaseOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenPurchaseOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_ref,
			status
		FROM purchase_orders
		WHERE status != ?
		ORDER BY id
	`, purchaseorder.Closed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenPurchaseOrdersQueryResponse
		var id, vendorRef uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&vendorRef,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		vendorID, vendorErr := kernel.UUIDFromBytes(vendorRef[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		orderResp.VendorRef = vendorID

		orderResp.Status = purchaseorder.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
