package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// CreatePurchaseOrderCommandHandler handles the business logic for opening
// purchase orders.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase
// order creation. Requires an OrderUoWFactory for transactional persistence.
func NewCreatePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order in the Requisition stage and persists it.
func (h CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := purchaseorder.NewPurchaseOrder(cmd.OrderID(), cmd.VendorRef(), cmd.WarehouseRef())
	if err != nil {
		return nil, err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
