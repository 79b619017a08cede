package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// ClosePurchaseOrderCommandHandler finalizes a purchase order. Every line
// item is forced to fully received, so the items and the order row must
// commit together.
type ClosePurchaseOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewClosePurchaseOrderCommandHandler creates a handler for closing orders.
func NewClosePurchaseOrderCommandHandler(uowFactory SettlementUoWFactory) ClosePurchaseOrderCommandHandler {
	return ClosePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes the order, persists every (now fully received) line item
// and the order row in one transaction, and returns the closed aggregate.
// Closing an already closed order fails.
func (h ClosePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ClosePurchaseOrderCommand,
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

	orderRepo := uow.PurchaseOrderRepository()

	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.Close(); err != nil {
		return nil, err
	}

	for _, item := range order.LineItems() {
		if err = uow.LineItemStore().Upsert(ctx, item); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
