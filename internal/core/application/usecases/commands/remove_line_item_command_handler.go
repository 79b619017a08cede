package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// RemoveLineItemCommandHandler deletes a line item and refreshes the
// derived order status in one transaction.
type RemoveLineItemCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for line-item removal.
func NewRemoveLineItemCommandHandler(uowFactory SettlementUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line item from the aggregate (re-deriving the status
// from the remaining items), deletes the row, and persists the order.
func (h RemoveLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveLineItemCommand,
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

	if err = order.RemoveLineItem(cmd.LineItemID()); err != nil {
		return nil, err
	}

	if err = uow.LineItemStore().Delete(ctx, cmd.LineItemID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
