package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// UnreceiveLineItemCommandHandler undoes a receipt and re-derives the
// order status in the same transaction.
type UnreceiveLineItemCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewUnreceiveLineItemCommandHandler creates a handler for receipt undo
// operations.
func NewUnreceiveLineItemCommandHandler(uowFactory SettlementUoWFactory) UnreceiveLineItemCommandHandler {
	return UnreceiveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resets the line item's received quantity to zero and persists the
// line item and the re-derived order row together.
func (h UnreceiveLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd UnreceiveLineItemCommand,
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

	if err = order.UnreceiveLineItem(cmd.LineItemID()); err != nil {
		return nil, err
	}

	item, err := order.LineItem(cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	if err = uow.LineItemStore().Upsert(ctx, item); err != nil {
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
