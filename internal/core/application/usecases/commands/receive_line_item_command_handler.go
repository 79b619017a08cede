package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// ReceiveLineItemCommandHandler orchestrates the receiving mutation: the
// line-item write and the derived-status write commit in one transaction,
// so no reader can observe a fully received line on an order still marked
// Requisition or Ordered.
type ReceiveLineItemCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewReceiveLineItemCommandHandler creates a handler for receiving
// operations. Requires a SettlementUoWFactory for coordinating the
// line-item store and the purchase order repository.
func NewReceiveLineItemCommandHandler(uowFactory SettlementUoWFactory) ReceiveLineItemCommandHandler {
	return ReceiveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads a fresh aggregate, applies the receipt through the domain
// (which re-derives the status from the post-mutation line-item set), and
// persists the line item and the order row together. Returns the refreshed
// aggregate on success.
func (h ReceiveLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd ReceiveLineItemCommand,
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

	if err = order.ReceiveLineItem(cmd.LineItemID(), cmd.QuantityReceived()); err != nil {
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
