package commands

import (
	"context"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
)

// AddOrUpdateLineItemCommandHandler upserts a line item and re-derives the
// order status in one transaction. New line items are priced from the
// catalog when the caller supplies no unit cost, which is why this handler
// needs the cross-aggregate unit of work.
type AddOrUpdateLineItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrUpdateLineItemCommandHandler creates a handler for line-item
// upsert operations.
func NewAddOrUpdateLineItemCommandHandler(uowFactory UoWFactory) AddOrUpdateLineItemCommandHandler {
	return AddOrUpdateLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the new or updated line item, applies it through the
// aggregate (re-deriving the status: a Received order gaining an
// unreceived line drops back to ReceivedPartial), and persists line item
// and order row together.
func (h AddOrUpdateLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddOrUpdateLineItemCommand,
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

	item, err := h.buildLineItem(ctx, uow, order, cmd)
	if err != nil {
		return nil, err
	}

	if err = order.UpsertLineItem(item); err != nil {
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

// buildLineItem resolves the target line item for the command: a fresh
// entity priced from the catalog for creations, or a rebuilt entity
// preserving the received quantity for updates.
func (h AddOrUpdateLineItemCommandHandler) buildLineItem(
	ctx context.Context,
	uow UoW,
	order *purchaseorder.PurchaseOrder,
	cmd AddOrUpdateLineItemCommand,
) (*purchaseorder.LineItem, error) {
	if cmd.LineItemID() == nil {
		unitCost, err := h.resolveUnitCost(ctx, uow, cmd)
		if err != nil {
			return nil, err
		}
		return purchaseorder.NewLineItem(
			kernel.NewUUID(),
			order.ID(),
			cmd.CatalogItemRef(),
			cmd.QuantityOrdered(),
			unitCost,
		)
	}

	existing, err := order.LineItem(*cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	unitCost := existing.UnitCost()
	if cmd.UnitCost() != nil {
		unitCost = *cmd.UnitCost()
	}

	return purchaseorder.RestoreLineItem(
		existing.ID(),
		order.ID(),
		cmd.CatalogItemRef(),
		cmd.QuantityOrdered(),
		existing.QuantityReceived(),
		unitCost,
	)
}

// resolveUnitCost returns the explicit unit cost when supplied, otherwise
// the referenced catalog item's default price.
func (h AddOrUpdateLineItemCommandHandler) resolveUnitCost(
	ctx context.Context,
	uow UoW,
	cmd AddOrUpdateLineItemCommand,
) (kernel.Money, error) {
	if cmd.UnitCost() != nil {
		return *cmd.UnitCost(), nil
	}

	catalogItem, err := uow.CatalogItemRepository().Get(ctx, cmd.CatalogItemRef())
	if err != nil {
		return kernel.Money{}, err
	}

	return catalogItem.UnitCost(), nil
}
