package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// SetFreightCommandHandler applies a freight change to an open purchase order.
type SetFreightCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetFreightCommandHandler creates a handler for freight changes.
func NewSetFreightCommandHandler(uowFactory OrderUoWFactory) SetFreightCommandHandler {
	return SetFreightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the freight charge and persists the order row.
func (h SetFreightCommandHandler) Handle(
	ctx context.Context,
	cmd SetFreightCommand,
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

	if err = order.ChangeFreight(cmd.Freight()); err != nil {
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
