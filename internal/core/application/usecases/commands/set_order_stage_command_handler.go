package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// SetOrderStageCommandHandler flips a purchase order between the manual
// stages Requisition and Ordered.
type SetOrderStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStageCommandHandler creates a handler for stage changes.
func NewSetOrderStageCommandHandler(uowFactory OrderUoWFactory) SetOrderStageCommandHandler {
	return SetOrderStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to the requested stage and persists the order row.
// The domain rejects targets that are not manual stages and orders whose
// current status is derived from receipts or already terminal.
func (h SetOrderStageCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderStageCommand,
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

	if err = order.ToggleStage(cmd.Stage()); err != nil {
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
