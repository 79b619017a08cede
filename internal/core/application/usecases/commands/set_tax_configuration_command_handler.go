package commands

import (
	"context"

	"fleetops/internal/core/domain/model/purchaseorder"
)

// SetTaxConfigurationCommandHandler applies tax mode and rate changes to an
// open purchase order.
type SetTaxConfigurationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetTaxConfigurationCommandHandler creates a handler for tax changes.
func NewSetTaxConfigurationCommandHandler(uowFactory OrderUoWFactory) SetTaxConfigurationCommandHandler {
	return SetTaxConfigurationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested tax changes through the domain and persists
// the order row. Closed orders reject the mutation before any write happens.
func (h SetTaxConfigurationCommandHandler) Handle(
	ctx context.Context,
	cmd SetTaxConfigurationCommand,
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

	if taxMode := cmd.TaxMode(); taxMode != nil {
		if err = order.ChangeTaxMode(*taxMode); err != nil {
			return nil, err
		}
	}

	if rate := cmd.Tax1Rate(); rate != nil {
		if err = order.ChangeTax1Rate(*rate); err != nil {
			return nil, err
		}
	}

	if rate := cmd.Tax2Rate(); rate != nil {
		if err = order.ChangeTax2Rate(*rate); err != nil {
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
