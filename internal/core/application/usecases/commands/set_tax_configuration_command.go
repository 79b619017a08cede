package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/guard"
)

var ErrSetTaxConfigurationCommandIsNotConstructed = errors.New(
	"SetTaxConfigurationCommand must be created via NewSetTaxConfigurationCommand constructor",
)

// SetTaxConfigurationCommand changes the tax mode and/or the tax rates of a
// purchase order. Nil fields are left untouched, so callers can adjust a
// single rate without restating the whole configuration.
type SetTaxConfigurationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	taxMode  *purchaseorder.TaxMode
	tax1Rate *decimal.Decimal
	tax2Rate *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSetTaxConfigurationCommand creates a command to change tax settings.
// Any of taxMode, tax1Rate and tax2Rate may be nil to keep the current value.
func NewSetTaxConfigurationCommand(
	orderID kernel.UUID,
	taxMode *purchaseorder.TaxMode,
	tax1Rate *decimal.Decimal,
	tax2Rate *decimal.Decimal,
) (SetTaxConfigurationCommand, error) {
	cmd := SetTaxConfigurationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTaxMode(taxMode),
	); err != nil {
		return SetTaxConfigurationCommand{}, err
	}

	cmd.tax1Rate = tax1Rate
	cmd.tax2Rate = tax2Rate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTaxConfigurationCommand) Validate() error {
	return c.guard.Validate(ErrSetTaxConfigurationCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c SetTaxConfigurationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TaxMode returns the new tax mode, or nil to keep the current one.
func (c SetTaxConfigurationCommand) TaxMode() *purchaseorder.TaxMode {
	return c.taxMode
}

// Tax1Rate returns the new primary tax rate, or nil to keep the current one.
func (c SetTaxConfigurationCommand) Tax1Rate() *decimal.Decimal {
	return c.tax1Rate
}

// Tax2Rate returns the new secondary tax rate, or nil to keep the current one.
func (c SetTaxConfigurationCommand) Tax2Rate() *decimal.Decimal {
	return c.tax2Rate
}

func (c *SetTaxConfigurationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetTaxConfigurationCommand) setTaxMode(taxMode *purchaseorder.TaxMode) error {
	if taxMode == nil {
		return nil
	}
	if err := taxMode.Validate(); err != nil {
		return err
	}
	c.taxMode = taxMode
	return nil
}
