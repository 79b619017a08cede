package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrClosePurchaseOrderCommandIsNotConstructed = errors.New(
	"ClosePurchaseOrderCommand must be created via NewClosePurchaseOrderCommand constructor",
)

// ClosePurchaseOrderCommand finalizes a purchase order. Closing receives all
// outstanding quantities in full and makes the order read-only.
type ClosePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClosePurchaseOrderCommand creates a command to close a purchase order.
func NewClosePurchaseOrderCommand(orderID kernel.UUID) (ClosePurchaseOrderCommand, error) {
	cmd := ClosePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ClosePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClosePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrClosePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c ClosePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ClosePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
