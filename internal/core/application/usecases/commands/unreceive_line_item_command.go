package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrUnreceiveLineItemCommandIsNotConstructed = errors.New(
	"UnreceiveLineItemCommand must be created via NewUnreceiveLineItemCommand constructor",
)

// UnreceiveLineItemCommand resets one line item's received quantity to
// zero, for example after a receipt was booked against the wrong line.
type UnreceiveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnreceiveLineItemCommand creates a command to undo a receipt.
func NewUnreceiveLineItemCommand(orderID, lineItemID kernel.UUID) (UnreceiveLineItemCommand, error) {
	cmd := UnreceiveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return UnreceiveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnreceiveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUnreceiveLineItemCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c UnreceiveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the line item identifier.
func (c UnreceiveLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c *UnreceiveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UnreceiveLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}
	c.lineItemID = lineItemID
	return nil
}
