package commands

import (
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrReceiveLineItemCommandIsNotConstructed = errors.New(
	"ReceiveLineItemCommand must be created via NewReceiveLineItemCommand constructor",
)

// ReceiveLineItemCommand records the received quantity of one line item.
// The quantity is the new absolute received count, not a delta; receiving
// more than the ordered quantity is rejected by the domain before any
// state change.
type ReceiveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	lineItemID       kernel.UUID
	quantityReceived int

	guard guard.ConstructorGuard
}

// NewReceiveLineItemCommand creates a command to record a receipt.
// The received quantity must be non-negative; the upper bound is checked
// against the ordered quantity by the aggregate.
func NewReceiveLineItemCommand(orderID, lineItemID kernel.UUID, quantityReceived int) (ReceiveLineItemCommand, error) {
	cmd := ReceiveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setQuantityReceived(quantityReceived),
	); err != nil {
		return ReceiveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrReceiveLineItemCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c ReceiveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the line item identifier.
func (c ReceiveLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// QuantityReceived returns the new absolute received quantity.
func (c ReceiveLineItemCommand) QuantityReceived() int {
	return c.quantityReceived
}

func (c *ReceiveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReceiveLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}
	c.lineItemID = lineItemID
	return nil
}

func (c *ReceiveLineItemCommand) setQuantityReceived(quantityReceived int) error {
	if quantityReceived < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityReceived is invalid",
			fmt.Errorf("%d is negative", quantityReceived),
		)
	}
	c.quantityReceived = quantityReceived
	return nil
}
