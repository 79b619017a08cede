package commands

import (
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrAddOrUpdateLineItemCommandIsNotConstructed = errors.New(
	"AddOrUpdateLineItemCommand must be created via NewAddOrUpdateLineItemCommand constructor",
)

// AddOrUpdateLineItemCommand adds a line item to a purchase order or
// updates an existing one.
//
// A nil lineItemID requests creation: the handler mints a new identifier
// and, when no unit cost is supplied, prices the line from the referenced
// catalog item. A non-nil lineItemID updates the ordered quantity and,
// when supplied, the unit cost of the existing line.
type AddOrUpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	lineItemID      *kernel.UUID
	catalogItemRef  kernel.UUID
	quantityOrdered int
	unitCost        *kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrUpdateLineItemCommand creates a command to upsert a line item.
// lineItemID and unitCost are optional; the ordered quantity must be
// non-negative.
func NewAddOrUpdateLineItemCommand(
	orderID kernel.UUID,
	lineItemID *kernel.UUID,
	catalogItemRef kernel.UUID,
	quantityOrdered int,
	unitCost *kernel.Money,
) (AddOrUpdateLineItemCommand, error) {
	cmd := AddOrUpdateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setCatalogItemRef(catalogItemRef),
		cmd.setQuantityOrdered(quantityOrdered),
		cmd.setUnitCost(unitCost),
	); err != nil {
		return AddOrUpdateLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrUpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrUpdateLineItemCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c AddOrUpdateLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the identifier of the line item to update, or nil
// when a new line item should be created.
func (c AddOrUpdateLineItemCommand) LineItemID() *kernel.UUID {
	return c.lineItemID
}

// CatalogItemRef returns the referenced catalog item.
func (c AddOrUpdateLineItemCommand) CatalogItemRef() kernel.UUID {
	return c.catalogItemRef
}

// QuantityOrdered returns the committed quantity.
func (c AddOrUpdateLineItemCommand) QuantityOrdered() int {
	return c.quantityOrdered
}

// UnitCost returns the explicit unit cost, or nil when the catalog price
// should be used for new line items (or kept unchanged for updates).
func (c AddOrUpdateLineItemCommand) UnitCost() *kernel.Money {
	return c.unitCost
}

func (c *AddOrUpdateLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrUpdateLineItemCommand) setLineItemID(lineItemID *kernel.UUID) error {
	if lineItemID != nil {
		if err := lineItemID.Validate(); err != nil {
			return err
		}
	}
	c.lineItemID = lineItemID
	return nil
}

func (c *AddOrUpdateLineItemCommand) setCatalogItemRef(catalogItemRef kernel.UUID) error {
	if err := catalogItemRef.Validate(); err != nil {
		return err
	}
	c.catalogItemRef = catalogItemRef
	return nil
}

func (c *AddOrUpdateLineItemCommand) setQuantityOrdered(quantityOrdered int) error {
	if quantityOrdered < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered is invalid",
			fmt.Errorf("%d is negative", quantityOrdered),
		)
	}
	c.quantityOrdered = quantityOrdered
	return nil
}

func (c *AddOrUpdateLineItemCommand) setUnitCost(unitCost *kernel.Money) error {
	if unitCost != nil {
		if err := unitCost.Validate(); err != nil {
			return err
		}
	}
	c.unitCost = unitCost
	return nil
}
