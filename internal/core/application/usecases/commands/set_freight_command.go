package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrSetFreightCommandIsNotConstructed = errors.New(
	"SetFreightCommand must be created via NewSetFreightCommand constructor",
)

// SetFreightCommand changes the freight charge of a purchase order.
type SetFreightCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	freight kernel.Money

	guard guard.ConstructorGuard
}

// NewSetFreightCommand creates a command to change the freight charge.
func NewSetFreightCommand(orderID kernel.UUID, freight kernel.Money) (SetFreightCommand, error) {
	cmd := SetFreightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFreight(freight),
	); err != nil {
		return SetFreightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFreightCommand) Validate() error {
	return c.guard.Validate(ErrSetFreightCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c SetFreightCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Freight returns the new freight charge.
func (c SetFreightCommand) Freight() kernel.Money {
	return c.freight
}

func (c *SetFreightCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetFreightCommand) setFreight(freight kernel.Money) error {
	if err := freight.Validate(); err != nil {
		return err
	}
	c.freight = freight
	return nil
}
