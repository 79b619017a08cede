package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/guard"
)

var ErrSetOrderStageCommandIsNotConstructed = errors.New(
	"SetOrderStageCommand must be created via NewSetOrderStageCommand constructor",
)

// SetOrderStageCommand moves a purchase order between the manual stages
// Requisition and Ordered. Derived statuses cannot be requested directly.
type SetOrderStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStageCommand creates a command to change the manual stage.
// stage must be Requisition or Ordered.
func NewSetOrderStageCommand(orderID kernel.UUID, stage purchaseorder.Status) (SetOrderStageCommand, error) {
	cmd := SetOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stage),
	); err != nil {
		return SetOrderStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStageCommandIsNotConstructed)
}

// OrderID returns the purchase order identifier.
func (c SetOrderStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns the requested manual stage.
func (c SetOrderStageCommand) Stage() purchaseorder.Status {
	return c.stage
}

func (c *SetOrderStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderStageCommand) setStage(stage purchaseorder.Status) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	c.stage = stage
	return nil
}
