package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to open a new purchase
// order for a vendor and destination warehouse. The order starts in the
// Requisition stage with no tax applied and zero freight.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(kernel.NewUUID(), vendorRef, warehouseRef)
//	if err != nil {
//	    return err
//	}
//	order, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorRef    kernel.UUID
	warehouseRef kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to open a purchase order.
// All three identifiers must be valid UUIDs.
func NewCreatePurchaseOrderCommand(orderID, vendorRef, warehouseRef kernel.UUID) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorRef(vendorRef),
		cmd.setWarehouseRef(warehouseRef),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new purchase order.
func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorRef returns the opaque vendor reference.
func (c CreatePurchaseOrderCommand) VendorRef() kernel.UUID {
	return c.vendorRef
}

// WarehouseRef returns the opaque warehouse reference.
func (c CreatePurchaseOrderCommand) WarehouseRef() kernel.UUID {
	return c.warehouseRef
}

func (c *CreatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setVendorRef(vendorRef kernel.UUID) error {
	if err := vendorRef.Validate(); err != nil {
		return err
	}
	c.vendorRef = vendorRef
	return nil
}

func (c *CreatePurchaseOrderCommand) setWarehouseRef(warehouseRef kernel.UUID) error {
	if err := warehouseRef.Validate(); err != nil {
		return err
	}
	c.warehouseRef = warehouseRef
	return nil
}
