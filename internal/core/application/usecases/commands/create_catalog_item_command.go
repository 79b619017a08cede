package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrCreateCatalogItemCommandIsNotConstructed = errors.New(
	"CreateCatalogItemCommand must be created via NewCreateCatalogItemCommand constructor",
)

// CreateCatalogItemCommand registers a purchasable item in the catalog.
type CreateCatalogItemCommand struct { //nolint:recvcheck //using for validation
	catalogItemID kernel.UUID
	description   string
	unitCost      kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateCatalogItemCommand creates a command to register a catalog item.
func NewCreateCatalogItemCommand(
	catalogItemID kernel.UUID,
	description string,
	unitCost kernel.Money,
) (CreateCatalogItemCommand, error) {
	cmd := CreateCatalogItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCatalogItemID(catalogItemID),
		cmd.setDescription(description),
		cmd.setUnitCost(unitCost),
	); err != nil {
		return CreateCatalogItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateCatalogItemCommandIsNotConstructed)
}

// CatalogItemID returns the catalog item identifier.
func (c CreateCatalogItemCommand) CatalogItemID() kernel.UUID {
	return c.catalogItemID
}

// Description returns the human readable item description.
func (c CreateCatalogItemCommand) Description() string {
	return c.description
}

// UnitCost returns the default unit cost of the item.
func (c CreateCatalogItemCommand) UnitCost() kernel.Money {
	return c.unitCost
}

func (c *CreateCatalogItemCommand) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return err
	}
	c.catalogItemID = catalogItemID
	return nil
}

func (c *CreateCatalogItemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateCatalogItemCommand) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	c.unitCost = unitCost
	return nil
}
