// Package catalog provides the CatalogItem aggregate: the priced item
// master record that purchase-order line items reference. The settlement
// engine treats most of the item master as an external collaborator; only
// the identifier, description, and unit cost needed to price new line
// items live here.
package catalog

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
)

// ErrCatalogItemIsNotConstructed indicates a CatalogItem that was not
// created through NewCatalogItem or RestoreCatalogItem.
var ErrCatalogItemIsNotConstructed = errors.New(
	"CatalogItem must be created via NewCatalogItem or RestoreCatalogItem constructor",
)

// CatalogItem is an orderable item with its default unit cost.
type CatalogItem struct {
	id          kernel.UUID
	description string
	unitCost    kernel.Money

	guard kernel.ConstructorGuard
}

// NewCatalogItem creates a catalog item with a description and default
// unit cost.
func NewCatalogItem(id kernel.UUID, description string, unitCost kernel.Money) (*CatalogItem, error) {
	item := &CatalogItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setDescription(description),
		item.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreCatalogItem reconstructs a catalog item from persistent storage.
func RestoreCatalogItem(id kernel.UUID, description string, unitCost kernel.Money) (*CatalogItem, error) {
	return NewCatalogItem(id, description, unitCost)
}

// IsEqual compares two catalog items by identity.
func (c *CatalogItem) IsEqual(other *CatalogItem) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the catalog item's unique identifier.
func (c *CatalogItem) ID() kernel.UUID {
	return c.id
}

// Description returns the human-readable item description.
func (c *CatalogItem) Description() string {
	return c.description
}

// UnitCost returns the default cost per unit used to price new line items.
func (c *CatalogItem) UnitCost() kernel.Money {
	return c.unitCost
}

// ChangeUnitCost updates the default unit cost.
func (c *CatalogItem) ChangeUnitCost(unitCost kernel.Money) error {
	return c.setUnitCost(unitCost)
}

func (c *CatalogItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CatalogItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CatalogItem) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	c.unitCost = unitCost
	return nil
}

// Validate ensures the CatalogItem was created through a constructor.
func (c *CatalogItem) Validate() error {
	if c == nil {
		return ErrCatalogItemIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogItemIsNotConstructed)
}
