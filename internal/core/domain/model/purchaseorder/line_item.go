package purchaseorder

import (
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed indicates a LineItem that was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem is a child entity of the PurchaseOrder aggregate: one ordered
// catalog item with its ordered quantity, received quantity, and unit cost.
//
// Invariants:
//   - quantityOrdered and quantityReceived are non-negative
//   - quantityReceived never exceeds quantityOrdered
//   - unit cost is non-negative Money
//
// Mutations that would break an invariant are rejected before any state
// change. Line items are only mutated through their owning PurchaseOrder,
// which enforces the closed-order terminal rule on top of these checks.
type LineItem struct {
	// id uniquely identifies the line item
	id kernel.UUID

	// purchaseOrderID is the owning purchase order
	purchaseOrderID kernel.UUID

	// catalogItemRef references the ordered catalog item
	catalogItemRef kernel.UUID

	// quantityOrdered is the committed (billed) quantity
	quantityOrdered int

	// quantityReceived is the quantity received so far
	quantityReceived int

	// unitCost is the cost per ordered unit
	unitCost kernel.Money

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewLineItem creates a line item with nothing received yet.
func NewLineItem(
	id kernel.UUID,
	purchaseOrderID kernel.UUID,
	catalogItemRef kernel.UUID,
	quantityOrdered int,
	unitCost kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setPurchaseOrderID(purchaseOrderID),
		item.setCatalogItemRef(catalogItemRef),
		item.setQuantityOrdered(quantityOrdered),
		item.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistent storage,
// including its received quantity.
func RestoreLineItem(
	id kernel.UUID,
	purchaseOrderID kernel.UUID,
	catalogItemRef kernel.UUID,
	quantityOrdered int,
	quantityReceived int,
	unitCost kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setPurchaseOrderID(purchaseOrderID),
		item.setCatalogItemRef(catalogItemRef),
		item.setQuantityOrdered(quantityOrdered),
		item.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	if err := item.Receive(quantityReceived); err != nil {
		return nil, err
	}

	return item, nil
}

// IsEqual compares two line items by identity.
func (l *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// PurchaseOrderID returns the identifier of the owning purchase order.
func (l *LineItem) PurchaseOrderID() kernel.UUID {
	return l.purchaseOrderID
}

// CatalogItemRef returns the identifier of the ordered catalog item.
func (l *LineItem) CatalogItemRef() kernel.UUID {
	return l.catalogItemRef
}

// QuantityOrdered returns the committed quantity.
func (l *LineItem) QuantityOrdered() int {
	return l.quantityOrdered
}

// QuantityReceived returns the quantity received so far.
func (l *LineItem) QuantityReceived() int {
	return l.quantityReceived
}

// UnitCost returns the cost per ordered unit.
func (l *LineItem) UnitCost() kernel.Money {
	return l.unitCost
}

// LineTotal returns quantityOrdered × unitCost. Billing uses the ordered
// quantity even when the item is only partially received.
func (l *LineItem) LineTotal() kernel.Money {
	return l.unitCost.MulInt(l.quantityOrdered)
}

// IsFullyReceived reports whether the full positive ordered quantity has
// been received.
func (l *LineItem) IsFullyReceived() bool {
	return l.quantityOrdered > 0 && l.quantityReceived == l.quantityOrdered
}

// Receive sets the received quantity. The new value must lie between zero
// and the ordered quantity; out-of-range values are rejected with no state
// change.
func (l *LineItem) Receive(quantityReceived int) error {
	if quantityReceived < 0 || quantityReceived > l.quantityOrdered {
		return errs.NewValueIsOutOfRangeError("quantityReceived", quantityReceived, 0, l.quantityOrdered)
	}

	l.quantityReceived = quantityReceived
	return nil
}

// Unreceive resets the received quantity to zero.
func (l *LineItem) Unreceive() {
	l.quantityReceived = 0
}

// ChangeQuantityOrdered updates the committed quantity. Lowering it below
// the already received quantity would break the core invariant and is
// rejected.
func (l *LineItem) ChangeQuantityOrdered(quantityOrdered int) error {
	if quantityOrdered < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered is invalid",
			fmt.Errorf("%d is negative", quantityOrdered),
		)
	}

	if quantityOrdered < l.quantityReceived {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered is invalid",
			fmt.Errorf("%d is below the received quantity %d", quantityOrdered, l.quantityReceived),
		)
	}

	l.quantityOrdered = quantityOrdered
	return nil
}

// ChangeUnitCost updates the cost per unit.
func (l *LineItem) ChangeUnitCost(unitCost kernel.Money) error {
	return l.setUnitCost(unitCost)
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	l.purchaseOrderID = purchaseOrderID
	return nil
}

func (l *LineItem) setCatalogItemRef(catalogItemRef kernel.UUID) error {
	if err := catalogItemRef.Validate(); err != nil {
		return err
	}
	l.catalogItemRef = catalogItemRef
	return nil
}

func (l *LineItem) setQuantityOrdered(quantityOrdered int) error {
	if quantityOrdered < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered is invalid",
			fmt.Errorf("%d is negative", quantityOrdered),
		)
	}
	l.quantityOrdered = quantityOrdered
	return nil
}

func (l *LineItem) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	l.unitCost = unitCost
	return nil
}

// Validate ensures the LineItem was created through a constructor.
func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}
