package purchaseorder

import (
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was
	// not created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor",
	)

	// ErrOrderIsClosed is returned by every mutating operation once the
	// order has reached the terminal Closed status.
	ErrOrderIsClosed = errors.New("purchase order is closed")
)

// PurchaseOrder is the aggregate root of the receiving and settlement
// engine: the order header (status, tax configuration, freight) plus its
// line items.
//
// Invariants:
//   - identifiers and references are valid UUIDs
//   - tax rates lie in [0, 100]; freight is non-negative
//   - every line item belongs to this order and satisfies the LineItem
//     invariants
//   - once Closed, the order and its line items are immutable
//
// Every mutation re-derives the lifecycle status from the post-mutation
// line-item set, so a caller can never observe quantities and status that
// disagree.
type PurchaseOrder struct {
	// id is the unique identifier for the purchase order
	id kernel.UUID

	// vendorRef and warehouseRef are opaque foreign references
	vendorRef    kernel.UUID
	warehouseRef kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// taxMode selects which tax rates apply to the subtotal
	taxMode TaxMode

	// tax1Rate and tax2Rate are independent percentages in [0, 100]
	tax1Rate decimal.Decimal
	tax2Rate decimal.Decimal

	// freight is the flat shipping amount added to the total
	freight kernel.Money

	// version is the optimistic concurrency token of the order row
	version int64

	// lineItems holds the child entities in insertion order; the order is
	// presentational only and carries no business meaning
	lineItems []*LineItem

	// guard ensures the aggregate was properly initialized
	guard kernel.ConstructorGuard
}

// NewPurchaseOrder creates an empty purchase order in the Requisition
// stage with no tax applied and zero freight.
func NewPurchaseOrder(id, vendorRef, warehouseRef kernel.UUID) (*PurchaseOrder, error) {
	order := &PurchaseOrder{
		status:   Requisition,
		taxMode:  TaxNone,
		tax1Rate: decimal.Zero,
		tax2Rate: decimal.Zero,
		freight:  kernel.ZeroMoney(),
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorRef(vendorRef),
		order.setWarehouseRef(warehouseRef),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestorePurchaseOrder reconstructs a purchase order from persistent
// storage, including its lifecycle status, tax configuration, concurrency
// version, and line items.
func RestorePurchaseOrder(
	id, vendorRef, warehouseRef kernel.UUID,
	status Status,
	taxMode TaxMode,
	tax1Rate, tax2Rate decimal.Decimal,
	freight kernel.Money,
	version int64,
	lineItems []*LineItem,
) (*PurchaseOrder, error) {
	order := &PurchaseOrder{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorRef(vendorRef),
		order.setWarehouseRef(warehouseRef),
		order.setStatus(status),
		order.setTaxMode(taxMode),
		order.setTax1Rate(tax1Rate),
		order.setTax2Rate(tax2Rate),
		order.setFreight(freight),
		order.setVersion(version),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// IsEqual compares two purchase orders by identity.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// VendorRef returns the opaque vendor reference.
func (o *PurchaseOrder) VendorRef() kernel.UUID {
	return o.vendorRef
}

// WarehouseRef returns the opaque warehouse reference.
func (o *PurchaseOrder) WarehouseRef() kernel.UUID {
	return o.warehouseRef
}

// Status returns the current lifecycle status.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// TaxMode returns the active tax mode.
func (o *PurchaseOrder) TaxMode() TaxMode {
	return o.taxMode
}

// Tax1Rate returns the first tax rate percentage.
func (o *PurchaseOrder) Tax1Rate() decimal.Decimal {
	return o.tax1Rate
}

// Tax2Rate returns the second tax rate percentage.
func (o *PurchaseOrder) Tax2Rate() decimal.Decimal {
	return o.tax2Rate
}

// Freight returns the flat freight amount.
func (o *PurchaseOrder) Freight() kernel.Money {
	return o.freight
}

// Version returns the optimistic concurrency token loaded with the order.
func (o *PurchaseOrder) Version() int64 {
	return o.version
}

// BumpVersion advances the optimistic concurrency token. The persistence
// layer calls it after a successful version-guarded write, so the in-memory
// aggregate matches the row it just produced.
func (o *PurchaseOrder) BumpVersion() {
	o.version++
}

// LineItems returns the line items in insertion order.
func (o *PurchaseOrder) LineItems() []*LineItem {
	return o.lineItems
}

// LineItem returns the line item with the given id.
func (o *PurchaseOrder) LineItem(id kernel.UUID) (*LineItem, error) {
	for _, item := range o.lineItems {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItem", id.String())
}

// UpsertLineItem adds a new line item or replaces the existing one with
// the same id, then re-derives the lifecycle status. A Received order
// gaining an unreceived line drops back to ReceivedPartial here.
func (o *PurchaseOrder) UpsertLineItem(item *LineItem) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	if err := item.Validate(); err != nil {
		return err
	}

	if !item.PurchaseOrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"purchaseOrderID is invalid",
			fmt.Errorf("line item %s belongs to order %s", item.ID(), item.PurchaseOrderID()),
		)
	}

	replaced := false
	for i, existing := range o.lineItems {
		if existing.ID().IsEqual(item.ID()) {
			o.lineItems[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		o.lineItems = append(o.lineItems, item)
	}

	o.rederiveStatus()
	return nil
}

// RemoveLineItem deletes a line item and re-derives the status.
func (o *PurchaseOrder) RemoveLineItem(id kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	for i, item := range o.lineItems {
		if item.ID().IsEqual(id) {
			o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
			o.rederiveStatus()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("lineItem", id.String())
}

// ReceiveLineItem records the received quantity for one line item and
// re-derives the status from the post-mutation line-item set. A quantity
// above the ordered quantity is rejected with no state change.
func (o *PurchaseOrder) ReceiveLineItem(id kernel.UUID, quantityReceived int) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	item, err := o.LineItem(id)
	if err != nil {
		return err
	}

	if err = item.Receive(quantityReceived); err != nil {
		return err
	}

	o.rederiveStatus()
	return nil
}

// UnreceiveLineItem resets one line item's received quantity to zero and
// re-derives the status.
func (o *PurchaseOrder) UnreceiveLineItem(id kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	item, err := o.LineItem(id)
	if err != nil {
		return err
	}

	item.Unreceive()
	o.rederiveStatus()
	return nil
}

// ChangeTaxMode sets the tax mode.
func (o *PurchaseOrder) ChangeTaxMode(mode TaxMode) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}
	return o.setTaxMode(mode)
}

// ChangeTax1Rate sets the first tax rate percentage.
func (o *PurchaseOrder) ChangeTax1Rate(rate decimal.Decimal) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}
	return o.setTax1Rate(rate)
}

// ChangeTax2Rate sets the second tax rate percentage.
func (o *PurchaseOrder) ChangeTax2Rate(rate decimal.Decimal) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}
	return o.setTax2Rate(rate)
}

// ChangeFreight sets the flat freight amount.
func (o *PurchaseOrder) ChangeFreight(freight kernel.Money) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}
	return o.setFreight(freight)
}

// ToggleStage performs the manual Requisition <-> Ordered transition.
// Rejected when the current status is derived or terminal.
func (o *PurchaseOrder) ToggleStage(target Status) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	newStatus, err := o.status.ToggleStage(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Close settles the order: every line item is forced fully received and
// the status becomes Closed. Irreversible.
func (o *PurchaseOrder) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return ErrOrderIsClosed
	}

	for _, item := range o.lineItems {
		if receiveErr := item.Receive(item.QuantityOrdered()); receiveErr != nil {
			return receiveErr
		}
	}

	o.status = newStatus
	return nil
}

// rederiveStatus recomputes the lifecycle status from the current
// line-item set.
func (o *PurchaseOrder) rederiveStatus() {
	o.status = DeriveStatus(o.lineItems, o.status)
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setVendorRef(vendorRef kernel.UUID) error {
	if err := vendorRef.Validate(); err != nil {
		return err
	}
	o.vendorRef = vendorRef
	return nil
}

func (o *PurchaseOrder) setWarehouseRef(warehouseRef kernel.UUID) error {
	if err := warehouseRef.Validate(); err != nil {
		return err
	}
	o.warehouseRef = warehouseRef
	return nil
}

func (o *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *PurchaseOrder) setTaxMode(mode TaxMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.taxMode = mode
	return nil
}

func (o *PurchaseOrder) setTax1Rate(rate decimal.Decimal) error {
	if err := validateTaxRate("tax1Rate", rate); err != nil {
		return err
	}
	o.tax1Rate = rate
	return nil
}

func (o *PurchaseOrder) setTax2Rate(rate decimal.Decimal) error {
	if err := validateTaxRate("tax2Rate", rate); err != nil {
		return err
	}
	o.tax2Rate = rate
	return nil
}

func (o *PurchaseOrder) setFreight(freight kernel.Money) error {
	if err := freight.Validate(); err != nil {
		return err
	}
	o.freight = freight
	return nil
}

func (o *PurchaseOrder) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

func (o *PurchaseOrder) setLineItems(lineItems []*LineItem) error {
	items := make([]*LineItem, 0, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.PurchaseOrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"purchaseOrderID is invalid",
				fmt.Errorf("line item %s belongs to order %s", item.ID(), item.PurchaseOrderID()),
			)
		}
		items = append(items, item)
	}
	o.lineItems = items
	return nil
}

var maxTaxRate = decimal.NewFromInt(100)

func validateTaxRate(paramName string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxTaxRate) {
		return errs.NewValueIsOutOfRangeError(paramName, rate, 0, 100)
	}
	return nil
}

// Validate ensures the PurchaseOrder was created through a constructor.
func (o *PurchaseOrder) Validate() error {
	if o == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return o.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}
