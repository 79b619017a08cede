package services

import (
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Totals is the settlement summary of a purchase order.
type Totals struct {
	// Subtotal is the sum of quantityOrdered × unitCost over all line items.
	Subtotal kernel.Money

	// TaxAmount is the tax applied to the subtotal per the order's tax mode.
	TaxAmount kernel.Money

	// Freight is the order's flat freight amount.
	Freight kernel.Money

	// Total is Subtotal + TaxAmount + Freight.
	Total kernel.Money
}

// TotalsCalculator computes the settlement totals of a purchase order.
//
// The calculation is pure: it reads the aggregate, has no side effects,
// and no error cases beyond an unconstructed aggregate. Billing uses the
// ordered quantity of each line item, not the received quantity — the
// engine bills the full commitment regardless of partial fulfillment.
//
// Tax by mode:
//   - None: 0
//   - Tax1: subtotal × tax1Rate / 100
//   - Tax2: subtotal × tax2Rate / 100
//   - Both: subtotal × (tax1Rate + tax2Rate) / 100
type TotalsCalculator struct{}

// NewTotalsCalculator creates a new TotalsCalculator instance.
func NewTotalsCalculator() TotalsCalculator {
	return TotalsCalculator{}
}

// Calculate returns the totals for the given purchase order.
func (c TotalsCalculator) Calculate(order *purchaseorder.PurchaseOrder) (Totals, error) {
	if err := order.Validate(); err != nil {
		return Totals{}, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range order.LineItems() {
		subtotal = subtotal.Add(item.LineTotal())
	}

	taxAmount, err := kernel.NewMoney(c.taxOn(subtotal, order))
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Freight:   order.Freight(),
		Total:     subtotal.Add(taxAmount).Add(order.Freight()),
	}, nil
}

// taxOn applies the order's tax mode to the subtotal.
func (c TotalsCalculator) taxOn(subtotal kernel.Money, order *purchaseorder.PurchaseOrder) decimal.Decimal {
	rate := decimal.Zero
	if order.TaxMode().UsesTax1() {
		rate = rate.Add(order.Tax1Rate())
	}
	if order.TaxMode().UsesTax2() {
		rate = rate.Add(order.Tax2Rate())
	}

	return subtotal.Amount().Mul(rate).Div(oneHundred)
}
