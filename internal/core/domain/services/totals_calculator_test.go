package services_test

import (
	"testing"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// buildOrder assembles an order with two lines: 10 × 10.00 and 5 × 10.00,
// giving a 150.00 subtotal.
func buildOrder(t *testing.T) *purchaseorder.PurchaseOrder {
	t.Helper()
	order, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	for _, qty := range []int{10, 5} {
		item, err := purchaseorder.NewLineItem(
			kernel.NewUUID(), order.ID(), kernel.NewUUID(), qty, mustMoney(t, "10.00"))
		require.NoError(t, err)
		require.NoError(t, order.UpsertLineItem(item))
	}

	return order
}

func TestTotalsCalculator_Calculate(t *testing.T) {
	calculator := services.NewTotalsCalculator()

	t.Run("no tax mode yields subtotal plus freight", func(t *testing.T) {
		order := buildOrder(t)

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.Subtotal.IsEqual(mustMoney(t, "150.00")))
		assert.True(t, totals.TaxAmount.IsZero())
		assert.True(t, totals.Freight.IsZero())
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "150.00")))
	})

	t.Run("tax1 mode applies only the first rate", func(t *testing.T) {
		order := buildOrder(t)
		require.NoError(t, order.ChangeTaxMode(purchaseorder.Tax1))
		require.NoError(t, order.ChangeTax1Rate(decimal.RequireFromString("10")))
		require.NoError(t, order.ChangeTax2Rate(decimal.RequireFromString("5")))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.TaxAmount.IsEqual(mustMoney(t, "15.00")))
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "165.00")))
	})

	t.Run("tax2 mode applies only the second rate", func(t *testing.T) {
		order := buildOrder(t)
		require.NoError(t, order.ChangeTaxMode(purchaseorder.Tax2))
		require.NoError(t, order.ChangeTax1Rate(decimal.RequireFromString("10")))
		require.NoError(t, order.ChangeTax2Rate(decimal.RequireFromString("5")))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.TaxAmount.IsEqual(mustMoney(t, "7.50")))
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "157.50")))
	})

	t.Run("both mode sums the two rates", func(t *testing.T) {
		order := buildOrder(t)
		require.NoError(t, order.ChangeTaxMode(purchaseorder.TaxBoth))
		require.NoError(t, order.ChangeTax1Rate(decimal.RequireFromString("10")))
		require.NoError(t, order.ChangeTax2Rate(decimal.RequireFromString("5")))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.TaxAmount.IsEqual(mustMoney(t, "22.50")))
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "172.50")))
	})

	t.Run("freight is added after tax", func(t *testing.T) {
		order := buildOrder(t)
		require.NoError(t, order.ChangeTaxMode(purchaseorder.Tax1))
		require.NoError(t, order.ChangeTax1Rate(decimal.RequireFromString("10")))
		require.NoError(t, order.ChangeFreight(mustMoney(t, "25.00")))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.Subtotal.IsEqual(mustMoney(t, "150.00")))
		assert.True(t, totals.TaxAmount.IsEqual(mustMoney(t, "15.00")))
		assert.True(t, totals.Freight.IsEqual(mustMoney(t, "25.00")))
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "190.00")))
	})

	t.Run("subtotal bills ordered quantity regardless of receipts", func(t *testing.T) {
		order := buildOrder(t)
		require.NoError(t, order.ReceiveLineItem(order.LineItems()[0].ID(), 3))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.Subtotal.IsEqual(mustMoney(t, "150.00")))
	})

	t.Run("empty order totals to freight alone", func(t *testing.T) {
		order, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, order.ChangeFreight(mustMoney(t, "25.00")))

		totals, err := calculator.Calculate(order)

		require.NoError(t, err)
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.TaxAmount.IsZero())
		assert.True(t, totals.Total.IsEqual(mustMoney(t, "25.00")))
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		var order purchaseorder.PurchaseOrder

		_, err := calculator.Calculate(&order)

		assert.ErrorIs(t, err, purchaseorder.ErrPurchaseOrderIsNotConstructed)
	})
}
