package purchaseorder

import (
	"fmt"

	"fleetops/internal/pkg/errs"
)

// TaxMode selects which of the order's two independent tax rates apply to
// its subtotal.
type TaxMode int

const (
	// TaxUnknown represents an invalid or undefined tax mode.
	TaxUnknown TaxMode = iota

	// TaxNone applies no tax.
	TaxNone

	// Tax1 applies only the first tax rate.
	Tax1

	// Tax2 applies only the second tax rate.
	Tax2

	// TaxBoth applies the sum of both tax rates.
	TaxBoth
)

func getTaxModeStrings() map[TaxMode]string {
	return map[TaxMode]string{
		TaxUnknown: "Unknown",
		TaxNone:    "None",
		Tax1:       "Tax1",
		Tax2:       "Tax2",
		TaxBoth:    "Both",
	}
}

func getValidTaxModeStrings() map[TaxMode]string {
	//nolint:exhaustive // TaxUnknown is intentionally excluded as it's invalid
	return map[TaxMode]string{
		TaxNone: "None",
		Tax1:    "Tax1",
		Tax2:    "Tax2",
		TaxBoth: "Both",
	}
}

// Validate checks if the TaxMode value is valid.
func (m TaxMode) Validate() error {
	if _, ok := getValidTaxModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("taxMode is invalid", fmt.Errorf("%d is not a valid tax mode", m))
	}
	return nil
}

// String returns the human-readable name of the tax mode.
func (m TaxMode) String() string {
	if str, ok := getTaxModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// TaxModeFromString parses a tax mode name produced by String.
func TaxModeFromString(s string) (TaxMode, error) {
	for mode, name := range getValidTaxModeStrings() {
		if name == s {
			return mode, nil
		}
	}
	return TaxUnknown, errs.NewValueIsInvalidErrorWithCause(
		"taxMode is invalid",
		fmt.Errorf("%q is not a valid tax mode", s),
	)
}

// UsesTax1 reports whether the first tax rate participates in tax computation.
func (m TaxMode) UsesTax1() bool {
	return m == Tax1 || m == TaxBoth
}

// UsesTax2 reports whether the second tax rate participates in tax computation.
func (m TaxMode) UsesTax2() bool {
	return m == Tax2 || m == TaxBoth
}
