package purchaseorder

import (
	"fmt"

	"fleetops/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// State transitions:
//
//	Requisition <──> Ordered          (explicit user command)
//	      │             │
//	      └──────┬──────┘
//	             v
//	   ReceivedPartial <──> Received  (derived from line items, never set directly)
//	             │             │
//	             └──────┬──────┘
//	                    v
//	                 Closed           (explicit command from any state, terminal)
//
// Requisition and Ordered are the pre-receiving stages a user toggles
// manually. ReceivedPartial and Received are derived: DeriveStatus computes
// them from the line-item quantities after every receiving mutation. Closed
// is terminal; no transition leaves it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Requisition is the initial status: the order is being drafted and
	// has not yet been placed with the vendor.
	Requisition

	// Ordered indicates the order has been placed with the vendor and is
	// awaiting receipt.
	Ordered

	// ReceivedPartial indicates at least one unit has been received but
	// not every line item is fully received. Derived, never set manually.
	ReceivedPartial

	// Received indicates every line item is fully received. Derived,
	// never set manually.
	Received

	// Closed is the terminal status. The order and its line items are
	// immutable once closed.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Requisition:     "Requisition",
		Ordered:         "Ordered",
		ReceivedPartial: "ReceivedPartial",
		Received:        "Received",
		Closed:          "Closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requisition:     "Requisition",
		Ordered:         "Ordered",
		ReceivedPartial: "ReceivedPartial",
		Received:        "Received",
		Closed:          "Closed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name produced by String.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Closed
}

// IsDerived reports whether the status is computed from line-item data
// rather than set by a user command.
func (s Status) IsDerived() bool {
	return s == ReceivedPartial || s == Received
}

// IsStage reports whether the status is one of the manually toggled
// pre-receiving stages.
func (s Status) IsStage() bool {
	return s == Requisition || s == Ordered
}

// ToggleStage transitions between the Requisition and Ordered stages.
//
// Valid transitions:
//   - Requisition -> Ordered and Ordered -> Requisition
//   - Requisition -> Requisition and Ordered -> Ordered (no-op repeats)
//
// Any other current status or target is rejected: derived statuses are
// owned by DeriveStatus and Closed is terminal.
func (s Status) ToggleStage(target Status) (Status, error) {
	if !target.IsStage() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"target status is invalid",
			fmt.Errorf("%s is not a manually settable stage", target.String()),
		)
	}

	if !s.IsStage() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be toggled between Requisition and Ordered", s.String()),
		)
	}

	return target, nil
}

// Close transitions any non-terminal status to Closed.
func (s Status) Close() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is already terminal", s.String()),
		)
	}

	return Closed, nil
}

// DeriveStatus computes the status implied by a line-item set.
//
// Rules, in order:
//  1. Closed stays Closed.
//  2. An empty line-item set keeps the current status.
//  3. Every line item fully received (with a positive ordered quantity)
//     yields Received.
//  4. Otherwise any received quantity yields ReceivedPartial.
//  5. Otherwise the current status is kept.
//
// The function is pure and idempotent: re-deriving with unchanged inputs
// returns the same status.
func DeriveStatus(lineItems []*LineItem, current Status) Status {
	if current == Closed {
		return Closed
	}

	if len(lineItems) == 0 {
		return current
	}

	allReceived := true
	anyReceived := false
	for _, item := range lineItems {
		if item.IsFullyReceived() {
			anyReceived = true
			continue
		}
		allReceived = false
		if item.QuantityReceived() > 0 {
			anyReceived = true
		}
	}

	if allReceived {
		return Received
	}
	if anyReceived {
		return ReceivedPartial
	}
	return current
}
