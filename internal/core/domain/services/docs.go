// Package services provides domain services for the purchase-order
// settlement engine: business computations that read an aggregate but do
// not naturally belong to a single entity.
//
// The package includes:
//   - TotalsCalculator: A pure service computing subtotal, tax, freight,
//     and grand total for a purchase order
//
// Domain services are stateless and side-effect free, following
// Domain-Driven Design principles.
package services
