// Package purchaseorder provides domain entities and business logic for
// purchase-order receiving and settlement. It implements the PurchaseOrder
// aggregate root with its line items, lifecycle status machine, and tax
// configuration.
//
// The package includes:
//   - PurchaseOrder: The aggregate root owning line items, tax configuration, and freight
//   - LineItem: A child entity tracking ordered/received quantities and unit cost
//   - Status: A state machine over Requisition, Ordered, ReceivedPartial, Received, Closed
//   - TaxMode: Selection of which of two independent tax rates apply
//
// Key business rules:
//   - A line item's received quantity never exceeds its ordered quantity
//   - ReceivedPartial and Received are derived from line-item data by
//     DeriveStatus after every receiving mutation, never set directly
//   - Requisition and Ordered are toggled only by explicit command
//   - Closed is terminal: closing forces full receipt of every line item
//     and freezes the order permanently
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package purchaseorder
