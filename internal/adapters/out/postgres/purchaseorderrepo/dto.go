// Package purchaseorderrepo provides data transfer objects and mapping
// functions for purchase order persistence. This package implements the
// repository pattern for the purchase order aggregate, handling the
// conversion between domain entities and database representations.
package purchaseorderrepo

import (
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderDTO represents the database structure for persisting
// purchase order aggregates. The version column is the optimistic
// concurrency token guarding the order row.
type PurchaseOrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorRef    uuid.UUID       `gorm:"type:uuid;not null;index"`
	WarehouseRef uuid.UUID       `gorm:"type:uuid;not null"`
	Status       int             `gorm:"type:int;not null"`
	TaxMode      int             `gorm:"type:int;not null"`
	Tax1Rate     decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	Tax2Rate     decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	Freight      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Version      int64           `gorm:"type:bigint;not null"`
	LineItems    []LineItemDTO   `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "purchase_orders".
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// LineItemDTO represents the database structure for persisting line item
// entities. Links to the purchase order via foreign key.
type LineItemDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CatalogItemRef   uuid.UUID       `gorm:"type:uuid;not null"`
	QuantityOrdered  int             `gorm:"type:int;not null"`
	QuantityReceived int             `gorm:"type:int;not null"`
	UnitCost         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "purchase_order_items".
func (LineItemDTO) TableName() string {
	return "purchase_order_items"
}

// fromDomain converts a purchase order domain aggregate to its database
// representation, including all line items.
func fromDomain(order *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	orderID := order.ID().Bytes()
	lineItems := make([]LineItemDTO, 0, len(order.LineItems()))

	for _, item := range order.LineItems() {
		lineItems = append(lineItems, lineItemFromDomain(item))
	}

	return PurchaseOrderDTO{
		ID:           orderID,
		VendorRef:    order.VendorRef().Bytes(),
		WarehouseRef: order.WarehouseRef().Bytes(),
		Status:       int(order.Status()),
		TaxMode:      int(order.TaxMode()),
		Tax1Rate:     order.Tax1Rate(),
		Tax2Rate:     order.Tax2Rate(),
		Freight:      order.Freight().Amount(),
		Version:      order.Version(),
		LineItems:    lineItems,
	}
}

// lineItemFromDomain converts a line item entity to its database representation.
func lineItemFromDomain(item *purchaseorder.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:               item.ID().Bytes(),
		PurchaseOrderID:  item.PurchaseOrderID().Bytes(),
		CatalogItemRef:   item.CatalogItemRef().Bytes(),
		QuantityOrdered:  item.QuantityOrdered(),
		QuantityReceived: item.QuantityReceived(),
		UnitCost:         item.UnitCost().Amount(),
	}
}

// toDomain converts a database DTO to a purchase order domain aggregate.
// Reconstructs the complete aggregate including all line items using
// RestorePurchaseOrder.
func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorRef, err := kernel.UUIDFromBytes(dto.VendorRef[:])
	if err != nil {
		return nil, err
	}

	warehouseRef, err := kernel.UUIDFromBytes(dto.WarehouseRef[:])
	if err != nil {
		return nil, err
	}

	freight, err := kernel.NewMoney(dto.Freight)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*purchaseorder.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return purchaseorder.RestorePurchaseOrder(
		id,
		vendorRef,
		warehouseRef,
		purchaseorder.Status(dto.Status),
		purchaseorder.TaxMode(dto.TaxMode),
		dto.Tax1Rate,
		dto.Tax2Rate,
		freight,
		dto.Version,
		lineItems,
	)
}

// lineItemToDomain converts a line item DTO to a domain entity.
// Uses RestoreLineItem to reconstruct the entity with its persisted state.
func lineItemToDomain(dto LineItemDTO) (*purchaseorder.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	purchaseOrderID, err := kernel.UUIDFromBytes(dto.PurchaseOrderID[:])
	if err != nil {
		return nil, err
	}

	catalogItemRef, err := kernel.UUIDFromBytes(dto.CatalogItemRef[:])
	if err != nil {
		return nil, err
	}

	unitCost, err := kernel.NewMoney(dto.UnitCost)
	if err != nil {
		return nil, err
	}

	return purchaseorder.RestoreLineItem(
		id,
		purchaseOrderID,
		catalogItemRef,
		dto.QuantityOrdered,
		dto.QuantityReceived,
		unitCost,
	)
}
