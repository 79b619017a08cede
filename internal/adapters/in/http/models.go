package http

import (
	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/core/domain/services"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePurchaseOrderRequest is the payload for creating a purchase order.
type CreatePurchaseOrderRequest struct {
	VendorRef    string `json:"vendorRef"`
	WarehouseRef string `json:"warehouseRef"`
}

// UpsertLineItemRequest is the payload for adding or updating a line item.
// LineItemID is empty when adding; UnitCost is empty to price the line from
// the catalog.
type UpsertLineItemRequest struct {
	LineItemID      string `json:"lineItemId,omitempty"`
	CatalogItemRef  string `json:"catalogItemRef"`
	QuantityOrdered int    `json:"quantityOrdered"`
	UnitCost        string `json:"unitCost,omitempty"`
}

// ReceiveLineItemRequest is the payload for recording a receipt.
type ReceiveLineItemRequest struct {
	QuantityReceived int `json:"quantityReceived"`
}

// SetTaxConfigurationRequest is the payload for changing tax settings.
// Empty fields keep their current value. Rates are decimal strings,
// percentages between 0 and 100.
type SetTaxConfigurationRequest struct {
	TaxMode  string `json:"taxMode,omitempty"`
	Tax1Rate string `json:"tax1Rate,omitempty"`
	Tax2Rate string `json:"tax2Rate,omitempty"`
}

// SetFreightRequest is the payload for changing the freight charge.
// Freight is a decimal string.
type SetFreightRequest struct {
	Freight string `json:"freight"`
}

// SetOrderStageRequest is the payload for toggling the manual stage.
// Stage is "Requisition" or "Ordered".
type SetOrderStageRequest struct {
	Stage string `json:"stage"`
}

// CreateCatalogItemRequest is the payload for registering a catalog item.
// UnitCost is a decimal string.
type CreateCatalogItemRequest struct {
	Description string `json:"description"`
	UnitCost    string `json:"unitCost"`
}

// LineItemResponse represents one line item in API responses.
type LineItemResponse struct {
	ID               string `json:"id"`
	CatalogItemRef   string `json:"catalogItemRef"`
	QuantityOrdered  int    `json:"quantityOrdered"`
	QuantityReceived int    `json:"quantityReceived"`
	UnitCost         string `json:"unitCost"`
	LineTotal        string `json:"lineTotal"`
}

// TotalsResponse represents the settlement totals of a purchase order.
type TotalsResponse struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"taxAmount"`
	Freight   string `json:"freight"`
	Total     string `json:"total"`
}

// PurchaseOrderResponse represents a purchase order in API responses.
type PurchaseOrderResponse struct {
	ID           string             `json:"id"`
	VendorRef    string             `json:"vendorRef"`
	WarehouseRef string             `json:"warehouseRef"`
	Status       string             `json:"status"`
	TaxMode      string             `json:"taxMode"`
	Tax1Rate     string             `json:"tax1Rate"`
	Tax2Rate     string             `json:"tax2Rate"`
	Freight      string             `json:"freight"`
	Version      int64              `json:"version"`
	LineItems    []LineItemResponse `json:"lineItems"`
	Totals       TotalsResponse     `json:"totals"`
}

// OpenPurchaseOrderResponse represents one entry of the open-orders listing.
type OpenPurchaseOrderResponse struct {
	ID        string `json:"id"`
	VendorRef string `json:"vendorRef"`
	Status    string `json:"status"`
}

// CatalogItemResponse represents a catalog item in API responses.
type CatalogItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	UnitCost    string `json:"unitCost"`
}

// purchaseOrderFromDomain converts an aggregate to its API representation,
// computing settlement totals on the way out.
func purchaseOrderFromDomain(order *purchaseorder.PurchaseOrder) (PurchaseOrderResponse, error) {
	totals, err := services.NewTotalsCalculator().Calculate(order)
	if err != nil {
		return PurchaseOrderResponse{}, err
	}

	lineItems := make([]LineItemResponse, 0, len(order.LineItems()))
	for _, item := range order.LineItems() {
		lineItems = append(lineItems, LineItemResponse{
			ID:               item.ID().String(),
			CatalogItemRef:   item.CatalogItemRef().String(),
			QuantityOrdered:  item.QuantityOrdered(),
			QuantityReceived: item.QuantityReceived(),
			UnitCost:         item.UnitCost().String(),
			LineTotal:        item.LineTotal().String(),
		})
	}

	return PurchaseOrderResponse{
		ID:           order.ID().String(),
		VendorRef:    order.VendorRef().String(),
		WarehouseRef: order.WarehouseRef().String(),
		Status:       order.Status().String(),
		TaxMode:      order.TaxMode().String(),
		Tax1Rate:     order.Tax1Rate().String(),
		Tax2Rate:     order.Tax2Rate().String(),
		Freight:      order.Freight().String(),
		Version:      order.Version(),
		LineItems:    lineItems,
		Totals:       totalsResponse(totals),
	}, nil
}

// purchaseOrderFromView converts a query view to its API representation.
func purchaseOrderFromView(view queries.GetPurchaseOrderQueryResponse) PurchaseOrderResponse {
	lineItems := make([]LineItemResponse, 0, len(view.LineItems))
	for _, item := range view.LineItems {
		lineItems = append(lineItems, LineItemResponse{
			ID:               item.ID.String(),
			CatalogItemRef:   item.CatalogItemRef.String(),
			QuantityOrdered:  item.QuantityOrdered,
			QuantityReceived: item.QuantityReceived,
			UnitCost:         item.UnitCost.String(),
			LineTotal:        item.LineTotal.String(),
		})
	}

	return PurchaseOrderResponse{
		ID:           view.ID.String(),
		VendorRef:    view.VendorRef.String(),
		WarehouseRef: view.WarehouseRef.String(),
		Status:       view.Status.String(),
		TaxMode:      view.TaxMode.String(),
		Tax1Rate:     view.Tax1Rate.String(),
		Tax2Rate:     view.Tax2Rate.String(),
		Freight:      view.Freight.String(),
		Version:      view.Version,
		LineItems:    lineItems,
		Totals:       totalsResponse(view.Totals),
	}
}

func totalsResponse(totals services.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:  totals.Subtotal.String(),
		TaxAmount: totals.TaxAmount.String(),
		Freight:   totals.Freight.String(),
		Total:     totals.Total.String(),
	}
}
