// Package http exposes the receiving and settlement operations over a
// JSON API. It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
)

// Server handles HTTP requests for purchase order receiving and settlement.
type Server struct {
	// Command handlers
	createPurchaseOrderHandler commands.CreatePurchaseOrderCommandHandler
	upsertLineItemHandler      commands.AddOrUpdateLineItemCommandHandler
	removeLineItemHandler      commands.RemoveLineItemCommandHandler
	receiveLineItemHandler     commands.ReceiveLineItemCommandHandler
	unreceiveLineItemHandler   commands.UnreceiveLineItemCommandHandler
	setTaxConfigurationHandler commands.SetTaxConfigurationCommandHandler
	setFreightHandler          commands.SetFreightCommandHandler
	closePurchaseOrderHandler  commands.ClosePurchaseOrderCommandHandler
	setOrderStageHandler       commands.SetOrderStageCommandHandler
	createCatalogItemHandler   commands.CreateCatalogItemCommandHandler

	// Query handlers
	getPurchaseOrderHandler      queries.GetPurchaseOrderQueryHandler
	getOpenPurchaseOrdersHandler queries.GetOpenPurchaseOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPurchaseOrderHandler commands.CreatePurchaseOrderCommandHandler,
	upsertLineItemHandler commands.AddOrUpdateLineItemCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	receiveLineItemHandler commands.ReceiveLineItemCommandHandler,
	unreceiveLineItemHandler commands.UnreceiveLineItemCommandHandler,
	setTaxConfigurationHandler commands.SetTaxConfigurationCommandHandler,
	setFreightHandler commands.SetFreightCommandHandler,
	closePurchaseOrderHandler commands.ClosePurchaseOrderCommandHandler,
	setOrderStageHandler commands.SetOrderStageCommandHandler,
	createCatalogItemHandler commands.CreateCatalogItemCommandHandler,
	getPurchaseOrderHandler queries.GetPurchaseOrderQueryHandler,
	getOpenPurchaseOrdersHandler queries.GetOpenPurchaseOrdersQueryHandler,
) *Server {
	return &Server{
		createPurchaseOrderHandler:   createPurchaseOrderHandler,
		upsertLineItemHandler:        upsertLineItemHandler,
		removeLineItemHandler:        removeLineItemHandler,
		receiveLineItemHandler:       receiveLineItemHandler,
		unreceiveLineItemHandler:     unreceiveLineItemHandler,
		setTaxConfigurationHandler:   setTaxConfigurationHandler,
		setFreightHandler:            setFreightHandler,
		closePurchaseOrderHandler:    closePurchaseOrderHandler,
		setOrderStageHandler:         setOrderStageHandler,
		createCatalogItemHandler:     createCatalogItemHandler,
		getPurchaseOrderHandler:      getPurchaseOrderHandler,
		getOpenPurchaseOrdersHandler: getOpenPurchaseOrdersHandler,
	}
}

// RegisterRoutes binds every endpoint to the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	api := e.Group("/api/v1")

	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.GET("/purchase-orders", s.GetOpenPurchaseOrders)
	api.GET("/purchase-orders/:orderId", s.GetPurchaseOrder)
	api.POST("/purchase-orders/:orderId/close", s.ClosePurchaseOrder)
	api.PUT("/purchase-orders/:orderId/stage", s.SetOrderStage)
	api.PUT("/purchase-orders/:orderId/taxes", s.SetTaxConfiguration)
	api.PUT("/purchase-orders/:orderId/freight", s.SetFreight)
	api.PUT("/purchase-orders/:orderId/line-items", s.UpsertLineItem)
	api.DELETE("/purchase-orders/:orderId/line-items/:itemId", s.RemoveLineItem)
	api.POST("/purchase-orders/:orderId/line-items/:itemId/receive", s.ReceiveLineItem)
	api.POST("/purchase-orders/:orderId/line-items/:itemId/unreceive", s.UnreceiveLineItem)
	api.POST("/catalog-items", s.CreateCatalogItem)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req CreatePurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorRef, err := kernel.UUIDFromString(req.VendorRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	warehouseRef, err := kernel.UUIDFromString(req.WarehouseRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), vendorRef, warehouseRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.createPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusCreated, order)
}

// GetOpenPurchaseOrders handles GET /api/v1/purchase-orders.
func (s *Server) GetOpenPurchaseOrders(ctx echo.Context) error {
	query := queries.NewGetOpenPurchaseOrdersQuery()

	orders, err := s.getOpenPurchaseOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OpenPurchaseOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OpenPurchaseOrderResponse{
			ID:        order.ID.String(),
			VendorRef: order.VendorRef.String(),
			Status:    order.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:orderId.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPurchaseOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getPurchaseOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, purchaseOrderFromView(view))
}

// UpsertLineItem handles PUT /api/v1/purchase-orders/:orderId/line-items.
func (s *Server) UpsertLineItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req UpsertLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var lineItemID *kernel.UUID
	if req.LineItemID != "" {
		id, idErr := kernel.UUIDFromString(req.LineItemID)
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		lineItemID = &id
	}

	catalogItemRef, err := kernel.UUIDFromString(req.CatalogItemRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var unitCost *kernel.Money
	if req.UnitCost != "" {
		cost, costErr := kernel.MoneyFromString(req.UnitCost)
		if costErr != nil {
			return errorResponse(ctx, costErr)
		}
		unitCost = &cost
	}

	cmd, err := commands.NewAddOrUpdateLineItemCommand(
		orderID, lineItemID, catalogItemRef, req.QuantityOrdered, unitCost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.upsertLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// RemoveLineItem handles DELETE /api/v1/purchase-orders/:orderId/line-items/:itemId.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, itemID, err := orderAndItemIDs(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// ReceiveLineItem handles POST /api/v1/purchase-orders/:orderId/line-items/:itemId/receive.
func (s *Server) ReceiveLineItem(ctx echo.Context) error {
	orderID, itemID, err := orderAndItemIDs(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ReceiveLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveLineItemCommand(orderID, itemID, req.QuantityReceived)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.receiveLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// UnreceiveLineItem handles POST /api/v1/purchase-orders/:orderId/line-items/:itemId/unreceive.
func (s *Server) UnreceiveLineItem(ctx echo.Context) error {
	orderID, itemID, err := orderAndItemIDs(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUnreceiveLineItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.unreceiveLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// SetTaxConfiguration handles PUT /api/v1/purchase-orders/:orderId/taxes.
func (s *Server) SetTaxConfiguration(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req SetTaxConfigurationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var taxMode *purchaseorder.TaxMode
	if req.TaxMode != "" {
		mode, modeErr := purchaseorder.TaxModeFromString(req.TaxMode)
		if modeErr != nil {
			return errorResponse(ctx, modeErr)
		}
		taxMode = &mode
	}

	tax1Rate, err := optionalRate(req.Tax1Rate)
	if err != nil {
		return badRequest(ctx, "Invalid tax1Rate: "+req.Tax1Rate)
	}

	tax2Rate, err := optionalRate(req.Tax2Rate)
	if err != nil {
		return badRequest(ctx, "Invalid tax2Rate: "+req.Tax2Rate)
	}

	cmd, err := commands.NewSetTaxConfigurationCommand(orderID, taxMode, tax1Rate, tax2Rate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.setTaxConfigurationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// SetFreight handles PUT /api/v1/purchase-orders/:orderId/freight.
func (s *Server) SetFreight(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req SetFreightRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	freight, err := kernel.MoneyFromString(req.Freight)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetFreightCommand(orderID, freight)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.setFreightHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// ClosePurchaseOrder handles POST /api/v1/purchase-orders/:orderId/close.
func (s *Server) ClosePurchaseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClosePurchaseOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.closePurchaseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// SetOrderStage handles PUT /api/v1/purchase-orders/:orderId/stage.
func (s *Server) SetOrderStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req SetOrderStageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage, err := purchaseorder.StatusFromString(req.Stage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetOrderStageCommand(orderID, stage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	order, err := s.setOrderStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.orderJSON(ctx, http.StatusOK, order)
}

// CreateCatalogItem handles POST /api/v1/catalog-items.
func (s *Server) CreateCatalogItem(ctx echo.Context) error {
	var req CreateCatalogItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	unitCost, err := kernel.MoneyFromString(req.UnitCost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateCatalogItemCommand(kernel.NewUUID(), req.Description, unitCost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	item, err := s.createCatalogItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CatalogItemResponse{
		ID:          item.ID().String(),
		Description: item.Description(),
		UnitCost:    item.UnitCost().String(),
	})
}

// orderJSON renders a purchase order aggregate, with its computed totals,
// at the given status code.
func (s *Server) orderJSON(ctx echo.Context, code int, order *purchaseorder.PurchaseOrder) error {
	response, err := purchaseOrderFromDomain(order)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(code, response)
}

// orderAndItemIDs parses the order and line-item path parameters.
func orderAndItemIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, itemID, nil
}

// optionalRate parses an optional decimal string, nil when empty.
func optionalRate(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}

	rate, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}

	return &rate, nil
}
