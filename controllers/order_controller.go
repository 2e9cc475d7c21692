package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	TableID   *uint             `json:"table_id"`
	Items     models.OrderItems `json:"items"`
	Notes     string            `json:"notes"`
	OrderType string            `json:"order_type"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	Items  models.OrderItems `json:"items"`
	Notes  *string           `json:"notes"`
	Status *string           `json:"status"`
}

// OrderController serves /orders
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates an order controller
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List handles GET /api/v1/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.orders.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

// ListActive handles GET /api/v1/orders/active
func (ctl *OrderController) ListActive(c *gin.Context) {
	orders, err := ctl.orders.ListActiveOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

// Stats handles GET /api/v1/orders/stats
func (ctl *OrderController) Stats(c *gin.Context) {
	stats, err := ctl.orders.GetOrderStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// ListByTable handles GET /api/v1/orders/table/:tableId
func (ctl *OrderController) ListByTable(c *gin.Context) {
	tableID, ok := parseID(c, "tableId")
	if !ok {
		return
	}

	orders, err := ctl.orders.ListOrdersByTable(tableID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

// Get handles GET /api/v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := ctl.orders.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

// Create handles POST /api/v1/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := ctl.orders.CreateOrder(services.CreateOrderInput{
		TableID:   req.TableID,
		Items:     req.Items,
		Notes:     req.Notes,
		OrderType: req.OrderType,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, order)
}

// Update handles PUT /api/v1/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := ctl.orders.UpdateOrder(id, services.UpdateOrderInput{
		Items:  req.Items,
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

// SetStatus handles PATCH /api/v1/orders/:id/status
func (ctl *OrderController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := ctl.orders.SetOrderStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

// Delete handles DELETE /api/v1/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := ctl.orders.DeleteOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Order deleted successfully", order)
}
