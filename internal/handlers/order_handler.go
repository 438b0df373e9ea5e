package handlers

import (
	"net/http"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	customerService services.CustomerService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(customerService services.CustomerService) *OrderHandler {
	return &OrderHandler{customerService: customerService}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.customerService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	order, err := h.customerService.AddOrder(c.Request.Context(), &models.Order{
		CustomerID: customerID,
		Amount:     req.Amount,
		Status:     req.Status,
		Items:      req.Items,
		Date:       date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
