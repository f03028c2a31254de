package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blazingpizza/pizza-store/internal/models"
	"github.com/blazingpizza/pizza-store/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetAllOrders retrieves every order with its derived status
	GetAllOrders(c *gin.Context)
	// GetOrderByID retrieves a single order by its ID
	GetOrderByID(c *gin.Context)
	// PlaceOrder persists a new order
	PlaceOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary List all orders
// @Description Get every persisted order, fully hydrated, with derived status
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.OrderWithStatus
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.ListOrders(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	now := time.Now()
	ordersWithStatus := make([]models.OrderWithStatus, 0, len(orders))
	for _, order := range orders {
		ordersWithStatus = append(ordersWithStatus, models.WithStatus(order, now))
	}
	ctx.JSON(http.StatusOK, ordersWithStatus)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single hydrated order with derived status
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} models.OrderWithStatus
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/{orderId} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id := ctx.Param("orderId")

	orderID, err := strconv.Atoi(id)
	if err != nil || orderID < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := c.service.GetOrder(ctx.Request.Context(), uint(orderID))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, models.WithStatus(order, time.Now()))
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, services.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
	}
}

// PlaceOrder godoc
// @Summary Place a new order
// @Description Persist the full order graph atomically and return the generated order ID
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order graph"
// @Success 200 {integer} int
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (c *orderController) PlaceOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	orderID, err := c.service.PlaceOrder(ctx.Request.Context(), &order)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Persistence and integrity failures both mean the transaction rolled
		// back; nothing was committed.
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create the order"})
		return
	}
	ctx.JSON(http.StatusOK, orderID)
}
