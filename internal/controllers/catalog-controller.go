package controllers

import (
	"errors"
	"net/http"

	"github.com/blazingpizza/pizza-store/internal/models"
	"github.com/blazingpizza/pizza-store/internal/services"
	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for the menu catalog
type CatalogController interface {
	// GetSpecials retrieves all specials on the menu
	GetSpecials(c *gin.Context)
	// GetToppings retrieves all toppings in the catalog
	GetToppings(c *gin.Context)
	// CreateSpecial adds a new special (admin only)
	CreateSpecial(c *gin.Context)
	// CreateTopping adds a new topping (admin only)
	CreateTopping(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) *catalogController {
	return &catalogController{service: service}
}

// GetSpecials godoc
// @Summary List pizza specials
// @Description Get the menu of pizza specials
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.PizzaSpecial
// @Failure 500 {object} map[string]string
// @Router /specials [get]
func (c *catalogController) GetSpecials(ctx *gin.Context) {
	specials, err := c.service.ListSpecials(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve specials"})
		return
	}
	ctx.JSON(http.StatusOK, specials)
}

// GetToppings godoc
// @Summary List toppings
// @Description Get the catalog of toppings
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Topping
// @Failure 500 {object} map[string]string
// @Router /toppings [get]
func (c *catalogController) GetToppings(ctx *gin.Context) {
	toppings, err := c.service.ListToppings(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve toppings"})
		return
	}
	ctx.JSON(http.StatusOK, toppings)
}

// CreateSpecial godoc
// @Summary Create a pizza special
// @Description Add a new special to the menu
// @Tags catalog
// @Accept json
// @Produce json
// @Param special body models.PizzaSpecial true "Special object"
// @Success 201 {object} models.PizzaSpecial
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /admin/specials [post]
func (c *catalogController) CreateSpecial(ctx *gin.Context) {
	var special models.PizzaSpecial
	if err := ctx.ShouldBindJSON(&special); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := c.service.CreateSpecial(ctx.Request.Context(), special)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create special"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// CreateTopping godoc
// @Summary Create a topping
// @Description Add a new topping to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param topping body models.Topping true "Topping object"
// @Success 201 {object} models.Topping
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /admin/toppings [post]
func (c *catalogController) CreateTopping(ctx *gin.Context) {
	var topping models.Topping
	if err := ctx.ShouldBindJSON(&topping); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := c.service.CreateTopping(ctx.Request.Context(), topping)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topping"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
