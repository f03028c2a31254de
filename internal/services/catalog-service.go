package services

import (
	"context"
	"fmt"

	"github.com/blazingpizza/pizza-store/internal/models"
	"gorm.io/gorm"
)

// CatalogService exposes the read-only menu catalog plus the admin-only
// maintenance operations. The order core only ever reads the catalog.
type CatalogService interface {
	// ListSpecials retrieves every special on the menu
	ListSpecials(ctx context.Context) ([]models.PizzaSpecial, error)
	// ListToppings retrieves every topping in the catalog
	ListToppings(ctx context.Context) ([]models.Topping, error)
	// CreateSpecial adds a new special to the menu
	CreateSpecial(ctx context.Context, special models.PizzaSpecial) (models.PizzaSpecial, error)
	// CreateTopping adds a new topping to the catalog
	CreateTopping(ctx context.Context, topping models.Topping) (models.Topping, error)
}

// catalogService is the implementation of the CatalogService interface
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListSpecials(ctx context.Context) ([]models.PizzaSpecial, error) {
	var specials []models.PizzaSpecial
	if err := s.db.WithContext(ctx).Order("base_price DESC").Find(&specials).Error; err != nil {
		return nil, err
	}
	return specials, nil
}

func (s *catalogService) ListToppings(ctx context.Context) ([]models.Topping, error) {
	var toppings []models.Topping
	if err := s.db.WithContext(ctx).Order("name").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

func (s *catalogService) CreateSpecial(ctx context.Context, special models.PizzaSpecial) (models.PizzaSpecial, error) {
	if special.Name == "" {
		return models.PizzaSpecial{}, fmt.Errorf("%w: special name is required", ErrValidation)
	}
	if special.BasePrice <= 0 {
		return models.PizzaSpecial{}, fmt.Errorf("%w: special base price must be positive", ErrValidation)
	}
	if err := s.db.WithContext(ctx).Create(&special).Error; err != nil {
		return models.PizzaSpecial{}, err
	}
	return special, nil
}

func (s *catalogService) CreateTopping(ctx context.Context, topping models.Topping) (models.Topping, error) {
	if topping.Name == "" {
		return models.Topping{}, fmt.Errorf("%w: topping name is required", ErrValidation)
	}
	if topping.Price < 0 {
		return models.Topping{}, fmt.Errorf("%w: topping price must not be negative", ErrValidation)
	}
	if err := s.db.WithContext(ctx).Create(&topping).Error; err != nil {
		return models.Topping{}, err
	}
	return topping, nil
}
