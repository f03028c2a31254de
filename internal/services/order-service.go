package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blazingpizza/pizza-store/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sentinel errors classifying every failure the services can produce.
// Controllers map these to HTTP statuses with errors.Is.
var (
	ErrValidation  = errors.New("validation")  // 400, rejected before storage
	ErrNotFound    = errors.New("not found")   // 404
	ErrIntegrity   = errors.New("integrity")   // referenced row missing
	ErrPersistence = errors.New("persistence") // write transaction failed
)

// OrderService persists order aggregates and reconstructs them from storage
type OrderService interface {
	// PlaceOrder persists the full order graph atomically and returns the
	// generated order identifier
	PlaceOrder(ctx context.Context, order *models.Order) (uint, error)
	// GetOrder returns the fully hydrated order aggregate for the given id
	GetOrder(ctx context.Context, orderID uint) (models.Order, error)
	// ListOrders returns every persisted order, each fully hydrated
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// orderService is the implementation of the OrderService interface
type orderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db, now: time.Now}
}

// validateOrder rejects malformed graphs before any database work
func validateOrder(order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is required", ErrValidation)
	}
	if len(order.Pizzas) == 0 {
		return fmt.Errorf("%w: order must contain at least one pizza", ErrValidation)
	}
	for i := range order.Pizzas {
		pizza := &order.Pizzas[i]
		if pizza.SpecialID == 0 {
			return fmt.Errorf("%w: pizza %d has no special", ErrValidation, i)
		}
		if pizza.Size < models.MinimumSize || pizza.Size > models.MaximumSize {
			return fmt.Errorf("%w: pizza %d size %d out of range [%d, %d]",
				ErrValidation, i, pizza.Size, models.MinimumSize, models.MaximumSize)
		}
		for _, pt := range pizza.Toppings {
			if pt.ToppingID == 0 {
				return fmt.Errorf("%w: pizza %d references an invalid topping", ErrValidation, i)
			}
		}
	}
	return nil
}

func (s *orderService) PlaceOrder(ctx context.Context, order *models.Order) (uint, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}

	// CreatedTime is server-assigned; anything the caller sent is overwritten
	// so the derived status cannot be forged.
	order.CreatedTime = s.now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.DeliveryAddress != nil {
			if err := tx.Create(order.DeliveryAddress).Error; err != nil {
				return err
			}
			order.DeliveryAddressID = &order.DeliveryAddress.ID
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Insertion order of the pizzas is preserved: later rows depend on
		// identifiers generated by earlier ones.
		for i := range order.Pizzas {
			pizza := &order.Pizzas[i]
			pizza.OrderID = order.OrderID

			// Like toppings below, a special id with no catalog row rejects
			// the whole order; the schema has no FK constraints to catch it.
			var special models.PizzaSpecial
			if err := tx.First(&special, pizza.SpecialID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: special %d not in catalog", ErrIntegrity, pizza.SpecialID)
				}
				return err
			}

			if err := tx.Create(pizza).Error; err != nil {
				return err
			}

			for j := range pizza.Toppings {
				join := &pizza.Toppings[j]
				join.PizzaID = pizza.ID

				// A topping id with no catalog row rejects the whole order
				// rather than being dropped silently.
				requested := models.ToppingFromJoin(*join)
				var topping models.Topping
				if err := tx.First(&topping, requested.ID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: topping %d not in catalog", ErrIntegrity, requested.ID)
					}
					return err
				}

				if err := tx.Create(join).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Order write rolled back")
		if errors.Is(err, ErrIntegrity) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.WithFields(log.Fields{
		"order_id": order.OrderID,
		"user_id":  order.UserID,
		"pizzas":   len(order.Pizzas),
	}).Info("Order placed")
	return order.OrderID, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uint) (models.Order, error) {
	if orderID < 1 {
		return models.Order{}, fmt.Errorf("%w: order id must be positive", ErrValidation)
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return models.Order{}, err
	}

	if err := s.hydrate(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("order_id").Find(&orders).Error; err != nil {
		return nil, err
	}

	for i := range orders {
		if err := s.hydrate(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// hydrate reassembles the full aggregate behind an order row via keyed
// lookups: address, pizzas, per-pizza special, join rows, per-join topping.
// Every lookup deserializes into a typed struct at the storage boundary.
func (s *orderService) hydrate(ctx context.Context, order *models.Order) error {
	db := s.db.WithContext(ctx)

	if order.DeliveryAddressID != nil {
		// The FK is set, so a missing address row is corruption, not "no
		// address".
		var address models.Address
		if err := db.First(&address, *order.DeliveryAddressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d references missing address %d",
					ErrIntegrity, order.OrderID, *order.DeliveryAddressID)
			}
			return err
		}
		order.DeliveryAddress = &address
	}

	var pizzas []models.Pizza
	if err := db.Where("order_id = ?", order.OrderID).Order("id").Find(&pizzas).Error; err != nil {
		return err
	}

	for i := range pizzas {
		pizza := &pizzas[i]

		var special models.PizzaSpecial
		if err := db.First(&special, pizza.SpecialID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: pizza %d references missing special %d",
					ErrIntegrity, pizza.ID, pizza.SpecialID)
			}
			return err
		}
		pizza.Special = &special

		var joins []models.PizzaTopping
		if err := db.Where("pizza_id = ?", pizza.ID).Find(&joins).Error; err != nil {
			return err
		}
		for j := range joins {
			join := &joins[j]
			var topping models.Topping
			if err := db.First(&topping, join.ToppingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: pizza %d references missing topping %d",
						ErrIntegrity, pizza.ID, join.ToppingID)
				}
				return err
			}
			join.Topping = &topping
		}
		pizza.Toppings = joins
	}

	order.Pizzas = pizzas
	return nil
}
