package models

import (
	"time"
)

// Order is the root of the order aggregate. The DeliveryAddress and Pizzas
// fields are hydrated by the reader and persisted row-by-row by the writer,
// so they are invisible to gorm on purpose.
type Order struct {
	OrderID           uint      `gorm:"primaryKey" json:"orderId"`
	UserID            string    `gorm:"index" json:"userId"`
	CreatedTime       time.Time `gorm:"not null" json:"createdTime"`
	DeliveryAddressID *uint     `json:"deliveryAddressId,omitempty"`
	DeliveryAddress   *Address  `gorm:"-" json:"deliveryAddress,omitempty"`
	Pizzas            []Pizza   `gorm:"-" json:"pizzas"`
}

// Address is a delivery address owned by exactly one order.
type Address struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
}

// Pizza size bounds in inches, matching the sizes the store actually bakes.
const (
	MinimumSize = 9
	MaximumSize = 17
)

// Pizza is a single pizza on an order. Special is resolved from the catalog
// on read; only SpecialID is persisted.
type Pizza struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"orderId"`
	SpecialID uint           `gorm:"not null" json:"specialId"`
	Size      int            `gorm:"not null" json:"size"`
	Special   *PizzaSpecial  `gorm:"-" json:"special,omitempty"`
	Toppings  []PizzaTopping `gorm:"-" json:"toppings"`
}

// TotalPrice is the special's base price scaled by size plus topping prices.
// Requires a hydrated pizza; returns 0 when the special is not resolved.
func (p *Pizza) TotalPrice() float64 {
	if p.Special == nil {
		return 0
	}
	total := p.Special.BasePrice * float64(p.Size) / float64(DefaultSize)
	for _, pt := range p.Toppings {
		if pt.Topping != nil {
			total += pt.Topping.Price
		}
	}
	return total
}

// DefaultSize is the size the base price refers to.
const DefaultSize = 12

// PizzaTopping links one pizza to one catalog topping. The (pizza, topping)
// pair is the identity; there is no independent lifecycle.
type PizzaTopping struct {
	PizzaID   uint     `gorm:"primaryKey;autoIncrement:false" json:"pizzaId"`
	ToppingID uint     `gorm:"primaryKey;autoIncrement:false" json:"toppingId"`
	Topping   *Topping `gorm:"-" json:"topping,omitempty"`
}
