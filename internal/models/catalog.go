package models

import "fmt"

// PizzaSpecial is a read-only catalog entry describing a base pizza.
// Pizzas reference specials by id and never mutate them.
type PizzaSpecial struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	BasePrice   float64 `gorm:"not null" json:"basePrice"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// FormattedPrice renders the base price for display.
func (s *PizzaSpecial) FormattedPrice() string {
	return fmt.Sprintf("%.2f", s.BasePrice)
}

// Topping is a read-only catalog entry shared by reference across pizzas.
type Topping struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
}

// FormattedPrice renders the topping price for display.
func (t *Topping) FormattedPrice() string {
	return fmt.Sprintf("%.2f", t.Price)
}

// ToppingFromJoin builds a Topping carrying only the identifier from a join
// row. It is deliberately lossy: the result has no name or price and must
// never stand in for a catalog lookup when a hydrated Topping is needed.
func ToppingFromJoin(join PizzaTopping) Topping {
	return Topping{ID: join.ToppingID}
}
