package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusAt(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected OrderStatus
	}{
		{name: "just placed", elapsed: 0, expected: StatusPlaced},
		{name: "one minute in", elapsed: time.Minute, expected: StatusPlaced},
		{name: "preparing", elapsed: 5 * time.Minute, expected: StatusPreparing},
		{name: "out for delivery", elapsed: 15 * time.Minute, expected: StatusOutForDelivery},
		{name: "delivered at the boundary", elapsed: 25 * time.Minute, expected: StatusDelivered},
		{name: "delivered long after", elapsed: 3 * time.Hour, expected: StatusDelivered},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderStatusAt(created, created.Add(tt.elapsed)))
		})
	}
}

func TestWithStatus(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := Order{OrderID: 7, UserID: "u1", CreatedTime: created}

	view := WithStatus(order, created.Add(30*time.Second))

	assert.Equal(t, StatusPlaced, view.Status)
	assert.Equal(t, created.Add(25*time.Minute), view.EstimatedDelivery)
	assert.Equal(t, uint(7), view.OrderID)

	// Same inputs, same output: the derivation is pure.
	again := WithStatus(order, created.Add(30*time.Second))
	assert.Equal(t, view, again)
}

func TestToppingFromJoin(t *testing.T) {
	full := Topping{ID: 4, Name: "Extra cheese", Price: 2.50}
	join := PizzaTopping{PizzaID: 1, ToppingID: 4, Topping: &full}

	lossy := ToppingFromJoin(join)

	require.Equal(t, uint(4), lossy.ID)
	// Only the identifier survives; the mapping must never replace a catalog
	// lookup.
	assert.Empty(t, lossy.Name)
	assert.Zero(t, lossy.Price)
}

func TestPizzaTotalPrice(t *testing.T) {
	pizza := Pizza{
		Size:    DefaultSize,
		Special: &PizzaSpecial{ID: 1, Name: "Margherita", BasePrice: 10.00},
		Toppings: []PizzaTopping{
			{ToppingID: 1, Topping: &Topping{ID: 1, Price: 2.50}},
			{ToppingID: 2, Topping: &Topping{ID: 2, Price: 1.50}},
		},
	}

	assert.InDelta(t, 14.00, pizza.TotalPrice(), 0.001)

	// Unhydrated pizzas have no price.
	bare := Pizza{Size: DefaultSize}
	assert.Zero(t, bare.TotalPrice())
}
