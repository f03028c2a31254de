package services

import (
	"context"
	"testing"
	"time"

	"github.com/blazingpizza/pizza-store/internal/database"
	"github.com/blazingpizza/pizza-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and a
// small catalog: specials 1-2 and toppings 1-3.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	specials := []models.PizzaSpecial{
		{Name: "Basic Cheese Pizza", BasePrice: 9.99},
		{Name: "Classic pepperoni", BasePrice: 10.50},
	}
	for i := range specials {
		require.NoError(t, db.Create(&specials[i]).Error)
	}

	toppings := []models.Topping{
		{Name: "Extra cheese", Price: 2.50},
		{Name: "Mushrooms", Price: 2.00},
		{Name: "Onions", Price: 1.50},
	}
	for i := range toppings {
		require.NoError(t, db.Create(&toppings[i]).Error)
	}

	return db
}

func testOrder() *models.Order {
	return &models.Order{
		UserID: "user-1",
		DeliveryAddress: &models.Address{
			Name:       "Hungry Customer",
			Line1:      "1 Pizza Way",
			City:       "Springfield",
			Region:     "IL",
			PostalCode: "62701",
		},
		Pizzas: []models.Pizza{
			{
				SpecialID: 1,
				Size:      12,
				Toppings: []models.PizzaTopping{
					{ToppingID: 1},
					{ToppingID: 2},
				},
			},
			{
				SpecialID: 2,
				Size:      14,
			},
		},
	}
}

func TestPlaceOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	before := time.Now()
	order := testOrder()

	orderID, err := svc.PlaceOrder(ctx, order)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	got, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, got.OrderID)
	assert.Equal(t, "user-1", got.UserID)
	assert.False(t, got.CreatedTime.Before(before.Truncate(time.Second)),
		"CreatedTime must be stamped at or after the write began")

	require.NotNil(t, got.DeliveryAddress)
	assert.Equal(t, "Hungry Customer", got.DeliveryAddress.Name)
	assert.Equal(t, "1 Pizza Way", got.DeliveryAddress.Line1)
	assert.Equal(t, "Springfield", got.DeliveryAddress.City)
	assert.Equal(t, "62701", got.DeliveryAddress.PostalCode)

	require.Len(t, got.Pizzas, 2)
	first, second := got.Pizzas[0], got.Pizzas[1]

	// Pizzas come back in insertion order.
	assert.Equal(t, uint(1), first.SpecialID)
	assert.Equal(t, 12, first.Size)
	assert.Equal(t, uint(2), second.SpecialID)
	assert.Equal(t, 14, second.Size)

	// Specials are resolved from the catalog, not carried on the wire.
	require.NotNil(t, first.Special)
	assert.Equal(t, "Basic Cheese Pizza", first.Special.Name)
	require.NotNil(t, second.Special)
	assert.Equal(t, "Classic pepperoni", second.Special.Name)

	require.Len(t, first.Toppings, 2)
	gotToppings := map[uint]string{}
	for _, pt := range first.Toppings {
		require.NotNil(t, pt.Topping)
		gotToppings[pt.ToppingID] = pt.Topping.Name
	}
	assert.Equal(t, map[uint]string{1: "Extra cheese", 2: "Mushrooms"}, gotToppings)
	assert.Empty(t, second.Toppings)
}

func TestPlaceOrderStampsCreatedTime(t *testing.T) {
	db := newTestDB(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &orderService{db: db, now: func() time.Time { return fixed }}

	order := testOrder()
	// A forged client timestamp must be ignored.
	order.CreatedTime = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	orderID, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)

	got, err := svc.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix(), got.CreatedTime.Unix())
}

func TestPlaceOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	testCases := []struct {
		name  string
		order *models.Order
	}{
		{name: "nil order", order: nil},
		{name: "no pizzas", order: &models.Order{UserID: "u"}},
		{
			name: "missing special",
			order: &models.Order{
				UserID: "u",
				Pizzas: []models.Pizza{{Size: 12}},
			},
		},
		{
			name: "size too small",
			order: &models.Order{
				UserID: "u",
				Pizzas: []models.Pizza{{SpecialID: 1, Size: 4}},
			},
		},
		{
			name: "size too large",
			order: &models.Order{
				UserID: "u",
				Pizzas: []models.Pizza{{SpecialID: 1, Size: 30}},
			},
		},
		{
			name: "zero topping id",
			order: &models.Order{
				UserID: "u",
				Pizzas: []models.Pizza{{SpecialID: 1, Size: 12, Toppings: []models.PizzaTopping{{}}}},
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(ctx, tt.order)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// No database work happened for any of the rejected graphs.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownToppingRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order := testOrder()
	// Second pizza references a topping that is not in the catalog. By the
	// time the writer notices, the address, order and first pizza rows are
	// already inserted inside the transaction.
	order.Pizzas[1].Toppings = []models.PizzaTopping{{ToppingID: 999}}

	_, err := svc.PlaceOrder(ctx, order)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIntegrity)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"addresses", &models.Address{}},
		{"orders", &models.Order{}},
		{"pizzas", &models.Pizza{}},
		{"pizza_toppings", &models.PizzaTopping{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Zero(t, count, "no %s rows may survive the rollback", probe.name)
	}
}

func TestPlaceOrderUnknownSpecialRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order := testOrder()
	// Second pizza references a special that is not in the catalog. The
	// address, order and first pizza rows are already inserted inside the
	// transaction when the writer notices.
	order.Pizzas[1].SpecialID = 999

	_, err := svc.PlaceOrder(ctx, order)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIntegrity)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"addresses", &models.Address{}},
		{"orders", &models.Order{}},
		{"pizzas", &models.Pizza{}},
		{"pizza_toppings", &models.PizzaTopping{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Zero(t, count, "no %s rows may survive the rollback", probe.name)
	}

	// The store still accepts a corrected graph afterwards.
	orderID, err := svc.PlaceOrder(ctx, testOrder())
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, got.Pizzas, 2)
}

func TestPlaceOrderWithoutAddress(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order := testOrder()
	order.DeliveryAddress = nil

	orderID, err := svc.PlaceOrder(ctx, order)
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, got.DeliveryAddressID, "absent address stays unset, not a zero sentinel")
	assert.Nil(t, got.DeliveryAddress)
}

func TestGetOrderNotFoundAndValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	_, err := svc.GetOrder(ctx, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetOrder(ctx, 999999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersCompleteness(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	first := testOrder()
	idA, err := svc.PlaceOrder(ctx, first)
	require.NoError(t, err)

	second := &models.Order{
		UserID: "user-2",
		DeliveryAddress: &models.Address{
			Name: "Second Customer", Line1: "2 Calzone Ct", City: "Shelbyville", Region: "IL", PostalCode: "62565",
		},
		Pizzas: []models.Pizza{
			{SpecialID: 2, Size: 17, Toppings: []models.PizzaTopping{{ToppingID: 3}}},
		},
	}
	idB, err := svc.PlaceOrder(ctx, second)
	require.NoError(t, err)
	require.NotEqual(t, idA, idB)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byID := map[uint]models.Order{}
	for _, o := range orders {
		byID[o.OrderID] = o
	}

	a, ok := byID[idA]
	require.True(t, ok)
	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, "Hungry Customer", a.DeliveryAddress.Name)
	require.Len(t, a.Pizzas, 2)
	assert.Len(t, a.Pizzas[0].Toppings, 2)

	b, ok := byID[idB]
	require.True(t, ok)
	assert.Equal(t, "user-2", b.UserID)
	assert.Equal(t, "Second Customer", b.DeliveryAddress.Name)
	require.Len(t, b.Pizzas, 1)
	require.Len(t, b.Pizzas[0].Toppings, 1)
	assert.Equal(t, "Onions", b.Pizzas[0].Toppings[0].Topping.Name)
}

func TestToppingFanOut(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order := &models.Order{
		UserID: "user-1",
		Pizzas: []models.Pizza{
			{
				SpecialID: 1,
				Size:      12,
				Toppings:  []models.PizzaTopping{{ToppingID: 1}, {ToppingID: 2}, {ToppingID: 3}},
			},
		},
	}

	orderID, err := svc.PlaceOrder(ctx, order)
	require.NoError(t, err)

	var joinCount int64
	require.NoError(t, db.Model(&models.PizzaTopping{}).Count(&joinCount).Error)
	assert.Equal(t, int64(3), joinCount)

	got, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, got.Pizzas, 1)

	ids := map[uint]bool{}
	for _, pt := range got.Pizzas[0].Toppings {
		ids[pt.ToppingID] = true
	}
	assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, ids)
}

func TestGetOrderIntegrityFaults(t *testing.T) {
	ctx := context.Background()

	t.Run("missing special fails the reconstruction", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewOrderService(db)

		orderID, err := svc.PlaceOrder(ctx, testOrder())
		require.NoError(t, err)

		require.NoError(t, db.Delete(&models.PizzaSpecial{}, 1).Error)

		_, err = svc.GetOrder(ctx, orderID)
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("missing topping fails the reconstruction", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewOrderService(db)

		orderID, err := svc.PlaceOrder(ctx, testOrder())
		require.NoError(t, err)

		require.NoError(t, db.Delete(&models.Topping{}, 2).Error)

		_, err = svc.GetOrder(ctx, orderID)
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("missing address row is corruption, not no-address", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewOrderService(db)

		orderID, err := svc.PlaceOrder(ctx, testOrder())
		require.NoError(t, err)

		require.NoError(t, db.Exec("DELETE FROM addresses").Error)

		_, err = svc.GetOrder(ctx, orderID)
		require.ErrorIs(t, err, ErrIntegrity)
	})
}
