package database

import (
	"github.com/blazingpizza/pizza-store/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates all tables the store needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Address{},
		&models.Order{},
		&models.Pizza{},
		&models.PizzaTopping{},
		&models.PizzaSpecial{},
		&models.Topping{},
	)
}

// SeedCatalog populates the specials and toppings catalogs when they are
// empty. The order core only ever reads these tables.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PizzaSpecial{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		log.Info("Specials catalog is empty, seeding initial data")
		specials := []models.PizzaSpecial{
			{Name: "Basic Cheese Pizza", BasePrice: 9.99, Description: "It's cheesy and delicious. Why wouldn't you want one?", ImageURL: "img/pizzas/cheese.jpg"},
			{Name: "Classic pepperoni", BasePrice: 10.50, Description: "It's the pizza you grew up with, but Blazing hot!", ImageURL: "img/pizzas/pepperoni.jpg"},
			{Name: "The Baconatorizor", BasePrice: 11.99, Description: "It has EVERY kind of bacon", ImageURL: "img/pizzas/bacon.jpg"},
			{Name: "Buffalo chicken", BasePrice: 12.75, Description: "Spicy chicken, hot sauce and bleu cheese, guaranteed to warm you up", ImageURL: "img/pizzas/meaty.jpg"},
			{Name: "Mushroom Lovers", BasePrice: 11.00, Description: "It has mushrooms. Isn't that obvious?", ImageURL: "img/pizzas/mushroom.jpg"},
			{Name: "Veggie Delight", BasePrice: 11.50, Description: "Fresh vegetables on a thin crust", ImageURL: "img/pizzas/salad.jpg"},
			{Name: "Margherita", BasePrice: 9.99, Description: "Traditional Italian pizza with tomatoes and basil", ImageURL: "img/pizzas/margherita.jpg"},
		}
		for i := range specials {
			if err := db.Create(&specials[i]).Error; err != nil {
				return err
			}
		}
	}

	if err := db.Model(&models.Topping{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		log.Info("Toppings catalog is empty, seeding initial data")
		toppings := []models.Topping{
			{Name: "Extra cheese", Price: 2.50},
			{Name: "American bacon", Price: 2.99},
			{Name: "British bacon", Price: 2.99},
			{Name: "Canadian bacon", Price: 2.99},
			{Name: "Pepperoni", Price: 2.50},
			{Name: "Buffalo chicken", Price: 3.50},
			{Name: "Mushrooms", Price: 2.00},
			{Name: "Onions", Price: 1.50},
			{Name: "Green peppers", Price: 1.50},
			{Name: "Black olives", Price: 1.75},
			{Name: "Fresh basil", Price: 1.50},
			{Name: "Pineapple", Price: 2.00},
			{Name: "Jalapenos", Price: 1.75},
			{Name: "Anchovies", Price: 2.75},
		}
		for i := range toppings {
			if err := db.Create(&toppings[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
