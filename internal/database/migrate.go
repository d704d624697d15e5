package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the pizza, ingredientes, cardapio and oauth_tokens tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Pizza{}, &models.Ingredient{}, &models.MenuEntry{}, &models.OAuthToken{}); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}

// Seed inserts a few sample pizzas when the pizza table is empty.
// It reports whether anything was inserted.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting pizzas: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	pizzas := []models.Pizza{
		{
			Sabor: "Margherita",
			Ingredients: []models.Ingredient{
				{Name: "Molho de tomate", Quantity: "120g"},
				{Name: "Mussarela", Quantity: "200g"},
				{Name: "Manjericao", Quantity: "10g"},
			},
			Menu: []models.MenuEntry{{Value: price(39.9), Size: "M"}, {Value: price(49.9), Size: "G"}},
		},
		{
			Sabor: "Calabresa",
			Ingredients: []models.Ingredient{
				{Name: "Calabresa", Quantity: "100g"},
				{Name: "Cebola", Quantity: "50g"},
			},
			Menu: []models.MenuEntry{{Value: price(42.9), Size: "M"}, {Value: price(52.9), Size: "G"}},
		},
		{
			Sabor: "Portuguesa",
			Ingredients: []models.Ingredient{
				{Name: "Presunto", Quantity: "80g"},
				{Name: "Ovo", Quantity: "2un"},
				{Name: "Azeitona", Quantity: "30g"},
			},
			Menu: []models.MenuEntry{{Value: price(54.9), Size: "G"}},
		},
	}
	if err := db.Create(&pizzas).Error; err != nil {
		return false, fmt.Errorf("seeding pizzas: %w", err)
	}
	log.WithField("pizzas", len(pizzas)).Info("Database seeded successfully")
	return true, nil
}

func price(v float64) *float64 {
	return &v
}
