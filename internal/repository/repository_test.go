package repository

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateAndFindWithPreloads(t *testing.T) {
	ctx := context.Background()
	pizzas := New[models.Pizza](setupTestDB(t), "Ingredients", "Menu")

	pizza := models.Pizza{
		Sabor:       "Calabresa",
		Ingredients: []models.Ingredient{{Name: "Calabresa", Quantity: "100g"}},
		Menu:        []models.MenuEntry{{Value: ptr(49.9), Size: "G"}},
	}
	require.NoError(t, pizzas.Create(ctx, &pizza))
	require.NotZero(t, pizza.ID)

	found, err := pizzas.FindByID(ctx, pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calabresa", found.Sabor)
	require.Len(t, found.Ingredients, 1)
	require.Len(t, found.Menu, 1)
	assert.Equal(t, pizza.ID, *found.Menu[0].PizzaID)
}

func TestFindByIDMissing(t *testing.T) {
	ingredients := New[models.Ingredient](setupTestDB(t))

	_, err := ingredients.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllOrdersByID(t *testing.T) {
	ctx := context.Background()
	entries := New[models.MenuEntry](setupTestDB(t))

	batch := []models.MenuEntry{{Value: ptr(10.0), Size: "P"}, {Value: ptr(20.0), Size: "M"}, {Value: ptr(30.0), Size: "G"}}
	require.NoError(t, entries.CreateAll(ctx, batch))
	for _, entry := range batch {
		assert.NotZero(t, entry.ID)
	}

	all, err := entries.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"P", "M", "G"}, []string{all[0].Size, all[1].Size, all[2].Size})
}

func TestCreateAllIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	ingredients := New[models.Ingredient](db)

	require.NoError(t, ingredients.Create(ctx, &models.Ingredient{ID: 5, Name: "Queijo", Quantity: "1kg"}))

	batch := []models.Ingredient{{ID: 6, Name: "Tomate", Quantity: "2un"}, {ID: 5, Name: "Duplicado", Quantity: "1g"}}
	require.Error(t, ingredients.CreateAll(ctx, batch))

	all, err := ingredients.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed batch must not leave partial rows")
}

func TestSaveExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	ingredients := New[models.Ingredient](setupTestDB(t))

	ingredient := models.Ingredient{Name: "Oregano", Quantity: "5g"}
	require.NoError(t, ingredients.Create(ctx, &ingredient))

	ingredient.Quantity = "10g"
	require.NoError(t, ingredients.Save(ctx, &ingredient))

	stored, err := ingredients.FindByID(ctx, ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "10g", stored.Quantity)

	exists, err := ingredients.ExistsByID(ctx, ingredient.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := ingredients.DeleteByID(ctx, ingredient.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = ingredients.DeleteByID(ctx, ingredient.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	exists, err = ingredients.ExistsByID(ctx, ingredient.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	pizzas := New[models.Pizza](db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := pizzas.WithTx(tx).Create(ctx, &models.Pizza{Sabor: "Atum"}); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	all, err := pizzas.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func ptr[T any](v T) *T {
	return &v
}
