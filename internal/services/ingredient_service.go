package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// IngredientService manages ingredientes, each optionally owned by a pizza
type IngredientService interface {
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredientByID(ctx context.Context, id uint) (models.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error)
	CreateIngredients(ctx context.Context, ingredients []models.Ingredient) ([]models.Ingredient, error)
	// UpdateIngredient overwrites name and quantity; the owning pizza only changes when one is supplied
	UpdateIngredient(ctx context.Context, id uint, ingredient models.Ingredient) (models.Ingredient, error)
	PatchIngredient(ctx context.Context, id uint, patch models.IngredientPatch) (models.Ingredient, error)
	// DeleteIngredient is a no-op for unknown ids
	DeleteIngredient(ctx context.Context, id uint) error
}

type ingredientService struct {
	ingredients repository.Repository[models.Ingredient]
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{ingredients: repository.New[models.Ingredient](db)}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ingredientes: %w", err)
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (models.Ingredient, error) {
	ingredient, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return models.Ingredient{}, lookupError("ingredient", id, err)
	}
	return ingredient, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
	ingredient.ID = 0
	if err := s.ingredients.Create(ctx, &ingredient); err != nil {
		return models.Ingredient{}, fmt.Errorf("creating ingredient: %w", err)
	}
	log.WithFields(logrus.Fields{"ingredient_id": ingredient.ID, "pizza_id": ingredient.PizzaID}).Debug("Ingredient created")
	return ingredient, nil
}

func (s *ingredientService) CreateIngredients(ctx context.Context, ingredients []models.Ingredient) ([]models.Ingredient, error) {
	for i := range ingredients {
		ingredients[i].ID = 0
	}
	if err := s.ingredients.CreateAll(ctx, ingredients); err != nil {
		return nil, fmt.Errorf("creating %d ingredientes: %w", len(ingredients), err)
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	log.WithField("count", len(ingredients)).Info("Ingredient batch created")
	return ingredients, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, ingredient models.Ingredient) (models.Ingredient, error) {
	existing, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return models.Ingredient{}, lookupError("ingredient", id, err)
	}

	existing.Name = ingredient.Name
	existing.Quantity = ingredient.Quantity
	if ingredient.PizzaID != nil {
		existing.PizzaID = ingredient.PizzaID
	}
	if err := s.ingredients.Save(ctx, &existing); err != nil {
		return models.Ingredient{}, fmt.Errorf("saving ingredient %d: %w", id, err)
	}
	return existing, nil
}

func (s *ingredientService) PatchIngredient(ctx context.Context, id uint, patch models.IngredientPatch) (models.Ingredient, error) {
	existing, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return models.Ingredient{}, lookupError("ingredient", id, err)
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Quantity != nil {
		existing.Quantity = *patch.Quantity
	}
	if patch.Pizza != nil {
		existing.AttachTo(patch.Pizza.ID)
	}
	if err := s.ingredients.Save(ctx, &existing); err != nil {
		return models.Ingredient{}, fmt.Errorf("saving ingredient %d: %w", id, err)
	}
	return existing, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	deleted, err := s.ingredients.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting ingredient %d: %w", id, err)
	}
	log.WithFields(logrus.Fields{"ingredient_id": id, "deleted": deleted}).Debug("Ingredient delete")
	return nil
}
