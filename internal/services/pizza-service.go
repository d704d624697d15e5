package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas with their ingredients and menu entries
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza, including any nested children
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// CreatePizzas creates every pizza or none of them
	CreatePizzas(ctx context.Context, pizzas []models.Pizza) ([]models.Pizza, error)
	// UpdatePizza replaces the flavour and both child sets of an existing pizza
	UpdatePizza(ctx context.Context, id uint, pizza models.Pizza) (models.Pizza, error)
	// PatchPizza overwrites only the fields present in the patch
	PatchPizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error)
	// DeletePizza deletes a pizza from the database by its ID
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db     *gorm.DB
	pizzas repository.Repository[models.Pizza]
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{
		db:     db,
		pizzas: repository.New[models.Pizza](db, "Ingredients", "Menu"),
	}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas, err := s.pizzas.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pizzas: %w", err)
	}
	if pizzas == nil {
		pizzas = []models.Pizza{}
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	pizza, err := s.pizzas.FindByID(ctx, id)
	if err != nil {
		return models.Pizza{}, lookupError("pizza", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	prepareForInsert(&pizza)
	if err := s.pizzas.Create(ctx, &pizza); err != nil {
		return models.Pizza{}, fmt.Errorf("creating pizza: %w", err)
	}
	log.WithFields(logrus.Fields{"pizza_id": pizza.ID, "sabor": pizza.Sabor}).Info("Pizza created")
	return pizza, nil
}

func (s *pizzaService) CreatePizzas(ctx context.Context, pizzas []models.Pizza) ([]models.Pizza, error) {
	for i := range pizzas {
		prepareForInsert(&pizzas[i])
	}
	if err := s.pizzas.CreateAll(ctx, pizzas); err != nil {
		return nil, fmt.Errorf("creating %d pizzas: %w", len(pizzas), err)
	}
	if pizzas == nil {
		pizzas = []models.Pizza{}
	}
	log.WithField("count", len(pizzas)).Info("Pizza batch created")
	return pizzas, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, pizza models.Pizza) (models.Pizza, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizzas := s.pizzas.WithTx(tx)
		existing, err := pizzas.FindByID(ctx, id)
		if err != nil {
			return lookupError("pizza", id, err)
		}

		existing.Sabor = pizza.Sabor
		if err := pizzas.Save(ctx, &existing); err != nil {
			return fmt.Errorf("saving pizza %d: %w", id, err)
		}
		if err := replaceChildren(ctx, tx, id, pizza.Ingredients); err != nil {
			return err
		}
		return replaceChildren(ctx, tx, id, pizza.Menu)
	})
	if err != nil {
		return models.Pizza{}, err
	}

	log.WithField("pizza_id", id).Info("Pizza replaced")
	return s.GetPizzaByID(ctx, id)
}

func (s *pizzaService) PatchPizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizzas := s.pizzas.WithTx(tx)
		existing, err := pizzas.FindByID(ctx, id)
		if err != nil {
			return lookupError("pizza", id, err)
		}

		if patch.Sabor != nil {
			existing.Sabor = *patch.Sabor
			if err := pizzas.Save(ctx, &existing); err != nil {
				return fmt.Errorf("saving pizza %d: %w", id, err)
			}
		}
		if patch.Ingredients != nil {
			if err := replaceChildren(ctx, tx, id, *patch.Ingredients); err != nil {
				return err
			}
		}
		if patch.Menu != nil {
			if err := replaceChildren(ctx, tx, id, *patch.Menu); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}

	log.WithFields(logrus.Fields{
		"pizza_id":     id,
		"sabor":        patch.Sabor != nil,
		"ingredientes": patch.Ingredients != nil,
		"cardapio":     patch.Menu != nil,
	}).Info("Pizza patched")
	return s.GetPizzaByID(ctx, id)
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	children, err := s.countChildren(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.pizzas.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting pizza %d: %w", id, err)
	}
	if !deleted {
		return apperrors.NotFound("pizza", id)
	}

	entry := log.WithField("pizza_id", id)
	if children > 0 {
		// no cascade: children keep pointing at the deleted id
		entry.WithField("orphaned_children", children).Warn("Pizza deleted while still referenced by ingredientes/cardapio rows")
	} else {
		entry.Info("Pizza deleted")
	}
	return nil
}

// countChildren counts ingredient and menu rows still pointing at the pizza
func (s *pizzaService) countChildren(ctx context.Context, id uint) (int64, error) {
	var ingredients, entries int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("pizza_id = ?", id).Count(&ingredients).Error; err != nil {
		return 0, fmt.Errorf("counting ingredientes of pizza %d: %w", id, err)
	}
	if err := s.db.WithContext(ctx).Model(&models.MenuEntry{}).Where("pizza_id = ?", id).Count(&entries).Error; err != nil {
		return 0, fmt.Errorf("counting cardapio of pizza %d: %w", id, err)
	}
	return ingredients + entries, nil
}
