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

// MenuService manages cardapio entries. Create and full update resolve the
// referenced pizza first; patch takes the reference as given.
type MenuService interface {
	GetAllMenuEntries(ctx context.Context) ([]models.MenuEntry, error)
	GetMenuEntryByID(ctx context.Context, id uint) (models.MenuEntry, error)
	CreateMenuEntry(ctx context.Context, req models.MenuEntryRequest) (models.MenuEntry, error)
	CreateMenuEntries(ctx context.Context, reqs []models.MenuEntryRequest) ([]models.MenuEntry, error)
	UpdateMenuEntry(ctx context.Context, id uint, req models.MenuEntryRequest) (models.MenuEntry, error)
	PatchMenuEntry(ctx context.Context, id uint, patch models.MenuEntryPatch) (models.MenuEntry, error)
	// DeleteMenuEntry is a no-op for unknown ids
	DeleteMenuEntry(ctx context.Context, id uint) error
}

type menuService struct {
	db      *gorm.DB
	entries repository.Repository[models.MenuEntry]
	pizzas  repository.Repository[models.Pizza]
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{
		db:      db,
		entries: repository.New[models.MenuEntry](db),
		pizzas:  repository.New[models.Pizza](db),
	}
}

func (s *menuService) GetAllMenuEntries(ctx context.Context) ([]models.MenuEntry, error) {
	entries, err := s.entries.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cardapio: %w", err)
	}
	if entries == nil {
		entries = []models.MenuEntry{}
	}
	return entries, nil
}

func (s *menuService) GetMenuEntryByID(ctx context.Context, id uint) (models.MenuEntry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return models.MenuEntry{}, lookupError("menu entry", id, err)
	}
	return entry, nil
}

func (s *menuService) CreateMenuEntry(ctx context.Context, req models.MenuEntryRequest) (models.MenuEntry, error) {
	entry, err := s.fromRequest(ctx, s.pizzas, req)
	if err != nil {
		return models.MenuEntry{}, err
	}
	if err := s.entries.Create(ctx, &entry); err != nil {
		return models.MenuEntry{}, fmt.Errorf("creating menu entry: %w", err)
	}
	log.WithFields(logrus.Fields{"menu_entry_id": entry.ID, "pizza_id": *entry.PizzaID}).Debug("Menu entry created")
	return entry, nil
}

func (s *menuService) CreateMenuEntries(ctx context.Context, reqs []models.MenuEntryRequest) ([]models.MenuEntry, error) {
	entries := make([]models.MenuEntry, 0, len(reqs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizzas := s.pizzas.WithTx(tx)
		for i, req := range reqs {
			entry, err := s.fromRequest(ctx, pizzas, req)
			if err != nil {
				return batchItemError(i, err)
			}
			entries = append(entries, entry)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := s.entries.WithTx(tx).CreateAll(ctx, entries); err != nil {
			return fmt.Errorf("creating %d menu entries: %w", len(entries), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.WithField("count", len(entries)).Info("Menu entry batch created")
	return entries, nil
}

func (s *menuService) UpdateMenuEntry(ctx context.Context, id uint, req models.MenuEntryRequest) (models.MenuEntry, error) {
	existing, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return models.MenuEntry{}, lookupError("menu entry", id, err)
	}

	replacement, err := s.fromRequest(ctx, s.pizzas, req)
	if err != nil {
		return models.MenuEntry{}, err
	}
	existing.Value = replacement.Value
	existing.Size = replacement.Size
	existing.PizzaID = replacement.PizzaID
	if err := s.entries.Save(ctx, &existing); err != nil {
		return models.MenuEntry{}, fmt.Errorf("saving menu entry %d: %w", id, err)
	}
	return existing, nil
}

func (s *menuService) PatchMenuEntry(ctx context.Context, id uint, patch models.MenuEntryPatch) (models.MenuEntry, error) {
	existing, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return models.MenuEntry{}, lookupError("menu entry", id, err)
	}

	if patch.Value != nil {
		existing.Value = patch.Value
	}
	if patch.Size != nil {
		existing.Size = *patch.Size
	}
	if patch.Pizza != nil {
		existing.AttachTo(patch.Pizza.ID)
	}
	if err := s.entries.Save(ctx, &existing); err != nil {
		return models.MenuEntry{}, fmt.Errorf("saving menu entry %d: %w", id, err)
	}
	return existing, nil
}

func (s *menuService) DeleteMenuEntry(ctx context.Context, id uint) error {
	deleted, err := s.entries.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting menu entry %d: %w", id, err)
	}
	log.WithFields(logrus.Fields{"menu_entry_id": id, "deleted": deleted}).Debug("Menu entry delete")
	return nil
}

// fromRequest builds an unsaved entry from the request, resolving its pizza
func (s *menuService) fromRequest(ctx context.Context, pizzas repository.Repository[models.Pizza], req models.MenuEntryRequest) (models.MenuEntry, error) {
	pizzaID, ok := req.PizzaID()
	if !ok {
		return models.MenuEntry{}, apperrors.BadRequest("pizza id is required for a menu entry")
	}
	if req.Price == nil {
		return models.MenuEntry{}, apperrors.BadRequest("preco is required for a menu entry")
	}
	pizza, err := pizzas.FindByID(ctx, pizzaID)
	if err != nil {
		return models.MenuEntry{}, lookupError("pizza", pizzaID, err)
	}

	entry := models.MenuEntry{Value: req.Price, Size: req.Size}
	entry.AttachTo(pizza.ID)
	return entry, nil
}
