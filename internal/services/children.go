package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/repository"
	"gorm.io/gorm"
)

var log = logging.For("services")

// pizzaChild is satisfied by *models.Ingredient and *models.MenuEntry
type pizzaChild[T any] interface {
	*T
	Key() uint
	ClearID()
	AttachTo(pizzaID uint)
}

// prepareForInsert clears every client supplied id in the pizza tree so the
// store assigns them, and turns absent child lists into empty ones.
func prepareForInsert(pizza *models.Pizza) {
	pizza.ID = 0
	for i := range pizza.Ingredients {
		pizza.Ingredients[i].ClearID()
	}
	for i := range pizza.Menu {
		pizza.Menu[i].ClearID()
	}
	withEmptyChildren(pizza)
}

func withEmptyChildren(pizza *models.Pizza) {
	if pizza.Ingredients == nil {
		pizza.Ingredients = []models.Ingredient{}
	}
	if pizza.Menu == nil {
		pizza.Menu = []models.MenuEntry{}
	}
}

// replaceChildren makes children the complete set of T rows owned by the pizza.
// Rows no longer in the set are detached (pizza_id = NULL), never deleted.
// Children whose id is stored are overwritten; any other id is cleared and the row inserted as new.
func replaceChildren[T any, P pizzaChild[T]](ctx context.Context, tx *gorm.DB, pizzaID uint, children []T) error {
	stored, err := storedIDs[T, P](ctx, tx, children)
	if err != nil {
		return err
	}

	keep := make([]uint, 0, len(children))
	for i := range children {
		child := P(&children[i])
		child.AttachTo(pizzaID)
		if _, ok := stored[child.Key()]; ok {
			keep = append(keep, child.Key())
		} else {
			child.ClearID()
		}
	}

	detach := tx.WithContext(ctx).Model(new(T)).Where("pizza_id = ?", pizzaID)
	if len(keep) > 0 {
		detach = detach.Where("id NOT IN ?", keep)
	}
	if err := detach.Update("pizza_id", nil).Error; err != nil {
		return fmt.Errorf("detaching children of pizza %d: %w", pizzaID, err)
	}

	for i := range children {
		if err := tx.WithContext(ctx).Save(&children[i]).Error; err != nil {
			return fmt.Errorf("saving child of pizza %d: %w", pizzaID, err)
		}
	}
	return nil
}

// storedIDs returns which of the children's non-zero ids exist in the T table
func storedIDs[T any, P pizzaChild[T]](ctx context.Context, tx *gorm.DB, children []T) (map[uint]struct{}, error) {
	var candidates []uint
	for i := range children {
		if key := P(&children[i]).Key(); key != 0 {
			candidates = append(candidates, key)
		}
	}
	stored := make(map[uint]struct{}, len(candidates))
	if len(candidates) == 0 {
		return stored, nil
	}

	var found []uint
	if err := tx.WithContext(ctx).Model(new(T)).Where("id IN ?", candidates).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("looking up child ids: %w", err)
	}
	for _, id := range found {
		stored[id] = struct{}{}
	}
	return stored, nil
}

// lookupError turns a repository miss into NOT_FOUND and anything else into an internal error
func lookupError(entity string, id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(entity, id)
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, fmt.Sprintf("loading %s %d", entity, id), err)
}

// batchItemError prefixes a classified error with the position of the failing batch item
func batchItemError(index int, err error) error {
	appErr, ok := apperrors.As(err)
	if !ok {
		return fmt.Errorf("batch item %d: %w", index, err)
	}
	details := map[string]any{"index": index}
	for k, v := range appErr.Details {
		details[k] = v
	}
	return &apperrors.Error{
		Code:    appErr.Code,
		Message: fmt.Sprintf("item %d: %s", index, appErr.Message),
		Cause:   appErr.Cause,
		Details: details,
	}
}
