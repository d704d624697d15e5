package models

import "encoding/json"

// Ingredient is a named quantity of something that goes on a pizza
type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:ingrediente;size:50;not null" json:"ingrediente" binding:"required,notblank,min=2,max=50"`
	Quantity string `gorm:"column:quantidade;not null" json:"quantidade" binding:"required,notblank"`
	PizzaID  *uint  `gorm:"index" json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredientes"
}

// Key returns the surrogate id
func (i *Ingredient) Key() uint {
	return i.ID
}

// ClearID drops the surrogate id so the row is inserted as new
func (i *Ingredient) ClearID() {
	i.ID = 0
}

// AttachTo points the ingredient at its owning pizza
func (i *Ingredient) AttachTo(pizzaID uint) {
	i.PizzaID = &pizzaID
}

// MarshalJSON writes the owning pizza as {"id": n}
func (i Ingredient) MarshalJSON() ([]byte, error) {
	type alias Ingredient
	return json.Marshal(struct {
		alias
		Pizza *PizzaRef `json:"pizza,omitempty"`
	}{alias: alias(i), Pizza: refTo(i.PizzaID)})
}

// UnmarshalJSON reads the owning pizza from {"pizza": {"id": n}}
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type alias Ingredient
	aux := struct {
		*alias
		Pizza *PizzaRef `json:"pizza"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Pizza != nil {
		i.AttachTo(aux.Pizza.ID)
	}
	return nil
}

// IngredientPatch is the partial update payload; nil fields are left untouched
type IngredientPatch struct {
	Name     *string   `json:"ingrediente"`
	Quantity *string   `json:"quantidade"`
	Pizza    *PizzaRef `json:"pizza"`
}
