package models

// Pizza represents a pizza flavour together with its ingredients and menu entries
type Pizza struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Sabor       string       `gorm:"not null" json:"sabor" binding:"required"`
	Ingredients []Ingredient `gorm:"foreignKey:PizzaID" json:"ingredientes" binding:"omitempty,dive"`
	Menu        []MenuEntry  `gorm:"foreignKey:PizzaID" json:"cardapio" binding:"omitempty,dive"`
}

func (Pizza) TableName() string {
	return "pizza"
}

// PizzaRef is how a child row refers to its owning pizza on the wire.
// Only the id travels, which keeps the JSON graph acyclic.
type PizzaRef struct {
	ID uint `json:"id"`
}

// refTo builds the wire reference for a nullable foreign key
func refTo(pizzaID *uint) *PizzaRef {
	if pizzaID == nil {
		return nil
	}
	return &PizzaRef{ID: *pizzaID}
}

// PizzaPatch holds the only fields a partial pizza update understands.
// Unknown keys are dropped by the decoder; nil fields are left untouched.
type PizzaPatch struct {
	Sabor       *string       `json:"sabor"`
	Ingredients *[]Ingredient `json:"ingredientes"`
	Menu        *[]MenuEntry  `json:"cardapio"`
}

// IsEmpty reports whether the patch would change nothing
func (p PizzaPatch) IsEmpty() bool {
	return p.Sabor == nil && p.Ingredients == nil && p.Menu == nil
}
