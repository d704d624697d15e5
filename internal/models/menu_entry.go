package models

import "encoding/json"

// MenuEntry (cardapio) is a priced, sized offering of a pizza
type MenuEntry struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Value   *float64 `gorm:"column:valor;not null" json:"valor" binding:"required"`
	Size    string  `gorm:"column:tamanho;not null" json:"tamanho" binding:"required,notblank"`
	PizzaID *uint   `gorm:"index" json:"-"`
}

func (MenuEntry) TableName() string {
	return "cardapio"
}

// Key returns the surrogate id
func (m *MenuEntry) Key() uint {
	return m.ID
}

// ClearID drops the surrogate id so the row is inserted as new
func (m *MenuEntry) ClearID() {
	m.ID = 0
}

// AttachTo points the entry at its owning pizza
func (m *MenuEntry) AttachTo(pizzaID uint) {
	m.PizzaID = &pizzaID
}

// MarshalJSON writes the owning pizza as {"id": n}
func (m MenuEntry) MarshalJSON() ([]byte, error) {
	type alias MenuEntry
	return json.Marshal(struct {
		alias
		Pizza *PizzaRef `json:"pizza,omitempty"`
	}{alias: alias(m), Pizza: refTo(m.PizzaID)})
}

// UnmarshalJSON reads the owning pizza from {"pizza": {"id": n}}
func (m *MenuEntry) UnmarshalJSON(data []byte) error {
	type alias MenuEntry
	aux := struct {
		*alias
		Pizza *PizzaRef `json:"pizza"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Pizza != nil {
		m.AttachTo(aux.Pizza.ID)
	}
	return nil
}

// MenuEntryRequest is the create and full-update payload. The nested pizza
// carries only an id that must resolve to an existing pizza.
type MenuEntryRequest struct {
	Pizza *PizzaLookup `json:"pizza"`
	Price *float64     `json:"preco" binding:"required"`
	Size  string       `json:"tamanho" binding:"required,notblank"`
}

// PizzaID returns the referenced pizza id, if any
func (r MenuEntryRequest) PizzaID() (uint, bool) {
	if r.Pizza == nil || r.Pizza.ID == nil {
		return 0, false
	}
	return *r.Pizza.ID, true
}

// PizzaLookup is the nested pizza of a MenuEntryRequest
type PizzaLookup struct {
	ID   *uint  `json:"id"`
	Nome string `json:"nome,omitempty"`
}

// MenuEntryPatch is the partial update payload. A supplied pizza is used as-is, without lookup.
type MenuEntryPatch struct {
	Value *float64  `json:"valor"`
	Size  *string   `json:"tamanho"`
	Pizza *PizzaRef `json:"pizza"`
}
