package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
type Product struct {
	ID    int              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string           `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Price *decimal.Decimal `json:"price" gorm:"type:decimal(18,2)"`
	Stock *int             `json:"stock"`
	Color *string          `json:"color" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
}

// MarshalJSON writes the price as a JSON number rather than decimal's
// default quoted string.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product

	var price json.RawMessage
	if p.Price != nil {
		price = json.RawMessage(p.Price.String())
	}

	return json.Marshal(struct {
		product
		Price json.RawMessage `json:"price"`
	}{product(p), price})
}

// EntityID returns the product's primary key.
func (p *Product) EntityID() int { return p.ID }

// SetEntityID assigns the product's primary key.
func (p *Product) SetEntityID(id int) { p.ID = id }
