package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one master catalog entry. The listing fields are fixed at
// process start; only Stock moves, and only through DecrementStock.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	Stock       int             `json:"stock"`
}

func (p Product) validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("product %d: name is required", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d: price cannot be negative", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %d: rating %f outside [0,5]", p.ID, p.Rating)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %d: stock cannot be negative", p.ID)
	}
	return nil
}
