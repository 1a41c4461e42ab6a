package cart

import (
	"sync"

	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Line holds one product plus the quantity in the active cart. The
// product is a snapshot taken when the line was created.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line's contribution to the cart subtotal.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Store owns the cart lines. Lines are ordered by insertion and unique
// by product id; the subtotal is derived from the lines on every read.
type Store struct {
	mu    *sync.Mutex
	lines []Line
}

// NewStore builds an empty cart guarded by its own lock.
func NewStore() *Store {
	return NewStoreWithLock(new(sync.Mutex))
}

// NewStoreWithLock builds an empty cart guarded by mu. Passing the
// same lock to several stores lets a coordinator mutate them as one
// observable transition; see orders.NewLedger.
func NewStoreWithLock(mu *sync.Mutex) *Store {
	return &Store{mu: mu}
}

// AddLine puts quantity units of the product into the cart. An
// existing line for the same product grows instead of duplicating, and
// the merged quantity is re-validated against stock.
func (s *Store) AddLine(product catalog.Product, quantity int) ([]Line, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.Product.ID == product.ID {
			merged := line.Quantity + quantity
			if merged > product.Stock {
				return nil, pkgerrors.OutOfStock(product.ID, merged, product.Stock)
			}
			s.lines[i].Quantity = merged
			return s.LinesLocked(), nil
		}
	}

	if quantity > product.Stock {
		return nil, pkgerrors.OutOfStock(product.ID, quantity, product.Stock)
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: quantity})
	return s.LinesLocked(), nil
}

// RemoveLine drops the line for the product if present. Removing an
// absent line is not an error.
func (s *Store) RemoveLine(productID int) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return s.LinesLocked()
}

// AdjustQuantity applies a signed delta to a line's quantity. The
// result is capped at the product's stock; a delta that would drop the
// quantity below one is rejected rather than removing the line.
func (s *Store) AdjustQuantity(productID, delta int) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.Product.ID != productID {
			continue
		}
		next := line.Quantity + delta
		if next < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot drop below one")
		}
		if next > line.Product.Stock {
			next = line.Product.Stock
		}
		s.lines[i].Quantity = next
		return s.LinesLocked(), nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClearLocked()
}

// ClearLocked empties the cart. The caller must hold the store's lock.
func (s *Store) ClearLocked() {
	s.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LinesLocked()
}

// Subtotal recomputes the cart subtotal from the current lines.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.lines)
}

// LinesLocked returns a copy of the current lines. The caller must
// hold the store's lock.
func (s *Store) LinesLocked() []Line {
	return append([]Line(nil), s.lines...)
}

func subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
