package catalog

import (
	"strings"
	"sync"

	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
)

// WildcardCategory matches every product regardless of its category.
const WildcardCategory = "All"

// State is the read-only snapshot handed to callers. FilteredItems is
// derived from the canonical fields at snapshot time, never stored.
type State struct {
	Items            []Product `json:"items"`
	Categories       []string  `json:"categories"`
	SelectedCategory string    `json:"selected_category"`
	CommittedQuery   string    `json:"committed_query"`
	FilteredItems    []Product `json:"filtered_items"`
}

// Store owns the master product list and the active filter inputs.
type Store struct {
	mu               *sync.Mutex
	items            []Product
	categories       []string
	selectedCategory string
	committedQuery   string
}

// NewStore validates the seed products and derives the category list
// when none is given. The wildcard always leads the category list.
func NewStore(items []Product, categories []string) (*Store, error) {
	return NewStoreWithLock(items, categories, new(sync.Mutex))
}

// NewStoreWithLock builds the store guarded by mu. Passing the same
// lock to several stores lets a coordinator mutate them as one
// observable transition; see orders.NewLedger.
func NewStoreWithLock(items []Product, categories []string, mu *sync.Mutex) (*Store, error) {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if err := item.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.ID]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate product id in seed catalog")
		}
		seen[item.ID] = struct{}{}
	}

	if len(categories) == 0 {
		categories = deriveCategories(items)
	}
	if len(categories) == 0 || categories[0] != WildcardCategory {
		categories = append([]string{WildcardCategory}, categories...)
	}

	return &Store{
		mu:               mu,
		items:            append([]Product(nil), items...),
		categories:       append([]string(nil), categories...),
		selectedCategory: WildcardCategory,
	}, nil
}

// SetCategory selects the active category. Unknown categories are
// accepted and simply yield an empty filtered view.
func (s *Store) SetCategory(category string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	return s.snapshotLocked()
}

// SetSearchQuery commits a search term. Empty matches everything.
func (s *Store) SetSearchQuery(query string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committedQuery = query
	return s.snapshotLocked()
}

// Snapshot returns the current catalog state including the derived
// filtered view.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// FilteredItems recomputes the filtered view from the current inputs.
func (s *Store) FilteredItems() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterProducts(s.items, s.selectedCategory, s.committedQuery)
}

// Product looks up a catalog entry by id.
func (s *Store) Product(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Product{}, false
}

// StockRequest pairs a product with the quantity to deduct.
type StockRequest struct {
	ProductID int
	Qty       int
}

// DecrementStock deducts the requested quantities in one step: every
// request is checked against current stock before anything is written,
// so a failure leaves the catalog untouched.
func (s *Store) DecrementStock(requests []StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.DecrementStockLocked(requests)
}

// DecrementStockLocked is DecrementStock for callers already holding
// the store's lock.
func (s *Store) DecrementStockLocked(requests []StockRequest) error {
	indexByID := make(map[int]int, len(s.items))
	for i, item := range s.items {
		indexByID[item.ID] = i
	}

	needed := make(map[int]int, len(requests))
	for _, req := range requests {
		if req.Qty <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "stock deduction must be positive")
		}
		idx, ok := indexByID[req.ProductID]
		if !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		needed[req.ProductID] += req.Qty
		if total := needed[req.ProductID]; total > s.items[idx].Stock {
			return pkgerrors.OutOfStock(req.ProductID, total, s.items[idx].Stock)
		}
	}

	for id, qty := range needed {
		s.items[indexByID[id]].Stock -= qty
	}
	return nil
}

func (s *Store) snapshotLocked() State {
	return State{
		Items:            append([]Product(nil), s.items...),
		Categories:       append([]string(nil), s.categories...),
		SelectedCategory: s.selectedCategory,
		CommittedQuery:   s.committedQuery,
		FilteredItems:    filterProducts(s.items, s.selectedCategory, s.committedQuery),
	}
}

// filterProducts is the pure selector behind the filtered view: an
// order-preserving subsequence of items matching the category (or the
// wildcard) and a case-insensitive substring of the name.
func filterProducts(items []Product, category, query string) []Product {
	needle := strings.ToLower(query)
	filtered := make([]Product, 0, len(items))
	for _, item := range items {
		if category != WildcardCategory && item.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func deriveCategories(items []Product) []string {
	seen := map[string]struct{}{}
	categories := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Category]; ok || item.Category == "" {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}
