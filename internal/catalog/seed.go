package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// SeedCategories is the category list shipped with the default catalog.
func SeedCategories() []string {
	return []string{WildcardCategory, "Electronics", "Fashion", "Books"}
}

// SeedProducts returns the built-in demo catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "iPhone 15 Pro",
			Price:       decimal.NewFromInt(999),
			Image:       "https://via.placeholder.com/300x300/007AFF/FFFFFF?text=iPhone+15+Pro",
			Description: "Latest iPhone with A17 Pro chip, titanium design, and advanced camera system.",
			Category:    "Electronics",
			Rating:      4.8,
			Stock:       25,
		},
		{
			ID:          2,
			Name:        "MacBook Air M2",
			Price:       decimal.NewFromInt(1199),
			Image:       "https://via.placeholder.com/300x300/007AFF/FFFFFF?text=MacBook+Air",
			Description: "Supercharged by M2 chip. Incredibly thin and light laptop with all-day battery life.",
			Category:    "Electronics",
			Rating:      4.9,
			Stock:       15,
		},
		{
			ID:          3,
			Name:        "AirPods Pro",
			Price:       decimal.NewFromInt(249),
			Image:       "https://via.placeholder.com/300x300/007AFF/FFFFFF?text=AirPods+Pro",
			Description: "Active Noise Cancellation, Transparency mode, and spatial audio.",
			Category:    "Electronics",
			Rating:      4.7,
			Stock:       50,
		},
		{
			ID:          4,
			Name:        "Nike Air Max 270",
			Price:       decimal.NewFromInt(150),
			Image:       "https://via.placeholder.com/300x300/FF6B35/FFFFFF?text=Nike+Air+Max",
			Description: "Comfortable running shoes with Max Air unit for all-day comfort.",
			Category:    "Fashion",
			Rating:      4.5,
			Stock:       30,
		},
		{
			ID:          5,
			Name:        "Levi's 501 Jeans",
			Price:       decimal.NewFromInt(89),
			Image:       "https://via.placeholder.com/300x300/FF6B35/FFFFFF?text=Levis+501",
			Description: "Classic straight-leg jeans. The original blue jean since 1873.",
			Category:    "Fashion",
			Rating:      4.6,
			Stock:       40,
		},
		{
			ID:          6,
			Name:        "The Great Gatsby",
			Price:       decimal.NewFromInt(12),
			Image:       "https://via.placeholder.com/300x300/28A745/FFFFFF?text=Great+Gatsby",
			Description: "Classic American novel by F. Scott Fitzgerald.",
			Category:    "Books",
			Rating:      4.4,
			Stock:       100,
		},
	}
}

type seedFile struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}

// LoadSeed reads a seed catalog from disk. An empty path selects the
// built-in catalog.
func LoadSeed(path string) ([]Product, []string, error) {
	if path == "" {
		return SeedProducts(), SeedCategories(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading seed catalog: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, nil, fmt.Errorf("parsing seed catalog: %w", err)
	}
	if len(seed.Products) == 0 {
		return nil, nil, fmt.Errorf("seed catalog %s contains no products", path)
	}
	return seed.Products, seed.Categories, nil
}
