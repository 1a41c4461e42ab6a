package cart

import (
	"math/rand"
	"testing"

	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func testProduct(id int, price int64, stock int) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "product",
		Price:    decimal.NewFromInt(price),
		Category: "Electronics",
		Stock:    stock,
	}
}

func TestAddLineAppends(t *testing.T) {
	t.Parallel()

	store := NewStore()
	lines, err := store.AddLine(testProduct(1, 100, 5), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestAddLineMergesByProductID(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(1, 100, 5)
	if _, err := store.AddLine(product, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	lines, err := store.AddLine(product, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("expected one merged line of 5, got %+v", lines)
	}
}

func TestAddLineRejectsBeyondStock(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(1, 100, 5)

	if _, err := store.AddLine(product, 6); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeOutOfStock {
		t.Fatalf("expected out of stock, got %v", err)
	}

	// Merging past the stock ceiling fails too, leaving the line as-is.
	if _, err := store.AddLine(product, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := store.AddLine(product, 2)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeOutOfStock {
		t.Fatalf("expected out of stock on merge, got %v", err)
	}
	if lines := store.Lines(); lines[0].Quantity != 4 {
		t.Fatalf("failed merge must not change quantity, got %d", lines[0].Quantity)
	}
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, err := store.AddLine(testProduct(1, 100, 5), 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveLineAbsentIsNoError(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, err := store.AddLine(testProduct(1, 100, 5), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines := store.RemoveLine(99)
	if len(lines) != 1 {
		t.Fatalf("removing absent product must not change lines, got %+v", lines)
	}

	lines = store.RemoveLine(1)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestAdjustQuantityClampsToStock(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, err := store.AddLine(testProduct(1, 100, 5), 4); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := store.AdjustQuantity(1, 10)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected clamp to stock 5, got %d", lines[0].Quantity)
	}
}

func TestAdjustQuantityRejectsBelowOne(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, err := store.AddLine(testProduct(1, 100, 5), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := store.AdjustQuantity(1, -1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected rejection below one, got %v", err)
	}
	if lines := store.Lines(); lines[0].Quantity != 1 {
		t.Fatalf("rejected adjust must keep the line, got %+v", lines)
	}
}

func TestAdjustQuantityUnknownProduct(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, err := store.AdjustQuantity(42, 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubtotalTracksRandomMutations(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		testProduct(1, 999, 25),
		testProduct(2, 1199, 15),
		testProduct(3, 249, 50),
		testProduct(4, 150, 30),
	}

	store := NewStore()
	rng := rand.New(rand.NewSource(7))

	verify := func() {
		expected := decimal.Zero
		for _, line := range store.Lines() {
			expected = expected.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		if got := store.Subtotal(); !got.Equal(expected) {
			t.Fatalf("subtotal drifted: got %s want %s", got, expected)
		}
	}

	for i := 0; i < 200; i++ {
		product := products[rng.Intn(len(products))]
		switch rng.Intn(4) {
		case 0:
			store.AddLine(product, 1+rng.Intn(3))
		case 1:
			store.RemoveLine(product.ID)
		case 2:
			store.AdjustQuantity(product.ID, rng.Intn(5)-2)
		case 3:
			if rng.Intn(10) == 0 {
				store.Clear()
			}
		}
		verify()
	}
}

func TestClearEmptiesLines(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(testProduct(1, 100, 5), 2)
	store.AddLine(testProduct(2, 50, 5), 1)
	store.Clear()

	if len(store.Lines()) != 0 {
		t.Fatal("expected cleared cart")
	}
	if !store.Subtotal().IsZero() {
		t.Fatalf("expected zero subtotal, got %s", store.Subtotal())
	}
}
