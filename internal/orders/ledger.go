package orders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/shopflow-backend/internal/cart"
	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	"github.com/angelmondragon/shopflow-backend/pkg/checkout"
	"github.com/angelmondragon/shopflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartStore interface {
	LinesLocked() []cart.Line
	ClearLocked()
}

type stockKeeper interface {
	DecrementStockLocked(requests []catalog.StockRequest) error
}

type orderSink interface {
	IsAuthenticatedLocked() bool
	AddOrderLocked(order Order)
}

// Ledger turns the active cart into immutable orders.
type Ledger interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error)
}

type ledger struct {
	mu      *sync.Mutex
	cart    cartStore
	catalog stockKeeper
	sink    orderSink
	calc    checkout.Calculator
	now     func() time.Time
}

// NewLedger builds an order ledger over the provided stores. mu must
// be the lock shared by all three stores: the ledger holds it for the
// whole commit, which is what makes checkout a single observable
// transition instead of three independent mutations.
func NewLedger(mu *sync.Mutex, cartStore cartStore, stock stockKeeper, sink orderSink, calc checkout.Calculator) (Ledger, error) {
	if mu == nil {
		return nil, fmt.Errorf("shared store lock required")
	}
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock keeper required")
	}
	if sink == nil {
		return nil, fmt.Errorf("order sink required")
	}
	return &ledger{
		mu:      mu,
		cart:    cartStore,
		catalog: stock,
		sink:    sink,
		calc:    calc,
		now:     time.Now,
	}, nil
}

// PlaceOrderInput is the checkout form payload.
type PlaceOrderInput struct {
	ShippingInfo  types.ShippingInfo
	PaymentMethod enums.PaymentMethod
	PaymentInfo   types.PaymentInfo
}

// PlaceOrder validates the checkout form, then performs the
// order-creation transaction: deduct stock, record the order, clear
// the cart. The whole transaction runs under the shared store lock,
// so no reader can observe the order without the stock deducted and
// the cart empty. Every fallible step runs before the first mutation,
// and the stock deduction itself is all-or-nothing, so a failure
// never leaves a partial write behind.
func (l *ledger) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	if err := checkout.ValidateShipping(input.ShippingInfo); err != nil {
		return nil, err
	}
	if err := checkout.ValidatePayment(input.PaymentMethod, input.PaymentInfo); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.sink.IsAuthenticatedLocked() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}

	lines := l.cart.LinesLocked()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}

	requests := make([]catalog.StockRequest, len(lines))
	for i, line := range lines {
		requests[i] = catalog.StockRequest{ProductID: line.Product.ID, Qty: line.Quantity}
	}
	if err := l.catalog.DecrementStockLocked(requests); err != nil {
		return nil, err
	}

	totals := l.calc.ComputeTotals(subtotal(lines))
	order := Order{
		ID:            uuid.New(),
		Lines:         lines,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Shipping:      totals.Shipping,
		Total:         totals.GrandTotal,
		ShippingInfo:  input.ShippingInfo,
		PaymentMethod: input.PaymentMethod,
		Status:        enums.OrderStatusProcessing,
		CreatedAt:     l.now().UTC(),
	}

	l.sink.AddOrderLocked(order)
	l.cart.ClearLocked()

	return &order, nil
}

func subtotal(lines []cart.Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
