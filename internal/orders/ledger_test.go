package orders_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/shopflow-backend/internal/cart"
	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	"github.com/angelmondragon/shopflow-backend/internal/orders"
	"github.com/angelmondragon/shopflow-backend/internal/session"
	"github.com/angelmondragon/shopflow-backend/pkg/checkout"
	"github.com/angelmondragon/shopflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	lock    *sync.Mutex
	catalog *catalog.Store
	cart    *cart.Store
	session *session.Session
	ledger  orders.Ledger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	storeLock := new(sync.Mutex)

	catalogStore, err := catalog.NewStoreWithLock(catalog.SeedProducts(), catalog.SeedCategories(), storeLock)
	require.NoError(t, err)

	cartStore := cart.NewStoreWithLock(storeLock)
	sess := session.NewWithLock(storeLock)

	ledger, err := orders.NewLedger(storeLock, cartStore, catalogStore, sess, checkout.NewCalculator(checkout.DefaultTaxRate))
	require.NoError(t, err)

	return &fixture{
		lock:    storeLock,
		catalog: catalogStore,
		cart:    cartStore,
		session: sess,
		ledger:  ledger,
	}
}

func (f *fixture) signIn(t *testing.T) {
	t.Helper()
	f.session.Login(types.Profile{Name: "John Doe", Email: "john@example.com"})
}

func (f *fixture) fillCart(t *testing.T, productID, qty int) {
	t.Helper()
	product, ok := f.catalog.Product(productID)
	require.True(t, ok)
	_, err := f.cart.AddLine(product, qty)
	require.NoError(t, err)
}

func shipping() types.ShippingInfo {
	return types.ShippingInfo{
		FullName: "John Doe",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
		Phone:    "555-0100",
	}
}

func card() types.PaymentInfo {
	return types.PaymentInfo{
		CardNumber:     "4111111111111111",
		ExpiryDate:     "12/27",
		CVV:            "123",
		CardholderName: "John Doe",
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)
	f.fillCart(t, 1, 2) // 2 × 999

	subtotal := f.cart.Subtotal()

	order, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodCard,
		PaymentInfo:   card(),
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Equal(t, enums.OrderStatusProcessing, order.Status)
	require.Len(t, order.Lines, 1)

	expectedTotal := subtotal.Mul(decimal.RequireFromString("1.08"))
	require.True(t, order.Total.Equal(expectedTotal), "total %s != %s", order.Total, expectedTotal)

	// The new order leads the history and the cart is empty.
	history := f.session.Orders()
	require.Len(t, history, 1)
	require.Equal(t, order.ID, history[0].ID)
	require.Empty(t, f.cart.Lines())

	// Checkout deducted stock.
	product, _ := f.catalog.Product(1)
	require.Equal(t, 23, product.Stock)
}

func TestPlaceOrderPrependsToHistory(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)

	f.fillCart(t, 6, 1)
	first, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	require.NoError(t, err)

	f.fillCart(t, 5, 1)
	second, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	require.NoError(t, err)

	history := f.session.Orders()
	require.Len(t, history, 2)
	require.Equal(t, second.ID, history[0].ID)
	require.Equal(t, first.ID, history[1].ID)
}

func TestPlaceOrderPayPalSkipsCardFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)
	f.fillCart(t, 3, 1)

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	require.NoError(t, err)
}

func TestPlaceOrderCardRequiresCardNumber(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)
	f.fillCart(t, 3, 1)

	info := card()
	info.CardNumber = ""

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodCard,
		PaymentInfo:   info,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	require.Equal(t, "cardNumber", typed.Field())

	// Validation failures leave every store untouched.
	require.Len(t, f.cart.Lines(), 1)
	require.Empty(t, f.session.Orders())
}

func TestPlaceOrderValidatesShippingFieldOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)
	f.fillCart(t, 3, 1)

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  types.ShippingInfo{Phone: "555-0100"},
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, "fullName", typed.Field())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.fillCart(t, 3, 1)

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

// historyTap records what a concurrent cart reader observes at the
// moment an order joins the history.
type historyTap struct {
	*session.Session
	cart     *cart.Store
	observed chan int
}

func (h *historyTap) AddOrderLocked(order orders.Order) {
	h.Session.AddOrderLocked(order)

	started := make(chan struct{})
	go func() {
		close(started)
		h.observed <- len(h.cart.Lines())
	}()
	<-started
	// Let the reader race the commit. It has to block on the shared
	// store lock until the cart is cleared.
	time.Sleep(20 * time.Millisecond)
}

func TestPlaceOrderCommitIsOneObservableTransition(t *testing.T) {
	t.Parallel()

	storeLock := new(sync.Mutex)

	catalogStore, err := catalog.NewStoreWithLock(catalog.SeedProducts(), catalog.SeedCategories(), storeLock)
	require.NoError(t, err)
	cartStore := cart.NewStoreWithLock(storeLock)
	sess := session.NewWithLock(storeLock)

	tap := &historyTap{Session: sess, cart: cartStore, observed: make(chan int, 1)}

	ledger, err := orders.NewLedger(storeLock, cartStore, catalogStore, tap, checkout.NewCalculator(checkout.DefaultTaxRate))
	require.NoError(t, err)

	sess.Login(types.Profile{Name: "John Doe", Email: "john@example.com"})
	product, ok := catalogStore.Product(1)
	require.True(t, ok)
	_, err = cartStore.AddLine(product, 1)
	require.NoError(t, err)

	_, err = ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	require.NoError(t, err)

	select {
	case lines := <-tap.observed:
		require.Zero(t, lines, "cart lines visible alongside the recorded order")
	case <-time.After(time.Second):
		t.Fatal("concurrent cart reader never completed")
	}
}

func TestPlaceOrderStaleCartStock(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.signIn(t)
	f.fillCart(t, 2, 10)

	// Deplete stock behind the cart's back; checkout must fail without
	// recording an order or clearing the cart.
	require.NoError(t, f.catalog.DecrementStock([]catalog.StockRequest{{ProductID: 2, Qty: 10}}))

	_, err := f.ledger.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		ShippingInfo:  shipping(),
		PaymentMethod: enums.PaymentMethodPayPal,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeOutOfStock, typed.Code())
	require.Len(t, f.cart.Lines(), 1)
	require.Empty(t, f.session.Orders())
}
