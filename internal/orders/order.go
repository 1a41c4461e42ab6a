package orders

import (
	"time"

	"github.com/angelmondragon/shopflow-backend/internal/cart"
	"github.com/angelmondragon/shopflow-backend/pkg/enums"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable record of a completed checkout. Lines are a
// snapshot of the cart at checkout time; nothing is updated afterwards.
type Order struct {
	ID            uuid.UUID           `json:"id"`
	Lines         []cart.Line         `json:"lines"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Total         decimal.Decimal     `json:"total"`
	ShippingInfo  types.ShippingInfo  `json:"shipping_info"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Status        enums.OrderStatus   `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}
