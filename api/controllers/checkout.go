package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopflow-backend/api/responses"
	"github.com/angelmondragon/shopflow-backend/api/validators"
	"github.com/angelmondragon/shopflow-backend/internal/orders"
	"github.com/angelmondragon/shopflow-backend/pkg/enums"
	"github.com/angelmondragon/shopflow-backend/pkg/logger"
	"github.com/angelmondragon/shopflow-backend/pkg/metrics"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
)

type placeOrderRequest struct {
	ShippingInfo  types.ShippingInfo `json:"shippingInfo"`
	PaymentMethod string             `json:"paymentMethod" validate:"required"`
	PaymentInfo   types.PaymentInfo  `json:"paymentInfo"`
}

// CheckoutPlaceOrder runs the full checkout: form validation, stock
// reservation, totals and order recording happen inside the ledger.
func CheckoutPlaceOrder(ledger orders.Ledger, em *metrics.EngineMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := ledger.PlaceOrder(r.Context(), orders.PlaceOrderInput{
			ShippingInfo:  payload.ShippingInfo,
			PaymentMethod: enums.PaymentMethod(payload.PaymentMethod),
			PaymentInfo:   payload.PaymentInfo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		total, _ := order.Total.Float64()
		em.ObserveOrderTotal(total)
		logg.Info(logg.WithOrderID(r.Context(), order.ID.String()), "order.placed")

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
