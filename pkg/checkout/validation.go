package checkout

import (
	"strings"

	"github.com/angelmondragon/shopflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
)

// Required field order is part of the contract: the first missing
// field, in this order, names the validation failure.
var requiredShippingFields = []struct {
	name  string
	value func(types.ShippingInfo) string
}{
	{"fullName", func(s types.ShippingInfo) string { return s.FullName }},
	{"address", func(s types.ShippingInfo) string { return s.Address }},
	{"city", func(s types.ShippingInfo) string { return s.City }},
	{"zipCode", func(s types.ShippingInfo) string { return s.ZipCode }},
	{"phone", func(s types.ShippingInfo) string { return s.Phone }},
}

var requiredCardFields = []struct {
	name  string
	value func(types.PaymentInfo) string
}{
	{"cardNumber", func(p types.PaymentInfo) string { return p.CardNumber }},
	{"expiryDate", func(p types.PaymentInfo) string { return p.ExpiryDate }},
	{"cvv", func(p types.PaymentInfo) string { return p.CVV }},
	{"cardholderName", func(p types.PaymentInfo) string { return p.CardholderName }},
}

// ValidateShipping checks every required shipping field is non-blank
// after trimming.
func ValidateShipping(info types.ShippingInfo) error {
	for _, field := range requiredShippingFields {
		if strings.TrimSpace(field.value(info)) == "" {
			return pkgerrors.Validation(field.name)
		}
	}
	return nil
}

// ValidatePayment checks card details when the method is card. Other
// payment methods carry no further required fields.
func ValidatePayment(method enums.PaymentMethod, info types.PaymentInfo) error {
	if !method.IsValid() {
		return pkgerrors.Validation("paymentMethod")
	}
	if method != enums.PaymentMethodCard {
		return nil
	}
	for _, field := range requiredCardFields {
		if strings.TrimSpace(field.value(info)) == "" {
			return pkgerrors.Validation(field.name)
		}
	}
	return nil
}
