package types

// ShippingInfo is the destination block captured at checkout. Field
// names match the checkout form keys the client submits.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`
}

// PaymentInfo carries card details. Only consulted when the payment
// method is card; never stored on the resulting order.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}
