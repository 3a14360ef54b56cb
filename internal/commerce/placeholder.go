package commerce

const (
	FulfillmentUnfulfilled = "unfulfilled"
	FinancialPaid          = "paid"

	placeholderVariantID int64 = 123456789
)

// PlaceholderOrder returns the fixed order submitted after a verified eSewa
// payment. It does not reflect the payer, the amount or the product that
// was actually paid for: payments are not stored, so there is nothing to
// look the real customer and line item up from.
//
// TODO: build the payload from a stored checkout keyed by transactionId once
// initiation persists one.
func PlaceholderOrder() OrderPayload {
	addr := Address{
		FirstName: "John",
		LastName:  "Doe",
		Address1:  "Main Street",
		City:      "Kathmandu",
		Province:  "Bagmati",
		Country:   "Nepal",
		Zip:       "44600",
	}

	return OrderPayload{
		Email:             "customer@example.com",
		FulfillmentStatus: FulfillmentUnfulfilled,
		FinancialStatus:   FinancialPaid,
		LineItems: []LineItem{
			{VariantID: placeholderVariantID, Quantity: 1},
		},
		ShippingAddress: addr,
		BillingAddress:  addr,
	}
}
