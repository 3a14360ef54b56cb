package commerce

// OrderPayload is the order body sent to the Shopify Admin API.
type OrderPayload struct {
	Email             string     `json:"email"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	FinancialStatus   string     `json:"financial_status"`
	LineItems         []LineItem `json:"line_items"`
	ShippingAddress   Address    `json:"shipping_address"`
	BillingAddress    Address    `json:"billing_address"`
}

type LineItem struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
}

// Order is the subset of the created order we care about.
type Order struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
