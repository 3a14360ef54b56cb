package payments

import "github.com/shopspring/decimal"

// PaymentRequest is the body accepted by the payment initiation endpoint.
type PaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	ProductID string          `json:"productId" validate:"required"`

	// TransactionID is assigned by the server once the request is valid.
	TransactionID string `json:"-"`
}

type PaymentResponse struct {
	PaymentURL    string `json:"paymentUrl"`
	TransactionID string `json:"-"`
}

// PaymentVerifyRequest carries the values the gateway appends to the success
// redirect (amt, pid, rid) plus the optional echoed transaction id.
type PaymentVerifyRequest struct {
	TransactionID string
	Amount        string
	ProductID     string
	ReferenceID   string
}

type PaymentVerifyResponse struct {
	Success bool
	// Body is the raw verification response, kept for logging.
	Body string
}
