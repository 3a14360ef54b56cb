package payments

import (
	"context"
	"errors"
)

var (
	ErrGatewayNotRegistered = errors.New("payment gateway not registered")
	// ErrVerification marks failures talking to the gateway's verification
	// endpoint. A rejected payment is not an error.
	ErrVerification = errors.New("payment verification failed")
)

// PaymentGateway defines a common interface for all payment providers
type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error)
	VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error)
}
