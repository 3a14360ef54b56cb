package payments

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	EsewaPaymentURL = "https://esewa.com.np/epay/main"
	EsewaVerifyURL  = "https://esewa.com.np/epay/transrec"

	// eSewa answers transrec with a small XML document; a completed payment
	// has "Success" as its response_code.
	esewaSuccessMarker = "Success"
)

type EsewaAdapter struct {
	MerchantCode string
	SuccessURL   string
	FailureURL   string
	PaymentURL   string
	VerifyURL    string
	client       *resty.Client
}

func NewEsewaAdapter(merchant, success, failure string, client *resty.Client) *EsewaAdapter {
	if client == nil {
		client = resty.New()
	}
	return &EsewaAdapter{
		MerchantCode: merchant,
		SuccessURL:   success,
		FailureURL:   failure,
		PaymentURL:   EsewaPaymentURL,
		VerifyURL:    EsewaVerifyURL,
		client:       client,
	}
}

// InitiatePayment builds the redirect URL for the eSewa payment page. The
// success URL carries our transaction id so it comes back on the callback.
func (e *EsewaAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	u, err := url.Parse(e.PaymentURL)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("esewa payment url: %w", err)
	}

	q := u.Query()
	q.Set("amt", req.Amount.StringFixed(2))
	q.Set("pid", req.ProductID)
	q.Set("scd", e.MerchantCode)
	q.Set("su", addQuery(e.SuccessURL, "transactionId", req.TransactionID))
	q.Set("fu", e.FailureURL)
	u.RawQuery = q.Encode()

	return PaymentResponse{
		PaymentURL:    u.String(),
		TransactionID: req.TransactionID,
	}, nil
}

// VerifyPayment asks eSewa whether the redirect we received belongs to a
// completed payment. Transport problems and non-2xx answers are returned as
// errors wrapping ErrVerification; a rejected payment is a nil error with
// Success set to false.
func (e *EsewaAdapter) VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amt": req.Amount,
			"pid": req.ProductID,
			"rid": req.ReferenceID,
			"scd": e.MerchantCode,
		}).
		Post(e.VerifyURL)
	if err != nil {
		return PaymentVerifyResponse{}, fmt.Errorf("%w: esewa transrec request: %w", ErrVerification, err)
	}

	body := resp.String()
	if resp.IsError() {
		return PaymentVerifyResponse{Body: body}, fmt.Errorf("%w: esewa transrec: http=%d body=%s", ErrVerification, resp.StatusCode(), body)
	}

	return PaymentVerifyResponse{
		Success: strings.Contains(body, esewaSuccessMarker),
		Body:    body,
	}, nil
}

func addQuery(base, key, val string) string {
	u, err := url.Parse(base)
	if err != nil {
		// fallback
		if strings.Contains(base, "?") {
			return base + "&" + url.QueryEscape(key) + "=" + url.QueryEscape(val)
		}
		return base + "?" + url.QueryEscape(key) + "=" + url.QueryEscape(val)
	}
	q := u.Query()
	q.Set(key, val)
	u.RawQuery = q.Encode()
	return u.String()
}
