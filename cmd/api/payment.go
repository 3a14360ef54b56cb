package main

import (
	"errors"
	"esewabridge/internal/commerce"
	"esewabridge/internal/payments"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

var errPaymentFieldsRequired = errors.New("amount and productId are required")

// readPaymentRequest decodes the initiation body. Storefront forms post
// url-encoded fields; everything else is read as JSON.
func readPaymentRequest(w http.ResponseWriter, r *http.Request) (payments.PaymentRequest, error) {
	var payload payments.PaymentRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		if err := readJSON(w, r, &payload); err != nil {
			if errors.Is(err, io.EOF) {
				return payload, errPaymentFieldsRequired
			}
			return payload, err
		}
		return payload, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))
	if err := r.ParseForm(); err != nil {
		return payload, err
	}

	if raw := strings.TrimSpace(r.PostForm.Get("amount")); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return payload, errors.New("amount must be a number")
		}
		payload.Amount = amount
	}
	payload.ProductID = r.PostForm.Get("productId")

	return payload, nil
}

// startEsewaPaymentHandler godoc
//
//	@Summary		Start an eSewa payment
//	@Description	Builds the eSewa redirect URL for an amount and product. Nothing is stored.
//	@Tags			payments
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			body	body		payments.PaymentRequest		true	"amount and productId"
//	@Success		200		{object}	payments.PaymentResponse
//	@Failure		400		{object}	error	"amount and productId are required"
//	@Router			/start-esewa-payment [post]
func (app *application) startEsewaPaymentHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := readPaymentRequest(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.ProductID = strings.TrimSpace(payload.ProductID)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}
	if !payload.Amount.IsPositive() {
		app.badRequestResponse(w, r, errors.New("amount must be greater than zero"))
		return
	}

	payload.TransactionID = app.newTransactionID()

	resp, err := app.payments.InitiatePayment(r.Context(), payments.MethodEsewa, payload)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	paymentsInitiated.Add(1)
	app.logger.Infow("esewa payment initiated",
		"transactionId", resp.TransactionID,
		"productId", payload.ProductID,
		"amount", payload.Amount.StringFixed(2),
	)

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// esewaSuccessHandler godoc
//
//	@Summary		eSewa success callback
//	@Description	eSewa redirects the payer here. The payment is verified server to server and, when eSewa confirms it, an order is created on Shopify.
//	@Tags			payments
//	@Produce		html
//	@Param			amt				query		string	true	"amount"
//	@Param			pid				query		string	true	"product id"
//	@Param			rid				query		string	true	"eSewa reference id"
//	@Param			transactionId	query		string	false	"transaction id generated at initiation"
//	@Success		200				{string}	string	"success or verification failure page"
//	@Failure		400				{string}	string	"missing parameters"
//	@Failure		500				{string}	string	"Internal server error"
//	@Router			/esewa-success [get]
func (app *application) esewaSuccessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := payments.PaymentVerifyRequest{
		TransactionID: strings.TrimSpace(q.Get("transactionId")),
		Amount:        strings.TrimSpace(q.Get("amt")),
		ProductID:     strings.TrimSpace(q.Get("pid")),
		ReferenceID:   strings.TrimSpace(q.Get("rid")),
	}
	if req.Amount == "" || req.ProductID == "" || req.ReferenceID == "" {
		app.htmlBadRequestResponse(w, r, errors.New("amt, pid and rid are required"))
		return
	}

	logFields := []any{"transactionId", req.TransactionID, "pid", req.ProductID, "rid", req.ReferenceID}

	ver, err := app.payments.VerifyPayment(ctx, payments.MethodEsewa, req)
	if err != nil {
		externalErrors.Add(1)
		app.htmlServerError(w, r, err, logFields...)
		return
	}

	if !ver.Success {
		paymentsRejected.Add(1)
		app.logger.Warnw("esewa payment not verified", append(logFields, "response", ver.Body)...)
		app.writeHTML(w, r, http.StatusOK, "verification_failed", nil)
		return
	}
	paymentsVerified.Add(1)

	// The order is not derived from amt/pid/transactionId; see PlaceholderOrder.
	order, err := app.orders.CreateOrder(ctx, commerce.PlaceholderOrder())
	if err != nil {
		externalErrors.Add(1)
		app.htmlServerError(w, r, err, logFields...)
		return
	}

	ordersCreated.Add(1)
	app.logger.Infow("shopify order created", append(logFields, "orderId", order.ID)...)

	app.writeHTML(w, r, http.StatusOK, "success", order)
}

// esewaFailureHandler godoc
//
//	@Summary		eSewa failure callback
//	@Tags			payments
//	@Produce		html
//	@Success		200	{string}	string	"Payment failed or cancelled"
//	@Router			/esewa-failure [get]
func (app *application) esewaFailureHandler(w http.ResponseWriter, r *http.Request) {
	app.writeHTML(w, r, http.StatusOK, "failed", nil)
}
