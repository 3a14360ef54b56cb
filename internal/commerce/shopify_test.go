package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopBaseURL(t *testing.T) {
	tests := map[string]string{
		"my-shop":                        "https://my-shop.myshopify.com",
		"my-shop.myshopify.com":          "https://my-shop.myshopify.com",
		" my-shop.myshopify.com/ ":       "https://my-shop.myshopify.com",
		"https://my-shop.myshopify.com/": "https://my-shop.myshopify.com",
		"http://127.0.0.1:9999":          "http://127.0.0.1:9999",
	}
	for in, want := range tests {
		assert.Equal(t, want, shopBaseURL(in), in)
	}
}

func TestCreateOrder(t *testing.T) {
	var got struct {
		Order OrderPayload `json:"order"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/2023-04/orders.json", r.URL.Path)
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"order":{"id":450789469,"name":"#1001","email":"customer@example.com"}}`))
	}))
	defer srv.Close()

	c := NewShopifyClient(srv.URL, "shpat_test", "", nil)

	order, err := c.CreateOrder(context.Background(), PlaceholderOrder())
	require.NoError(t, err)
	assert.Equal(t, int64(450789469), order.ID)
	assert.Equal(t, "#1001", order.Name)

	assert.Equal(t, "customer@example.com", got.Order.Email)
	assert.Equal(t, "unfulfilled", got.Order.FulfillmentStatus)
	assert.Equal(t, "paid", got.Order.FinancialStatus)
	require.Len(t, got.Order.LineItems, 1)
	assert.Equal(t, LineItem{VariantID: 123456789, Quantity: 1}, got.Order.LineItems[0])
	assert.Equal(t, "Kathmandu", got.Order.ShippingAddress.City)
	assert.Equal(t, got.Order.ShippingAddress, got.Order.BillingAddress)
}

func TestCreateOrderErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"errors":{"line_items":["is invalid"]}}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"errors":"[API] Invalid API key or access token"}`},
		{name: "missing id", status: http.StatusCreated, body: `{"order":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewShopifyClient(srv.URL, "shpat_test", "2024-01", nil)
			_, err := c.CreateOrder(context.Background(), PlaceholderOrder())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOrderCreation)
		})
	}
}
