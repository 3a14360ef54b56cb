package commerce

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const DefaultAPIVersion = "2023-04"

var ErrOrderCreation = errors.New("order creation failed")

// OrderCreator creates orders on the commerce platform.
type OrderCreator interface {
	CreateOrder(ctx context.Context, payload OrderPayload) (Order, error)
}

// ShopifyClient talks to the Shopify Admin REST API.
type ShopifyClient struct {
	BaseURL string
	client  *resty.Client
}

func NewShopifyClient(shopDomain, accessToken, apiVersion string, client *resty.Client) *ShopifyClient {
	if client == nil {
		client = resty.New()
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	base := fmt.Sprintf("%s/admin/api/%s", shopBaseURL(shopDomain), apiVersion)
	client.
		SetBaseURL(base).
		SetHeader("X-Shopify-Access-Token", accessToken).
		SetHeader("Accept", "application/json")

	return &ShopifyClient{BaseURL: base, client: client}
}

// shopBaseURL accepts "my-shop", "my-shop.myshopify.com" or a full URL.
func shopBaseURL(domain string) string {
	domain = strings.TrimRight(strings.TrimSpace(domain), "/")
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	if domain != "" && !strings.Contains(domain, ".") {
		domain += ".myshopify.com"
	}
	return "https://" + domain
}

func (c *ShopifyClient) CreateOrder(ctx context.Context, payload OrderPayload) (Order, error) {
	var res struct {
		Order Order `json:"order"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]OrderPayload{"order": payload}).
		SetResult(&res).
		Post("/orders.json")
	if err != nil {
		return Order{}, fmt.Errorf("%w: shopify request: %w", ErrOrderCreation, err)
	}

	if resp.IsError() {
		return Order{}, fmt.Errorf("%w: shopify http=%d body=%s", ErrOrderCreation, resp.StatusCode(), resp.String())
	}

	if res.Order.ID == 0 {
		return Order{}, fmt.Errorf("%w: shopify response missing order id: %s", ErrOrderCreation, resp.String())
	}

	return res.Order, nil
}
