package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

// DeliveryClient registers paid orders with the external courier platform.
// The courier's order reference comes back as the delivery id we cache on
// the order row.
type DeliveryClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewDeliveryClient(cfg config.Config) *DeliveryClient {
	return &DeliveryClient{
		baseURL: cfg.Delivery.BaseURL,
		apiKey:  cfg.Delivery.APIKey,
		client:  &http.Client{Timeout: cfg.Delivery.Timeout},
	}
}

type courierOrderRequest struct {
	Reference     string             `json:"reference"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	TotalCents    int64              `json:"total_cents"`
	Items         []courierOrderItem `json:"items"`
}

type courierOrderItem struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

type courierOrderResponse struct {
	ID string `json:"id"`
}

func (c *DeliveryClient) CreateDelivery(ctx context.Context, o *order.Order) (string, error) {
	if c.baseURL == "" {
		return "", errs.New("delivery provider is not configured")
	}

	payload := courierOrderRequest{
		Reference:     fmt.Sprintf("order-%d", o.ID),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.CustomerAddress,
		City:          o.CustomerCity,
		TotalCents:    o.TotalCents,
	}
	for _, item := range o.Items {
		name := item.ProductName
		if item.VariantName != nil {
			name = name + " (" + *item.VariantName + ")"
		}
		payload.Items = append(payload.Items, courierOrderItem{Name: name, Quantity: item.Quantity})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode delivery request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build delivery request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "delivery request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.Newf("delivery provider returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var out courierOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode delivery response")
	}
	if out.ID == "" {
		return "", errs.New("delivery provider returned an empty order id")
	}
	return out.ID, nil
}
