package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
)

// ShippingClient fetches carrier quotes from the shipping aggregator.
type ShippingClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewShippingClient(cfg config.Config) *ShippingClient {
	return &ShippingClient{
		baseURL: cfg.Shipping.BaseURL,
		apiKey:  cfg.Shipping.APIKey,
		client:  &http.Client{Timeout: cfg.Shipping.Timeout},
	}
}

type quoteRequest struct {
	From    quoteEndpoint `json:"from"`
	To      quoteEndpoint `json:"to"`
	Package quotePackage  `json:"package"`
}

type quoteEndpoint struct {
	PostalCode string `json:"postal_code"`
}

type quotePackage struct {
	WeightGrams int32 `json:"weight"`
	LengthCm    int32 `json:"length"`
	WidthCm     int32 `json:"width"`
	HeightCm    int32 `json:"height"`
}

type quoteResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	DeliveryTime int32   `json:"delivery_time"`
	Error        *string `json:"error"`
}

func (c *ShippingClient) Quote(ctx context.Context, originPostal, destPostal string, pkg commands.PackageDims) ([]commands.ShippingOption, error) {
	if c.baseURL == "" {
		return nil, errs.New("shipping provider is not configured")
	}

	payload := quoteRequest{
		From: quoteEndpoint{PostalCode: originPostal},
		To:   quoteEndpoint{PostalCode: destPostal},
		Package: quotePackage{
			WeightGrams: pkg.WeightGrams,
			LengthCm:    pkg.LengthCm,
			WidthCm:     pkg.WidthCm,
			HeightCm:    pkg.HeightCm,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode quote request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quotes", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build quote request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "shipping quote request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Newf("shipping provider returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var quotes []quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, errs.Wrap(err, "failed to decode quote response")
	}

	options := make([]commands.ShippingOption, 0, len(quotes))
	for _, q := range quotes {
		// Carriers that cannot serve the route come back with an error
		// field instead of a price; skip them.
		if q.Error != nil {
			continue
		}
		cents, err := parsePriceCents(q.Price)
		if err != nil {
			continue
		}
		options = append(options, commands.ShippingOption{
			ServiceID:  q.ID,
			Name:       q.Name,
			PriceCents: cents,
			EtaDays:    q.DeliveryTime,
		})
	}
	return options, nil
}

// parsePriceCents converts a decimal price string ("23.90") to cents
// without going through floats.
func parsePriceCents(price string) (int64, error) {
	var whole, frac int64
	var fracDigits int
	seenDot := false
	if price == "" {
		return 0, errs.New("empty price")
	}
	for _, r := range price {
		switch {
		case r == '.' && !seenDot:
			seenDot = true
		case r >= '0' && r <= '9':
			if seenDot {
				if fracDigits < 2 {
					frac = frac*10 + int64(r-'0')
					fracDigits++
				}
			} else {
				whole = whole*10 + int64(r-'0')
			}
		default:
			return 0, errs.Newf("invalid price %q", price)
		}
	}
	for fracDigits < 2 {
		frac *= 10
		fracDigits++
	}
	return whole*100 + frac, nil
}
