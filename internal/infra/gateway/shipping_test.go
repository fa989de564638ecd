//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/infra/gateway"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingConfig(baseURL string) config.Config {
	return config.Config{
		Shipping: config.ShippingConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		},
	}
}

func TestShippingClientQuote(t *testing.T) {
	dims := commands.PackageDims{WeightGrams: 500, LengthCm: 20, WidthCm: 15, HeightCm: 10}

	t.Run("parses carrier quotes and skips unavailable ones", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/quotes", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			unavailable := "carrier does not serve this route"
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"id": "1", "name": "PAC", "price": "23.90", "delivery_time": 8},
				{"id": "2", "name": "SEDEX", "price": "41.05", "delivery_time": 3},
				{"id": "3", "name": "Mini", "error": unavailable},
			})
		}))
		defer server.Close()

		client := gateway.NewShippingClient(shippingConfig(server.URL))
		options, err := client.Quote(context.Background(), "01001000", "20040020", dims)

		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, commands.ShippingOption{ServiceID: "1", Name: "PAC", PriceCents: 2390, EtaDays: 8}, options[0])
		assert.Equal(t, int64(4105), options[1].PriceCents)
	})

	t.Run("provider error status surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := gateway.NewShippingClient(shippingConfig(server.URL))
		_, err := client.Quote(context.Background(), "01001000", "20040020", dims)
		assert.Error(t, err)
	})

	t.Run("unconfigured base url fails fast", func(t *testing.T) {
		client := gateway.NewShippingClient(shippingConfig(""))
		_, err := client.Quote(context.Background(), "01001000", "20040020", dims)
		assert.Error(t, err)
	})
}
