package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

// WhatsAppClient pushes text messages through a WhatsApp business API
// bridge. An empty base URL means the channel is not configured.
type WhatsAppClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func NewWhatsAppClient(cfg config.Config) *WhatsAppClient {
	return &WhatsAppClient{
		baseURL:  cfg.WhatsApp.APIBaseURL,
		apiToken: cfg.WhatsApp.APIToken,
		client:   &http.Client{Timeout: cfg.WhatsApp.Timeout},
	}
}

func (c *WhatsAppClient) Configured() bool {
	return c.baseURL != ""
}

type waSendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (c *WhatsAppClient) SendText(ctx context.Context, phone, text string) error {
	if !c.Configured() {
		return errs.New("whatsapp API is not configured")
	}

	body, err := json.Marshal(waSendRequest{Phone: phone, Message: text})
	if err != nil {
		return errs.Wrap(err, "failed to encode whatsapp message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build whatsapp request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "whatsapp request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("whatsapp API returned status %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
