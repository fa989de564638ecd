package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
)

// MercadoPagoGateway creates Pix charges through the Mercado Pago payments
// API. Every request carries an idempotency key derived from the order id so
// a retried checkout never produces two charges.
type MercadoPagoGateway struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

func NewMercadoPagoGateway(cfg config.Config) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		baseURL:     cfg.MercadoPago.BaseURL,
		accessToken: cfg.MercadoPago.AccessToken,
		client:      &http.Client{Timeout: cfg.MercadoPago.Timeout},
	}
}

type mpChargeRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	Payer             mpPayer `json:"payer"`
}

type mpPayer struct {
	Email string `json:"email"`
}

type mpChargeResponse struct {
	ID                 int64  `json:"id"`
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, o *order.Order) (*commands.PixCharge, error) {
	if g.accessToken == "" {
		return nil, errs.New("mercadopago access token is not configured")
	}

	payload := mpChargeRequest{
		TransactionAmount: float64(o.TotalCents) / 100,
		Description:       fmt.Sprintf("Order #%d", o.ID),
		PaymentMethodID:   "pix",
		Payer:             mpPayer{Email: orDefault(o.CustomerEmail, "guest@storefront.local")},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode charge request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build charge request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("X-Idempotency-Key", fmt.Sprintf("order-%d", o.ID))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "mercadopago request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Newf("mercadopago returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var out mpChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode charge response")
	}

	charge := &commands.PixCharge{
		QRText:      out.PointOfInteraction.TransactionData.QRCode,
		QRImage:     out.PointOfInteraction.TransactionData.QRCodeBase64,
		AmountCents: o.TotalCents,
	}
	if out.DateOfExpiration != "" {
		if t, err := time.Parse(time.RFC3339Nano, out.DateOfExpiration); err == nil {
			charge.ExpiresAt = t
		}
	}
	return charge, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
