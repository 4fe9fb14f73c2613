package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/config"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

const preferencesURL = "https://api.mercadopago.com/checkout/preferences"

// Prices in BRL per month.
var planPrices = map[string]float64{
	"pro":     29.90,
	"premium": 59.90,
}

var planTitles = map[string]string{
	"pro":     "Vitrine Pro (mensal)",
	"premium": "Vitrine Premium (mensal)",
}

type mercadoPagoAdapter struct {
	accessToken string
	backURL     string
	client      *http.Client
	logger      logger.Logger
}

// NewMercadoPagoAdapter creates checkout preferences via the Mercado
// Pago REST API and returns the hosted checkout URL (init_point).
func NewMercadoPagoAdapter(cfg config.Config, log logger.Logger) (service.PaymentGateway, error) {
	if cfg.MercadoPago.AccessToken == "" {
		return nil, fmt.Errorf("mercadopago access_token is not configured")
	}

	log.Info("Mercado Pago adapter initialized")
	return &mercadoPagoAdapter{
		accessToken: cfg.MercadoPago.AccessToken,
		backURL:     cfg.MercadoPago.BackURL,
		client:      &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	BackURLs          struct {
		Success string `json:"success,omitempty"`
		Failure string `json:"failure,omitempty"`
	} `json:"back_urls"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (a *mercadoPagoAdapter) CreatePreference(ctx context.Context, planID string, userID uuid.UUID) (string, error) {
	price, ok := planPrices[planID]
	if !ok {
		return "", fmt.Errorf("unknown plan '%s'", planID)
	}

	pref := preferenceRequest{
		Items: []preferenceItem{{
			Title:      planTitles[planID],
			Quantity:   1,
			UnitPrice:  price,
			CurrencyID: "BRL",
		}},
		// external_reference carries "<userID>:<planID>" so the payment
		// webhook can attribute the upgrade.
		ExternalReference: fmt.Sprintf("%s:%s", userID, planID),
	}
	pref.BackURLs.Success = a.backURL
	pref.BackURLs.Failure = a.backURL

	body, err := json.Marshal(pref)
	if err != nil {
		return "", fmt.Errorf("marshal preference failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, preferencesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build preference request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.accessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("preference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("mercadopago returned status %d: %s", resp.StatusCode, string(payload))
	}

	var out preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode preference response failed: %w", err)
	}
	if out.InitPoint == "" {
		return "", fmt.Errorf("mercadopago response missing init_point")
	}
	return out.InitPoint, nil
}
