package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/config"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type httpTranslator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPTranslator talks to the external machine-translation service
// over its JSON API: POST {"target", "texts"} -> {"translations"}.
func NewHTTPTranslator(cfg config.Config, log logger.Logger) (service.Translator, error) {
	if cfg.Translator.Endpoint == "" {
		return nil, fmt.Errorf("translator endpoint is not configured")
	}

	log.Info("HTTP translator adapter initialized")
	return &httpTranslator{
		endpoint: cfg.Translator.Endpoint,
		apiKey:   cfg.Translator.ApiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type translateRequest struct {
	Target string   `json:"target"`
	Texts  []string `json:"texts"`
}

type translateResponse struct {
	Translations []string `json:"translations"`
}

func (t *httpTranslator) Translate(ctx context.Context, target i18n.Language, texts []string) ([]string, error) {
	body, err := json.Marshal(translateRequest{Target: string(target), Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal translate request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build translate request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("translator returned status %d: %s", resp.StatusCode, string(payload))
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode translate response failed: %w", err)
	}
	return out.Translations, nil
}
