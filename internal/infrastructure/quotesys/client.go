package quotesys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase/interfaces"
)

var ErrMissingQuoteSystemBaseURL = errors.New("missing QUOTESYS_BASE_URL")

const defaultLookupTimeout = 10 * time.Second

// Client queries the separate estimate deployment for contract
// reconciliation. The endpoint is read-only; any failure is reported to the
// operator and never retried here.
//
// Env vars:
//   - QUOTESYS_BASE_URL (required unless mock mode)
//   - QUOTESYS_TIMEOUT_MS (optional; default 10000)
//   - QUOTESYS_MOCK (optional; truthy value enables mock mode)
type Client struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IQuoteLookupGateway = (*Client)(nil)

func NewClientFromEnv() (*Client, error) {
	if isQuoteLookupMockEnabled() {
		log.Printf("[reconcile][gateway] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("QUOTESYS_BASE_URL")), "/")
	if baseURL == "" {
		log.Printf("[reconcile][gateway] missing QUOTESYS_BASE_URL")
		return nil, ErrMissingQuoteSystemBaseURL
	}

	timeout := defaultLookupTimeout
	if ms, err := strconv.Atoi(os.Getenv("QUOTESYS_TIMEOUT_MS")); err == nil && ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}

	log.Printf("[reconcile][gateway] quote system client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type lookupEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}

// FindLatestQuote looks the customer up by the soft (name, phone) identity.
// When the remote system returns several candidates the last one wins; its
// listings are creation-ordered, so the last row is the newest estimate.
func (c *Client) FindLatestQuote(ctx context.Context, name string, phone string) (entities.ReconciledQuote, error) {
	if c != nil && c.mockMode {
		log.Printf("[reconcile][gateway] mock lookup name=%q phone=%q", name, phone)
		benefit := int64(12_098_000)
		kcc := int64(10_000_000)
		return entities.ReconciledQuote{FinalBenefit: &benefit, KCCPrice: &kcc}, nil
	}

	q := url.Values{}
	q.Set("name", strings.TrimSpace(name))
	q.Set("phone", strings.TrimSpace(phone))
	endpoint := c.baseURL + "/estimates/lookup?" + q.Encode()

	log.Printf("[reconcile][gateway] lookup start name=%q phone=%q", name, phone)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.ReconciledQuote{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[reconcile][gateway] lookup request failed err=%v", err)
		return entities.ReconciledQuote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.ReconciledQuote{}, interfaces.ErrQuoteNoMatch
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[reconcile][gateway] lookup bad status=%d body=%q", resp.StatusCode, body)
		return entities.ReconciledQuote{}, fmt.Errorf("quote system returned status %d", resp.StatusCode)
	}

	var envelope lookupEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Printf("[reconcile][gateway] lookup decode failed err=%v", err)
		return entities.ReconciledQuote{}, err
	}
	if len(envelope.Data) == 0 {
		log.Printf("[reconcile][gateway] lookup no match name=%q phone=%q", name, phone)
		return entities.ReconciledQuote{}, interfaces.ErrQuoteNoMatch
	}

	// The remote record is loosely typed; amounts arrive as numbers or
	// strings depending on the deployment.
	latest := envelope.Data[len(envelope.Data)-1]
	quote := entities.ReconciledQuote{
		FinalBenefit: coerceInt64(latest, "final_benefit", "finalBenefit"),
		KCCPrice:     coerceInt64(latest, "kcc_price", "kccPrice", "kcc_quote"),
	}

	log.Printf("[reconcile][gateway] lookup success candidates=%d", len(envelope.Data))
	return quote, nil
}

func coerceInt64(record map[string]any, keys ...string) *int64 {
	for _, key := range keys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case float64:
			n := int64(v)
			return &n
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return &n
			}
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return &n
			}
		}
	}
	return nil
}

func isQuoteLookupMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("QUOTESYS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
