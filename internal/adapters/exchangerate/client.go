// Package exchangerate reads latest rates from the ExchangeRate-API v4 endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the rate endpoint; the base currency code is appended.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest/"

// Client implements providers.RateProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

var _ providers.RateProvider = (*Client)(nil)

type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// LatestRates returns units of each currency per one unit of baseCurrency.
func (c *Client) LatestRates(ctx context.Context, baseCurrency string) (rates map[string]decimal.Decimal, err error) {
	defer func() { metrics.ObserveUpstream("exchangerate", err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(baseCurrency), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build exchange rate request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates for %s: %w", baseCurrency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("exchange rate service returned status %s", resp.Status)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode exchange rates: %w", err)
	}
	return payload.Rates, nil
}
