// Package restcountries reads the public country directory at restcountries.com.
package restcountries

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/metrics"
)

// DefaultURL lists every country with only the fields we need.
const DefaultURL = "https://restcountries.com/v3.1/all?fields=name,currencies"

// Client implements providers.CountryDirectory.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a Client. An empty url selects DefaultURL.
func NewClient(httpClient *http.Client, url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{httpClient: httpClient, url: url}
}

var _ providers.CountryDirectory = (*Client)(nil)

type countryPayload struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Currencies json.RawMessage `json:"currencies"`
}

// ListCountries fetches the full directory.
func (c *Client) ListCountries(ctx context.Context) (countries []providers.Country, err error) {
	defer func() { metrics.ObserveUpstream("restcountries", err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build country directory request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch country directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("country directory returned status %s", resp.Status)
	}

	var payload []countryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode country directory: %w", err)
	}

	countries = make([]providers.Country, 0, len(payload))
	for _, p := range payload {
		codes, err := objectKeys(p.Currencies)
		if err != nil {
			return nil, fmt.Errorf("failed to decode currencies of %q: %w", p.Name.Common, err)
		}
		countries = append(countries, providers.Country{CommonName: p.Name.Common, CurrencyCodes: codes})
	}
	return countries, nil
}

// objectKeys returns the keys of a JSON object in document order.
// null, empty and missing objects yield no keys.
func objectKeys(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
