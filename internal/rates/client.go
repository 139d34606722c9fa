// Package rates is the client for the currency exchange-rate service.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the public exchangerate API endpoint.
const DefaultBaseURL = "https://api.exchangerate-api.com"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// NewClient creates a rate client. An empty baseURL selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Rate fetches the current rate for one currency code. A non-success status
// or a response without an entry for the code fails the call; there is no
// per-code fallback.
func (c *Client) Rate(ctx context.Context, code string) (float64, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate for %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("rate service returned status %d for %s", resp.StatusCode, code)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode rate response for %s: %w", code, err)
	}

	rate, ok := body.Rates[code]
	if !ok {
		return 0, fmt.Errorf("rate service response has no rate for %s", code)
	}
	return rate, nil
}
