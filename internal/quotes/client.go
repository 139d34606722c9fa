// Package quotes is the client for the stock quote service (GLOBAL_QUOTE API).
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public quote API endpoint.
const DefaultBaseURL = "https://www.alphavantage.co"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

// NewClient creates a quote client. An empty baseURL selects the public API.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Price fetches the current price for one ticker. A non-success status fails
// the call; a missing or malformed price field in an otherwise good response
// yields 0.0 by policy.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("quote service returned status %d for %s", resp.StatusCode, symbol)
	}

	var body globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode quote response for %s: %w", symbol, err)
	}

	price, err := strconv.ParseFloat(body.GlobalQuote["05. price"], 64)
	if err != nil {
		// Missing or malformed price is not an error: fall back to zero.
		slog.WarnContext(ctx, "Quote response has no usable price, using 0.0", "symbol", symbol)
		return 0.0, nil
	}
	return price, nil
}
