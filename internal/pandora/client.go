// Package pandora talks to the Delivery Hero vendor listing API that
// backs foodpanda Hong Kong.
package pandora

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultEndpoint is the public, unauthenticated vendor listing endpoint.
const DefaultEndpoint = "https://disco.deliveryhero.io/listing/api/v1/pandora/vendors"

// Lister fetches one page of raw vendor items around a coordinate.
// Items are untyped maps so that one malformed field in one vendor
// never poisons the rest of the page.
type Lister interface {
	List(ctx context.Context, longitude, latitude float64, limit, offset int) ([]map[string]any, error)
}

// Client is the HTTP implementation of Lister.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client against the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// listingResponse mirrors the slice of the response body we consume.
type listingResponse struct {
	Data struct {
		Items []map[string]any `json:"items"`
	} `json:"data"`
}

// List requests one page of vendors sorted by descending rating.
func (c *Client) List(ctx context.Context, longitude, latitude float64, limit, offset int) ([]map[string]any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	q := u.Query()
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("language_id", "10")
	q.Set("include", "characteristics")
	q.Set("dynamic_pricing", "0")
	q.Set("configuration", "Variant1")
	q.Set("country", "hk")
	q.Set("sort", "rating_desc")
	q.Set("use_free_delivery_label", "false")
	q.Set("vertical", "restaurants")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("customer_type", "regular")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Browser-like headers; the endpoint rejects anonymous clients.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "zh-HK,zh;q=0.9,en;q=0.8")
	req.Header.Set("x-disco-client-id", "web")
	req.Header.Set("Referer", "https://www.foodpanda.hk/")
	req.Header.Set("Origin", "https://www.foodpanda.hk")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing API returned status %d", resp.StatusCode)
	}

	var body listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return body.Data.Items, nil
}
