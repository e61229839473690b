// Package explore is the client side of the product listing: a typed HTTP
// client for /api/products and an Accumulator that builds an infinitely
// scrolling result list from successive pages.
package explore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/params"
)

// DefaultTimeout bounds a single Fetch when the caller supplies no http.Client.
const DefaultTimeout = 10 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("products request failed: %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("products request failed: %d %s", e.Code, e.Message)
}

// Client fetches result pages from a storefront server.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the server at baseURL. A nil httpClient
// uses one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/products",
		http:     httpClient,
	}
}

// Fetch requests the page described by criteria.
func (c *Client) Fetch(ctx context.Context, criteria domain.FilterCriteria) (*domain.ResultPage, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.RawQuery = params.Encode(criteria).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Error}
	}

	var page domain.ResultPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode products response: %w", err)
	}
	return &page, nil
}
