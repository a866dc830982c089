// internal/adapters/upc/client.go
package upc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

const defaultBaseURL = "https://api.upcdatabase.org"

// Client looks up product data in the UPC database API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Statically assert that *Client implements the ProductLookup interface.
var _ ports.ProductLookup = (*Client)(nil)

// Option customizes the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new UPC database client
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With(slog.String("component", "upc_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// productResponse mirrors the UPC database API payload. The API reports
// both hard failures and unknown barcodes through success=false.
type productResponse struct {
	Success      bool   `json:"success"`
	Barcode      string `json:"barcode"`
	Title        string `json:"title"`
	Alias        string `json:"alias"`
	Description  string `json:"description"`
	Brand        string `json:"brand"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	MSRP         string `json:"msrp"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Lookup resolves a barcode against the UPC database. An unknown barcode
// returns (nil, nil); transport and API failures return an UpstreamError.
func (c *Client) Lookup(ctx context.Context, barcode string) (*domain.ProductData, error) {
	endpoint := fmt.Sprintf("%s/product/%s?apikey=%s",
		c.baseURL, url.PathEscape(barcode), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("upc", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("upc", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError("upc",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("upc",
			fmt.Errorf("failed to decode response: %w", err))
	}

	if !payload.Success {
		// The API answers success=false for unknown barcodes as well as
		// real errors; treat both as "no product".
		c.logger.DebugContext(ctx, "upc lookup returned no product",
			slog.String("barcode", barcode),
			slog.String("message", payload.Error.Message))
		return nil, nil
	}

	data := &domain.ProductData{
		Barcode:      barcode,
		Title:        payload.Title,
		Alias:        payload.Alias,
		Description:  payload.Description,
		Brand:        payload.Brand,
		Manufacturer: payload.Manufacturer,
		Category:     payload.Category,
	}
	if payload.MSRP != "" {
		if msrp, err := decimal.NewFromString(payload.MSRP); err == nil {
			data.MSRP = &msrp
		}
	}

	c.logger.DebugContext(ctx, "upc lookup succeeded",
		slog.String("barcode", barcode),
		slog.String("title", data.Title))

	return data, nil
}
