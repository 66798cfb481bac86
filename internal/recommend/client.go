package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
	"github.com/smartshop-labs/catalog-backend/internal/preference"
)

// Client talks to the upstream catalog/recommendation service. Both calls
// treat any non-2xx status as a hard failure; the recommendation call keeps
// the response body text in the error for diagnostics.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds the client knobs. Timeout defaults to 30s.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{baseURL: cfg.BaseURL, httpClient: httpClient}
}

// FetchProducts retrieves the full product catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("create products request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}
	return products, nil
}

// recommendationRequest is the wire shape of the recommendation call.
type recommendationRequest struct {
	Preferences     preference.Snapshot `json:"preferences"`
	BrowsingHistory []int               `json:"browsing_history"`
}

type recommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}

// GetRecommendations posts the preference snapshot and raw history and
// returns whatever the engine sends back, unvalidated.
func (c *Client) GetRecommendations(ctx context.Context, prefs preference.Snapshot, historyIDs []int) ([]Recommendation, error) {
	if historyIDs == nil {
		historyIDs = []int{}
	}
	body, err := json.Marshal(recommendationRequest{Preferences: prefs, BrowsingHistory: historyIDs})
	if err != nil {
		return nil, fmt.Errorf("marshal recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recommendation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("recommendation request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed recommendationResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode recommendation response: %w", err)
	}
	return parsed.Recommendations, nil
}
