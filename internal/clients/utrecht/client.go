// Package utrecht provides a client for the Utrecht Open Data API
package utrecht

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

const (
	DefaultBaseURL   = "https://open.utrecht.nl/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultUserAgent = "Utrecht-OpenData-MCP/1.0"
)

// Client implements the UtrechtClient interface against the public
// open.utrecht.nl catalogue. No API key is required.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a new Utrecht Open Data API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchRaw performs a GET against an API path (e.g. "/datasets") and
// returns the raw JSON body.
func (c *Client) FetchRaw(ctx context.Context, path string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("elapsed", elapsed).Msg("Utrecht API request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Str("path", path).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("Utrecht API non-OK response")
		return nil, fmt.Errorf("utrecht API error: status %d for %s", resp.StatusCode, path)
	}

	c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("Utrecht API call")

	return json.RawMessage(body), nil
}

// ListDatasets returns all datasets plus the catalogue total.
func (c *Client) ListDatasets(ctx context.Context) ([]models.Record, int, error) {
	raw, err := c.FetchRaw(ctx, "/datasets")
	if err != nil {
		return nil, 0, err
	}

	var list models.DatasetList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, 0, fmt.Errorf("failed to decode dataset list: %w", err)
	}

	total := list.Meta.Total
	if total == 0 {
		total = len(list.Data)
	}
	return list.Data, total, nil
}

// SearchDatasets filters the catalogue client-side: the API has no search
// endpoint, so the query is matched case-insensitively against title,
// description, keywords and id. An empty query returns everything up to
// the limit; limit <= 0 means no limit.
func (c *Client) SearchDatasets(ctx context.Context, query string, limit int) ([]models.Record, error) {
	datasets, _, err := c.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	if query != "" {
		queryLower := strings.ToLower(query)
		var filtered []models.Record
		for _, ds := range datasets {
			attrs := ds.Attributes()
			title := strings.ToLower(attrs.AttrString("title"))
			description := strings.ToLower(attrs.AttrString("description"))
			keywords := strings.ToLower(strings.Join(attrs.AttrStrings("keyword"), " "))
			id := strings.ToLower(ds.ID())

			if strings.Contains(title, queryLower) ||
				strings.Contains(description, queryLower) ||
				strings.Contains(keywords, queryLower) ||
				strings.Contains(id, queryLower) {
				filtered = append(filtered, ds)
			}
		}
		datasets = filtered
	}

	if limit > 0 && len(datasets) > limit {
		datasets = datasets[:limit]
	}
	return datasets, nil
}

// GetDataset fetches one dataset by id.
func (c *Client) GetDataset(ctx context.Context, datasetID string) (models.Record, error) {
	raw, err := c.FetchRaw(ctx, "/datasets/"+datasetID)
	if err != nil {
		return nil, err
	}

	var record models.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return models.UnwrapData(record), nil
}

// GetDistributions fetches the download distributions of a dataset.
func (c *Client) GetDistributions(ctx context.Context, datasetID string) ([]models.Record, error) {
	raw, err := c.FetchRaw(ctx, "/datasets/"+datasetID+"/distributions")
	if err != nil {
		return nil, err
	}

	var list models.DatasetList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode distributions: %w", err)
	}
	return list.Data, nil
}

// Ensure Client implements UtrechtClient
var _ interfaces.UtrechtClient = (*Client)(nil)
