// Package ckan provides a client for the data.overheid.nl CKAN action API.
package ckan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

const (
	DefaultBaseURL   = "https://data.overheid.nl/data/api/3/action"
	DefaultPortalURL = "https://data.overheid.nl"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultUserAgent = "Utrecht-OpenData-MCP/1.0"

	// MaxRows caps page_search page sizes, matching the CKAN server limit.
	MaxRows = 1000
)

// Client implements the DataOverheidClient interface. The API is public and
// needs no key.
type Client struct {
	baseURL    string
	portalURL  string
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the action API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithPortalURL sets the public portal base URL
func WithPortalURL(portalURL string) ClientOption {
	return func(c *Client) {
		c.portalURL = strings.TrimRight(portalURL, "/")
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

// NewClient creates a new data.overheid.nl CKAN client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		portalURL: DefaultPortalURL,
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

// ckanEnvelope is the standard CKAN action response wrapper.
type ckanEnvelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *ckanError      `json:"error,omitempty"`
}

type ckanError struct {
	Message string `json:"message"`
	Type    string `json:"__type"`
}

// action performs a CKAN action call and unwraps the {success, result, error}
// envelope into out.
func (c *Client) action(ctx context.Context, name string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + "/" + name
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Str("action", name).Dur("elapsed", elapsed).Msg("CKAN request failed")
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// CKAN reports action errors with non-200 status but still wraps them in
	// the envelope, so decode before checking the status.
	var envelope ckanEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("ckan API error: status %d for %s", resp.StatusCode, name)
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !envelope.Success {
		msg := "unknown error"
		if envelope.Error != nil && envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
		c.logger.Warn().Str("action", name).Int("status", resp.StatusCode).Str("error", msg).Msg("CKAN action failed")
		return fmt.Errorf("ckan action %s failed: %s", name, msg)
	}

	c.logger.Debug().Str("action", name).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("CKAN action")

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", name, err)
		}
	}
	return nil
}

// SearchDatasets runs package_search. An empty query matches everything,
// organization and tags become filter-query equality clauses, and rows is
// capped at the server maximum.
func (c *Client) SearchDatasets(ctx context.Context, opts interfaces.CKANSearchOptions) (*models.CKANSearchResult, error) {
	params := url.Values{}

	query := opts.Query
	if query == "" {
		query = "*:*"
	}
	params.Set("q", query)

	var fq []string
	if opts.Organization != "" {
		fq = append(fq, fmt.Sprintf("organization:%q", opts.Organization))
	}
	for _, tag := range opts.Tags {
		fq = append(fq, fmt.Sprintf("tags:%q", tag))
	}
	if len(fq) > 0 {
		params.Set("fq", strings.Join(fq, " AND "))
	}

	rows := opts.Rows
	if rows <= 0 {
		rows = 10
	}
	if rows > MaxRows {
		rows = MaxRows
	}
	params.Set("rows", strconv.Itoa(rows))
	if opts.Start > 0 {
		params.Set("start", strconv.Itoa(opts.Start))
	}
	params.Set("sort", "score desc, metadata_modified desc")

	var result models.CKANSearchResult
	if err := c.action(ctx, "package_search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDataset runs package_show for a dataset name or id.
func (c *Client) GetDataset(ctx context.Context, datasetID string) (*models.CKANDataset, error) {
	params := url.Values{}
	params.Set("id", datasetID)

	var dataset models.CKANDataset
	if err := c.action(ctx, "package_show", params, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// ListOrganizations runs organization_list. With allFields the result carries
// full organization records; otherwise only the names, which are mapped onto
// the Name field.
func (c *Client) ListOrganizations(ctx context.Context, allFields bool) ([]models.CKANOrganization, error) {
	params := url.Values{}
	if allFields {
		params.Set("all_fields", "true")

		var orgs []models.CKANOrganization
		if err := c.action(ctx, "organization_list", params, &orgs); err != nil {
			return nil, err
		}
		return orgs, nil
	}

	var names []string
	if err := c.action(ctx, "organization_list", params, &names); err != nil {
		return nil, err
	}
	orgs := make([]models.CKANOrganization, len(names))
	for i, name := range names {
		orgs[i] = models.CKANOrganization{Name: name}
	}
	return orgs, nil
}

// GetOrganization runs organization_show, optionally including the
// organization's datasets.
func (c *Client) GetOrganization(ctx context.Context, orgID string, includeDatasets bool) (*models.CKANOrganization, error) {
	params := url.Values{}
	params.Set("id", orgID)
	params.Set("include_datasets", strconv.FormatBool(includeDatasets))

	var org models.CKANOrganization
	if err := c.action(ctx, "organization_show", params, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListTags runs tag_list with all_fields so display names come along.
func (c *Client) ListTags(ctx context.Context) ([]models.CKANTag, error) {
	params := url.Values{}
	params.Set("all_fields", "true")

	var tags []models.CKANTag
	if err := c.action(ctx, "tag_list", params, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// SearchByLicense finds datasets published under a given license id, newest
// first.
func (c *Client) SearchByLicense(ctx context.Context, licenseID string, rows int) (*models.CKANSearchResult, error) {
	params := url.Values{}
	params.Set("q", "*:*")
	params.Set("fq", fmt.Sprintf("license_id:%q", licenseID))

	if rows <= 0 {
		rows = 10
	}
	if rows > MaxRows {
		rows = MaxRows
	}
	params.Set("rows", strconv.Itoa(rows))
	params.Set("sort", "metadata_modified desc")

	var result models.CKANSearchResult
	if err := c.action(ctx, "package_search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PopularDatasets returns the top datasets of a match-all search, which the
// API orders by relevance and recency.
func (c *Client) PopularDatasets(ctx context.Context, limit int) ([]models.CKANDataset, error) {
	result, err := c.SearchDatasets(ctx, interfaces.CKANSearchOptions{Rows: limit})
	if err != nil {
		return nil, err
	}
	return result.Results, nil
}

// DatasetURL returns the public portal page for a dataset.
func (c *Client) DatasetURL(datasetName string) string {
	return c.portalURL + "/data/dataset/" + datasetName
}

// ResourceURL returns the public portal page for a resource.
func (c *Client) ResourceURL(datasetName, resourceID string) string {
	return c.portalURL + "/data/dataset/" + datasetName + "/resource/" + resourceID
}

// Ensure Client implements DataOverheidClient
var _ interfaces.DataOverheidClient = (*Client)(nil)
