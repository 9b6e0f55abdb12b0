// Package interfaces defines the client contracts consumed by the MCP tool
// handlers, the proxy, and the CLI. Handlers depend on these interfaces so
// tests can substitute mocks without network access.
package interfaces

import (
	"context"
	"encoding/json"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

// UtrechtClient fetches datasets from the Utrecht Open Data API.
type UtrechtClient interface {
	// ListDatasets returns all datasets plus the catalogue total.
	ListDatasets(ctx context.Context) ([]models.Record, int, error)

	// SearchDatasets filters the catalogue client-side on title,
	// description, keywords and id. An empty query returns everything.
	SearchDatasets(ctx context.Context, query string, limit int) ([]models.Record, error)

	// GetDataset fetches one dataset by id.
	GetDataset(ctx context.Context, datasetID string) (models.Record, error)

	// GetDistributions fetches the download distributions of a dataset.
	GetDistributions(ctx context.Context, datasetID string) ([]models.Record, error)

	// FetchRaw performs a GET against an API path and returns the raw JSON
	// body. Used by the resource read path and the CORS proxy.
	FetchRaw(ctx context.Context, path string) (json.RawMessage, error)
}

// CKANSearchOptions narrows a data.overheid.nl package search. Organization
// and Tags become a conjunction of filter-query equality clauses.
type CKANSearchOptions struct {
	Query        string
	Organization string
	Tags         []string
	Rows         int
	Start        int
}

// DataOverheidClient talks to the data.overheid.nl CKAN action API.
type DataOverheidClient interface {
	SearchDatasets(ctx context.Context, opts CKANSearchOptions) (*models.CKANSearchResult, error)
	GetDataset(ctx context.Context, datasetID string) (*models.CKANDataset, error)
	ListOrganizations(ctx context.Context, allFields bool) ([]models.CKANOrganization, error)
	GetOrganization(ctx context.Context, orgID string, includeDatasets bool) (*models.CKANOrganization, error)
	ListTags(ctx context.Context) ([]models.CKANTag, error)
	SearchByLicense(ctx context.Context, licenseID string, rows int) (*models.CKANSearchResult, error)

	// PopularDatasets returns the top datasets of a match-all search.
	PopularDatasets(ctx context.Context, limit int) ([]models.CKANDataset, error)

	// DatasetURL returns the public portal page for a dataset.
	DatasetURL(datasetName string) string

	// ResourceURL returns the public portal page for a resource.
	ResourceURL(datasetName, resourceID string) string
}
