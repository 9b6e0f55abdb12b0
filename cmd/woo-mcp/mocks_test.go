package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

// mockUtrechtClient implements interfaces.UtrechtClient with overridable
// function fields.
type mockUtrechtClient struct {
	listDatasetsFn     func(ctx context.Context) ([]models.Record, int, error)
	searchDatasetsFn   func(ctx context.Context, query string, limit int) ([]models.Record, error)
	getDatasetFn       func(ctx context.Context, datasetID string) (models.Record, error)
	getDistributionsFn func(ctx context.Context, datasetID string) ([]models.Record, error)
	fetchRawFn         func(ctx context.Context, path string) (json.RawMessage, error)
}

func (m *mockUtrechtClient) ListDatasets(ctx context.Context) ([]models.Record, int, error) {
	if m.listDatasetsFn != nil {
		return m.listDatasetsFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockUtrechtClient) SearchDatasets(ctx context.Context, query string, limit int) ([]models.Record, error) {
	if m.searchDatasetsFn != nil {
		return m.searchDatasetsFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUtrechtClient) GetDataset(ctx context.Context, datasetID string) (models.Record, error) {
	if m.getDatasetFn != nil {
		return m.getDatasetFn(ctx, datasetID)
	}
	return nil, fmt.Errorf("dataset %s not found", datasetID)
}

func (m *mockUtrechtClient) GetDistributions(ctx context.Context, datasetID string) ([]models.Record, error) {
	if m.getDistributionsFn != nil {
		return m.getDistributionsFn(ctx, datasetID)
	}
	return nil, nil
}

func (m *mockUtrechtClient) FetchRaw(ctx context.Context, path string) (json.RawMessage, error) {
	if m.fetchRawFn != nil {
		return m.fetchRawFn(ctx, path)
	}
	return json.RawMessage(`{"data": []}`), nil
}

// mockDataOverheidClient implements interfaces.DataOverheidClient.
type mockDataOverheidClient struct {
	searchDatasetsFn    func(ctx context.Context, opts interfaces.CKANSearchOptions) (*models.CKANSearchResult, error)
	getDatasetFn        func(ctx context.Context, datasetID string) (*models.CKANDataset, error)
	listOrganizationsFn func(ctx context.Context, allFields bool) ([]models.CKANOrganization, error)
	getOrganizationFn   func(ctx context.Context, orgID string, includeDatasets bool) (*models.CKANOrganization, error)
	listTagsFn          func(ctx context.Context) ([]models.CKANTag, error)
	searchByLicenseFn   func(ctx context.Context, licenseID string, rows int) (*models.CKANSearchResult, error)
	popularDatasetsFn   func(ctx context.Context, limit int) ([]models.CKANDataset, error)
}

func (m *mockDataOverheidClient) SearchDatasets(ctx context.Context, opts interfaces.CKANSearchOptions) (*models.CKANSearchResult, error) {
	if m.searchDatasetsFn != nil {
		return m.searchDatasetsFn(ctx, opts)
	}
	return &models.CKANSearchResult{}, nil
}

func (m *mockDataOverheidClient) GetDataset(ctx context.Context, datasetID string) (*models.CKANDataset, error) {
	if m.getDatasetFn != nil {
		return m.getDatasetFn(ctx, datasetID)
	}
	return nil, fmt.Errorf("dataset %s not found", datasetID)
}

func (m *mockDataOverheidClient) ListOrganizations(ctx context.Context, allFields bool) ([]models.CKANOrganization, error) {
	if m.listOrganizationsFn != nil {
		return m.listOrganizationsFn(ctx, allFields)
	}
	return nil, nil
}

func (m *mockDataOverheidClient) GetOrganization(ctx context.Context, orgID string, includeDatasets bool) (*models.CKANOrganization, error) {
	if m.getOrganizationFn != nil {
		return m.getOrganizationFn(ctx, orgID, includeDatasets)
	}
	return nil, fmt.Errorf("organization %s not found", orgID)
}

func (m *mockDataOverheidClient) ListTags(ctx context.Context) ([]models.CKANTag, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx)
	}
	return nil, nil
}

func (m *mockDataOverheidClient) SearchByLicense(ctx context.Context, licenseID string, rows int) (*models.CKANSearchResult, error) {
	if m.searchByLicenseFn != nil {
		return m.searchByLicenseFn(ctx, licenseID, rows)
	}
	return &models.CKANSearchResult{}, nil
}

func (m *mockDataOverheidClient) PopularDatasets(ctx context.Context, limit int) ([]models.CKANDataset, error) {
	if m.popularDatasetsFn != nil {
		return m.popularDatasetsFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockDataOverheidClient) DatasetURL(datasetName string) string {
	return "https://data.overheid.nl/data/dataset/" + datasetName
}

func (m *mockDataOverheidClient) ResourceURL(datasetName, resourceID string) string {
	return "https://data.overheid.nl/data/dataset/" + datasetName + "/resource/" + resourceID
}

// sampleRecord builds a catalogue record in API shape.
func sampleRecord(id, title, description string, keywords ...string) models.Record {
	attrs := map[string]any{
		"dct:title":       title,
		"dct:description": description,
	}
	if len(keywords) > 0 {
		kws := make([]any, len(keywords))
		for i, k := range keywords {
			kws[i] = k
		}
		attrs["dcat:keyword"] = kws
	}
	return models.Record{
		"id":         id,
		"attributes": attrs,
	}
}
