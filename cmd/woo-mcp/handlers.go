package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/woo"
)

// handleSearchDatasets implements the search_datasets tool
func handleSearchDatasets(utrecht interfaces.UtrechtClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		limit := request.GetInt("limit", 20)

		datasets, err := utrecht.SearchDatasets(ctx, query, limit)
		if err != nil {
			logger.Error().Err(err).Str("query", query).Msg("Dataset search failed")
			return errorResult(fmt.Sprintf("Fout bij zoeken: %v", err)), nil
		}

		return textResult(formatSearchResults(datasets)), nil
	}
}

// handleGetDataset implements the get_dataset tool
func handleGetDataset(utrecht interfaces.UtrechtClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasetID, err := request.RequireString("dataset_id")
		if err != nil || datasetID == "" {
			return errorResult("Error: dataset_id parameter is required"), nil
		}

		dataset, err := utrecht.GetDataset(ctx, datasetID)
		if err != nil {
			logger.Error().Err(err).Str("dataset", datasetID).Msg("Get dataset failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen dataset: %v", err)), nil
		}

		return textResult(formatDatasetDetail(datasetID, dataset)), nil
	}
}

// handleGetDistributions implements the get_distributions tool
func handleGetDistributions(utrecht interfaces.UtrechtClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasetID, err := request.RequireString("dataset_id")
		if err != nil || datasetID == "" {
			return errorResult("Error: dataset_id parameter is required"), nil
		}

		distributions, err := utrecht.GetDistributions(ctx, datasetID)
		if err != nil {
			logger.Error().Err(err).Str("dataset", datasetID).Msg("Get distributions failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen distributies: %v", err)), nil
		}

		return textResult(formatDistributions(datasetID, distributions)), nil
	}
}

// handleListAllDatasets implements the list_all_datasets tool
func handleListAllDatasets(utrecht interfaces.UtrechtClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasets, total, err := utrecht.ListDatasets(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List datasets failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen datasets: %v", err)), nil
		}

		return textResult(formatDatasetOverview(datasets, total)), nil
	}
}

// handleAnalyzeWooConnection implements the analyze_woo_connection tool
func handleAnalyzeWooConnection(utrecht interfaces.UtrechtClient, connector *woo.Connector, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasetID, err := request.RequireString("dataset_id")
		if err != nil || datasetID == "" {
			return errorResult("Error: dataset_id parameter is required"), nil
		}

		dataset, err := utrecht.GetDataset(ctx, datasetID)
		if err != nil {
			logger.Error().Err(err).Str("dataset", datasetID).Msg("Woo analysis fetch failed")
			return errorResult(fmt.Sprintf("Fout bij analyseren Woo koppeling: %v", err)), nil
		}

		return textResult(connector.GenerateReport(dataset)), nil
	}
}

// handleFindWooRelatedDatasets implements the find_woo_related_datasets tool
func handleFindWooRelatedDatasets(utrecht interfaces.UtrechtClient, connector *woo.Connector, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic, err := request.RequireString("topic")
		if err != nil || topic == "" {
			return errorResult("Error: topic parameter is required"), nil
		}

		datasets, _, err := utrecht.ListDatasets(ctx)
		if err != nil {
			logger.Error().Err(err).Str("topic", topic).Msg("Related dataset search failed")
			return errorResult(fmt.Sprintf("Fout bij zoeken gerelateerde datasets: %v", err)), nil
		}

		related := connector.FindRelated(topic, datasets)
		return textResult(formatRelatedDatasets(topic, related)), nil
	}
}

// handleDataOverheidSearch implements the dataoverheid_search tool
func handleDataOverheidSearch(ckan interfaces.DataOverheidClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		organization := request.GetString("organization", "")
		tags := request.GetStringSlice("tags", nil)
		limit := request.GetInt("limit", 20)
		if limit > 100 {
			limit = 100
		}

		result, err := ckan.SearchDatasets(ctx, interfaces.CKANSearchOptions{
			Query:        query,
			Organization: organization,
			Tags:         tags,
			Rows:         limit,
		})
		if err != nil {
			logger.Error().Err(err).Str("query", query).Msg("Data.overheid.nl search failed")
			return errorResult(fmt.Sprintf("Fout bij zoeken: %v", err)), nil
		}

		return textResult(formatCKANSearchResults(result, false)), nil
	}
}

// handleDataOverheidGetDataset implements the dataoverheid_get_dataset tool
func handleDataOverheidGetDataset(ckan interfaces.DataOverheidClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasetID, err := request.RequireString("dataset_id")
		if err != nil || datasetID == "" {
			return errorResult("Error: dataset_id parameter is required"), nil
		}

		dataset, err := ckan.GetDataset(ctx, datasetID)
		if err != nil {
			logger.Error().Err(err).Str("dataset", datasetID).Msg("Data.overheid.nl get dataset failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen dataset: %v", err)), nil
		}

		return textResult(formatCKANDatasetSummary(dataset, ckan.DatasetURL(dataset.Name))), nil
	}
}

// handleDataOverheidListOrganizations implements the dataoverheid_list_organizations tool
func handleDataOverheidListOrganizations(ckan interfaces.DataOverheidClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 50)

		orgs, err := ckan.ListOrganizations(ctx, true)
		if err != nil {
			logger.Error().Err(err).Msg("Data.overheid.nl list organizations failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen organisaties: %v", err)), nil
		}

		return textResult(formatOrganizationList(orgs, limit)), nil
	}
}

// handleDataOverheidGetOrganization implements the dataoverheid_get_organization tool
func handleDataOverheidGetOrganization(ckan interfaces.DataOverheidClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orgID, err := request.RequireString("org_id")
		if err != nil || orgID == "" {
			return errorResult("Error: org_id parameter is required"), nil
		}

		includeDatasets := request.GetBool("include_datasets", false)

		org, err := ckan.GetOrganization(ctx, orgID, includeDatasets)
		if err != nil {
			logger.Error().Err(err).Str("organization", orgID).Msg("Data.overheid.nl get organization failed")
			return errorResult(fmt.Sprintf("Fout bij ophalen organisatie: %v", err)), nil
		}

		return textResult(formatOrganizationDetail(org, includeDatasets)), nil
	}
}

// handleDatasetsResource implements the utrecht://datasets resource: the raw
// catalogue JSON, re-indented for readability.
func handleDatasetsResource(utrecht interfaces.UtrechtClient, logger *common.Logger) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw, err := utrecht.FetchRaw(ctx, "/datasets")
		if err != nil {
			logger.Error().Err(err).Msg("Dataset resource fetch failed")
			return nil, fmt.Errorf("failed to fetch datasets: %w", err)
		}

		var buf []byte
		var indented json.RawMessage
		if err := json.Unmarshal(raw, &indented); err == nil {
			if pretty, err := json.MarshalIndent(indented, "", "  "); err == nil {
				buf = pretty
			}
		}
		if buf == nil {
			buf = raw
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(buf),
			},
		}, nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
