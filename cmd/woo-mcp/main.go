// woo-mcp is the Utrecht Open Data MCP server. It speaks line-delimited
// JSON-RPC over stdin/stdout and exposes the Utrecht open data catalogue,
// the data.overheid.nl CKAN API and the Woo connection analysis as tools.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/clients/ckan"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/clients/utrecht"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/woo"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Stdout carries the JSON-RPC stream, so all logging goes to stderr.
	logger := common.NewLogger(config.Logging.Level)

	utrechtClient := utrecht.NewClient(
		utrecht.WithBaseURL(config.Clients.Utrecht.BaseURL),
		utrecht.WithRateLimit(config.Clients.Utrecht.RateLimit),
		utrecht.WithTimeout(config.Clients.Utrecht.GetTimeout()),
		utrecht.WithUserAgent(config.Clients.Utrecht.UserAgent),
		utrecht.WithLogger(logger),
	)

	ckanClient := ckan.NewClient(
		ckan.WithBaseURL(config.Clients.DataOverheid.BaseURL),
		ckan.WithPortalURL(config.Clients.DataOverheid.PortalURL),
		ckan.WithRateLimit(config.Clients.DataOverheid.RateLimit),
		ckan.WithTimeout(config.Clients.DataOverheid.GetTimeout()),
		ckan.WithLogger(logger),
	)

	connector := woo.NewConnector(nil)

	mcpServer := newMCPServer(utrechtClient, ckanClient, connector, logger)

	logger.Info().Str("version", common.GetVersion()).Msg("Utrecht Open Data MCP server gestart")

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}

// newMCPServer builds the MCP server with the full tool and resource catalog
// registered. Shared with the stdio test harness.
func newMCPServer(utrechtClient interfaces.UtrechtClient, ckanClient interfaces.DataOverheidClient, connector *woo.Connector, logger *common.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"utrecht-opendata",
		common.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	s.AddTool(createSearchDatasetsTool(), handleSearchDatasets(utrechtClient, logger))
	s.AddTool(createGetDatasetTool(), handleGetDataset(utrechtClient, logger))
	s.AddTool(createGetDistributionsTool(), handleGetDistributions(utrechtClient, logger))
	s.AddTool(createListAllDatasetsTool(), handleListAllDatasets(utrechtClient, logger))
	s.AddTool(createAnalyzeWooConnectionTool(), handleAnalyzeWooConnection(utrechtClient, connector, logger))
	s.AddTool(createFindWooRelatedDatasetsTool(), handleFindWooRelatedDatasets(utrechtClient, connector, logger))
	s.AddTool(createDataOverheidSearchTool(), handleDataOverheidSearch(ckanClient, logger))
	s.AddTool(createDataOverheidGetDatasetTool(), handleDataOverheidGetDataset(ckanClient, logger))
	s.AddTool(createDataOverheidListOrganizationsTool(), handleDataOverheidListOrganizations(ckanClient, logger))
	s.AddTool(createDataOverheidGetOrganizationTool(), handleDataOverheidGetOrganization(ckanClient, logger))

	s.AddResource(
		mcp.NewResource(
			"utrecht://datasets",
			"Utrecht Open Datasets",
			mcp.WithResourceDescription("Complete lijst van alle datasets"),
			mcp.WithMIMEType("application/json"),
		),
		handleDatasetsResource(utrechtClient, logger),
	)

	return s
}
