package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchDatasetsTool returns the search_datasets tool definition
func createSearchDatasetsTool() mcp.Tool {
	return mcp.NewTool("search_datasets",
		mcp.WithDescription("Zoek naar datasets in de Utrecht Open Data catalogus. Ondersteunt zoeken op trefwoorden in titel, beschrijving en tags."),
		mcp.WithString("query",
			mcp.Description("Zoekterm (optioneel). Laat leeg voor alle datasets."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum aantal resultaten (standaard 20)"),
		),
	)
}

// createGetDatasetTool returns the get_dataset tool definition
func createGetDatasetTool() mcp.Tool {
	return mcp.NewTool("get_dataset",
		mcp.WithDescription("Haal volledige details op van een specifieke dataset inclusief metadata, uitgever, licentie en publicatiedatum."),
		mcp.WithString("dataset_id",
			mcp.Required(),
			mcp.Description("Het unieke ID van de dataset"),
		),
	)
}

// createGetDistributionsTool returns the get_distributions tool definition
func createGetDistributionsTool() mcp.Tool {
	return mcp.NewTool("get_distributions",
		mcp.WithDescription("Haal beschikbare downloads (distributies) op voor een dataset. Toont formaten (CSV, JSON, XML) en download URLs."),
		mcp.WithString("dataset_id",
			mcp.Required(),
			mcp.Description("Het unieke ID van de dataset"),
		),
	)
}

// createListAllDatasetsTool returns the list_all_datasets tool definition
func createListAllDatasetsTool() mcp.Tool {
	return mcp.NewTool("list_all_datasets",
		mcp.WithDescription("Toon een overzicht van alle beschikbare datasets met basis informatie."),
	)
}

// createAnalyzeWooConnectionTool returns the analyze_woo_connection tool definition
func createAnalyzeWooConnectionTool() mcp.Tool {
	return mcp.NewTool("analyze_woo_connection",
		mcp.WithDescription("Analyseer een dataset en vind mogelijke koppelingen met Woo documenten. Geeft Woo categorieën, zoektermen en relevantie score."),
		mcp.WithString("dataset_id",
			mcp.Required(),
			mcp.Description("Het unieke ID van de dataset"),
		),
	)
}

// createFindWooRelatedDatasetsTool returns the find_woo_related_datasets tool definition
func createFindWooRelatedDatasetsTool() mcp.Tool {
	return mcp.NewTool("find_woo_related_datasets",
		mcp.WithDescription("Vind datasets die gerelateerd zijn aan een specifiek Woo onderwerp of keyword."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Woo onderwerp of keyword (bijv. 'milieu', 'subsidie', 'verkeer')"),
		),
	)
}

// createDataOverheidSearchTool returns the dataoverheid_search tool definition
func createDataOverheidSearchTool() mcp.Tool {
	return mcp.NewTool("dataoverheid_search",
		mcp.WithDescription("Zoek datasets op data.overheid.nl van alle Nederlandse overheidsorganisaties. Ondersteunt filteren op organisatie en tags."),
		mcp.WithString("query",
			mcp.Description("Zoekterm voor fulltext search (optioneel)"),
		),
		mcp.WithString("organization",
			mcp.Description("Filter op organisatie naam (bijv. 'gemeente-utrecht')"),
		),
		mcp.WithArray("tags",
			mcp.WithStringItems(),
			mcp.Description("Filter op tags/keywords"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum aantal resultaten (standaard 20, max 100)"),
		),
	)
}

// createDataOverheidGetDatasetTool returns the dataoverheid_get_dataset tool definition
func createDataOverheidGetDatasetTool() mcp.Tool {
	return mcp.NewTool("dataoverheid_get_dataset",
		mcp.WithDescription("Haal details op van een specifieke dataset van data.overheid.nl inclusief alle resources en metadata."),
		mcp.WithString("dataset_id",
			mcp.Required(),
			mcp.Description("Het unieke ID of name van de dataset"),
		),
	)
}

// createDataOverheidListOrganizationsTool returns the dataoverheid_list_organizations tool definition
func createDataOverheidListOrganizationsTool() mcp.Tool {
	return mcp.NewTool("dataoverheid_list_organizations",
		mcp.WithDescription("Lijst van alle overheidsorganisaties op data.overheid.nl met aantal datasets."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum aantal organisaties (standaard 50)"),
		),
	)
}

// createDataOverheidGetOrganizationTool returns the dataoverheid_get_organization tool definition
func createDataOverheidGetOrganizationTool() mcp.Tool {
	return mcp.NewTool("dataoverheid_get_organization",
		mcp.WithDescription("Details van een specifieke overheidsorganisatie inclusief datasets."),
		mcp.WithString("org_id",
			mcp.Required(),
			mcp.Description("ID of name van de organisatie"),
		),
		mcp.WithBoolean("include_datasets",
			mcp.Description("Ook datasets ophalen (standaard false)"),
		),
	)
}
