package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

// truncate shortens s to max characters, appending "..." when it was longer.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// formatSearchResults renders a Utrecht dataset search result list.
func formatSearchResults(datasets []models.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gevonden: %d datasets\n\n", len(datasets)))

	for _, ds := range datasets {
		attrs := ds.Attributes()
		title := attrs.AttrString("title")
		if title == "" {
			title = ds.ID()
		}
		if title == "" {
			title = "Geen titel"
		}
		desc := attrs.AttrString("description")
		if desc == "" {
			desc = "Geen beschrijving"
		}

		sb.WriteString(fmt.Sprintf("📊 %s\n", title))
		sb.WriteString(fmt.Sprintf("   ID: %s\n", ds.ID()))
		sb.WriteString(fmt.Sprintf("   %s\n\n", truncate(desc, 100)))
	}

	return sb.String()
}

// formatDatasetDetail renders the full metadata view of one dataset.
func formatDatasetDetail(datasetID string, dataset models.Record) string {
	attrs := dataset.Attributes()

	title := attrs.AttrString("title")
	if title == "" {
		title = datasetID
	}
	desc := attrs.AttrString("description")
	if desc == "" {
		desc = "Geen beschrijving"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 %s\n", title))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	sb.WriteString(fmt.Sprintf("ID: %s\n\n", datasetID))
	sb.WriteString(fmt.Sprintf("Beschrijving:\n%s\n\n", desc))

	if keywords := attrs.AttrStrings("keyword"); len(keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n\n", strings.Join(keywords, ", ")))
	}

	if publisher, ok := attrs.Attr("publisher"); ok {
		switch p := publisher.(type) {
		case map[string]any:
			if name, ok := p["name"].(string); ok {
				sb.WriteString(fmt.Sprintf("Uitgever: %s\n", name))
			}
		case string:
			sb.WriteString(fmt.Sprintf("Uitgever: %s\n", p))
		}
	}

	if issued := attrs.AttrString("issued"); issued != "" {
		sb.WriteString(fmt.Sprintf("Gepubliceerd: %s\n", issued))
	}
	if modified := attrs.AttrString("modified"); modified != "" {
		sb.WriteString(fmt.Sprintf("Laatst gewijzigd: %s\n", modified))
	}

	return sb.String()
}

// formatDistributions renders the download list of a dataset. MIME formats
// are collapsed to their subtype ("text/csv" -> "CSV").
func formatDistributions(datasetID string, distributions []models.Record) string {
	if len(distributions) == 0 {
		return "Geen downloads beschikbaar voor deze dataset."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Beschikbare downloads voor %s:\n\n", datasetID))

	for i, dist := range distributions {
		attrs := dist.Attributes()

		format := attrs.AttrString("format")
		if format == "" {
			format = "Onbekend"
		}
		if idx := strings.LastIndex(format, "/"); idx >= 0 {
			format = strings.ToUpper(format[idx+1:])
		}

		title := attrs.AttrString("title")
		if title == "" {
			title = format
		}

		sb.WriteString(fmt.Sprintf("%d. Formaat: %s\n", i+1, format))
		sb.WriteString(fmt.Sprintf("   Titel: %s\n", title))
		if accessURL := attrs.AttrString("accessURL"); accessURL != "" {
			sb.WriteString(fmt.Sprintf("   URL: %s\n", accessURL))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDatasetOverview renders the full catalogue overview, capped at 50
// entries.
func formatDatasetOverview(datasets []models.Record, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Totaal aantal datasets: %d\n\n", total))

	shown := datasets
	if len(shown) > 50 {
		shown = shown[:50]
	}
	for _, ds := range shown {
		title := ds.Attributes().AttrString("title")
		if title == "" {
			title = ds.ID()
		}
		if title == "" {
			title = "Geen titel"
		}
		sb.WriteString(fmt.Sprintf("📊 %s (ID: %s)\n", title, ds.ID()))
	}

	if len(datasets) > 50 {
		sb.WriteString(fmt.Sprintf("\n... en nog %d datasets meer\n", len(datasets)-50))
	}

	return sb.String()
}

// formatRelatedDatasets renders the top 10 datasets related to a Woo topic.
func formatRelatedDatasets(topic string, related []models.RelatedDataset) string {
	if len(related) == 0 {
		return fmt.Sprintf("Geen datasets gevonden gerelateerd aan '%s'", topic)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔗 Datasets gerelateerd aan '%s':\n\n", topic))
	sb.WriteString(fmt.Sprintf("Gevonden: %d dataset(s)\n\n", len(related)))

	shown := related
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, item := range shown {
		title := item.Analysis.Title
		if title == "" {
			title = item.Dataset.ID()
		}
		if title == "" {
			title = "Geen titel"
		}

		sb.WriteString(fmt.Sprintf("📊 %s\n", title))
		sb.WriteString(fmt.Sprintf("   ID: %s\n", item.Dataset.ID()))
		sb.WriteString(fmt.Sprintf("   Relevantie: %d/10\n", item.Relevance))

		topics := item.Analysis.Topics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		sb.WriteString(fmt.Sprintf("   Topics: %s\n", strings.Join(topics, ", ")))

		if len(item.Analysis.Categories) > 0 {
			cats := item.Analysis.Categories
			if len(cats) > 2 {
				cats = cats[:2]
			}
			names := make([]string, len(cats))
			for i, c := range cats {
				names[i] = c.Name
			}
			sb.WriteString(fmt.Sprintf("   Woo categorieën: %s\n", strings.Join(names, ", ")))
		}
		sb.WriteString("\n")
	}

	if len(related) > 10 {
		sb.WriteString(fmt.Sprintf("... en nog %d datasets meer\n", len(related)-10))
	}

	return sb.String()
}

// formatCKANSearchResults renders a data.overheid.nl search result list.
func formatCKANSearchResults(result *models.CKANSearchResult, compact bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gevonden: %d datasets\n\n", result.Count))

	if len(result.Results) == 0 {
		sb.WriteString("Geen resultaten gevonden.\n")
		return sb.String()
	}

	for i, dataset := range result.Results {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, dataset.DisplayTitle()))

		if compact {
			orgName := ""
			if dataset.Organization != nil {
				orgName = dataset.Organization.Title
			}
			sb.WriteString(fmt.Sprintf("   ID: %s | Organisatie: %s\n", dataset.Name, orgName))
			sb.WriteString("\n")
			continue
		}

		sb.WriteString(fmt.Sprintf("   ID: %s\n", dataset.Name))
		if dataset.Notes != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", truncate(dataset.Notes, 150)))
		}
		if dataset.Organization != nil {
			sb.WriteString(fmt.Sprintf("   Organisatie: %s\n", dataset.Organization.Title))
		}
		if len(dataset.Resources) > 0 {
			formatSet := make(map[string]struct{})
			for _, res := range dataset.Resources {
				if res.Format != "" {
					formatSet[strings.ToUpper(res.Format)] = struct{}{}
				}
			}
			formats := make([]string, 0, len(formatSet))
			for f := range formatSet {
				formats = append(formats, f)
			}
			sort.Strings(formats)
			sb.WriteString(fmt.Sprintf("   Formaten: %s\n", strings.Join(formats, ", ")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatCKANDatasetSummary renders a full data.overheid.nl dataset summary.
func formatCKANDatasetSummary(dataset *models.CKANDataset, portalURL string) string {
	divider := strings.Repeat("=", 70)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 %s\n", dataset.DisplayTitle()))
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("ID: %s\n", dataset.Name))
	sb.WriteString(fmt.Sprintf("URL: %s\n", portalURL))

	if dataset.Organization != nil {
		sb.WriteString(fmt.Sprintf("Organisatie: %s\n", dataset.Organization.DisplayTitle()))
	}

	if dataset.Notes != "" {
		sb.WriteString(fmt.Sprintf("\nBeschrijving:\n%s\n", truncate(dataset.Notes, 297)))
	}

	if dataset.LicenseTitle != "" {
		sb.WriteString(fmt.Sprintf("\nLicentie: %s\n", dataset.LicenseTitle))
	}

	if len(dataset.Tags) > 0 {
		tags := dataset.Tags
		if len(tags) > 5 {
			tags = tags[:5]
		}
		labels := make([]string, len(tags))
		for i, t := range tags {
			labels[i] = t.Label()
		}
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(labels, ", ")))
	}

	if len(dataset.Resources) > 0 {
		sb.WriteString(fmt.Sprintf("\n📦 Resources (%d):\n", len(dataset.Resources)))
		resources := dataset.Resources
		if len(resources) > 5 {
			resources = resources[:5]
		}
		for i, res := range resources {
			name := res.Name
			if name == "" {
				name = "Naamloos"
			}
			format := res.Format
			if format == "" {
				format = "Onbekend"
			}
			sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, name, strings.ToUpper(format)))
			if res.URL != "" {
				sb.WriteString(fmt.Sprintf("     URL: %s\n", res.URL))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\nAangemaakt: %s\n", datePart(dataset.MetadataCreated)))
	sb.WriteString(fmt.Sprintf("Gewijzigd: %s\n", datePart(dataset.MetadataModified)))
	sb.WriteString(divider)
	return sb.String()
}

// datePart keeps the date portion of a CKAN timestamp.
func datePart(ts string) string {
	if ts == "" {
		return "Onbekend"
	}
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}

// formatOrganizationList renders the government organization overview.
func formatOrganizationList(orgs []models.CKANOrganization, limit int) string {
	var sb strings.Builder
	sb.WriteString("🏛️ Nederlandse overheidsorganisaties op data.overheid.nl\n\n")
	sb.WriteString(fmt.Sprintf("Totaal: %d organisaties\n\n", len(orgs)))

	shown := orgs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, org := range shown {
		title := org.DisplayTitle()
		if title == "" {
			title = "Onbekend"
		}
		name := org.Name
		if name == "" {
			name = "onbekend"
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("   ID: %s\n", name))
		sb.WriteString(fmt.Sprintf("   Datasets: %d\n", org.PackageCount))
		if org.Description != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", truncate(org.Description, 100)))
		}
		sb.WriteString("\n")
	}

	if len(orgs) > len(shown) {
		sb.WriteString(fmt.Sprintf("... en nog %d organisaties meer\n", len(orgs)-len(shown)))
	}

	return sb.String()
}

// formatOrganizationDetail renders one organization, optionally with its
// datasets (capped at 20).
func formatOrganizationDetail(org *models.CKANOrganization, includeDatasets bool) string {
	divider := strings.Repeat("=", 70)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏛️ %s\n", org.DisplayTitle()))
	sb.WriteString(divider + "\n\n")
	sb.WriteString(fmt.Sprintf("ID: %s\n", org.Name))
	sb.WriteString(fmt.Sprintf("Datasets: %d\n", org.PackageCount))

	if org.Description != "" {
		sb.WriteString(fmt.Sprintf("\nBeschrijving:\n%s\n", org.Description))
	}
	if org.ImageURL != "" {
		sb.WriteString(fmt.Sprintf("\nLogo: %s\n", org.ImageURL))
	}

	if includeDatasets && len(org.Packages) > 0 {
		sb.WriteString(fmt.Sprintf("\n📊 Datasets (%d):\n\n", len(org.Packages)))
		packages := org.Packages
		if len(packages) > 20 {
			packages = packages[:20]
		}
		for i, pkg := range packages {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, pkg.DisplayTitle()))
			sb.WriteString(fmt.Sprintf("   ID: %s\n", pkg.Name))
			if pkg.Notes != "" {
				sb.WriteString(fmt.Sprintf("   %s\n", truncate(pkg.Notes, 100)))
			}
			sb.WriteString("\n")
		}
		if len(org.Packages) > 20 {
			sb.WriteString(fmt.Sprintf("... en nog %d datasets meer\n", len(org.Packages)-20))
		}
	}

	sb.WriteString(divider)
	return sb.String()
}
