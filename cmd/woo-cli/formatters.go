package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

// formatJSON renders any payload as indented JSON.
func formatJSON(data any) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("fout bij JSON encoderen: %w", err)
	}
	return string(out), nil
}

// formatTable renders datasets as a fixed-width id/title table.
func formatTable(datasets []models.Record) string {
	if len(datasets) == 0 {
		return "Geen datasets gevonden."
	}

	divider := strings.Repeat("=", 80)

	var sb strings.Builder
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("%-30s %-50s\n", "ID", "Titel"))
	sb.WriteString(divider + "\n")

	for _, ds := range datasets {
		id := ds.ID()
		if id == "" {
			id = "N/A"
		}
		title := ds.Attributes().AttrString("title")
		if title == "" {
			title = "Geen titel"
		}
		if len(title) > 47 {
			title = title[:44] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-30s %-50s\n", id, title))
	}

	sb.WriteString(divider)
	return sb.String()
}

// formatCompact renders one dataset per line.
func formatCompact(datasets []models.Record) string {
	if len(datasets) == 0 {
		return "Geen datasets gevonden."
	}

	var sb strings.Builder
	for _, ds := range datasets {
		title := ds.Attributes().AttrString("title")
		if title == "" {
			title = "Geen titel"
		}
		sb.WriteString(fmt.Sprintf("%s\t%s\n", ds.ID(), title))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatDetailed renders the full metadata of one dataset.
func formatDetailed(dataset models.Record) string {
	attrs := dataset.Attributes()
	divider := strings.Repeat("=", 80)

	title := attrs.AttrString("title")
	if title == "" {
		title = "N/A"
	}
	id := dataset.ID()
	if id == "" {
		id = "N/A"
	}
	desc := attrs.AttrString("description")
	if desc == "" {
		desc = "Geen beschrijving"
	}

	var sb strings.Builder
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("Dataset: %s\n", title))
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("\nID: %s\n", id))
	sb.WriteString(fmt.Sprintf("\nBeschrijving:\n%s\n", desc))

	if keywords := attrs.AttrStrings("keyword"); len(keywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nKeywords: %s\n", strings.Join(keywords, ", ")))
	}
	if issued := attrs.AttrString("issued"); issued != "" {
		sb.WriteString(fmt.Sprintf("\nGepubliceerd: %s\n", issued))
	}
	if modified := attrs.AttrString("modified"); modified != "" {
		sb.WriteString(fmt.Sprintf("Laatst gewijzigd: %s\n", modified))
	}
	if publisher, ok := attrs.Attr("publisher"); ok {
		if p, ok := publisher.(map[string]any); ok {
			name, _ := p["name"].(string)
			if name == "" {
				name = "N/A"
			}
			sb.WriteString(fmt.Sprintf("\nUitgever: %s\n", name))
		}
	}

	sb.WriteString(divider)
	return sb.String()
}

// formatDistributionList renders the available download formats.
func formatDistributionList(distributions []models.Record) string {
	if len(distributions) == 0 {
		return "Geen distributies gevonden."
	}

	divider := strings.Repeat("=", 80)

	var sb strings.Builder
	sb.WriteString(divider + "\n")
	sb.WriteString("Beschikbare formaten:\n")
	sb.WriteString(divider + "\n")

	for i, dist := range distributions {
		attrs := dist.Attributes()

		format := attrs.AttrString("format")
		if format == "" {
			format = "N/A"
		}
		sb.WriteString(fmt.Sprintf("\n%d. Formaat: %s\n", i+1, format))

		if title := attrs.AttrString("title"); title != "" {
			sb.WriteString(fmt.Sprintf("   Titel: %s\n", title))
		}
		if accessURL := attrs.AttrString("accessURL"); accessURL != "" {
			sb.WriteString(fmt.Sprintf("   URL: %s\n", accessURL))
		}
		if mediaType := attrs.AttrString("mediaType"); mediaType != "" {
			sb.WriteString(fmt.Sprintf("   Media type: %s\n", mediaType))
		}
		if size, ok := attrs.Attr("byteSize"); ok {
			if bytes, ok := size.(float64); ok {
				sb.WriteString(fmt.Sprintf("   Grootte: %.2f MB\n", bytes/(1024*1024)))
			}
		}
	}

	sb.WriteString(divider)
	return sb.String()
}
