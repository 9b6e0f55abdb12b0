package woo

import (
	"fmt"
	"strings"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

// GenerateReport renders a display-ready Woo connection report for one
// dataset. The "X/10" relevance label is presentation only: the underlying
// score is an unbounded non-negative integer.
func (c *Connector) GenerateReport(dataset models.Record) string {
	analysis := c.Analyze(dataset)

	divider := strings.Repeat("=", 70)

	var sb strings.Builder
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("WOO KOPPELING ANALYSE: %s\n", analysis.Title))
	sb.WriteString(divider + "\n\n")

	sb.WriteString(fmt.Sprintf("Dataset ID: %s\n", analysis.DatasetID))
	sb.WriteString(fmt.Sprintf("Relevantie score: %d/10\n\n", analysis.RelevanceScore))

	sb.WriteString("GEÏDENTIFICEERDE ONDERWERPEN:\n")
	if len(analysis.Topics) > 0 {
		for _, topic := range analysis.Topics {
			sb.WriteString(fmt.Sprintf("  • %s\n", topic))
		}
	} else {
		sb.WriteString("  (geen specifieke onderwerpen gevonden)\n")
	}
	sb.WriteString("\n")

	sb.WriteString("GERELATEERDE WOO CATEGORIEËN:\n")
	if len(analysis.Categories) > 0 {
		for _, cat := range analysis.Categories {
			sb.WriteString(fmt.Sprintf("  • %s - %s\n", cat.Category, cat.Name))
			sb.WriteString(fmt.Sprintf("    Reden: %s\n", cat.Reason))
		}
	} else {
		sb.WriteString("  (geen directe categorieën gevonden)\n")
	}
	sb.WriteString("\n")

	sb.WriteString("AANBEVOLEN ZOEKTERMEN VOOR WOO-INDEX:\n")
	for _, term := range analysis.SearchTerms {
		sb.WriteString(fmt.Sprintf("  • %s\n", term))
	}
	sb.WriteString("\n")

	sb.WriteString("WOO-INDEX LINKS:\n")
	sb.WriteString(fmt.Sprintf("  Gemeente Utrecht: %s\n\n", analysis.IndexURL))

	sb.WriteString("HOE TE GEBRUIKEN:\n")
	sb.WriteString("  1. Bezoek de Woo-index URL hierboven\n")
	sb.WriteString("  2. Zoek naar de aanbevolen zoektermen\n")
	sb.WriteString("  3. Filter op de relevante Woo categorieën\n")
	sb.WriteString("  4. Vergelijk gevonden documenten met deze dataset\n\n")

	sb.WriteString(divider)
	return sb.String()
}
