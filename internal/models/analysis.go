package models

// CategorySuggestion links a dataset to one statutory Woo disclosure
// category (Art 3.3 Woo document classes).
type CategorySuggestion struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

// Analysis is the result of analysing one dataset for Woo connections.
// RelevanceScore is the number of matched topics plus matched categories:
// a non-negative integer with no fixed maximum. The "/10" seen in rendered
// reports is presentation only.
type Analysis struct {
	DatasetID      string               `json:"dataset_id"`
	Title          string               `json:"title"`
	Keywords       []string             `json:"keywords"`
	Topics         []string             `json:"topics"`
	Categories     []CategorySuggestion `json:"woo_categories"`
	SearchTerms    []string             `json:"woo_search_terms"`
	IndexURL       string               `json:"woo_index_url"`
	RelevanceScore int                  `json:"relevance_score"`
}

// RelatedDataset pairs a dataset with its analysis and the relevance it
// scored against a specific topic query.
type RelatedDataset struct {
	Dataset   Record    `json:"dataset"`
	Analysis  *Analysis `json:"analysis"`
	Relevance int       `json:"relevance"`
}
