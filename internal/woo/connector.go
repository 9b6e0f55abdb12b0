// Package woo connects open data datasets to potential Woo (open government
// disclosure) documents. The Woo index has no public API yet, so the link is
// heuristic: keyword extraction from dataset metadata, mapping onto a fixed
// topic vocabulary, and suggestion of the statutory disclosure categories.
package woo

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/models"
)

const (
	// WooIndexBase is the national Woo index for government organisations.
	WooIndexBase = "https://organisaties.overheid.nl"

	// UtrechtWooURL points at the Woo index entry for the Utrecht municipality.
	UtrechtWooURL = WooIndexBase + "/woo/nl.oorg.gemutrecht_gemeente"
)

// wordPattern matches maximal runs of letters, digits and underscores,
// Unicode-aware so accented Dutch words tokenize as one term.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Connector maps dataset metadata onto Woo topics and categories. All state
// is the immutable vocabulary, so a single Connector is safe for concurrent
// use across tool calls.
type Connector struct {
	vocab     *Vocabulary
	stopwords map[string]struct{}
	indexURL  string
}

// NewConnector creates a connector for the given vocabulary. A nil
// vocabulary selects the default Dutch tables.
func NewConnector(vocab *Vocabulary) *Connector {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	stopwords := make(map[string]struct{}, len(vocab.Stopwords))
	for _, w := range vocab.Stopwords {
		stopwords[w] = struct{}{}
	}
	return &Connector{
		vocab:     vocab,
		stopwords: stopwords,
		indexURL:  UtrechtWooURL,
	}
}

// ExtractKeywords tokenizes free text into candidate keywords: lowercased,
// longer than 3 characters and not a stopword. The result is deduplicated
// and keeps first-occurrence order, which makes every downstream step
// deterministic.
func (c *Connector) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var keywords []string
	seen := make(map[string]struct{})
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, stop := c.stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// MapTopics maps keywords onto the Woo topic vocabulary. The match is
// deliberately bidirectional: an anchor contained in a keyword counts, and
// so does a keyword contained in an anchor ("bus" matches "busbaan", and
// "financ" would match anchor "financiën"). Narrowing this to exact match
// would change recall substantially. Topics are returned deduplicated in
// first-match order and are always drawn from the vocabulary tables.
func (c *Connector) MapTopics(keywords []string) []string {
	var topics []string
	seen := make(map[string]struct{})

	for _, keyword := range keywords {
		for _, entry := range c.vocab.Topics {
			if !strings.Contains(keyword, entry.Anchor) && !strings.Contains(entry.Anchor, keyword) {
				continue
			}
			for _, topic := range entry.Topics {
				if _, dup := seen[topic]; dup {
					continue
				}
				seen[topic] = struct{}{}
				topics = append(topics, topic)
			}
		}
	}
	return topics
}

// SuggestCategories suggests Woo disclosure categories in two passes: a
// keyword pass (first trigger hit per category wins) followed by the
// topic rules. The output never contains the same category id twice;
// the first suggestion for an id is kept.
func (c *Connector) SuggestCategories(keywords, topics []string) []models.CategorySuggestion {
	var suggestions []models.CategorySuggestion
	seen := make(map[string]struct{})

	add := func(s models.CategorySuggestion) {
		if _, dup := seen[s.Category]; dup {
			return
		}
		seen[s.Category] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, cat := range c.vocab.Categories {
	triggers:
		for _, kw := range keywords {
			for _, trigger := range cat.Triggers {
				if strings.Contains(kw, trigger) {
					add(models.CategorySuggestion{
						Category: cat.ID,
						Name:     cat.Name,
						Reason:   fmt.Sprintf("Bevat keyword: %s", kw),
					})
					break triggers
				}
			}
		}
	}

	for _, rule := range c.vocab.TopicRules {
		if intersects(topics, rule.Topics) {
			add(models.CategorySuggestion{
				Category: rule.CategoryID,
				Name:     c.vocab.CategoryName(rule.CategoryID),
				Reason:   rule.Reason,
			})
		}
	}

	return suggestions
}

// GenerateSearchTerms builds suggested search terms for the Woo index: the
// 5 longest keywords (ties keep first-occurrence order) followed by up to 3
// topics, deduplicated while preserving order.
func (c *Connector) GenerateSearchTerms(keywords, topics []string) []string {
	byLength := make([]string, len(keywords))
	copy(byLength, keywords)
	sort.SliceStable(byLength, func(i, j int) bool {
		return utf8.RuneCountInString(byLength[i]) > utf8.RuneCountInString(byLength[j])
	})
	if len(byLength) > 5 {
		byLength = byLength[:5]
	}

	terms := byLength
	for i, topic := range topics {
		if i >= 3 {
			break
		}
		terms = append(terms, topic)
	}

	var unique []string
	seen := make(map[string]struct{})
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		unique = append(unique, term)
	}
	return unique
}

// Analyze runs the full pipeline for one dataset: resolve title,
// description and keyword list, extract keywords from the combined text,
// map topics, suggest categories and search terms. The keyword field is
// truncated to the first 10 extracted terms (first-occurrence order). The
// relevance score counts matched topics plus matched categories; it has no
// upper bound.
func (c *Connector) Analyze(dataset models.Record) *models.Analysis {
	attrs := dataset.Attributes()

	title := attrs.AttrString("title")
	description := attrs.AttrString("description")
	rawKeywords := attrs.AttrStrings("keyword")

	text := title + " " + description + " " + strings.Join(rawKeywords, " ")
	keywords := c.ExtractKeywords(text)
	topics := c.MapTopics(keywords)
	categories := c.SuggestCategories(keywords, topics)
	searchTerms := c.GenerateSearchTerms(keywords, topics)

	shown := keywords
	if len(shown) > 10 {
		shown = shown[:10]
	}

	return &models.Analysis{
		DatasetID:      dataset.ID(),
		Title:          title,
		Keywords:       shown,
		Topics:         topics,
		Categories:     categories,
		SearchTerms:    searchTerms,
		IndexURL:       c.indexURL,
		RelevanceScore: len(topics) + len(categories),
	}
}

// FindRelated scores every dataset against a Woo topic query. A dataset
// whose topics contain the lowercased query scores its full relevance; one
// whose extracted keywords contain it scores one less; all others are
// excluded. The result is sorted by descending relevance with a stable
// sort, so equal scores keep the input order.
func (c *Connector) FindRelated(wooTopic string, datasets []models.Record) []models.RelatedDataset {
	topicLower := strings.ToLower(wooTopic)

	var related []models.RelatedDataset
	for _, dataset := range datasets {
		analysis := c.Analyze(dataset)

		switch {
		case containsSubstring(analysis.Topics, topicLower):
			related = append(related, models.RelatedDataset{
				Dataset:   dataset,
				Analysis:  analysis,
				Relevance: analysis.RelevanceScore,
			})
		case containsSubstring(analysis.Keywords, topicLower):
			related = append(related, models.RelatedDataset{
				Dataset:   dataset,
				Analysis:  analysis,
				Relevance: analysis.RelevanceScore - 1,
			})
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Relevance > related[j].Relevance
	})
	return related
}

// containsSubstring reports whether needle occurs inside any list element,
// case-insensitively.
func containsSubstring(list []string, needle string) bool {
	for _, item := range list {
		if strings.Contains(strings.ToLower(item), needle) {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
