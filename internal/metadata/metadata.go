// Package metadata shapes raw bibliographic JSON documents into flattened
// summary records. Upstream fields are optional, so every read applies a
// default rather than failing.
package metadata

import "strings"

// Article is the flattened metadata record for a single work. Title keeps
// the upstream's native shape (usually a list of strings) rather than
// being normalised to a single string.
type Article struct {
	DOI             string   `json:"doi"`
	Title           any      `json:"title"`
	Authors         []string `json:"authors"`
	PublicationDate []any    `json:"publication_date"`
	Journal         string   `json:"journal"`
	Volume          any      `json:"volume"`
	Issue           any      `json:"issue"`
	Pages           any      `json:"pages"`
	Type            string   `json:"type"`
	URL             any      `json:"url"`
	Abstract        any      `json:"abstract"`
}

// Summary is the flattened shape of a search response.
type Summary struct {
	TotalResults int    `json:"total_results"`
	Results      []Item `json:"results"`
}

// Item is one search hit in a Summary.
type Item struct {
	DOI       any      `json:"doi"`
	Title     any      `json:"title"`
	Authors   []string `json:"authors"`
	Published []any    `json:"published"`
	Journal   string   `json:"journal"`
}

// Extract builds an Article from a raw CSL-JSON document. doi is the
// requested identifier, used when the document carries no DOI field.
func Extract(doi string, doc map[string]any) Article {
	return Article{
		DOI:             stringField(doc, "DOI", doi),
		Title:           anyField(doc, "title", "Unknown"),
		Authors:         authorNames(doc),
		PublicationDate: printedDate(doc),
		Journal:         journalName(doc),
		Volume:          doc["volume"],
		Issue:           doc["issue"],
		Pages:           doc["page"],
		Type:            stringField(doc, "type", "unknown"),
		URL:             doc["URL"],
		Abstract:        doc["abstract"],
	}
}

// FormatSearch builds a Summary from a raw Crossref works response.
// total_results defaults to 0 and results to an empty (never nil) list.
func FormatSearch(doc map[string]any) Summary {
	msg, _ := doc["message"].(map[string]any)

	s := Summary{
		TotalResults: intField(msg, "total-results"),
		Results:      []Item{},
	}

	items, _ := msg["items"].([]any)
	for _, raw := range items {
		item, _ := raw.(map[string]any)
		s.Results = append(s.Results, Item{
			DOI:       item["DOI"],
			Title:     item["title"],
			Authors:   authorNames(item),
			Published: printedDate(item),
			Journal:   journalName(item),
		})
	}
	return s
}

// authorNames composes "given family" for each author entry, trimmed.
// Returns an empty (never nil) slice when the author field is absent.
func authorNames(doc map[string]any) []string {
	names := []string{}
	authors, _ := doc["author"].([]any)
	for _, raw := range authors {
		a, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		given, _ := a["given"].(string)
		family, _ := a["family"].(string)
		names = append(names, strings.TrimSpace(given+" "+family))
	}
	return names
}

// printedDate returns the first date-parts entry of published-print,
// or [null] when absent.
func printedDate(doc map[string]any) []any {
	if pp, ok := doc["published-print"].(map[string]any); ok {
		if dp, ok := pp["date-parts"].([]any); ok && len(dp) > 0 {
			if first, ok := dp[0].([]any); ok {
				return first
			}
		}
	}
	return []any{nil}
}

// journalName returns the first container-title entry, or "Unknown" when
// the field is absent or empty.
func journalName(doc map[string]any) string {
	if ct, ok := doc["container-title"].([]any); ok && len(ct) > 0 {
		if name, ok := ct[0].(string); ok {
			return name
		}
	}
	return "Unknown"
}

func stringField(doc map[string]any, key, def string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return def
}

func anyField(doc map[string]any, key string, def any) any {
	if v, ok := doc[key]; ok {
		return v
	}
	return def
}

// intField reads a numeric field, tolerating the float64 that
// encoding/json produces for all JSON numbers.
func intField(doc map[string]any, key string) int {
	switch v := doc[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
