package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	doc := map[string]any{
		"DOI":             "10.1038/nature12373",
		"title":           []any{"Nanometre-scale thermometry in a living cell"},
		"container-title": []any{"Nature", "Nature (London)"},
		"author": []any{
			map[string]any{"given": "G.", "family": "Kucsko"},
			map[string]any{"family": "Park"},
		},
		"published-print": map[string]any{
			"date-parts": []any{[]any{float64(2013), float64(7), float64(17)}},
		},
		"volume":   "500",
		"issue":    "7460",
		"page":     "54-58",
		"type":     "journal-article",
		"URL":      "https://doi.org/10.1038/nature12373",
		"abstract": "We demonstrate...",
	}

	a := Extract("10.1038/nature12373", doc)

	assert.Equal(t, "10.1038/nature12373", a.DOI)
	assert.Equal(t, []any{"Nanometre-scale thermometry in a living cell"}, a.Title)
	// Missing given name still composes and trims cleanly.
	assert.Equal(t, []string{"G. Kucsko", "Park"}, a.Authors)
	assert.Equal(t, []any{float64(2013), float64(7), float64(17)}, a.PublicationDate)
	assert.Equal(t, "Nature", a.Journal)
	assert.Equal(t, "500", a.Volume)
	assert.Equal(t, "7460", a.Issue)
	assert.Equal(t, "54-58", a.Pages)
	assert.Equal(t, "journal-article", a.Type)
	assert.Equal(t, "https://doi.org/10.1038/nature12373", a.URL)
	assert.Equal(t, "We demonstrate...", a.Abstract)
}

func TestExtract_Defaults(t *testing.T) {
	a := Extract("10.0/requested", map[string]any{})

	// The requested DOI fills in when the document carries none.
	assert.Equal(t, "10.0/requested", a.DOI)
	assert.Equal(t, "Unknown", a.Title)
	assert.Equal(t, "Unknown", a.Journal)
	assert.Equal(t, "unknown", a.Type)
	assert.Equal(t, []any{nil}, a.PublicationDate)
	assert.Nil(t, a.Volume)
	assert.Nil(t, a.Issue)
	assert.Nil(t, a.Pages)
	assert.Nil(t, a.URL)
	assert.Nil(t, a.Abstract)

	// No author field yields an empty list, not null.
	require.NotNil(t, a.Authors)
	assert.Empty(t, a.Authors)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"authors":[]`)
	assert.Contains(t, string(data), `"publication_date":[null]`)
}

func TestExtract_EmptyContainerTitle(t *testing.T) {
	a := Extract("10.0/x", map[string]any{"container-title": []any{}})
	assert.Equal(t, "Unknown", a.Journal)
}

func TestExtract_TitlePreservesShape(t *testing.T) {
	// title is passed through in its native shape, whatever it is.
	list := Extract("10.0/x", map[string]any{"title": []any{"A", "B"}})
	assert.Equal(t, []any{"A", "B"}, list.Title)

	scalar := Extract("10.0/x", map[string]any{"title": "Plain"})
	assert.Equal(t, "Plain", scalar.Title)
}

func TestFormatSearch(t *testing.T) {
	doc := map[string]any{
		"message": map[string]any{
			"total-results": float64(42),
			"items": []any{
				map[string]any{
					"DOI":             "10.1/a",
					"title":           []any{"First"},
					"container-title": []any{"Journal A"},
					"author": []any{
						map[string]any{"given": "Ada", "family": "Lovelace"},
					},
					"published-print": map[string]any{
						"date-parts": []any{[]any{float64(2020), float64(1)}},
					},
				},
				map[string]any{
					"DOI": "10.1/b",
				},
			},
		},
	}

	s := FormatSearch(doc)

	assert.Equal(t, 42, s.TotalResults)
	require.Len(t, s.Results, 2)

	first := s.Results[0]
	assert.Equal(t, "10.1/a", first.DOI)
	assert.Equal(t, []any{"First"}, first.Title)
	assert.Equal(t, []string{"Ada Lovelace"}, first.Authors)
	assert.Equal(t, []any{float64(2020), float64(1)}, first.Published)
	assert.Equal(t, "Journal A", first.Journal)

	// Sparse items get the same per-field defaults.
	second := s.Results[1]
	assert.Equal(t, "10.1/b", second.DOI)
	assert.Nil(t, second.Title)
	assert.Empty(t, second.Authors)
	assert.Equal(t, []any{nil}, second.Published)
	assert.Equal(t, "Unknown", second.Journal)
}

func TestFormatSearch_Defaults(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"empty document", map[string]any{}},
		{"message without fields", map[string]any{"message": map[string]any{}}},
		{"message wrong type", map[string]any{"message": "oops"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FormatSearch(tt.doc)
			assert.Equal(t, 0, s.TotalResults)
			require.NotNil(t, s.Results)
			assert.Empty(t, s.Results)
		})
	}
}

func TestFormatSearch_ResultCountMatchesItems(t *testing.T) {
	items := make([]any, 5)
	for i := range items {
		items[i] = map[string]any{"DOI": "10.1/x"}
	}
	s := FormatSearch(map[string]any{
		"message": map[string]any{"items": items},
	})
	assert.Len(t, s.Results, 5)
}
