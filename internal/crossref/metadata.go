package crossref

import (
	"context"
	"fmt"

	"github.com/tscharff/doi-mcp/internal/metadata"
)

// Metadata resolves a DOI and extracts the flattened metadata record.
// Failures keep the "Error fetching metadata:" prefix callers key on.
func (c *Client) Metadata(ctx context.Context, doi string) (metadata.Article, error) {
	doc, err := c.Resolve(ctx, doi)
	if err != nil {
		return metadata.Article{}, fmt.Errorf("Error fetching metadata: %w", err)
	}
	return metadata.Extract(doi, doc), nil
}
