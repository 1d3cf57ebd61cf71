// Package crossref queries the Crossref REST API and the doi.org
// content-negotiation resolver. Results are returned as untyped JSON
// documents; upstream fields are optional and callers apply defaults.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tscharff/doi-mcp/internal/config"
	"github.com/tscharff/doi-mcp/internal/version"
)

// Accept headers. Direct DOI resolution asks doi.org for CSL-JSON;
// everything else takes the plain JSON baseline.
const (
	acceptJSON = "application/json"
	acceptCSL  = "application/vnd.citationstyles.csl+json"
)

// maxRows is the upper bound Crossref accepts for the rows parameter.
const maxRows = 100

// Client issues single-shot GET requests to the Crossref API and the
// doi.org resolver. Base URLs are plain fields so tests can substitute
// httptest servers. A failed request is terminal; there is no retry.
type Client struct {
	HTTP         *http.Client
	APIBase      string // e.g. https://api.crossref.org/v1
	ResolverBase string // e.g. https://doi.org
	UserAgent    string
}

// New builds a Client from configuration. The User-Agent carries a mailto
// contact per Crossref's polite-pool etiquette.
func New(cfg *config.Config) *Client {
	return &Client{
		HTTP:         &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds()) * time.Second},
		APIBase:      cfg.APIBase(),
		ResolverBase: cfg.ResolverBase(),
		UserAgent:    fmt.Sprintf("doi-mcp/%s (mailto:%s)", version.Short(), cfg.Mailto()),
	}
}

// ResolveURL turns a DOI into a dereferenceable URL. Bare identifiers are
// prefixed with the resolver base; anything already starting with a URL
// scheme is used unchanged. No validation is performed - an empty or
// malformed identifier goes to the resolver as-is and the upstream
// reports the failure.
func (c *Client) ResolveURL(doi string) string {
	if strings.HasPrefix(doi, "http") {
		return doi
	}
	return c.ResolverBase + "/" + doi
}

// Resolve dereferences a DOI via content negotiation and returns the raw
// CSL-JSON document unchanged.
func (c *Client) Resolve(ctx context.Context, doi string) (map[string]any, error) {
	doc, err := c.get(ctx, c.ResolveURL(doi), acceptCSL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DOI: %w", err)
	}
	return doc, nil
}

// Search queries the Crossref works endpoint sorted by relevance and
// returns the raw response document unchanged. limit is capped at 100;
// there is no lower clamp, so non-positive values pass through to the
// upstream as-is.
func (c *Client) Search(ctx context.Context, query string, limit int) (map[string]any, error) {
	params := url.Values{
		"query": {query},
		"rows":  {strconv.Itoa(min(limit, maxRows))},
		"sort":  {"relevance"},
	}

	doc, err := c.get(ctx, c.APIBase+"/works?"+params.Encode(), acceptJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return doc, nil
}

// get issues one GET request and decodes the JSON body. Transport errors,
// timeouts, non-2xx statuses, and undecodable bodies all fail the call.
func (c *Client) get(ctx context.Context, reqURL, accept string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return doc, nil
}
