// tools.go implements the tool-call dispatch and the three lookup handlers.
//
// Every failure is converted to an error-flagged result at this boundary;
// no error or panic ever reaches the protocol layer as a Go error, so one
// bad call never affects other in-flight or future calls.

package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tscharff/doi-mcp/internal/log"
	"github.com/tscharff/doi-mcp/internal/metadata"
)

// call routes a tool invocation by name. An unrecognised name yields an
// error-flagged "Unknown tool" result rather than a protocol error.
func (h *handlers) call(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, retErr error) {
	name := req.Params.Name

	defer func() {
		if r := recover(); r != nil {
			slog.Error("tool call panicked", "tool", name, "panic", r, "stack", string(debug.Stack()))
			res = mcp.NewToolResultError(fmt.Sprintf("Error: %v", r))
			retErr = nil
		}
	}()

	switch name {
	case "resolve_doi":
		return h.resolveDOI(ctx, req)
	case "search_articles":
		return h.searchArticles(ctx, req)
	case "get_metadata":
		return h.getMetadata(ctx, req)
	default:
		return mcp.NewToolResultError("Unknown tool: " + name), nil
	}
}

// resolveDOI handles resolve_doi tool calls. The raw upstream document is
// returned unchanged, pretty-printed.
func (h *handlers) resolveDOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doi, err := req.RequireString("doi")
	if err != nil {
		return mcp.NewToolResultError("doi is required"), nil //nolint:nilerr
	}

	doc, err := h.client.Resolve(ctx, doi)

	log.Event("mcp:resolve_doi", "resolve").Target(doi).Write(err)

	if err != nil {
		return toolError("resolve_doi", err), nil
	}

	return jsonResult(doc)
}

// searchArticles handles search_articles tool calls. The raw search
// response is flattened into {total_results, results} before return.
func (h *handlers) searchArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	limit := getInt(req, "limit", 10)

	raw, err := h.client.Search(ctx, query, limit)

	log.Event("mcp:search_articles", "search").Target(query).Detail("limit", limit).Write(err)

	if err != nil {
		return toolError("search_articles", err), nil
	}

	return jsonResult(metadata.FormatSearch(raw))
}

// getMetadata handles get_metadata tool calls.
func (h *handlers) getMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doi, err := req.RequireString("doi")
	if err != nil {
		return mcp.NewToolResultError("doi is required"), nil //nolint:nilerr
	}

	article, err := h.client.Metadata(ctx, doi)

	log.Event("mcp:get_metadata", "metadata").Target(doi).Write(err)

	if err != nil {
		return toolError("get_metadata", err), nil
	}

	return jsonResult(article)
}

// toolError logs the failure with full detail for the operator and
// surfaces only a short message string to the caller.
func toolError(tool string, err error) *mcp.CallToolResult {
	slog.Error("tool call failed", "tool", tool, "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err))
}
