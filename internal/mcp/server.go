// Package mcp implements the Model Context Protocol server, exposing DOI
// resolution, article search, and metadata lookup as tools. This enables
// AI assistants to verify and retrieve bibliographic records through a
// standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tscharff/doi-mcp/internal/config"
	"github.com/tscharff/doi-mcp/internal/crossref"
	"github.com/tscharff/doi-mcp/internal/version"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients. Blocks until the client disconnects or the process is
// asked to shut down; in-flight calls are abandoned at that point.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{client: crossref.New(cfg)}

	s := newServer(h)

	slog.Info("doi-mcp server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// newServer builds the MCP server with the three lookup tools registered.
// Split from Serve so tests can exercise registration without stdio.
func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"doi-mcp",
		version.Short(),
		server.WithToolCapabilities(true),
	)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the upstream client.
type handlers struct {
	client *crossref.Client
}

// registerTools exposes the lookup operations as MCP tools. All three
// share the dispatch handler, which routes on the requested tool name.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("resolve_doi",
			mcp.WithDescription("Resolve a DOI to get article metadata including title, authors, publication date, and URL"),
			mcp.WithString("doi", mcp.Required(), mcp.Description("The DOI (e.g., '10.1038/nature12373' or 'https://doi.org/10.1038/nature12373')")),
		),
		h.call,
	)

	s.AddTool(
		mcp.NewTool("search_articles",
			mcp.WithDescription("Search for articles by title, author, keyword, or other metadata"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query (e.g., 'machine learning', 'author:Smith', 'title:quantum')")),
			mcp.WithNumber("limit", mcp.DefaultNumber(10), mcp.Description("Maximum number of results to return (1-100, default: 10)")),
		),
		h.call,
	)

	s.AddTool(
		mcp.NewTool("get_metadata",
			mcp.WithDescription("Get detailed metadata for an article including authors, journal, publication date, abstract, etc."),
			mcp.WithString("doi", mcp.Required(), mcp.Description("The DOI of the article")),
		),
		h.call,
	)
}
