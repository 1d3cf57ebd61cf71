// tools_util.go provides helper functions for MCP tool parameter
// extraction and result encoding.
//
// Extraction is permissive (return default on error) rather than strictly
// validated: an LLM omitting an optional parameter should get a sensible
// default, not a type error it may struggle to interpret.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers decode as float64 in Go, so we type assert to float64 and
// convert. Returns the default if the parameter is missing or not a number.
func getInt(req mcp.CallToolRequest, name string, def int) int { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// jsonResult serialises a value as pretty-printed JSON in a single text
// content block. LLMs parse structured output more reliably when it is
// formatted for readability, so the extra tokens are worth it.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
