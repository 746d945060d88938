// Package tools implements the MCP tools exposed by the server. Each tool
// is a thin adapter that validates its arguments, forwards the call to the
// DevRev client and wraps the normalized result under the fixed key named
// after the operation.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// jsonResult wraps a raw JSON payload under the given envelope key and
// returns it as a text tool result.
func jsonResult(key string, payload json.RawMessage) (*mcp.CallToolResult, error) {
	wrapped, err := json.Marshal(map[string]json.RawMessage{key: payload})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(wrapped)), nil
}

// toolError logs the full error and hands the caller a plain text failure.
// Structured fields (status codes, raw bodies) stay in the log only.
func toolError(log zerolog.Logger, action string, err error) (*mcp.CallToolResult, error) {
	log.Error().Err(err).Str("action", action).Msg("tool call failed")
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err)), nil
}

// optionalString returns a pointer to the string argument when it was
// supplied, or nil when it was absent. This preserves partial-update
// semantics: absent and empty are not the same.
func optionalString(req mcp.CallToolRequest, key string) *string {
	args := req.GetArguments()
	v, ok := args[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
