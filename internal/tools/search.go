package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
)

// SearchTool searches DevRev objects by query and namespace.
type SearchTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewSearchTool creates the search tool.
func NewSearchTool(client *devrev.Client, log zerolog.Logger) *SearchTool {
	return &SearchTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search DevRev using the provided query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query to look for"),
		),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Type of objects to search (issue, ticket, article, ...). Unknown namespaces default to issue."),
		),
	)
}

// Handle executes the search.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	namespace := req.GetString("namespace", "issue")

	results, err := t.client.Search(ctx, query, namespace)
	if err != nil {
		return toolError(t.log, "search DevRev", err)
	}

	return jsonResult("results", results)
}
