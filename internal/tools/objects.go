package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
)

// GetObjectTool fetches any DevRev object by its display ID.
type GetObjectTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewGetObjectTool creates the get_object tool.
func NewGetObjectTool(client *devrev.Client, log zerolog.Logger) *GetObjectTool {
	return &GetObjectTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *GetObjectTool) Definition() mcp.Tool {
	return mcp.NewTool("get_object",
		mcp.WithDescription("Get all information about a DevRev object using its ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the DevRev object (e.g. ISS-123, TKT-456)"),
		),
	)
}

// Handle executes the fetch. The object's response has no known envelope,
// so the raw body is returned under the object key.
func (t *GetObjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectID, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	object, err := t.client.GetObject(ctx, objectID)
	if err != nil {
		return toolError(t.log, "get object", err)
	}

	return jsonResult("object", object)
}
