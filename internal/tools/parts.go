package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
)

// GetPartTool fetches a part by ID.
type GetPartTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewGetPartTool creates the get_part tool.
func NewGetPartTool(client *devrev.Client, log zerolog.Logger) *GetPartTool {
	return &GetPartTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *GetPartTool) Definition() mcp.Tool {
	return mcp.NewTool("get_part",
		mcp.WithDescription("Get details about a part by its ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the part (e.g. CAP-123, FEAT-456)"),
		),
	)
}

// Handle executes the fetch.
func (t *GetPartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	partID, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	part, err := t.client.GetPart(ctx, partID)
	if err != nil {
		return toolError(t.log, "get part", err)
	}

	return jsonResult("part", part)
}

// ListPartsTool lists parts of a given type.
type ListPartsTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewListPartsTool creates the list_parts tool.
func NewListPartsTool(client *devrev.Client, log zerolog.Logger) *ListPartsTool {
	return &ListPartsTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *ListPartsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_parts",
		mcp.WithDescription("List parts in DevRev based on specified filters."),
		mcp.WithString("part_type",
			mcp.Required(),
			mcp.Description("The type of part to filter by (capability, enhancement, feature, linkable, runnable, product)"),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor for fetching the next page of results"),
		),
		mcp.WithString("parent_part",
			mcp.Description("ID of the parent part to filter children parts"),
		),
	)
}

// Handle executes the listing.
func (t *ListPartsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	partType, err := req.RequireString("part_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	parts, err := t.client.ListParts(ctx, devrev.ListPartsParams{
		PartType:   partType,
		Cursor:     req.GetString("cursor", ""),
		ParentPart: req.GetString("parent_part", ""),
	})
	if err != nil {
		return toolError(t.log, "list parts", err)
	}

	return jsonResult("parts", parts)
}
