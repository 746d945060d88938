package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
)

// ListWorksTool lists works matching optional filters.
type ListWorksTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewListWorksTool creates the list_works tool.
func NewListWorksTool(client *devrev.Client, log zerolog.Logger) *ListWorksTool {
	return &ListWorksTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *ListWorksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_works",
		mcp.WithDescription("List works in DevRev based on specified filters."),
		mcp.WithString("work_type",
			mcp.Description("The type of work to filter by (issue, ticket, task)"),
		),
		mcp.WithString("owned_by",
			mcp.Description("The ID of the user who owns the works. Use \"self\" for the current user."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return"),
			mcp.DefaultNumber(10),
		),
		mcp.WithString("applies_to_part",
			mcp.Description("The ID of the part that works apply to"),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor for fetching the next page of results"),
		),
	)
}

// Handle executes the listing.
func (t *ListWorksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	works, err := t.client.ListWorks(ctx, devrev.ListWorksParams{
		WorkType:      req.GetString("work_type", ""),
		OwnedBy:       req.GetString("owned_by", ""),
		Limit:         req.GetInt("limit", 10),
		AppliesToPart: req.GetString("applies_to_part", ""),
		Cursor:        req.GetString("cursor", ""),
	})
	if err != nil {
		return toolError(t.log, "list works", err)
	}

	return jsonResult("works", works)
}

// CreateWorkTool creates a new work item.
type CreateWorkTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewCreateWorkTool creates the create_work tool.
func NewCreateWorkTool(client *devrev.Client, log zerolog.Logger) *CreateWorkTool {
	return &CreateWorkTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *CreateWorkTool) Definition() mcp.Tool {
	return mcp.NewTool("create_work",
		mcp.WithDescription("Create a new work item (issue or task) in DevRev."),
		mcp.WithString("work_type",
			mcp.Required(),
			mcp.Description("Type of work to create ('issue' or 'task')"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the work"),
		),
		mcp.WithString("applies_to_part",
			mcp.Description("ID of the part this work applies to (required for issues)"),
		),
		mcp.WithString("body",
			mcp.Description("Optional body/description of the work"),
		),
	)
}

// Handle executes the creation.
func (t *CreateWorkTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workType, err := req.RequireString("work_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	work, err := t.client.CreateWork(ctx, devrev.CreateWorkParams{
		WorkType:      workType,
		Title:         title,
		AppliesToPart: req.GetString("applies_to_part", ""),
		Body:          req.GetString("body", ""),
	})
	if err != nil {
		return toolError(t.log, "create work", err)
	}

	return jsonResult("work", work)
}

// UpdateWorkTool applies a partial update to an existing work item.
type UpdateWorkTool struct {
	client *devrev.Client
	log    zerolog.Logger
}

// NewUpdateWorkTool creates the update_work tool.
func NewUpdateWorkTool(client *devrev.Client, log zerolog.Logger) *UpdateWorkTool {
	return &UpdateWorkTool{client: client, log: log}
}

// Definition returns the MCP tool definition.
func (t *UpdateWorkTool) Definition() mcp.Tool {
	return mcp.NewTool("update_work",
		mcp.WithDescription("Update an existing work item in DevRev. Only supplied fields are changed."),
		mcp.WithString("work_id",
			mcp.Required(),
			mcp.Description("ID of the work to update (e.g. ISS-123, TKT-456)"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the work"),
		),
		mcp.WithString("applies_to_part",
			mcp.Description("ID of the part this work applies to"),
		),
		mcp.WithString("body",
			mcp.Description("New body/description of the work"),
		),
		mcp.WithString("stage",
			mcp.Description("New stage of the work"),
		),
		mcp.WithString("status",
			mcp.Description("New status of the work"),
		),
	)
}

// Handle executes the update.
func (t *UpdateWorkTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workID, err := req.RequireString("work_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	work, err := t.client.UpdateWork(ctx, workID, devrev.UpdateWorkParams{
		Title:         optionalString(req, "title"),
		AppliesToPart: optionalString(req, "applies_to_part"),
		Body:          optionalString(req, "body"),
		Stage:         optionalString(req, "stage"),
		Status:        optionalString(req, "status"),
	})
	if err != nil {
		return toolError(t.log, "update work", err)
	}

	return jsonResult("work", work)
}
