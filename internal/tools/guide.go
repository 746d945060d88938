package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GuideTool serves a static usage guide for the DevRev tool set. It makes
// no network calls and needs no client.
type GuideTool struct{}

// NewGuideTool creates the devrev_context tool.
func NewGuideTool() *GuideTool {
	return &GuideTool{}
}

// Definition returns the MCP tool definition.
func (t *GuideTool) Definition() mcp.Tool {
	return mcp.NewTool("devrev_context",
		mcp.WithDescription("Get detailed information on how to use the DevRev MCP tools and best practices."),
	)
}

// Handle returns the static guide payload.
func (t *GuideTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(usageGuide), nil
}

const usageGuide = `{
  "title": "DevRev MCP Tools Guide",
  "description": "How to effectively use the DevRev MCP tools for interacting with the DevRev platform.",
  "authentication": {
    "info": "All tools require a valid DevRev API key set as the DEVREV_API_KEY environment variable.",
    "validation": "Authentication is validated when the server starts."
  },
  "available_tools": [
    {
      "name": "search",
      "description": "Search for objects in DevRev using a query string",
      "parameters": {
        "query": "Search query string",
        "namespace": "Type of objects to search (issue, ticket, article, ...)"
      },
      "examples": [
        "Search for all open issues: search('status:open', 'issue')",
        "Search for tickets assigned to me: search('owned_by:me', 'ticket')"
      ]
    },
    {
      "name": "list_works",
      "description": "List works in DevRev based on specified filters",
      "parameters": {
        "work_type": "Type of work to filter by (issue, ticket, task)",
        "owned_by": "ID of the user who owns the works. Use 'self' for the current user.",
        "limit": "Maximum number of items to return (default: 10)",
        "applies_to_part": "ID of the part that works apply to (e.g. FEAT-123)",
        "cursor": "Pagination cursor for fetching the next page of results"
      },
      "examples": [
        "List issues assigned to me: list_works('issue', 'self')",
        "List tickets for a feature: list_works('ticket', applies_to_part='FEAT-123')"
      ]
    },
    {
      "name": "get_object",
      "description": "Get detailed information about a specific DevRev object",
      "parameters": {
        "id": "The ID of the object (e.g. ISS-123, TKT-456, ART-789)"
      }
    },
    {
      "name": "create_work",
      "description": "Create a new work item (issue or task) in DevRev",
      "parameters": {
        "work_type": "Type of work to create ('issue' or 'task')",
        "title": "Title of the work",
        "applies_to_part": "ID of the part this work applies to (required for issues)",
        "body": "Optional body/description of the work"
      }
    },
    {
      "name": "update_work",
      "description": "Update an existing work item; only supplied fields are changed",
      "parameters": {
        "work_id": "ID of the work to update (e.g. ISS-123, TKT-456)",
        "title": "New title (optional)",
        "applies_to_part": "New part ID (optional)",
        "body": "New description (optional)",
        "stage": "New stage (optional)",
        "status": "New status (optional)"
      }
    },
    {
      "name": "get_part",
      "description": "Get details about a part by its ID",
      "parameters": {
        "id": "The ID of the part (e.g. CAP-123, FEAT-456)"
      }
    },
    {
      "name": "list_parts",
      "description": "List parts in DevRev based on specified filters",
      "parameters": {
        "part_type": "capability, enhancement, feature, linkable, runnable or product",
        "cursor": "Pagination cursor for fetching the next page of results",
        "parent_part": "ID of the parent part to filter children parts"
      }
    }
  ],
  "namespace_categories": {
    "work_items": ["issue", "ticket", "task"],
    "parts": ["capability", "enhancement", "feature", "linkable", "runnable", "product"],
    "users_and_groups": ["dev_user", "rev_user", "sys_user", "group", "service_account"],
    "organizations": ["rev_org", "account"],
    "communication": ["conversation", "comment", "question_answer", "article"],
    "architecture": ["component", "microservice"],
    "management": ["project", "operation", "opportunity", "dashboard", "workflow", "vista", "tag"],
    "custom_objects": ["custom_object", "custom_part", "custom_work"]
  },
  "common_query_patterns": {
    "status": "status:open, status:closed",
    "owner": "owned_by:me, owned_by:DEVU-123",
    "creator": "created_by:me, created_by:DEVU-123",
    "date_filters": "created_date>2023-01-01, modified_date<2023-12-31",
    "combined": "status:open owned_by:me authentication"
  },
  "workflows": {
    "exploring_product_hierarchy": [
      "Start with list_parts('product') to see all products",
      "For a product, use list_parts('capability', parent_part='PROD-123')",
      "For a capability, use list_parts('feature', parent_part='CAP-456')",
      "For a feature, use list_parts('enhancement', parent_part='FEAT-789')"
    ],
    "creating_issues": [
      "Find the appropriate part using list_parts() or search()",
      "Create the issue with create_work() specifying the part ID",
      "Verify the issue was created using get_object() with the returned ID"
    ]
  },
  "best_practices": [
    "Use specific search queries to narrow down results",
    "Filter works by applies_to_part to focus on a specific product area",
    "Use the part hierarchy (product > capability > feature > enhancement) when exploring the product structure",
    "Refine search results by combining multiple criteria (e.g. 'status:open owned_by:me')"
  ],
  "common_issues": {
    "authentication_errors": "Ensure your DevRev API key is valid and set as an environment variable",
    "not_found_errors": "Double-check object IDs for typos; IDs are case-sensitive",
    "permission_errors": "Ensure you have appropriate permissions for the action"
  }
}`
