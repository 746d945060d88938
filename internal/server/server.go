// Package server wires the DevRev client and the MCP tools into a server
// instance. It is the composition root: concrete dependencies are created
// once at startup and injected into every tool, no business logic lives
// here.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
	"github.com/KalshuCodes/devrev-mcp-server/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all DevRev tools registered. The client
// must already be authenticated; tools share it read-only.
func New(client *devrev.Client, log zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"DevRev",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Model Context Protocol server for DevRev. "+
			"Call devrev_context first for usage guidance."),
	)

	searchTool := tools.NewSearchTool(client, log)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	listWorksTool := tools.NewListWorksTool(client, log)
	s.AddTool(listWorksTool.Definition(), listWorksTool.Handle)

	getObjectTool := tools.NewGetObjectTool(client, log)
	s.AddTool(getObjectTool.Definition(), getObjectTool.Handle)

	createWorkTool := tools.NewCreateWorkTool(client, log)
	s.AddTool(createWorkTool.Definition(), createWorkTool.Handle)

	updateWorkTool := tools.NewUpdateWorkTool(client, log)
	s.AddTool(updateWorkTool.Definition(), updateWorkTool.Handle)

	getPartTool := tools.NewGetPartTool(client, log)
	s.AddTool(getPartTool.Definition(), getPartTool.Handle)

	listPartsTool := tools.NewListPartsTool(client, log)
	s.AddTool(listPartsTool.Definition(), listPartsTool.Handle)

	guideTool := tools.NewGuideTool()
	s.AddTool(guideTool.Definition(), guideTool.Handle)

	return s
}

// RunStdio serves the MCP protocol over stdin/stdout until EOF.
func RunStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// RunSSE serves the MCP protocol over HTTP server-sent events on the
// given host and port. The SSE endpoint is /sse.
func RunSSE(s *server.MCPServer, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	sse := server.NewSSEServer(s,
		server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
	)
	return sse.Start(addr)
}
