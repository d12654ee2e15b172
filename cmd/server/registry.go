package main

import (
	"sort"

	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-weather/pkg/tools"
)

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]tools.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]tools.Tool),
	}
}

// RegisterTool registers a tool with the server under its own name
func (r *ToolRegistry) RegisterTool(tool tools.Tool) {
	r.tools[tool.Name()] = tool
	r.server.AddTool(tool.Handle(), tool.Handler)
}

// Tools returns the registered tools sorted by name
func (r *ToolRegistry) Tools() []tools.Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]tools.Tool, 0, len(names))
	for _, name := range names {
		out = append(out, r.tools[name])
	}
	return out
}
