package termemu

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/terminal-emulator-go/internal/mcp"
)

// Version is the library version reported by the MCP server.
const Version = "0.3.0"

// MCP tool names.
const (
	ToolDetect          = internalmcp.ToolDetect
	ToolSurvey          = internalmcp.ToolSurvey
	ToolBuildInvocation = internalmcp.ToolBuildInvocation
)

// NewMCPServer creates an MCP server exposing detection as read-only tools.
// Serve it with server.Run(ctx, &mcp.StdioTransport{}).
func NewMCPServer(opts ...Option) *mcp.Server {
	return internalmcp.NewServer("termemu", Version, internalmcp.DetectionTools(NewDetector(opts...))...)
}

// MCPRegistry holds the detection tools for direct invocation without a
// transport.
type MCPRegistry = internalmcp.Registry

// NewMCPRegistry creates a registry holding the same tools as NewMCPServer.
func NewMCPRegistry(opts ...Option) *MCPRegistry {
	return internalmcp.NewRegistry("termemu", Version, internalmcp.DetectionTools(NewDetector(opts...))...)
}
