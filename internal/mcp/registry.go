package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool pairs an MCP tool definition with its handler.
type Tool struct {
	Tool    *mcp.Tool
	Handler mcp.ToolHandler
}

// Registry holds tools for direct programmatic invocation.
//
// The official SDK server only speaks through a transport; the registry lets
// callers and tests invoke the same handlers without one.
type Registry struct {
	name    string
	version string
	mu      sync.RWMutex
	tools   map[string]Tool
}

// NewRegistry creates a registry holding tools.
func NewRegistry(name, version string, tools ...Tool) *Registry {
	r := &Registry{
		name:    name,
		version: version,
		tools:   make(map[string]Tool, len(tools)),
	}

	for _, t := range tools {
		r.AddTool(t)
	}

	return r
}

// NewServer creates an official MCP server serving tools.
func NewServer(name, version string, tools ...Tool) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	for _, t := range tools {
		server.AddTool(t.Tool, t.Handler)
	}

	return server
}

// AddTool registers a tool, replacing any tool with the same name.
func (r *Registry) AddTool(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[t.Tool.Name] = t
}

// Name returns the registry name.
func (r *Registry) Name() string {
	return r.name
}

// Version returns the registry version.
func (r *Registry) Version() string {
	return r.version
}

// ListTools returns metadata for all registered tools, sorted by name.
func (r *Registry) ListTools() []map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}

	slices.Sort(names)

	result := make([]map[string]any, 0, len(names))
	for _, name := range names {
		t := r.tools[name].Tool
		toolMap := map[string]any{
			"name":        t.Name,
			"description": t.Description,
		}

		if m, ok := toMap(t.InputSchema); ok {
			toolMap["inputSchema"] = m
		}

		if t.Annotations != nil {
			if m, ok := toMap(t.Annotations); ok {
				toolMap["annotations"] = m
			}
		}

		result = append(result, toolMap)
	}

	return result
}

// CallTool executes a tool by name with the given input.
// Failures are encoded in the result rather than returned.
func (r *Registry) CallTool(ctx context.Context, name string, input map[string]any) (*mcp.CallToolResult, error) {
	r.mu.RLock()
	t, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return ErrorResult("Tool not found: " + name), nil
	}

	inputBytes, err := json.Marshal(input)
	if err != nil {
		//nolint:nilerr // Intentionally return nil error - error is encoded in the result
		return ErrorResult("Failed to marshal input: " + err.Error()), nil
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: inputBytes,
		},
	}

	result, err := t.Handler(ctx, req)
	if err != nil {
		//nolint:nilerr // Intentionally return nil error - error is encoded in the result
		return ErrorResult("Tool execution failed: " + err.Error()), nil
	}

	return result, nil
}

// toMap converts a JSON-serializable value to a generic map.
func toMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}

	var m map[string]any
	if json.Unmarshal(data, &m) != nil {
		return nil, false
	}

	return m, true
}

// objectSchema creates an object schema with the given properties, all
// required.
func objectSchema(properties map[string]*jsonschema.Schema) *jsonschema.Schema {
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}

	slices.Sort(required)

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return args, nil
}
