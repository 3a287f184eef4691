package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/probe"
)

// Tool names.
const (
	ToolDetect          = "detect_terminal_emulator"
	ToolSurvey          = "survey_terminal_emulators"
	ToolBuildInvocation = "build_terminal_invocation"
)

// invocationResult is the payload of the build_terminal_invocation tool.
type invocationResult struct {
	Emulator emulator.Emulator `json:"emulator"`
	Argv     []string          `json:"argv"`
}

// DetectionTools returns the detection tools backed by d.
func DetectionTools(d probe.Detector) []Tool {
	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}
	minCommand := 1

	return []Tool{
		{
			Tool: &mcp.Tool{
				Name:        ToolDetect,
				Description: "Detects the terminal emulator used to run interactive programs on this host",
				InputSchema: objectSchema(nil),
				Annotations: readOnly,
			},
			Handler: detectHandler(d),
		},
		{
			Tool: &mcp.Tool{
				Name:        ToolSurvey,
				Description: "Reports what every terminal detection method finds on this host",
				InputSchema: objectSchema(nil),
				Annotations: readOnly,
			},
			Handler: surveyHandler(d),
		},
		{
			Tool: &mcp.Tool{
				Name:        ToolBuildInvocation,
				Description: "Builds the argument vector that runs a command inside the detected terminal emulator",
				InputSchema: objectSchema(map[string]*jsonschema.Schema{
					"command": {
						Type:     "array",
						Items:    &jsonschema.Schema{Type: "string"},
						MinItems: &minCommand,
					},
				}),
				Annotations: readOnly,
			},
			Handler: buildInvocationHandler(d),
		},
	}
}

func detectHandler(d probe.Detector) mcp.ToolHandler {
	return func(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term, err := d.Detect(ctx)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		return jsonResult(term)
	}
}

func surveyHandler(d probe.Detector) mcp.ToolHandler {
	return func(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := d.Survey(ctx)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		return jsonResult(report)
	}
}

func buildInvocationHandler(d probe.Detector) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := ParseArguments(req)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		command, err := stringList(args["command"])
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		term, err := d.Detect(ctx)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		spec, ok := emulator.BuildInvocation(term, command...)
		if !ok {
			return TextResult(fmt.Sprintf(
				"%s uses the platform console API; allocate a console and run the command directly", term.Name(),
			)), nil
		}

		return jsonResult(invocationResult{Emulator: term, Argv: spec.Argv()})
	}
}

// stringList converts a decoded JSON array into a non-empty string slice.
func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("command must be a non-empty array of strings")
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("command[%d] is not a string", i)
		}

		out = append(out, s)
	}

	return out, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	return TextResult(string(data)), nil
}
