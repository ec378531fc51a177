package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ameleshko/cplxcalc/internal/engine"
	"github.com/ameleshko/cplxcalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// MagnitudeTool handles complex number magnitude requests
type MagnitudeTool struct {
	engine *engine.Engine
}

// NewMagnitudeTool creates a new magnitude tool
func NewMagnitudeTool(engine *engine.Engine) *MagnitudeTool {
	return &MagnitudeTool{
		engine: engine,
	}
}

// GetTool returns the MCP tool definition
func (t *MagnitudeTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolMagnitude,
		mcp.WithDescription("Compute the magnitude (Euclidean norm) of a complex number"),
		mcp.WithString("text", mcp.Required(),
			mcp.Description("Complex number in <real>,<imaginary> form, e.g. 3,4")),
	)
	return tool
}

// Handle processes the tool request
func (t *MagnitudeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := mcp.ParseString(req, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	magnitude, err := t.engine.Magnitude(text)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to compute magnitude: %v", err),
		), nil
	}

	toolResult := results.MagnitudeToolResult{
		Message: fmt.Sprintf("Magnitude of %q is %g.", text, magnitude),
		Arguments: results.MagnitudeToolArgs{
			Text: text,
		},
		Magnitude: &magnitude,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
