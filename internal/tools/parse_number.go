package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ameleshko/cplxcalc/internal/engine"
	"github.com/ameleshko/cplxcalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ParseNumberTool handles complex number parsing requests
type ParseNumberTool struct {
	engine *engine.Engine
}

// NewParseNumberTool creates a new parse number tool
func NewParseNumberTool(engine *engine.Engine) *ParseNumberTool {
	return &ParseNumberTool{
		engine: engine,
	}
}

// GetTool returns the MCP tool definition
func (t *ParseNumberTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolParseNumber,
		mcp.WithDescription("Parse a complex number from text, "+
			"returning its components and canonical rendering"),
		mcp.WithString("text", mcp.Required(),
			mcp.Description("Complex number in <real>,<imaginary> form, e.g. 1,-2.5")),
	)
	return tool
}

// Handle processes the tool request
func (t *ParseNumberTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := mcp.ParseString(req, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	parsed, err := t.engine.Parse(text)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to parse complex number: %v", err),
		), nil
	}

	value := results.NewComplexValue(parsed)
	toolResult := results.ParseNumberToolResult{
		Message: fmt.Sprintf("Parsed %q as %s.", text, parsed),
		Arguments: results.ParseNumberToolArgs{
			Text: text,
		},
		Number: &value,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
