package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ameleshko/cplxcalc/internal/engine"
	"github.com/ameleshko/cplxcalc/internal/ops"
	"github.com/ameleshko/cplxcalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles complex number calculation requests
type CalculateTool struct {
	engine *engine.Engine
}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool(engine *engine.Engine) *CalculateTool {
	return &CalculateTool{
		engine: engine,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Apply an arithmetic operation to two complex numbers, "+
			"returning the resulting complex number"),
		mcp.WithString("operation", mcp.Required(),
			mcp.Description("Operation token, one of: "+strings.Join(ops.Tokens(), " "))),
		mcp.WithString("first", mcp.Required(),
			mcp.Description("First operand in <real>,<imaginary> form, e.g. 1,-2.5")),
		mcp.WithString("second", mcp.Required(),
			mcp.Description("Second operand in <real>,<imaginary> form")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	if operation == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}
	first := mcp.ParseString(req, "first", "")
	if first == "" {
		return mcp.NewToolResultError("first parameter is required"), nil
	}
	second := mcp.ParseString(req, "second", "")
	if second == "" {
		return mcp.NewToolResultError("second parameter is required"), nil
	}

	result, err := t.engine.Evaluate(operation, first, second)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to calculate: %v", err),
		), nil
	}

	value := results.NewComplexValue(result)
	toolResult := results.CalculateToolResult{
		Message: fmt.Sprintf("Calculated (%s) %s (%s) = %s.", first, operation, second, result),
		Arguments: results.CalculateToolArgs{
			Operation: operation,
			First:     first,
			Second:    second,
		},
		Result: &value,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
