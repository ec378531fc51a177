package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "cplxcalc."

// Tool names
const (
	ToolCalculate   = ToolPrefix + "calculate"
	ToolParseNumber = ToolPrefix + "parse_number"
	ToolMagnitude   = ToolPrefix + "magnitude"
)
