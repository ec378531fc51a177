package results

// CalculateToolResult represents the result of the calculate tool
type CalculateToolResult struct {
	Message   string            `json:"message"`
	Arguments CalculateToolArgs `json:"arguments"`
	Result    *ComplexValue     `json:"result,omitempty"`
}

// CalculateToolArgs represents the arguments for the calculate tool
type CalculateToolArgs struct {
	Operation string `json:"operation"`
	First     string `json:"first"`
	Second    string `json:"second"`
}
