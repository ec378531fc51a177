package results

// ParseNumberToolResult represents the result of the parse number tool
type ParseNumberToolResult struct {
	Message   string              `json:"message"`
	Arguments ParseNumberToolArgs `json:"arguments"`
	Number    *ComplexValue       `json:"number,omitempty"`
}

// ParseNumberToolArgs represents the arguments for the parse number tool
type ParseNumberToolArgs struct {
	Text string `json:"text"`
}
