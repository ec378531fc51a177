package results

// MagnitudeToolResult represents the result of the magnitude tool
type MagnitudeToolResult struct {
	Message   string            `json:"message"`
	Arguments MagnitudeToolArgs `json:"arguments"`
	Magnitude *float64          `json:"magnitude,omitempty"`
}

// MagnitudeToolArgs represents the arguments for the magnitude tool
type MagnitudeToolArgs struct {
	Text string `json:"text"`
}
