// Package results defines the typed JSON payloads returned by the cplxcalc tools.
package results

import "github.com/ameleshko/cplxcalc/internal/number"

// ComplexValue represents a complex number in a tool result, carrying both
// the numeric components and the canonical "<real><sign><imaginary>i" rendering
type ComplexValue struct {
	Real      float64 `json:"real"`
	Imaginary float64 `json:"imaginary"`
	Formatted string  `json:"formatted"`
	Magnitude float64 `json:"magnitude"`
}

// NewComplexValue creates a ComplexValue from a complex number
func NewComplexValue(c number.Complex) ComplexValue {
	return ComplexValue{
		Real:      c.Real,
		Imaginary: c.Imaginary,
		Formatted: c.String(),
		Magnitude: c.Magnitude(),
	}
}
