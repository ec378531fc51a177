// Package number implements the complex number value type used by the calculator.
package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Complex represents a complex number as a (real, imaginary) pair.
// Values are immutable: operations always construct a new Complex.
type Complex struct {
	Real      float64 `json:"real"`
	Imaginary float64 `json:"imaginary"`
}

// FormatError represents a failure to parse a complex number from text.
// It carries the original offending text.
type FormatError struct {
	Text string
}

// Error returns the error message for the format error
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid complex number %q: expected format <real>,<imaginary>", e.Text)
}

// Parse parses a complex number from text in the form "<real>,<imaginary>".
// Exactly two comma-separated fields are expected; whitespace around each
// field is ignored. Each field must parse as a finite floating-point number.
func Parse(text string) (Complex, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return Complex{}, &FormatError{Text: text}
	}

	re, ok := parseComponent(fields[0])
	if !ok {
		return Complex{}, &FormatError{Text: text}
	}
	im, ok := parseComponent(fields[1])
	if !ok {
		return Complex{}, &FormatError{Text: text}
	}

	return Complex{Real: re, Imaginary: im}, nil
}

// parseComponent parses a single finite component of a complex number
func parseComponent(field string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// String renders the complex number as "<real><sign><abs(imaginary)>i".
// A zero imaginary part counts as non-negative and renders with a "+" sign.
// Components are rendered with the shortest decimal representation that
// round-trips (strconv.FormatFloat with the 'g' format and precision -1),
// so Parse(c.String()) reconstructs c exactly.
func (c Complex) String() string {
	sign := "+"
	if c.Imaginary < 0 {
		sign = "-"
	}
	return formatComponent(c.Real) + sign + formatComponent(math.Abs(c.Imaginary)) + "i"
}

// Magnitude returns the Euclidean norm sqrt(real² + imaginary²).
// It is zero only when both components are zero.
func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.Real*c.Real + c.Imaginary*c.Imaginary)
}

// formatComponent renders a single component of a complex number
func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
