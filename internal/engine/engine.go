// Package engine wires number parsing, operation resolution, and operation
// application into the single pipeline shared by all cplxcalc front ends.
package engine

import (
	"github.com/ameleshko/cplxcalc/internal/number"
	"github.com/ameleshko/cplxcalc/internal/ops"
)

// Engine represents the calculator pipeline. It holds no state and is safe
// for concurrent use.
type Engine struct{}

// New creates a new calculator engine
func New() *Engine {
	return &Engine{}
}

// Evaluate resolves the operation token, parses both operand strings, and
// applies the operation. Errors from any stage are returned unchanged so
// callers can tell a malformed operand from an unknown token from a
// division by zero.
func (e *Engine) Evaluate(token, first, second string) (number.Complex, error) {
	op, err := ops.Resolve(token)
	if err != nil {
		return number.Complex{}, err
	}

	a, err := number.Parse(first)
	if err != nil {
		return number.Complex{}, err
	}
	b, err := number.Parse(second)
	if err != nil {
		return number.Complex{}, err
	}

	return op.Apply(a, b)
}

// Parse parses a single complex number from text
func (e *Engine) Parse(text string) (number.Complex, error) {
	return number.Parse(text)
}

// Magnitude parses a complex number from text and returns its magnitude
func (e *Engine) Magnitude(text string) (float64, error) {
	c, err := number.Parse(text)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}
