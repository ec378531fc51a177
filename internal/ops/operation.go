// Package ops implements the four arithmetic operations over complex numbers
// and the selector that maps symbolic tokens to them.
package ops

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ameleshko/cplxcalc/internal/number"
)

// Operation represents one of the four arithmetic operations as an enum
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
)

// ErrDivisionByZero is returned when the divisor is the zero complex number
var ErrDivisionByZero = errors.New("division by zero is not allowed for complex numbers")

// UnknownOperationError represents a token outside the +, -, *, / set.
// It carries the offending token.
type UnknownOperationError struct {
	Token string
}

// Error returns the error message for the unknown operation error
func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q: expected one of +, -, *, /", e.Token)
}

// operationTokenMap is the fixed mapping from symbolic tokens to operations
var operationTokenMap = map[string]Operation{
	"+": Addition,
	"-": Subtraction,
	"*": Multiplication,
	"/": Division,
}

// Resolve returns the Operation for a one-character symbolic token.
// The match is exact and case-sensitive; any other token fails with
// an UnknownOperationError.
func Resolve(token string) (Operation, error) {
	op, ok := operationTokenMap[token]
	if !ok {
		return "", &UnknownOperationError{Token: token}
	}
	return op, nil
}

// Tokens returns the valid symbolic tokens in a stable order
func Tokens() []string {
	tokens := make([]string, 0, len(operationTokenMap))
	for token := range operationTokenMap {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Token returns the symbolic token for the operation, e.g. "+" for Addition
func (op Operation) Token() string {
	for token, candidate := range operationTokenMap {
		if candidate == op {
			return token
		}
	}
	return ""
}

// String returns the string representation of the operation
func (op Operation) String() string {
	return string(op)
}

// Apply applies the operation to two complex numbers, producing a new one.
// Only Division can fail, with ErrDivisionByZero when the divisor is the
// zero complex number; the check happens before anything is computed, so
// no NaN or infinity leaks out of a zero divisor. Applying an Operation
// value outside the closed set fails with an UnknownOperationError.
func (op Operation) Apply(a, b number.Complex) (number.Complex, error) {
	switch op {
	case Addition:
		return number.Complex{
			Real:      a.Real + b.Real,
			Imaginary: a.Imaginary + b.Imaginary,
		}, nil
	case Subtraction:
		return number.Complex{
			Real:      a.Real - b.Real,
			Imaginary: a.Imaginary - b.Imaginary,
		}, nil
	case Multiplication:
		return number.Complex{
			Real:      a.Real*b.Real - a.Imaginary*b.Imaginary,
			Imaginary: a.Real*b.Imaginary + a.Imaginary*b.Real,
		}, nil
	case Division:
		d := b.Real*b.Real + b.Imaginary*b.Imaginary
		if d == 0 {
			return number.Complex{}, ErrDivisionByZero
		}
		return number.Complex{
			Real:      (a.Real*b.Real + a.Imaginary*b.Imaginary) / d,
			Imaginary: (a.Imaginary*b.Real - a.Real*b.Imaginary) / d,
		}, nil
	default:
		return number.Complex{}, &UnknownOperationError{Token: string(op)}
	}
}
