package ops

import (
	"testing"

	"github.com/ameleshko/cplxcalc/internal/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Operation
	}{
		{
			name:     "Plus token",
			token:    "+",
			expected: Addition,
		},
		{
			name:     "Minus token",
			token:    "-",
			expected: Subtraction,
		},
		{
			name:     "Asterisk token",
			token:    "*",
			expected: Multiplication,
		},
		{
			name:     "Slash token",
			token:    "/",
			expected: Division,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Arbitrary letter",
			token: "x",
		},
		{
			name:  "Empty token",
			token: "",
		},
		{
			name:  "Doubled token",
			token: "++",
		},
		{
			name:  "Token with whitespace",
			token: " +",
		},
		{
			name:  "Operation name instead of token",
			token: "addition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.token)
			require.Error(t, err)

			var unknownErr *UnknownOperationError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, tt.token, unknownErr.Token)
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"*", "+", "-", "/"}, Tokens())
}

func TestOperation_Token(t *testing.T) {
	assert.Equal(t, "+", Addition.Token())
	assert.Equal(t, "-", Subtraction.Token())
	assert.Equal(t, "*", Multiplication.Token())
	assert.Equal(t, "/", Division.Token())
	assert.Equal(t, "", Operation("modulo").Token())
}

func TestOperation_Apply(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		a        number.Complex
		b        number.Complex
		expected number.Complex
	}{
		{
			name:     "Addition adds components",
			op:       Addition,
			a:        number.Complex{Real: 1, Imaginary: 2},
			b:        number.Complex{Real: 3, Imaginary: -4},
			expected: number.Complex{Real: 4, Imaginary: -2},
		},
		{
			name:     "Subtraction subtracts components",
			op:       Subtraction,
			a:        number.Complex{Real: 1, Imaginary: 2},
			b:        number.Complex{Real: 3, Imaginary: -4},
			expected: number.Complex{Real: -2, Imaginary: 6},
		},
		{
			name:     "Multiplication by the conjugate is real",
			op:       Multiplication,
			a:        number.Complex{Real: 1, Imaginary: 1},
			b:        number.Complex{Real: 1, Imaginary: -1},
			expected: number.Complex{Real: 2, Imaginary: 0},
		},
		{
			name:     "Multiplication cross terms",
			op:       Multiplication,
			a:        number.Complex{Real: 2, Imaginary: 3},
			b:        number.Complex{Real: 4, Imaginary: -5},
			expected: number.Complex{Real: 23, Imaginary: 2},
		},
		{
			name:     "Division of one by the imaginary unit",
			op:       Division,
			a:        number.Complex{Real: 1, Imaginary: 0},
			b:        number.Complex{Real: 0, Imaginary: 1},
			expected: number.Complex{Real: 0, Imaginary: -1},
		},
		{
			name:     "Division by a real number scales both components",
			op:       Division,
			a:        number.Complex{Real: 4, Imaginary: -2},
			b:        number.Complex{Real: 2, Imaginary: 0},
			expected: number.Complex{Real: 2, Imaginary: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOperation_Apply_DivisionByZero(t *testing.T) {
	dividends := []number.Complex{
		{Real: 2, Imaginary: 0},
		{Real: 0, Imaginary: 0},
		{Real: -1.5, Imaginary: 3},
	}

	for _, a := range dividends {
		t.Run(a.String(), func(t *testing.T) {
			_, err := Division.Apply(a, number.Complex{Real: 0, Imaginary: 0})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestOperation_Apply_Unknown(t *testing.T) {
	_, err := Operation("modulo").Apply(number.Complex{Real: 1}, number.Complex{Real: 2})
	require.Error(t, err)

	var unknownErr *UnknownOperationError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "modulo", unknownErr.Token)
}

func TestOperation_Apply_AlgebraicIdentities(t *testing.T) {
	zero := number.Complex{Real: 0, Imaginary: 0}
	one := number.Complex{Real: 1, Imaginary: 0}
	values := []number.Complex{
		{Real: 1, Imaginary: 2},
		{Real: -3.5, Imaginary: 0.25},
		{Real: 0, Imaginary: -7},
	}

	for _, z := range values {
		t.Run("Adding zero is the identity for "+z.String(), func(t *testing.T) {
			result, err := Addition.Apply(z, zero)
			require.NoError(t, err)
			assert.Equal(t, z, result)
		})

		t.Run("Subtracting a value from itself yields zero for "+z.String(), func(t *testing.T) {
			result, err := Subtraction.Apply(z, z)
			require.NoError(t, err)
			assert.Equal(t, zero, result)
		})

		t.Run("Multiplying by one is the identity for "+z.String(), func(t *testing.T) {
			result, err := Multiplication.Apply(z, one)
			require.NoError(t, err)
			assert.Equal(t, z, result)
		})
	}
}

func TestOperation_Apply_DivisionInvertsMultiplication(t *testing.T) {
	pairs := []struct {
		a number.Complex
		b number.Complex
	}{
		{
			a: number.Complex{Real: 1, Imaginary: 2},
			b: number.Complex{Real: 3, Imaginary: -4},
		},
		{
			a: number.Complex{Real: -0.5, Imaginary: 0.25},
			b: number.Complex{Real: 0, Imaginary: 2},
		},
		{
			a: number.Complex{Real: 100, Imaginary: -0.001},
			b: number.Complex{Real: 7, Imaginary: 7},
		},
	}

	for _, tt := range pairs {
		t.Run(tt.a.String()+" through "+tt.b.String(), func(t *testing.T) {
			product, err := Multiplication.Apply(tt.a, tt.b)
			require.NoError(t, err)

			quotient, err := Division.Apply(product, tt.b)
			require.NoError(t, err)

			assert.InDelta(t, tt.a.Real, quotient.Real, 1e-9)
			assert.InDelta(t, tt.a.Imaginary, quotient.Imaginary, 1e-9)
		})
	}
}
