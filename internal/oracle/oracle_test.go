package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "7"},
		{"10 - 4 % 3", "0"},
		{"2 ^ 3 ^ 2", "512"},
		{"(2 ^ 3) ^ 2", "64"},
		{"0 - 7 / 2", "-3"},
		{"(0 - 7) % 2", "-1"},
		{"(0 - 1) ^ 63", "-1"},
		{"0 ^ 0", "1"},
		{"2 ^ 62", "4611686018427387904"},
		{"9223372036854775807", "9223372036854775807"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := Eval(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual.String())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		check func(err error) bool
	}{
		{"1 / 0", ErrDivisionByZero.Is},
		{"1 % (2 - 2)", ErrModuloByZero.Is},
		{"2 ^ (0 - 1)", ErrNegativeExponent.Is},
		{"2 ^ 63", ErrOutOfRange.Is},
		{"2 ^ 100", ErrOutOfRange.Is},
		{"9223372036854775808", ErrOutOfRange.Is},
		{"9223372036854775807 + 1 - 1", ErrOutOfRange.Is},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Eval(test.input)
			require.Error(t, err)
			require.True(t, test.check(err), "%s", err)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"1 +", "(1", "1)", "1 2", "()"} {
		_, err := Parse(input)
		require.Error(t, err, "%q", input)
	}
}
