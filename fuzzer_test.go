package expr

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/alecthomas/expr/internal/oracle"
)

// fuzzer generates random, syntactically valid expressions.
type fuzzer struct {
	rnd *rand.Rand
}

var fuzzOps = []string{"+", "-", "%", "*", "/", "^"}

func (f *fuzzer) expression(depth int) string {
	out := f.operand(depth)
	for n := f.rnd.Intn(3); n > 0; n-- {
		out += f.space() + fuzzOps[f.rnd.Intn(len(fuzzOps))] + f.space() + f.operand(depth)
	}
	return out
}

func (f *fuzzer) operand(depth int) string {
	if depth > 0 && f.rnd.Intn(3) == 0 {
		return "(" + f.space() + f.expression(depth-1) + f.space() + ")"
	}
	return f.number()
}

func (f *fuzzer) number() string {
	switch f.rnd.Intn(20) {
	case 0:
		return strconv.FormatInt(f.rnd.Int63(), 10)
	case 1:
		return strconv.FormatInt(math.MaxInt64, 10)
	case 2:
		return "0"
	}
	return strconv.Itoa(f.rnd.Intn(12))
}

func (f *fuzzer) space() string {
	return strings.Repeat(" ", f.rnd.Intn(2))
}

var oracleKinds = map[*errors.Kind]*errors.Kind{
	ErrDivisionByZero:   oracle.ErrDivisionByZero,
	ErrModuloByZero:     oracle.ErrModuloByZero,
	ErrNegativeExponent: oracle.ErrNegativeExponent,
	ErrOverflow:         oracle.ErrOutOfRange,
}

func TestFuzzAgainstOracle(t *testing.T) {
	f := &fuzzer{rnd: rand.New(rand.NewSource(0))}
	for i := 0; i < 2000; i++ {
		input := f.expression(4)
		expected, oerr := oracle.Eval(input)
		actual, err := Eval(input)
		if oerr != nil {
			eerr, ok := err.(*EvalError)
			require.True(t, ok, "%s: oracle failed with %q but got %s", repr.String(input), oerr, repr.String(err))
			require.True(t, oracleKinds[eerr.Kind].Is(oerr), "%s: oracle failed with %q but got %q", repr.String(input), oerr, err)
			continue
		}
		require.NoError(t, err, repr.String(input))
		require.Equal(t, expected.Int64(), actual, repr.String(input))
	}
}

func TestRejectedByOracle(t *testing.T) {
	inputs := []string{"1 +", "(1", "()", "1 2", "+1", ")", "2 ^", "(1))"}
	for _, input := range inputs {
		_, err := oracle.Parse(input)
		require.Error(t, err, input)
		_, err = ParseString(input)
		require.Error(t, err, input)
	}
}

func TestFuzzStringRoundTrip(t *testing.T) {
	f := &fuzzer{rnd: rand.New(rand.NewSource(1))}
	for i := 0; i < 500; i++ {
		input := f.expression(3)
		ast, err := ParseString(input)
		require.NoError(t, err, input)
		reparsed, err := ParseString(ast.String())
		require.NoError(t, err, ast.String())
		expected, expectedErr := Evaluate(ast)
		actual, actualErr := Evaluate(reparsed)
		require.Equal(t, expected, actual, input)
		require.Equal(t, expectedErr, actualErr, input)
	}
}
