// Package oracle is an independent implementation of the expression language, built with
// participle and evaluated with math/big.
//
// It exists to cross-check the hand-written parser and evaluator: it shares no code with
// them, and it detects int64 overflow by computing exactly and range checking every
// intermediate result.
package oracle

import (
	"math"
	"math/big"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrDivisionByZero is returned for "/" with a zero divisor.
	ErrDivisionByZero = errors.NewKind("division by zero")
	// ErrModuloByZero is returned for "%" with a zero divisor.
	ErrModuloByZero = errors.NewKind("modulo by zero")
	// ErrNegativeExponent is returned for "^" with a negative exponent.
	ErrNegativeExponent = errors.NewKind("negative exponent")
	// ErrOutOfRange is returned when any intermediate value does not fit in an int64.
	ErrOutOfRange = errors.NewKind("value %s out of int64 range")
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[-+%*/^()]`},
		{Name: "Whitespace", Pattern: ` +`},
	})
	parser = participle.MustBuild[Expression](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)

	minInt64 = big.NewInt(math.MinInt64)
	maxInt64 = big.NewInt(math.MaxInt64)
)

// Expression = Term { ( "+" | "-" | "%" ) Term } .
type Expression struct {
	Left  *Term     `@@`
	Right []*OpTerm `@@*`
}

// OpTerm is an operator and its right operand in an Expression.
type OpTerm struct {
	Operator string `@("+" | "-" | "%")`
	Term     *Term  `@@`
}

// Term = Factor { ( "*" | "/" ) Factor } .
type Term struct {
	Left  *Factor     `@@`
	Right []*OpFactor `@@*`
}

// OpFactor is an operator and its right operand in a Term.
type OpFactor struct {
	Operator string  `@("*" | "/")`
	Factor   *Factor `@@`
}

// Factor = Value [ "^" Factor ] .
type Factor struct {
	Base     *Value  `@@`
	Exponent *Factor `( "^" @@ )?`
}

// Value = number | "(" Expression ")" .
type Value struct {
	Number        *string     `  @Int`
	Subexpression *Expression `| "(" @@ ")"`
}

// Parse input into an Expression.
func Parse(input string) (*Expression, error) {
	return parser.ParseString("", input)
}

// Eval parses and evaluates input.
func Eval(input string) (*big.Int, error) {
	ast, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return ast.Eval()
}

// Eval the expression.
func (e *Expression) Eval() (*big.Int, error) {
	lhs, err := e.Left.Eval()
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		rhs, err := r.Term.Eval()
		if err != nil {
			return nil, err
		}
		if lhs, err = apply(r.Operator, lhs, rhs); err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

// Eval the term.
func (t *Term) Eval() (*big.Int, error) {
	lhs, err := t.Left.Eval()
	if err != nil {
		return nil, err
	}
	for _, r := range t.Right {
		rhs, err := r.Factor.Eval()
		if err != nil {
			return nil, err
		}
		if lhs, err = apply(r.Operator, lhs, rhs); err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

// Eval the factor.
func (f *Factor) Eval() (*big.Int, error) {
	base, err := f.Base.Eval()
	if err != nil {
		return nil, err
	}
	if f.Exponent == nil {
		return base, nil
	}
	exponent, err := f.Exponent.Eval()
	if err != nil {
		return nil, err
	}
	return apply("^", base, exponent)
}

// Eval the value.
func (v *Value) Eval() (*big.Int, error) {
	if v.Subexpression != nil {
		return v.Subexpression.Eval()
	}
	n, ok := new(big.Int).SetString(*v.Number, 10)
	if !ok {
		return nil, ErrOutOfRange.New(*v.Number)
	}
	return checked(n)
}

func apply(op string, l, r *big.Int) (*big.Int, error) {
	out := new(big.Int)
	switch op {
	case "+":
		out.Add(l, r)
	case "-":
		out.Sub(l, r)
	case "*":
		out.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return nil, ErrDivisionByZero.New()
		}
		out.Quo(l, r)
	case "%":
		if r.Sign() == 0 {
			return nil, ErrModuloByZero.New()
		}
		out.Rem(l, r)
	case "^":
		if r.Sign() < 0 {
			return nil, ErrNegativeExponent.New()
		}
		// Any base other than -1, 0 or 1 overflows an int64 well before an exponent of 64.
		if l.CmpAbs(big.NewInt(1)) > 0 && r.Cmp(big.NewInt(64)) > 0 {
			return nil, ErrOutOfRange.New(l.String() + "^" + r.String())
		}
		if l.CmpAbs(big.NewInt(1)) <= 0 && r.Sign() > 0 {
			r = new(big.Int).Sub(big.NewInt(2), new(big.Int).Rem(r, big.NewInt(2)))
		}
		out.Exp(l, r, nil)
	default:
		panic("unsupported operator " + op)
	}
	return checked(out)
}

func checked(n *big.Int) (*big.Int, error) {
	if n.Cmp(minInt64) < 0 || n.Cmp(maxInt64) > 0 {
		return nil, ErrOutOfRange.New(n.String())
	}
	return n, nil
}
