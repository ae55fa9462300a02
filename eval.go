package expr

import (
	"fmt"
	"math"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrDivisionByZero is returned when the right operand of "/" is zero.
	ErrDivisionByZero = errors.NewKind("division by zero: %d / %d")
	// ErrModuloByZero is returned when the right operand of "%" is zero.
	ErrModuloByZero = errors.NewKind("modulo by zero: %d %% %d")
	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.NewKind("integer overflow: %d %s %d")
	// ErrNegativeExponent is returned when the right operand of "^" is negative.
	ErrNegativeExponent = errors.NewKind("negative exponent: %d ^ %d")
)

// EvalError is returned by Evaluate when an operation cannot be applied to its operands.
type EvalError struct {
	Kind  *errors.Kind
	Op    Op
	Left  int64
	Right int64
}

func (e *EvalError) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns the error as an instance of its Kind.
func (e *EvalError) Unwrap() error {
	if e.Kind == ErrOverflow {
		return e.Kind.New(e.Left, e.Op, e.Right)
	}
	return e.Kind.New(e.Left, e.Right)
}

// Evaluate an abstract syntax tree to a single integer.
//
// Arithmetic is performed on int64 values and is checked: any result outside the int64
// range fails with ErrOverflow rather than wrapping. "/" truncates towards zero and "%"
// takes the sign of the dividend. "^" rejects negative exponents.
func Evaluate(node Node) (int64, error) {
	switch node := node.(type) {
	case *Literal:
		return node.Value(), nil

	case *Paren:
		return Evaluate(node.Expr())

	case *BinaryOp:
		left, err := Evaluate(node.Left())
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(node.Right())
		if err != nil {
			return 0, err
		}
		return apply(node.Op(), left, right)

	case nil:
		return 0, fmt.Errorf("cannot evaluate nil node")
	}
	return 0, fmt.Errorf("unsupported node type %T", node)
}

// Eval lexes, parses and evaluates input.
func Eval(input string) (int64, error) {
	ast, err := ParseString(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(ast)
}

func apply(op Op, l, r int64) (int64, error) {
	fail := func(kind *errors.Kind) (int64, error) {
		return 0, &EvalError{Kind: kind, Op: op, Left: l, Right: r}
	}
	switch op {
	case OpSum:
		n := l + r
		if (r > 0 && n < l) || (r < 0 && n > l) {
			return fail(ErrOverflow)
		}
		return n, nil

	case OpSub:
		n := l - r
		if (r > 0 && n > l) || (r < 0 && n < l) {
			return fail(ErrOverflow)
		}
		return n, nil

	case OpMult:
		n, ok := mul(l, r)
		if !ok {
			return fail(ErrOverflow)
		}
		return n, nil

	case OpDiv:
		if r == 0 {
			return fail(ErrDivisionByZero)
		}
		if l == math.MinInt64 && r == -1 {
			return fail(ErrOverflow)
		}
		return l / r, nil

	case OpMod:
		if r == 0 {
			return fail(ErrModuloByZero)
		}
		return l % r, nil

	case OpExp:
		if r < 0 {
			return fail(ErrNegativeExponent)
		}
		n, ok := pow(l, r)
		if !ok {
			return fail(ErrOverflow)
		}
		return n, nil
	}
	return 0, fmt.Errorf("unsupported operator %s", op)
}

// pow computes base^exp by repeated squaring, returning false on overflow.
func pow(base, exp int64) (int64, bool) {
	switch base {
	case 0:
		if exp == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return 1, true
	case -1:
		if exp%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	result := int64(1)
	for {
		if exp&1 == 1 {
			n, ok := mul(result, base)
			if !ok {
				return 0, false
			}
			result = n
		}
		exp >>= 1
		if exp == 0 {
			return result, true
		}
		n, ok := mul(base, base)
		if !ok {
			return 0, false
		}
		base = n
	}
}

// mul multiplies l and r, returning false on overflow.
func mul(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, true
	}
	n := l * r
	if n/r != l || (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
		return 0, false
	}
	return n, true
}
