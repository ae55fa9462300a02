package expr

import (
	"fmt"
	"strconv"
)

// Op is the operator of a BinaryOp node.
type Op int

// Binary operators.
const (
	OpSum Op = iota
	OpSub
	OpMod
	OpMult
	OpDiv
	OpExp
)

var opSymbols = map[Op]string{
	OpSum:  "+",
	OpSub:  "-",
	OpMod:  "%",
	OpMult: "*",
	OpDiv:  "/",
	OpExp:  "^",
}

var opNames = map[Op]string{
	OpSum:  "PLUS",
	OpSub:  "MINUS",
	OpMod:  "MODULO",
	OpMult: "MULTIPLICATION",
	OpDiv:  "DIVISION",
	OpExp:  "EXPONENTIATION",
}

// String returns the operator symbol.
func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Name returns the upper-case operator name, eg. "PLUS".
func (o Op) Name() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return o.String()
}

// A Node in the abstract syntax tree.
//
// Nodes are one of *Literal, *Paren or *BinaryOp. A Node exclusively owns its children
// and is immutable once constructed.
type Node interface {
	// Depth of the node. Leaves are at depth 0, and every branch is one deeper than its
	// deepest child.
	Depth() int
	// Children returns a copy of the node's children, left to right.
	Children() []Node
	// Label is a short human readable name, eg. "42", "+" or "(...)".
	Label() string
	// Kind is a long, unique-per-type name, eg. "Literal=42" or "Op=PLUS".
	Kind() string
	// String returns the expression in infix form, with every nested operation bracketed.
	String() string

	node()
}

// Literal is an integer leaf.
type Literal struct {
	value int64
}

// NewLiteral creates a new leaf.
func NewLiteral(value int64) *Literal {
	return &Literal{value: value}
}

func (*Literal) node() {}

// Value of the literal.
func (l *Literal) Value() int64 { return l.value }

func (l *Literal) Depth() int       { return 0 }
func (l *Literal) Children() []Node { return nil }
func (l *Literal) Label() string    { return strconv.FormatInt(l.value, 10) }
func (l *Literal) Kind() string     { return "Literal=" + l.Label() }
func (l *Literal) String() string   { return l.Label() }

// Paren wraps a parenthesised sub-expression.
type Paren struct {
	expr  Node
	depth int
}

// NewParen wraps expr in parentheses.
func NewParen(expr Node) *Paren {
	return &Paren{expr: expr, depth: expr.Depth() + 1}
}

func (*Paren) node() {}

// Expr returns the wrapped sub-expression.
func (p *Paren) Expr() Node { return p.expr }

func (p *Paren) Depth() int       { return p.depth }
func (p *Paren) Children() []Node { return []Node{p.expr} }
func (p *Paren) Label() string    { return "(...)" }
func (p *Paren) Kind() string     { return "Parentheses" }
func (p *Paren) String() string   { return "(" + p.expr.String() + ")" }

// BinaryOp applies an operator to a left and a right operand.
type BinaryOp struct {
	op    Op
	left  Node
	right Node
	depth int
}

// NewBinaryOp creates a new binary operation node.
func NewBinaryOp(op Op, left, right Node) *BinaryOp {
	depth := left.Depth()
	if d := right.Depth(); d > depth {
		depth = d
	}
	return &BinaryOp{op: op, left: left, right: right, depth: depth + 1}
}

func (*BinaryOp) node() {}

// Op returns the node's operator.
func (b *BinaryOp) Op() Op { return b.op }

// Left operand.
func (b *BinaryOp) Left() Node { return b.left }

// Right operand.
func (b *BinaryOp) Right() Node { return b.right }

func (b *BinaryOp) Depth() int       { return b.depth }
func (b *BinaryOp) Children() []Node { return []Node{b.left, b.right} }
func (b *BinaryOp) Label() string    { return b.op.String() }
func (b *BinaryOp) Kind() string     { return "Op=" + b.op.Name() }

func (b *BinaryOp) String() string {
	return fmt.Sprintf("%s %s %s", operand(b.left), b.op, operand(b.right))
}

// operand renders a child of a BinaryOp, bracketing nested operations so the grouping
// survives a round trip through the parser.
func operand(n Node) string {
	if _, ok := n.(*BinaryOp); ok {
		return "(" + n.String() + ")"
	}
	return n.String()
}
