package expr

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/expr/lexer"
)

var (
	termOps = map[lexer.Kind]Op{
		lexer.Add: OpSum,
		lexer.Sub: OpSub,
		lexer.Mod: OpMod,
	}
	factorOps = map[lexer.Kind]Op{
		lexer.Mult: OpMult,
		lexer.Div:  OpDiv,
	}
)

type parser struct {
	lex *lexer.PeekingLexer

	trace  io.Writer
	indent int

	maxNesting int
	nesting    int
}

// Parse a token sequence into an abstract syntax tree.
//
// The arguments match the return values of lexer.Lex, so the two compose directly:
//
//     ast, err := expr.Parse(lexer.Lex(input))
//
// A non-nil err is passed through as a *ParserError wrapping the lexer fault. Otherwise
// every token must be consumed by a single Expression.
func Parse(tokens []lexer.Token, err error, options ...Option) (Node, error) {
	if err != nil {
		return nil, lexicalError(err)
	}
	p := &parser{lex: lexer.Upgrade(tokens)}
	for _, option := range options {
		option(p)
	}
	ast, perr := p.parseExpression()
	if perr != nil {
		return nil, perr
	}
	if token, ok := p.lex.Peek(); ok {
		return nil, Errorf(p.lex.Cursor(), tokens, "expected end of input, found `%s`", token)
	}
	return ast, nil
}

// ParseString lexes and parses input.
func ParseString(input string, options ...Option) (Node, error) {
	tokens, err := lexer.Lex(input)
	return Parse(tokens, err, options...)
}

// enter traces entry into a production and returns a function to call on exit.
func (p *parser) enter(production string) func() {
	if p.trace == nil {
		return func() {}
	}
	next := "EOF"
	if token, ok := p.lex.Peek(); ok {
		next = token.String()
	}
	fmt.Fprintf(p.trace, "%s%s %q\n", strings.Repeat(" ", p.indent), production, next)
	p.indent += 2
	return func() { p.indent -= 2 }
}

// nest increments the nesting level, failing if it exceeds the configured maximum.
func (p *parser) nest() *ParserError {
	p.nesting++
	if p.maxNesting > 0 && p.nesting > p.maxNesting {
		return Errorf(p.lex.Cursor(), p.lex.Tokens(), "expression nested deeper than %d levels", p.maxNesting)
	}
	return nil
}

// Expression = Term { ( "+" | "-" | "%" ) Term } .
func (p *parser) parseExpression() (Node, *ParserError) {
	defer p.enter("Expression")()
	return p.parseChain(termOps, p.parseTerm)
}

// Term = Factor { ( "*" | "/" ) Factor } .
func (p *parser) parseTerm() (Node, *ParserError) {
	defer p.enter("Term")()
	return p.parseChain(factorOps, p.parseFactor)
}

// parseChain parses a left-associative chain of operands separated by any of ops.
//
// Each fold makes the tree built so far the left operand of the next operator, so
// "a - b - c" becomes ((a - b) - c).
func (p *parser) parseChain(ops map[lexer.Kind]Op, operand func() (Node, *ParserError)) (Node, *ParserError) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		token, ok := p.lex.Peek()
		if !ok {
			return lhs, nil
		}
		op, ok := ops[token.Kind]
		if !ok {
			return lhs, nil
		}
		p.lex.Next()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryOp(op, lhs, rhs)
	}
}

// Factor = Exponent [ "^" Factor ] .
func (p *parser) parseFactor() (Node, *ParserError) {
	defer p.enter("Factor")()
	base, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	if token, ok := p.lex.Peek(); !ok || token.Kind != lexer.Exp {
		return base, nil
	}
	p.lex.Next()
	if err := p.nest(); err != nil {
		return nil, err
	}
	exponent, err := p.parseFactor()
	p.nesting--
	if err != nil {
		return nil, err
	}
	return NewBinaryOp(OpExp, base, exponent), nil
}

// Exponent = number | "(" Expression ")" .
func (p *parser) parseExponent() (Node, *ParserError) {
	defer p.enter("Exponent")()
	token, ok := p.lex.Peek()
	if !ok {
		return nil, Errorf(p.lex.Cursor(), p.lex.Tokens(), "unexpected end of input")
	}
	switch token.Kind {
	case lexer.Number:
		p.lex.Next()
		return NewLiteral(token.Value), nil

	case lexer.LeftParen:
		if err := p.nest(); err != nil {
			return nil, err
		}
		p.lex.Next()
		inner, err := p.parseExpression()
		p.nesting--
		if err != nil {
			return nil, err
		}
		closing, ok := p.lex.Peek()
		if !ok {
			return nil, Errorf(p.lex.Cursor(), p.lex.Tokens(), "expected `)`, found end of input")
		}
		if closing.Kind != lexer.RightParen {
			return nil, Errorf(p.lex.Cursor(), p.lex.Tokens(), "expected `)`, found `%s`", closing)
		}
		p.lex.Next()
		return NewParen(inner), nil

	default:
		return nil, Errorf(p.lex.Cursor(), p.lex.Tokens(), "unexpected token `%s`", token)
	}
}
