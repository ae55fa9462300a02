package expr

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/expr/lexer"
)

func lit(n int64) Node               { return NewLiteral(n) }
func paren(n Node) Node              { return NewParen(n) }
func bin(l Node, op Op, r Node) Node { return NewBinaryOp(op, l, r) }

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Node
	}{
		{"42", lit(42)},
		{"1 + 2", bin(lit(1), OpSum, lit(2))},
		{"8-3-2", bin(bin(lit(8), OpSub, lit(3)), OpSub, lit(2))},
		{"8/4/2", bin(bin(lit(8), OpDiv, lit(4)), OpDiv, lit(2))},
		{"7%4+1", bin(bin(lit(7), OpMod, lit(4)), OpSum, lit(1))},
		{"2^3^2", bin(lit(2), OpExp, bin(lit(3), OpExp, lit(2)))},
		{"2+3*4", bin(lit(2), OpSum, bin(lit(3), OpMult, lit(4)))},
		{"(2+3)*4", bin(paren(bin(lit(2), OpSum, lit(3))), OpMult, lit(4))},
		{"2*3^2", bin(lit(2), OpMult, bin(lit(3), OpExp, lit(2)))},
		{"((1))", paren(paren(lit(1)))},
		{"1 + 2 - 3 * (4 + 2)", bin(
			bin(lit(1), OpSum, lit(2)),
			OpSub,
			bin(lit(3), OpMult, paren(bin(lit(4), OpSum, lit(2)))),
		)},
		{"(2)^(1+1)^2", bin(
			paren(lit(2)),
			OpExp,
			bin(paren(bin(lit(1), OpSum, lit(1))), OpExp, lit(2)),
		)},
	}
	for _, test := range tests {
		// nolint: scopelint
		t.Run(test.input, func(t *testing.T) {
			actual, err := ParseString(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual, repr.String(actual, repr.Indent("  ")))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		pos     int
		message string
	}{
		{"", 0, "unexpected end of input"},
		{"2 +", 2, "unexpected end of input"},
		{"(2+3", 4, "expected `)`, found end of input"},
		{"(2 3)", 2, "expected `)`, found `3`"},
		{"()", 1, "unexpected token `)`"},
		{"2 2", 1, "expected end of input, found `2`"},
		{"2+2)", 3, "expected end of input, found `)`"},
		{"*2", 0, "unexpected token `*`"},
		{"2 + * 3", 2, "unexpected token `*`"},
		{"-1", 0, "unexpected token `-`"},
		{"2^", 2, "unexpected end of input"},
		{"(1+(2*3)", 8, "expected `)`, found end of input"},
	}
	for _, test := range tests {
		// nolint: scopelint
		t.Run(test.input, func(t *testing.T) {
			tokens, err := lexer.Lex(test.input)
			require.NoError(t, err)
			_, err = Parse(tokens, nil)
			perr, ok := err.(*ParserError)
			require.True(t, ok, "expected *ParserError, got %T", err)
			require.Equal(t, test.message, perr.Message)
			require.Equal(t, test.pos, perr.Pos)
			require.Equal(t, tokens, perr.Tokens)
			require.Nil(t, perr.Lexical())
			require.Nil(t, perr.Unwrap())
		})
	}
}

func TestParsePassesLexerErrorThrough(t *testing.T) {
	_, err := Parse(lexer.Lex("2+@"))
	perr, ok := err.(*ParserError)
	require.True(t, ok)
	require.Equal(t, 3, perr.Pos)
	require.Equal(t, "unexpected character '@'", perr.Message)
	require.Equal(t, []lexer.Token{lexer.NumberToken(2), lexer.KindToken(lexer.Add)}, perr.Tokens)

	lerr := perr.Lexical()
	require.NotNil(t, lerr)
	require.Equal(t, lexer.UnexpectedCharacter, lerr.Kind)
	require.Equal(t, lerr, perr.Unwrap())
	require.EqualError(t, err, "3: unexpected character '@'")
}

func TestParseLiteralOverflow(t *testing.T) {
	_, err := ParseString("99999999999999999999")
	perr, ok := err.(*ParserError)
	require.True(t, ok)
	require.Equal(t, lexer.LiteralOverflow, perr.Lexical().Kind)
}

func TestParseTreeShape(t *testing.T) {
	inputs := []string{
		"1",
		"1+2*3^4^5-(6%7)/8",
		"((((1))))",
		"1-2-3-4-5-6",
		"2^2^2^2",
		"(1+2)*(3+4)*(5+6)",
	}
	for _, input := range inputs {
		ast, err := ParseString(input)
		require.NoError(t, err, input)
		err = Visit(ast, func(n Node, next func() error) error {
			children := n.Children()
			switch n := n.(type) {
			case *Literal:
				require.Empty(t, children)
				require.Equal(t, 0, n.Depth())
			case *Paren:
				require.Len(t, children, 1)
			case *BinaryOp:
				require.Len(t, children, 2)
			}
			for _, child := range children {
				require.True(t, n.Depth() > child.Depth(), "%s: parent %s is not deeper than child %s", input, n.Kind(), child.Kind())
			}
			return next()
		})
		require.NoError(t, err)
	}
}

func TestParseDeterministic(t *testing.T) {
	first, err := ParseString("1 + 2 * (3 - 4) ^ 2")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ParseString("1 + 2 * (3 - 4) ^ 2")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
