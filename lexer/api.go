package lexer

import (
	"fmt"
	"strconv"
)

// Kind of a Token.
type Kind int

// Token kinds.
const (
	Add Kind = iota
	Sub
	Mod
	Mult
	Div
	Exp
	LeftParen
	RightParen
	Number
)

var kindNames = map[Kind]string{
	Add:        "Add",
	Sub:        "Sub",
	Mod:        "Mod",
	Mult:       "Mult",
	Div:        "Div",
	Exp:        "Exp",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Number:     "Number",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operator returns true if the kind is one of the binary operators.
func (k Kind) Operator() bool {
	return k >= Add && k <= Exp
}

// A Token returned by Lex.
//
// Only Number tokens use Value.
type Token struct {
	Kind  Kind
	Value int64
}

// NumberToken creates a Number token.
func NumberToken(n int64) Token {
	return Token{Kind: Number, Value: n}
}

// KindToken creates a token of the given non-Number kind.
func KindToken(kind Kind) Token {
	return Token{Kind: kind}
}

var kindText = map[Kind]string{
	Add:        "+",
	Sub:        "-",
	Mod:        "%",
	Mult:       "*",
	Div:        "/",
	Exp:        "^",
	LeftParen:  "(",
	RightParen: ")",
}

var runeKinds = map[rune]Kind{
	'+': Add,
	'-': Sub,
	'%': Mod,
	'*': Mult,
	'/': Div,
	'^': Exp,
	'(': LeftParen,
	')': RightParen,
}

// String returns the source text of the token.
func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatInt(t.Value, 10)
	}
	return kindText[t.Kind]
}

func (t Token) GoString() string {
	if t.Kind == Number {
		return fmt.Sprintf("Token{Number, %d}", t.Value)
	}
	return fmt.Sprintf("Token{%s}", t.Kind)
}

// Width of the token in runes when written without surrounding spaces.
func (t Token) Width() int {
	return len(t.String())
}
