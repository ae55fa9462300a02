package expr

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

const grammar = `Expression = Term { ( "+" | "-" | "%" ) Term } .
Term       = Factor { ( "*" | "/" ) Factor } .
Factor     = Exponent [ "^" Factor ] .
Exponent   = number | "(" Expression ")" .
number     = digit { digit } .
digit      = "0" … "9" .`

// Grammar returns the EBNF for the expression language.
//
// Productions are upper case. Lexical productions are lower case.
func Grammar() string {
	return grammar
}

// VerifyGrammar checks that every production in Grammar is defined and reachable from
// "Expression".
func VerifyGrammar() error {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammar))
	if err != nil {
		return err
	}
	return ebnf.Verify(g, "Expression")
}
