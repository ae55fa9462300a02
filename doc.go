// Package expr parses integer arithmetic expressions into an abstract syntax tree and
// evaluates them.
//
// The supported grammar, from lowest to highest precedence, is:
//
//     Expression = Term { ( "+" | "-" | "%" ) Term } .
//     Term       = Factor { ( "*" | "/" ) Factor } .
//     Factor     = Exponent [ "^" Factor ] .
//     Exponent   = number | "(" Expression ")" .
//
// All binary operators are left-associative except "^", which is right-associative.
//
// The three stages compose directly:
//
//     ast, err := expr.Parse(lexer.Lex("2 + 3 * 4"))
//     if err != nil {
//         return err
//     }
//     value, err := expr.Evaluate(ast)
//
// Every stage returns an explicit error. Nothing panics on malformed input, and no stage
// recovers from an error produced by an earlier one.
package expr
