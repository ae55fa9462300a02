package expr

import (
	"fmt"

	"github.com/alecthomas/expr/lexer"
)

// ParserError is returned by Parse when the token sequence does not form a valid
// expression, or when lexing failed.
type ParserError struct {
	Message string
	// Pos is the 0-based index of the offending token. For lexical faults it is the lexer's
	// 1-based scan step.
	Pos int
	// Tokens is the token sequence being parsed, or for lexical faults every token
	// produced before the fault.
	Tokens []lexer.Token

	cause *lexer.Error
}

func (p *ParserError) Error() string {
	return fmt.Sprintf("%d: %s", p.Pos, p.Message)
}

// Unwrap returns the underlying *lexer.Error, if any.
func (p *ParserError) Unwrap() error {
	if p.cause == nil {
		return nil
	}
	return p.cause
}

// Lexical returns the lexer fault this error was created from, or nil.
func (p *ParserError) Lexical() *lexer.Error {
	return p.cause
}

// Errorf creates a new ParserError at the given token index.
func Errorf(pos int, tokens []lexer.Token, format string, args ...interface{}) *ParserError {
	return &ParserError{Message: fmt.Sprintf(format, args...), Pos: pos, Tokens: tokens}
}

// lexicalError converts a lexer failure into a ParserError.
func lexicalError(err error) *ParserError {
	if lerr, ok := err.(*lexer.Error); ok {
		return &ParserError{Message: lerr.Message, Pos: lerr.Step, Tokens: lerr.Tokens, cause: lerr}
	}
	return &ParserError{Message: err.Error()}
}
