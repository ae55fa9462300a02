package lexer

import "fmt"

// ErrorKind classifies lexical faults.
type ErrorKind int

const (
	// UnexpectedCharacter is reported for any rune outside the token alphabet.
	UnexpectedCharacter ErrorKind = iota
	// LiteralOverflow is reported for an integer literal that does not fit in an int64.
	LiteralOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case LiteralOverflow:
		return "LiteralOverflow"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error represents an error while lexing.
type Error struct {
	Kind    ErrorKind
	Message string
	// Step is the 1-based scan step of the fault. Every token and every skipped space is one step.
	Step int
	// Column is the 1-based rune column of the fault.
	Column int
	// Tokens produced before the fault.
	Tokens []Token
}

// Errorf creates a new Error at the given step and column.
func Errorf(kind ErrorKind, step, column int, tokens []Token, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Step:    step,
		Column:  column,
		Tokens:  tokens,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Step, e.Message)
}
