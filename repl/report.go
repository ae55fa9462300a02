package repl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/expr"
)

// Report writes a human readable description of err to w.
//
// Parser and lexer errors are followed by the input and a caret pointing at the
// offending position:
//
//     Token 3: expected end of input, found `)`.
//         2+2)
//         ---^
func Report(w io.Writer, err error, input string) {
	perr, ok := err.(*expr.ParserError)
	if !ok {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}
	column := tokenColumn(input, perr.Pos)
	if lerr := perr.Lexical(); lerr != nil {
		column = lerr.Column
	}
	fmt.Fprintf(w, "Token %d: %s.\n", perr.Pos, perr.Message)
	fmt.Fprintf(w, "\t%s\n", input)
	fmt.Fprintf(w, "\t%s^\n", strings.Repeat("-", column-1))
}

// tokenColumn returns the 1-based rune column at which the token with the given index
// starts. Indexes past the last token point one column beyond the end of input.
func tokenColumn(input string, index int) int {
	var (
		column = 0
		token  = -1
		digits = false
	)
	for _, r := range input {
		column++
		isDigit := r >= '0' && r <= '9'
		switch {
		case r == ' ':
			digits = false
			continue
		case isDigit && digits:
			continue
		}
		digits = isDigit
		token++
		if token == index {
			return column
		}
	}
	return utf8.RuneCountInString(input) + 1
}
