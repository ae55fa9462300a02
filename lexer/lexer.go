package lexer

import "math"

// Lex input into a sequence of tokens.
//
// Scanning stops at the first rune that is not a digit, a space or one of "+-%*/^()".
// The returned *Error carries every token produced before that rune.
func Lex(input string) ([]Token, error) {
	var (
		runes  = []rune(input)
		tokens = []Token{}
		step   = 0
	)
	for i := 0; i < len(runes); {
		step++
		r := runes[i]
		switch {
		case r == ' ':
			i++

		case isDigit(r):
			start := i
			n, end, ok := scanNumber(runes, i)
			if !ok {
				return nil, Errorf(LiteralOverflow, step, start+1, tokens,
					"integer literal `%s' overflows int64", string(runes[start:end]))
			}
			tokens = append(tokens, NumberToken(n))
			i = end

		default:
			kind, ok := runeKinds[r]
			if !ok {
				return nil, Errorf(UnexpectedCharacter, step, i+1, tokens, "unexpected character %q", r)
			}
			tokens = append(tokens, KindToken(kind))
			i++
		}
	}
	return tokens, nil
}

// scanNumber greedily consumes the digit run starting at runes[start].
//
// It returns the value, the index one past the last digit, and false if the value
// overflows an int64. On overflow the whole digit run is still consumed.
func scanNumber(runes []rune, start int) (int64, int, bool) {
	var (
		n  int64
		ok = true
		i  = start
	)
	for ; i < len(runes) && isDigit(runes[i]); i++ {
		digit := int64(runes[i] - '0')
		if n > (math.MaxInt64-digit)/10 {
			ok = false
		}
		if ok {
			n = n*10 + digit
		}
	}
	return n, i, ok
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
