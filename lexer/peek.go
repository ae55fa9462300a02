package lexer

// PeekingLexer is a cursor over a pre-lexed token sequence with one token of lookahead.
type PeekingLexer struct {
	cursor int
	tokens []Token
}

// Upgrade a token sequence to a PeekingLexer positioned at the first token.
func Upgrade(tokens []Token) *PeekingLexer {
	return &PeekingLexer{tokens: tokens}
}

// Cursor is the index of the next token to be consumed.
//
// Once all tokens are consumed it is equal to len(Tokens()).
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Peek at the next token without consuming it.
//
// Returns false if all tokens have been consumed.
func (p *PeekingLexer) Peek() (Token, bool) {
	if p.cursor >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.cursor], true
}

// Next consumes and returns the next token.
//
// Returns false, without advancing, if all tokens have been consumed.
func (p *PeekingLexer) Next() (Token, bool) {
	t, ok := p.Peek()
	if ok {
		p.cursor++
	}
	return t, ok
}

// EOF returns true if all tokens have been consumed.
func (p *PeekingLexer) EOF() bool {
	return p.cursor >= len(p.tokens)
}

// Tokens returns the full underlying token sequence.
func (p *PeekingLexer) Tokens() []Token {
	return p.tokens
}
