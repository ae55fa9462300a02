// Package lexer turns arithmetic source text into a flat sequence of tokens.
//
// The lexer recognises non-negative integer literals, the operators + - % * / ^ and
// parentheses. Spaces separate tokens and are otherwise ignored. Any other character is
// fatal: Lex stops at the first one and returns an *Error carrying the tokens produced
// so far.
package lexer
