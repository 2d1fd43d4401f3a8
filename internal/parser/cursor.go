// Package parser implements a recursive-descent, operator-precedence
// parser producing a typed Program AST (spec.md §4.2).
package parser

import "github.com/sourcec-lang/sourcec/internal/lexer"

// Cursor navigates a pre-scanned token stream with one-token lookahead,
// mirroring the teacher parser's token-stream navigation helper but
// generalized over a plain slice since the whole stream is already in
// memory by the time the parser runs (spec.md §4.1's pre-scan guarantee).
type Cursor struct {
	tokens []lexer.Token
	pos    int
}

// NewCursor wraps a token slice. The slice must end in an EOF token.
func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Current returns the token at the cursor without advancing.
func (c *Cursor) Current() lexer.Token {
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // EOF
	}
	return c.tokens[c.pos]
}

// Peek returns the token n positions ahead of the cursor without advancing.
func (c *Cursor) Peek(n int) lexer.Token {
	idx := c.pos + n
	if idx >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[idx]
}

// Advance consumes and returns the current token.
func (c *Cursor) Advance() lexer.Token {
	tok := c.Current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

// Check reports whether the current token has the given type.
func (c *Cursor) Check(t lexer.TokenType) bool {
	return c.Current().Type == t
}

// Match advances and returns true if the current token has type t.
func (c *Cursor) Match(t lexer.TokenType) bool {
	if c.Check(t) {
		c.Advance()
		return true
	}
	return false
}

// Save and Restore support backtracking for the small number of
// ambiguous prefixes the grammar needs to look past (e.g. skipping
// newlines after an if-block to see whether an `else` follows).
func (c *Cursor) Save() int     { return c.pos }
func (c *Cursor) Restore(p int) { c.pos = p }

// AtEOF reports whether the cursor has reached the end of the stream.
func (c *Cursor) AtEOF() bool {
	return c.Current().Type == lexer.EOF
}
