package parser

import "github.com/Maksim-Sebelev/Language-sub000/lang/token"

// Cursor is a read position into a token sequence. It only moves forward;
// lookahead is limited to the current and the next token.
type Cursor struct {
	toks []token.Token
	off  int
}

// NewCursor returns a cursor at the first token of toks. If toks does not end
// with an EOF token, one is appended after the last token's position.
func NewCursor(toks []token.Token) *Cursor {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Pos: token.Pos{Line: 1, Column: 1}}
		if n > 0 {
			eof.Pos = toks[n-1].Pos
		}

		toks = append(toks[:n:n], eof)
	}

	return &Cursor{toks: toks}
}

// Peek returns the current token. At the end it keeps returning EOF.
func (c *Cursor) Peek() token.Token { return c.toks[c.off] }

// PeekNext returns the token after the current one.
func (c *Cursor) PeekNext() token.Token {
	if c.off+1 >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}

	return c.toks[c.off+1]
}

// Prev returns the most recently consumed token.
func (c *Cursor) Prev() (token.Token, bool) {
	if c.off == 0 {
		return token.Token{}, false
	}

	return c.toks[c.off-1], true
}

// Next consumes and returns the current token. EOF is never consumed.
func (c *Cursor) Next() token.Token {
	t := c.toks[c.off]
	if t.Kind != token.EOF {
		c.off++
	}

	return t
}

// Offset returns the index of the current token.
func (c *Cursor) Offset() int { return c.off }
