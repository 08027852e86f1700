package parser

import "github.com/c0depwn/jackfront/token"

// Cursor walks a token sequence front to back, it never rewinds.
// A new Cursor is positioned before the first token, Advance must be called
// once before Current yields a token.
//
// Reading beyond the end of the sequence yields a token.EOF sentinel
// which is positioned at the last token of the sequence.
type Cursor struct {
	tokens []token.Token
	// index of the current token, -1 before the first Advance
	index int
	eof   token.Token
}

func NewCursor(tokens []token.Token) *Cursor {
	eof := token.Token{Kind: token.EOF, Position: token.Position{Row: 1, Col: 1}}
	if len(tokens) > 0 {
		eof.Position = tokens[len(tokens)-1].Position
	}
	return &Cursor{tokens: tokens, index: -1, eof: eof}
}

// Advance moves to the next token and returns it.
func (c *Cursor) Advance() token.Token {
	if c.index < len(c.tokens) {
		c.index++
	}
	return c.Current()
}

// Current returns the token the cursor is positioned at.
func (c *Cursor) Current() token.Token {
	return c.at(c.index)
}

// Peek returns the token after the current one without consuming it.
func (c *Cursor) Peek() token.Token {
	return c.at(c.index + 1)
}

// HasMore reports whether a token follows the current one.
func (c *Cursor) HasMore() bool {
	return c.index+1 < len(c.tokens)
}

func (c *Cursor) at(i int) token.Token {
	if i < 0 || i >= len(c.tokens) {
		return c.eof
	}
	return c.tokens[i]
}
