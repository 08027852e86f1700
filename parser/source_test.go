package parser

import (
	"testing"

	"github.com/c0depwn/jackfront/token"
)

func TestCursor(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Keyword, Literal: "do", Position: token.Position{Row: 1, Col: 1}},
		{Kind: token.Identifier, Literal: "f", Position: token.Position{Row: 1, Col: 4}},
	}

	c := NewCursor(tokens)
	if c.Current().Kind != token.EOF {
		t.Fatalf("expected EOF before the first advance, got %s", c.Current().Describe())
	}
	if !c.HasMore() {
		t.Fatal("expected more tokens")
	}

	if got := c.Advance(); got != tokens[0] {
		t.Fatalf("expected %v, got %v", tokens[0], got)
	}
	if got := c.Peek(); got != tokens[1] {
		t.Fatalf("expected %v, got %v", tokens[1], got)
	}

	c.Advance()
	if c.HasMore() {
		t.Fatal("expected no more tokens")
	}

	peeked := c.Peek()
	if peeked.Kind != token.EOF || peeked.Position != tokens[1].Position {
		t.Fatalf("expected EOF sentinel at %s, got %v", tokens[1].Position, peeked)
	}

	// advancing past the end is stable
	for i := 0; i < 3; i++ {
		if got := c.Advance(); got.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", got)
		}
	}
	if c.Peek().Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", c.Peek())
	}
}

func TestCursor_empty(t *testing.T) {
	c := NewCursor(nil)

	if got := c.Advance(); got.Kind != token.EOF || got.Position != (token.Position{Row: 1, Col: 1}) {
		t.Fatalf("expected EOF at 1:1, got %v", got)
	}
	if c.HasMore() {
		t.Fatal("expected no more tokens")
	}
}
