package lexer

import (
	"strconv"
	"testing"
)

// TestLexer_identifierChars ensures only ASCII letters, digits and '_' continue an identifier.
func TestLexer_identifierChars(t *testing.T) {
	for i := 0; i < 1<<8; i++ {
		c := byte(i)
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()

			expect := c == '_' ||
				c >= 'a' && c <= 'z' ||
				c >= 'A' && c <= 'Z' ||
				c >= '0' && c <= '9'

			if got := isIdentifierChar(c); got != expect {
				t.Fatalf("isIdentifierChar(%q): expected %v, got %v", c, expect, got)
			}
		})
	}
}

func TestLexer_updatePosition(t *testing.T) {
	cases := []struct {
		input    string
		row, col int
	}{
		{input: "", row: 1, col: 1},
		{input: "abc", row: 1, col: 4},
		{input: "a\nb", row: 2, col: 2},
		{input: "\n\n", row: 3, col: 1},
		{input: "\tx", row: 1, col: 3},
		{input: "äö", row: 1, col: 3},
	}

	for _, tc := range cases {
		t.Run(strconv.Quote(tc.input), func(t *testing.T) {
			row, col := 1, 1
			for i := 0; i < len(tc.input); i++ {
				row, col = updatePosition(tc.input[i], row, col)
			}
			if row != tc.row || col != tc.col {
				t.Fatalf("expected %d:%d, got %d:%d", tc.row, tc.col, row, col)
			}
		})
	}
}
