package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/c0depwn/jackfront/token"
)

const byteOrderMark = "\uFEFF"

// The Lexer reads the source code and produces lexical tokens.
// Comments and whitespace are skipped and never produce a token.
type Lexer struct {
	// src is the complete source text
	src string
	// offset is the index of the next byte which will be read from src
	offset int
	// row and column point to the next character which will be read.
	row, column int
}

// New creates and initializes the Lexer.
func New(src string) *Lexer {
	return &Lexer{
		src:    strings.TrimPrefix(src, byteOrderMark),
		row:    1,
		column: 1,
	}
}

// Tokenize reads r to completion and returns all tokens in encounter order.
// The returned sequence does not contain a token.EOF token.
func Tokenize(r io.Reader) ([]token.Token, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read source: %w", err)
	}
	return TokenizeString(string(src))
}

// TokenizeString is Tokenize for source text which is already in memory.
func TokenizeString(src string) ([]token.Token, error) {
	l := New(src)

	var tokens []token.Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}

// Next reads the source until a token is discovered.
// When the source has been read to completion a token.Token
// of token.Kind token.EOF is returned.
// Malformed input results in a token of kind token.Illegal and an *Error.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipIgnored(); err != nil {
		return token.Token{Kind: token.Illegal, Position: err.Pos}, err
	}

	pos := l.position()
	if l.atEOF() {
		return token.Token{Kind: token.EOF, Position: pos}, nil
	}

	var (
		t   token.Token
		err *Error
	)

	switch c := l.peekChar(); {
	case isLetter(c):
		t = l.readWord(pos)
	case isDigit(c):
		t, err = l.readInteger(pos)
	case c == '"':
		t, err = l.readString(pos)
	case token.IsSymbol(c):
		l.readChar()
		t = token.Token{Kind: token.Symbol, Literal: string(c), Position: pos}
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.offset:])
		err = &Error{Kind: UnrecognizedCharacter, Pos: pos, Literal: string(r)}
	}

	if err != nil {
		return token.Token{Kind: token.Illegal, Literal: err.Literal, Position: pos}, err
	}
	return t, nil
}

// readWord consumes the maximal run of identifier characters.
// Only a complete word is looked up as a keyword.
func (l *Lexer) readWord(pos token.Position) token.Token {
	start := l.offset
	for !l.atEOF() && isIdentifierChar(l.peekChar()) {
		l.readChar()
	}

	word := l.src[start:l.offset]
	return token.Token{Kind: token.Lookup(word), Literal: word, Position: pos}
}

// readInteger consumes the maximal run of digits.
// The literal of the resulting token is normalized, leading zeros are dropped.
func (l *Lexer) readInteger(pos token.Position) (token.Token, *Error) {
	start := l.offset
	for !l.atEOF() && isDigit(l.peekChar()) {
		l.readChar()
	}

	digits := l.src[start:l.offset]
	n, err := strconv.Atoi(digits)
	if err != nil || n > token.MaxInt {
		return token.Token{}, &Error{Kind: IntegerOverflow, Pos: pos, Literal: digits}
	}

	return token.Token{Kind: token.IntegerConstant, Literal: strconv.Itoa(n), Position: pos}, nil
}

// readString consumes a string constant including both quotes.
// The literal of the resulting token excludes the quotes.
// Escape sequences are not supported and a string must not span multiple lines.
func (l *Lexer) readString(pos token.Position) (token.Token, *Error) {
	// opening quote
	l.readChar()

	start := l.offset
	for {
		if l.atEOF() || l.peekChar() == '\n' {
			return token.Token{}, &Error{Kind: UnterminatedString, Pos: pos, Literal: l.src[start:l.offset]}
		}
		if l.peekChar() == '"' {
			break
		}
		l.readChar()
	}

	literal := l.src[start:l.offset]

	// closing quote
	l.readChar()

	return token.Token{Kind: token.StringConstant, Literal: literal, Position: pos}, nil
}

// skipIgnored skips whitespace, line comments and block comments.
func (l *Lexer) skipIgnored() *Error {
	for !l.atEOF() {
		c := l.peekChar()
		switch {
		case isWhitespace(c):
			l.readChar()
		case c == '/' && l.peekCharAt(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peekCharAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.peekChar() != '\n' {
		l.readChar()
	}
}

// skipBlockComment skips "/* ... */" as well as documentation comments "/** ... */".
func (l *Lexer) skipBlockComment() *Error {
	pos := l.position()

	// consume "/*"
	l.readChar()
	l.readChar()

	for !l.atEOF() {
		if l.peekChar() == '*' && l.peekCharAt(1) == '/' {
			l.readChar()
			l.readChar()
			return nil
		}
		l.readChar()
	}

	return &Error{Kind: UnterminatedComment, Pos: pos, Literal: "/*"}
}

func (l *Lexer) atEOF() bool {
	return l.offset >= len(l.src)
}

// peekChar returns the next byte without consuming it.
// The caller must ensure that the Lexer is not at EOF.
func (l *Lexer) peekChar() byte {
	return l.src[l.offset]
}

// peekCharAt returns the byte n positions after the next byte,
// or 0 if the source ends before.
func (l *Lexer) peekCharAt(n int) byte {
	if l.offset+n >= len(l.src) {
		return 0
	}
	return l.src[l.offset+n]
}

func (l *Lexer) readChar() byte {
	b := l.src[l.offset]
	l.offset++
	l.row, l.column = updatePosition(b, l.row, l.column)
	return b
}

func (l *Lexer) position() token.Position {
	return token.Position{Row: l.row, Col: l.column}
}

func updatePosition(char byte, row, col int) (int, int) {
	switch {
	case char == '\n':
		return row + 1, 1
	case isContinuationByte(char):
		return row, col
	}
	return row, col + 1
}
