package lexer

import (
	"errors"
	"fmt"

	"github.com/c0depwn/jackfront/token"
)

// ErrorKind distinguishes the reasons for which the Lexer rejects its input.
type ErrorKind int

const (
	_ ErrorKind = iota
	UnrecognizedCharacter
	UnterminatedString
	IntegerOverflow
	UnterminatedComment
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case UnterminatedString:
		return "unterminated string constant"
	case IntegerOverflow:
		return "integer constant out of range"
	case UnterminatedComment:
		return "unterminated block comment"
	}
	return "unknown lex error"
}

// Sentinel errors, use errors.Is to test for the kind of an *Error.
var (
	ErrUnrecognizedCharacter = &Error{Kind: UnrecognizedCharacter}
	ErrUnterminatedString    = &Error{Kind: UnterminatedString}
	ErrIntegerOverflow       = &Error{Kind: IntegerOverflow}
	ErrUnterminatedComment   = &Error{Kind: UnterminatedComment}
)

// Error reports malformed input.
// Pos points to the beginning of the offending lexeme.
type Error struct {
	Kind    ErrorKind
	Pos     token.Position
	Literal string
}

func (e *Error) Error() string {
	switch e.Kind {
	case IntegerOverflow:
		return fmt.Sprintf("%s: lex error: %s: %s exceeds %d", e.Pos, e.Kind, e.Literal, token.MaxInt)
	case UnterminatedString, UnterminatedComment:
		return fmt.Sprintf("%s: lex error: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: lex error: %s '%s'", e.Pos, e.Kind, e.Literal)
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}
