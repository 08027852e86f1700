package parser

import (
	"errors"
	"fmt"

	"github.com/c0depwn/jackfront/token"
)

// ErrorKind distinguishes the reasons for which the parser rejects its input.
type ErrorKind int

const (
	_ ErrorKind = iota
	UnexpectedToken
	UnexpectedEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	}
	return "unknown syntax error"
}

// Sentinel errors, use errors.Is to test for the kind of a *SyntaxError.
var (
	ErrUnexpectedToken      = &SyntaxError{Kind: UnexpectedToken}
	ErrUnexpectedEndOfInput = &SyntaxError{Kind: UnexpectedEndOfInput}
)

// SyntaxError reports a token which does not fit the grammar.
type SyntaxError struct {
	Kind ErrorKind
	// Expected describes the construct the parser was looking for, e.g. "';'" or "term".
	Expected string
	// Actual is the offending token, a token.EOF token for UnexpectedEndOfInput.
	Actual token.Token
	// Production is the name of the grammar production which failed.
	Production string
}

func newSyntaxError(production, expected string, actual token.Token) *SyntaxError {
	kind := UnexpectedToken
	if actual.Kind == token.EOF {
		kind = UnexpectedEndOfInput
	}
	return &SyntaxError{
		Kind:       kind,
		Expected:   expected,
		Actual:     actual,
		Production: production,
	}
}

// Pos is the position of the offending token.
func (e *SyntaxError) Pos() token.Position {
	return e.Actual.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf(
		"%s: syntax error in %s: expected %s, got %s",
		e.Pos(), e.Production, e.Expected, e.Actual.Describe(),
	)
}

// Is matches any *SyntaxError of the same kind.
func (e *SyntaxError) Is(target error) bool {
	var other *SyntaxError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// emitError wraps failures reported by the tree.Emitter.
type emitError struct {
	err error
}

func (e emitError) Error() string {
	return fmt.Sprintf("emit failed: %v", e.err)
}

func (e emitError) Unwrap() error {
	return e.err
}
