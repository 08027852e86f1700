package analyzer

import (
	"errors"
	"fmt"

	"github.com/c0depwn/jackfront/lexer"
	"github.com/c0depwn/jackfront/parser"
	"github.com/c0depwn/jackfront/token"
)

// Status is the outcome of analyzing a single file.
type Status string

const (
	StatusOK          Status = "ok"
	StatusLexError    Status = "lex-error"
	StatusSyntaxError Status = "syntax-error"
	StatusIOError     Status = "io-error"
	// StatusInternalError marks a violated emitter contract, it indicates a bug.
	StatusInternalError Status = "internal-error"
	// StatusSkipped marks files which were not analyzed because the batch was aborted.
	StatusSkipped Status = "skipped"
)

// Failed reports whether the status counts as a failure of the batch.
func (s Status) Failed() bool {
	return s != StatusOK && s != StatusSkipped
}

// classify derives the status of a failed file from err
// and the position the error refers to, if any.
func classify(err error) (Status, *token.Position) {
	var (
		lexErr    *lexer.Error
		syntaxErr *parser.SyntaxError
		ioErr     *IOError
	)

	switch {
	case err == nil:
		return StatusOK, nil
	case errors.As(err, &lexErr):
		return StatusLexError, &lexErr.Pos
	case errors.As(err, &syntaxErr):
		pos := syntaxErr.Pos()
		return StatusSyntaxError, &pos
	case errors.As(err, &ioErr):
		return StatusIOError, nil
	}
	return StatusInternalError, nil
}

// IOError reports a failure to read a source or to write an output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
