// Package tree records the structure recognized by the parser.
//
// The parser drives an Emitter with well-nested Open, Leaf and Close calls.
// Builder turns these calls into a *Node, XMLWriter streams them as
// indented markup and Recorder keeps them for inspection and replay.
package tree

import (
	"errors"

	"github.com/c0depwn/jackfront/token"
)

// Node names, one per grammar production which produces a node.
const (
	Class           = "class"
	ClassVarDec     = "classVarDec"
	SubroutineDec   = "subroutineDec"
	ParameterList   = "parameterList"
	SubroutineBody  = "subroutineBody"
	VarDec          = "varDec"
	Statements      = "statements"
	DoStatement     = "doStatement"
	LetStatement    = "letStatement"
	IfStatement     = "ifStatement"
	WhileStatement  = "whileStatement"
	ReturnStatement = "returnStatement"
	ExpressionList  = "expressionList"
	Expression      = "expression"
	Term            = "term"

	// Tokens wraps a flat token dump.
	Tokens = "tokens"
)

var (
	// ErrNotOpen is returned when a leaf or close is emitted without an open node.
	ErrNotOpen = errors.New("no open node")
	// ErrUnclosed is returned when an emitter is finished while nodes are still open.
	ErrUnclosed = errors.New("unclosed node")
	// ErrMultipleRoots is returned when a second top level node is opened.
	ErrMultipleRoots = errors.New("multiple root nodes")
)

// Emitter consumes the structure of a parse.
// Every Open is paired with exactly one later Close.
type Emitter interface {
	// Open starts a new node as child of the currently open node.
	Open(name string) error
	// Leaf appends a token to the currently open node.
	// lexeme is passed unescaped.
	Leaf(kind token.Kind, lexeme string) error
	// Close finishes the most recently opened node.
	Close() error
}

// EmitTokens writes a flat token dump, all tokens are leaves of a single Tokens node.
func EmitTokens(e Emitter, tokens []token.Token) error {
	if err := e.Open(Tokens); err != nil {
		return err
	}
	for _, t := range tokens {
		if err := e.Leaf(t.Kind, t.Literal); err != nil {
			return err
		}
	}
	return e.Close()
}
