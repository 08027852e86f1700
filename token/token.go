package token

import (
	"fmt"
)

// Kind classifies a Token.
// The values double as the tag names used when a token is written as markup.
type Kind string

const (
	// CONTROL

	Illegal Kind = "illegal"
	EOF     Kind = "EOF"

	// Lexical classes

	Keyword         Kind = "keyword"
	Symbol          Kind = "symbol"
	IntegerConstant Kind = "integerConstant"
	StringConstant  Kind = "stringConstant"
	Identifier      Kind = "identifier"
)

// MaxInt is the largest value an integer constant may hold.
const MaxInt = 32767

const (
	// Keywords

	Class       = "class"
	Constructor = "constructor"
	Function    = "function"
	Method      = "method"
	Field       = "field"
	Static      = "static"
	Var         = "var"
	Int         = "int"
	Char        = "char"
	Boolean     = "boolean"
	Void        = "void"
	True        = "true"
	False       = "false"
	Null        = "null"
	This        = "this"
	Let         = "let"
	Do          = "do"
	If          = "if"
	Else        = "else"
	While       = "while"
	Return      = "return"

	// Delimiters

	LBrace    = "{"
	RBrace    = "}"
	LParen    = "("
	RParen    = ")"
	LBracket  = "["
	RBracket  = "]"
	Dot       = "."
	Comma     = ","
	Semicolon = ";"

	// Operators

	Plus        = "+"
	Minus       = "-"
	Asterisk    = "*"
	Slash       = "/"
	Ampersand   = "&"
	Pipe        = "|"
	LessThan    = "<"
	GreaterThan = ">"
	Equal       = "="
	Tilde       = "~"
)

var keywords = map[string]struct{}{
	Class: {}, Constructor: {}, Function: {}, Method: {},
	Field: {}, Static: {}, Var: {},
	Int: {}, Char: {}, Boolean: {}, Void: {},
	True: {}, False: {}, Null: {}, This: {},
	Let: {}, Do: {}, If: {}, Else: {}, While: {}, Return: {},
}

// symbols is the closed set of single character symbols.
const symbols = "{}()[].,;+-*/&|<>=~"

// operators may join two terms of an expression.
const operators = "+-*/&|<>="

// Token is a classified lexeme.
// Literal contains the lexeme without any surrounding quotes.
type Token struct {
	Kind     Kind
	Literal  string
	Position Position
}

// Position points to the first character of a token, both Row and Col are 1-based.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

func (t Token) String() string {
	return fmt.Sprintf(
		"Kind='%s', Literal='%s', Row='%d' Col='%d'",
		t.Kind, t.Literal, t.Position.Row, t.Position.Col,
	)
}

// Is reports whether the token is of the given kind and has the given literal.
func (t Token) Is(kind Kind, literal string) bool {
	return t.Kind == kind && t.Literal == literal
}

// IsKeyword reports whether the token is one of the given keywords.
func (t Token) IsKeyword(keywords ...string) bool {
	return t.Kind == Keyword && in(t.Literal, keywords)
}

// IsSymbol reports whether the token is one of the given symbols.
func (t Token) IsSymbol(symbols ...string) bool {
	return t.Kind == Symbol && in(t.Literal, symbols)
}

// IsOperator reports whether the token is a binary operator.
func (t Token) IsOperator() bool {
	return t.Kind == Symbol && len(t.Literal) == 1 && IsOperator(t.Literal[0])
}

// Describe renders the token the way it is quoted in error messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case StringConstant:
		return fmt.Sprintf("%s \"%s\"", t.Kind, t.Literal)
	}
	return fmt.Sprintf("%s '%s'", t.Kind, t.Literal)
}

func in(s string, set []string) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

// IsReservedKeyword checks if word is one of the reserved keywords.
func IsReservedKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Lookup classifies a complete word as Keyword or Identifier.
// The caller must pass the maximal run of identifier characters,
// a word like "classroom" is therefore never mistaken for "class".
func Lookup(word string) Kind {
	if IsReservedKeyword(word) {
		return Keyword
	}
	return Identifier
}

// IsSymbol reports whether c is one of the single character symbols.
func IsSymbol(c byte) bool {
	return contains(symbols, c)
}

// IsOperator reports whether c is one of the binary operators.
func IsOperator(c byte) bool {
	return contains(operators, c)
}

func contains(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

// IsKind reports whether name is the name of a lexical class, e.g. "keyword".
func IsKind(name string) bool {
	switch Kind(name) {
	case Keyword, Symbol, IntegerConstant, StringConstant, Identifier:
		return true
	}
	return false
}

var (
	// KeywordConstants may appear as a term.
	KeywordConstants = []string{True, False, Null, This}

	// PrimitiveTypes are the built-in type names.
	PrimitiveTypes = []string{Int, Char, Boolean}

	// SubroutineKinds start a subroutine declaration.
	SubroutineKinds = []string{Constructor, Function, Method}

	// ClassVarKinds start a class variable declaration.
	ClassVarKinds = []string{Static, Field}

	// StatementKeywords start a statement.
	StatementKeywords = []string{Let, If, While, Do, Return}

	// UnaryOperators may prefix a term.
	UnaryOperators = []string{Minus, Tilde}
)
