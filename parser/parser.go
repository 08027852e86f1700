package parser

import (
	"fmt"
	"strings"

	"github.com/c0depwn/jackfront/token"
	"github.com/c0depwn/jackfront/tree"
)

// The parser recognizes a class and reports its structure to a tree.Emitter.
// It makes use of a top-down approach with a lookahead of 1 token.
// Tokens are consumed from a Cursor, every production opens its node before
// consuming the first token and closes it after consuming the last one.
// The first syntax error aborts the parse by panicking with a *SyntaxError.
type parser struct {
	// cursor provides the current and the next token
	cursor *Cursor

	// out receives the recognized structure
	out tree.Emitter

	// tracer is used to easily trace the parsing path
	tracer tracerI

	// When debug is enabled additional assertions are made.
	// Notice, this can cause the parser to terminate prematurely.
	debug bool
}

// pseudo productions which do not produce a node of their own
const (
	productionFile           = "file"
	productionType           = "type"
	productionSubroutineCall = "subroutineCall"
)

func (p *parser) parse() {
	p.parseClass()

	if !p.currentIs(token.EOF) {
		p.syntaxError(productionFile, "end of input")
	}
}

// Class = "class" identifier "{" { ClassVarDec } { SubroutineDec } "}" .
func (p *parser) parseClass() {
	p.tracer.begin(tree.Class, p.current())
	defer p.tracer.end(tree.Class)

	p.open(tree.Class)

	p.expectKeyword(tree.Class, token.Class)
	p.expectIdentifier(tree.Class)
	p.expectSymbol(tree.Class, token.LBrace)

	for p.current().IsKeyword(token.ClassVarKinds...) {
		p.parseClassVarDec()
	}

	for p.current().IsKeyword(token.SubroutineKinds...) {
		p.parseSubroutineDec()
	}

	if !p.current().IsSymbol(token.RBrace) {
		p.syntaxError(tree.Class, "subroutine declaration or '}'")
	}
	p.emit()

	p.close()
}

// ClassVarDec = ( "static" | "field" ) Type identifier { "," identifier } ";" .
func (p *parser) parseClassVarDec() {
	p.tracer.begin(tree.ClassVarDec, p.current())
	defer p.tracer.end(tree.ClassVarDec)

	// precondition
	p.assert(p.current().IsKeyword(token.ClassVarKinds...), "parseClassVarDec must be called with 'static' or 'field' as the current token")

	p.open(tree.ClassVarDec)

	p.expectKeyword(tree.ClassVarDec, token.ClassVarKinds...)
	p.expectType(tree.ClassVarDec)
	p.parseNameList(tree.ClassVarDec)
	p.expectSymbol(tree.ClassVarDec, token.Semicolon)

	p.close()
}

// SubroutineDec = ( "constructor" | "function" | "method" ) ( "void" | Type ) identifier
//
//	"(" ParameterList ")" SubroutineBody .
func (p *parser) parseSubroutineDec() {
	p.tracer.begin(tree.SubroutineDec, p.current())
	defer p.tracer.end(tree.SubroutineDec)

	// precondition
	p.assert(p.current().IsKeyword(token.SubroutineKinds...), "parseSubroutineDec must be called with 'constructor', 'function' or 'method' as the current token")

	p.open(tree.SubroutineDec)

	p.expectKeyword(tree.SubroutineDec, token.SubroutineKinds...)
	p.expectType(tree.SubroutineDec, token.Void)
	p.expectIdentifier(tree.SubroutineDec)
	p.expectSymbol(tree.SubroutineDec, token.LParen)
	p.parseParameterList()
	p.expectSymbol(tree.SubroutineDec, token.RParen)
	p.parseSubroutineBody()

	p.close()
}

// ParameterList = [ Type identifier { "," Type identifier } ] .
func (p *parser) parseParameterList() {
	p.tracer.begin(tree.ParameterList, p.current())
	defer p.tracer.end(tree.ParameterList)

	p.open(tree.ParameterList)

	// the list is empty if it is immediately closed
	if !p.current().IsSymbol(token.RParen) {
		p.expectType(tree.ParameterList)
		p.expectIdentifier(tree.ParameterList)

		for p.current().IsSymbol(token.Comma) {
			p.emit()
			p.expectType(tree.ParameterList)
			p.expectIdentifier(tree.ParameterList)
		}
	}

	p.close()
}

// SubroutineBody = "{" { VarDec } Statements "}" .
func (p *parser) parseSubroutineBody() {
	p.tracer.begin(tree.SubroutineBody, p.current())
	defer p.tracer.end(tree.SubroutineBody)

	p.open(tree.SubroutineBody)

	p.expectSymbol(tree.SubroutineBody, token.LBrace)

	// all declarations precede the first statement
	for p.current().IsKeyword(token.Var) {
		p.parseVarDec()
	}

	p.parseStatements()

	if !p.current().IsSymbol(token.RBrace) {
		p.syntaxError(tree.SubroutineBody, "statement or '}'")
	}
	p.emit()

	p.close()
}

// VarDec = "var" Type identifier { "," identifier } ";" .
func (p *parser) parseVarDec() {
	p.tracer.begin(tree.VarDec, p.current())
	defer p.tracer.end(tree.VarDec)

	p.open(tree.VarDec)

	p.expectKeyword(tree.VarDec, token.Var)
	p.expectType(tree.VarDec)
	p.parseNameList(tree.VarDec)
	p.expectSymbol(tree.VarDec, token.Semicolon)

	p.close()
}

// parseNameList parses identifier { "," identifier } as part of production.
func (p *parser) parseNameList(production string) {
	p.expectIdentifier(production)

	for p.current().IsSymbol(token.Comma) {
		p.emit()
		p.expectIdentifier(production)
	}
}

// Statements = { Statement } .
// Statement  = LetStatement | IfStatement | WhileStatement | DoStatement | ReturnStatement .
//
// The sequence ends with the first token which does not start a statement,
// the enclosing production decides whether that token is valid.
func (p *parser) parseStatements() {
	p.tracer.begin(tree.Statements, p.current())
	defer p.tracer.end(tree.Statements)

	p.open(tree.Statements)

	for p.parseStatement() {
	}

	p.close()
}

// parseStatement parses a single statement and reports whether
// the current token started one.
func (p *parser) parseStatement() bool {
	if !p.current().IsKeyword(token.StatementKeywords...) {
		return false
	}

	switch p.current().Literal {
	case token.Let:
		p.parseLetStatement()
	case token.If:
		p.parseIfStatement()
	case token.While:
		p.parseWhileStatement()
	case token.Do:
		p.parseDoStatement()
	case token.Return:
		p.parseReturnStatement()
	}

	return true
}

// LetStatement = "let" identifier [ "[" Expression "]" ] "=" Expression ";" .
func (p *parser) parseLetStatement() {
	p.tracer.begin(tree.LetStatement, p.current())
	defer p.tracer.end(tree.LetStatement)

	p.open(tree.LetStatement)

	p.expectKeyword(tree.LetStatement, token.Let)
	p.expectIdentifier(tree.LetStatement)

	if p.current().IsSymbol(token.LBracket) {
		p.emit()
		p.parseExpression()
		p.expectSymbol(tree.LetStatement, token.RBracket)
	}

	p.expectSymbol(tree.LetStatement, token.Equal)
	p.parseExpression()
	p.expectSymbol(tree.LetStatement, token.Semicolon)

	p.close()
}

// IfStatement = "if" "(" Expression ")" "{" Statements "}" [ "else" "{" Statements "}" ] .
func (p *parser) parseIfStatement() {
	p.tracer.begin(tree.IfStatement, p.current())
	defer p.tracer.end(tree.IfStatement)

	p.open(tree.IfStatement)

	p.expectKeyword(tree.IfStatement, token.If)
	p.parseCondition(tree.IfStatement)
	p.parseBlock(tree.IfStatement)

	if p.current().IsKeyword(token.Else) {
		p.emit()
		p.parseBlock(tree.IfStatement)
	}

	p.close()
}

// WhileStatement = "while" "(" Expression ")" "{" Statements "}" .
func (p *parser) parseWhileStatement() {
	p.tracer.begin(tree.WhileStatement, p.current())
	defer p.tracer.end(tree.WhileStatement)

	p.open(tree.WhileStatement)

	p.expectKeyword(tree.WhileStatement, token.While)
	p.parseCondition(tree.WhileStatement)
	p.parseBlock(tree.WhileStatement)

	p.close()
}

// parseCondition parses "(" Expression ")" as part of production.
func (p *parser) parseCondition(production string) {
	p.expectSymbol(production, token.LParen)
	p.parseExpression()
	p.expectSymbol(production, token.RParen)
}

// parseBlock parses "{" Statements "}" as part of production.
func (p *parser) parseBlock(production string) {
	p.expectSymbol(production, token.LBrace)
	p.parseStatements()

	if !p.current().IsSymbol(token.RBrace) {
		p.syntaxError(production, "statement or '}'")
	}
	p.emit()
}

// DoStatement = "do" SubroutineCall ";" .
func (p *parser) parseDoStatement() {
	p.tracer.begin(tree.DoStatement, p.current())
	defer p.tracer.end(tree.DoStatement)

	p.open(tree.DoStatement)

	p.expectKeyword(tree.DoStatement, token.Do)
	p.parseSubroutineCall()
	p.expectSymbol(tree.DoStatement, token.Semicolon)

	p.close()
}

// ReturnStatement = "return" [ Expression ] ";" .
func (p *parser) parseReturnStatement() {
	p.tracer.begin(tree.ReturnStatement, p.current())
	defer p.tracer.end(tree.ReturnStatement)

	p.open(tree.ReturnStatement)

	p.expectKeyword(tree.ReturnStatement, token.Return)

	if !p.current().IsSymbol(token.Semicolon) {
		p.parseExpression()
	}

	p.expectSymbol(tree.ReturnStatement, token.Semicolon)

	p.close()
}

// -- token helpers

func (p *parser) current() token.Token {
	return p.cursor.Current()
}

func (p *parser) currentIs(kind token.Kind) bool {
	return p.cursor.Current().Kind == kind
}

func (p *parser) peek() token.Token {
	return p.cursor.Peek()
}

// emit reports the current token as leaf and consumes it.
func (p *parser) emit() {
	t := p.current()

	p.assert(t.Kind != token.EOF && t.Kind != token.Illegal, fmt.Sprintf("cannot emit %s", t.Describe()))

	if err := p.out.Leaf(t.Kind, t.Literal); err != nil {
		panic(emitError{err})
	}
	p.cursor.Advance()
}

func (p *parser) expectKeyword(production string, keywords ...string) {
	if !p.current().IsKeyword(keywords...) {
		p.syntaxError(production, quoteAll(keywords))
	}
	p.emit()
}

func (p *parser) expectSymbol(production, symbol string) {
	if !p.current().IsSymbol(symbol) {
		p.syntaxError(production, quoteAll([]string{symbol}))
	}
	p.emit()
}

func (p *parser) expectIdentifier(production string) {
	if !p.currentIs(token.Identifier) {
		p.syntaxError(production, "identifier")
	}
	p.emit()
}

// expectType accepts a primitive type, a class name or one of the additional keywords.
// Type = "int" | "char" | "boolean" | identifier .
func (p *parser) expectType(production string, additional ...string) {
	t := p.current()
	if t.Kind == token.Identifier || t.IsKeyword(token.PrimitiveTypes...) || t.IsKeyword(additional...) {
		p.emit()
		return
	}

	expected := productionType
	if len(additional) > 0 {
		expected = fmt.Sprintf("%s or %s", productionType, quoteAll(additional))
	}
	p.syntaxError(production, expected)
}

// -- node helpers

func (p *parser) open(name string) {
	if err := p.out.Open(name); err != nil {
		panic(emitError{err})
	}
}

func (p *parser) close() {
	if err := p.out.Close(); err != nil {
		panic(emitError{err})
	}
}

// -- errors

// syntaxError aborts the parse, the current token is reported as the offending one.
func (p *parser) syntaxError(production, expected string) {
	panic(newSyntaxError(production, expected, p.current()))
}

func (p *parser) assert(condition bool, msg string) {
	if !p.debug {
		return
	}
	if condition {
		return
	}
	panic(msg)
}

func quoteAll(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = "'" + l + "'"
	}
	return strings.Join(quoted, " or ")
}
