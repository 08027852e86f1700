package parser

import (
	"github.com/c0depwn/jackfront/token"
	"github.com/c0depwn/jackfront/tree"
)

// Expression = Term { op Term } .
// op         = "+" | "-" | "*" | "/" | "&" | "|" | "<" | ">" | "=" .
//
// Operators have no precedence, a chain of terms is recorded left to right
// as siblings of a single expression node.
func (p *parser) parseExpression() {
	p.tracer.begin(tree.Expression, p.current())
	defer p.tracer.end(tree.Expression)

	p.open(tree.Expression)

	p.parseTerm()

	for p.current().IsOperator() {
		p.emit()
		p.parseTerm()
	}

	p.close()
}

// Term = integerConstant | stringConstant | KeywordConstant
//
//	| identifier [ "[" Expression "]" ]
//	| SubroutineCall
//	| "(" Expression ")"
//	| ( "-" | "~" ) Term .
//
// KeywordConstant = "true" | "false" | "null" | "this" .
func (p *parser) parseTerm() {
	p.tracer.begin(tree.Term, p.current())
	defer p.tracer.end(tree.Term)

	p.open(tree.Term)

	t := p.current()
	switch {
	case t.Kind == token.IntegerConstant, t.Kind == token.StringConstant:
		p.emit()
	case t.IsKeyword(token.KeywordConstants...):
		p.emit()
	case t.Kind == token.Identifier:
		p.parseIdentifierTerm()
	case t.IsSymbol(token.LParen):
		p.emit()
		p.parseExpression()
		p.expectSymbol(tree.Term, token.RParen)
	case t.IsSymbol(token.UnaryOperators...):
		p.emit()
		p.parseTerm()
	default:
		p.syntaxError(tree.Term, "term")
	}

	p.close()
}

// parseIdentifierTerm decides using the token after the identifier
// whether it is an indexed access, a subroutine call or a plain variable.
func (p *parser) parseIdentifierTerm() {
	// precondition
	p.assert(p.currentIs(token.Identifier), "parseIdentifierTerm must be called with an identifier as the current token")

	switch next := p.peek(); {
	case next.IsSymbol(token.LBracket):
		p.emit()
		p.emit()
		p.parseExpression()
		p.expectSymbol(tree.Term, token.RBracket)
	case next.IsSymbol(token.LParen, token.Dot):
		p.parseSubroutineCall()
	default:
		p.emit()
	}
}

// SubroutineCall = identifier [ "." identifier ] "(" ExpressionList ")" .
//
// A subroutine call does not produce a node of its own,
// its tokens belong to the enclosing term or do statement.
func (p *parser) parseSubroutineCall() {
	p.tracer.begin(productionSubroutineCall, p.current())
	defer p.tracer.end(productionSubroutineCall)

	p.expectIdentifier(productionSubroutineCall)

	if p.current().IsSymbol(token.Dot) {
		p.emit()
		p.expectIdentifier(productionSubroutineCall)
	}

	p.expectSymbol(productionSubroutineCall, token.LParen)
	p.parseExpressionList()
	p.expectSymbol(productionSubroutineCall, token.RParen)
}

// ExpressionList = [ Expression { "," Expression } ] .
func (p *parser) parseExpressionList() {
	p.tracer.begin(tree.ExpressionList, p.current())
	defer p.tracer.end(tree.ExpressionList)

	p.open(tree.ExpressionList)

	// the list is empty if it is immediately closed
	if !p.current().IsSymbol(token.RParen) {
		p.parseExpression()

		for p.current().IsSymbol(token.Comma) {
			p.emit()
			p.parseExpression()
		}
	}

	p.close()
}
