package parser

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// parseDeclaration parses `var`/`const NAME (: TYPE)? (= EXPR)?`. At least
// one of TYPE or EXPR must be present; that requirement is enforced by the
// analyzer (spec.md §4.4 NoTypeOrValueProvided), not the parser, since the
// parser's job is purely syntactic.
func (p *Parser) parseDeclaration() (ast.Stmt, *ParseError) {
	startTok := p.cursor.Advance() // `var` or `const`
	mutable := startTok.Type == lexer.VAR

	nameTok, err := p.expect(lexer.IDENT, "after 'var'/'const'")
	if err != nil {
		return nil, err
	}

	var dataType *types.DataType
	if p.cursor.Match(lexer.COLON) {
		typeTok, err := p.expect(lexer.IDENT, "as a type name")
		if err != nil {
			return nil, err
		}
		dt := types.ParseType(typeTok.Literal)
		dataType = &dt
	}

	var value ast.Stmt
	endSpan := nameTok.Span
	if p.cursor.Match(lexer.ASSIGN) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
		endSpan = v.Span()
	}

	return ast.NewDeclaration(ast.NewSpan(startTok.Span, endSpan), mutable, nameTok.Literal, dataType, value), nil
}
