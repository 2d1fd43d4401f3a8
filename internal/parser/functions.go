package parser

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// parseFunctionDeclaration parses optional leading annotations followed by
// `func NAME ( PARAM,* ) ( -> TYPE )? BLOCK` (spec.md §4.2).
func (p *Parser) parseFunctionDeclaration() (ast.Stmt, *ParseError) {
	var annotations []ast.Annotation
	var startSpan lexer.Span
	haveStart := false

	for p.cursor.Check(lexer.AT) {
		annTok := p.cursor.Advance()
		if !haveStart {
			startSpan = annTok.Span
			haveStart = true
		}
		nameTok, err := p.expect(lexer.IDENT, "as an annotation name")
		if err != nil {
			return nil, err
		}
		ann := ast.Annotation{Name: nameTok.Literal}
		if p.cursor.Match(lexer.LPAREN) {
			for !p.cursor.Check(lexer.RPAREN) {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				ann.Args = append(ann.Args, arg)
				if !p.cursor.Match(lexer.COMMA) {
					break
				}
			}
			if _, err := p.expect(lexer.RPAREN, "to close annotation arguments"); err != nil {
				return nil, err
			}
		}
		annotations = append(annotations, ann)
		p.skipNewlines()
	}

	funcTok, err := p.expect(lexer.FUNC, "to start a function declaration")
	if err != nil {
		return nil, err
	}
	if !haveStart {
		startSpan = funcTok.Span
	}

	nameTok, err := p.expect(lexer.IDENT, "as the function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.LPAREN, "to start the parameter list"); err != nil {
		return nil, err
	}
	var params []ast.FunctionParam
	for !p.cursor.Check(lexer.RPAREN) {
		param, err := p.parseFunctionParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.cursor.Match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN, "to close the parameter list"); err != nil {
		return nil, err
	}

	returnType := types.Void
	if p.cursor.Match(lexer.ARROW) {
		typeTok, err := p.expect(lexer.IDENT, "as a return type")
		if err != nil {
			return nil, err
		}
		returnType = types.ParseType(typeTok.Literal)
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewFunctionDeclaration(ast.NewSpan(startSpan, block.Span()), annotations, nameTok.Literal, params, returnType, block), nil
}

// parseFunctionParam parses `NAME : TYPE ( = EXPR )?`.
func (p *Parser) parseFunctionParam() (ast.FunctionParam, *ParseError) {
	nameTok, err := p.expect(lexer.IDENT, "as a parameter name")
	if err != nil {
		return ast.FunctionParam{}, err
	}
	if _, err := p.expect(lexer.COLON, "after parameter name"); err != nil {
		return ast.FunctionParam{}, err
	}
	typeTok, err := p.expect(lexer.IDENT, "as a parameter type")
	if err != nil {
		return ast.FunctionParam{}, err
	}
	param := ast.FunctionParam{Name: nameTok.Literal, DataType: types.ParseType(typeTok.Literal)}

	if p.cursor.Match(lexer.ASSIGN) {
		def, err := p.parseExpression()
		if err != nil {
			return ast.FunctionParam{}, err
		}
		param.DefaultValue = def
	}
	return param, nil
}
