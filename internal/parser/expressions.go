package parser

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
)

// parseExpressionStatement parses a bare expression used as a statement
// (e.g. a top-level function call).
func (p *Parser) parseExpressionStatement() (ast.Stmt, *ParseError) {
	return p.parseExpression()
}

// parseExpression is the precedence-climbing entry point, starting at the
// lowest precedence level (logical-or), per spec.md §4.2's table.
func (p *Parser) parseExpression() (ast.Stmt, *ParseError) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Stmt, *ParseError) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.cursor.Check(lexer.OR) {
		p.cursor.Advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewSpan(left.Span(), right.Span()), left, right, ast.Or)
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Stmt, *ParseError) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cursor.Check(lexer.AND) {
		p.cursor.Advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewSpan(left.Span(), right.Span()), left, right, ast.And)
	}
	return left, nil
}

var comparisonOps = map[lexer.TokenType]ast.BinaryOperator{
	lexer.EQ: ast.Equal, lexer.NEQ: ast.NotEqual,
	lexer.GT: ast.GreaterThan, lexer.GE: ast.GreaterThanEqual,
	lexer.LT: ast.LessThan, lexer.LE: ast.LessThanEqual,
}

func (p *Parser) parseComparison() (ast.Stmt, *ParseError) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.cursor.Current().Type]
		if !ok {
			break
		}
		p.cursor.Advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewSpan(left.Span(), right.Span()), left, right, op)
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Stmt, *ParseError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cursor.Check(lexer.PLUS) || p.cursor.Check(lexer.MINUS) {
		op := ast.Add
		if p.cursor.Current().Type == lexer.MINUS {
			op = ast.Subtract
		}
		p.cursor.Advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewSpan(left.Span(), right.Span()), left, right, op)
	}
	return left, nil
}

var multiplicativeOps = map[lexer.TokenType]ast.BinaryOperator{
	lexer.STAR: ast.Multiply, lexer.SLASH: ast.Divide, lexer.PERCENT: ast.Modulus,
}

func (p *Parser) parseMultiplicative() (ast.Stmt, *ParseError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := multiplicativeOps[p.cursor.Current().Type]
		if !ok {
			break
		}
		p.cursor.Advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.NewSpan(left.Span(), right.Span()), left, right, op)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Stmt, *ParseError) {
	tok := p.cursor.Current()
	switch tok.Type {
	case lexer.MINUS:
		p.cursor.Advance()
		value, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.NewSpan(tok.Span, value.Span()), value, ast.Negative), nil
	case lexer.NOT:
		p.cursor.Advance()
		value, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.NewSpan(tok.Span, value.Span()), value, ast.Not), nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Stmt, *ParseError) {
	tok := p.cursor.Current()
	switch tok.Type {
	case lexer.LPAREN:
		p.cursor.Advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "to close parenthesized expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.INT:
		p.cursor.Advance()
		return ast.NewInteger(tok.Span, tok.IntValue), nil
	case lexer.FLOAT:
		p.cursor.Advance()
		return ast.NewFloat(tok.Span, tok.FloatValue), nil
	case lexer.BOOLEAN:
		p.cursor.Advance()
		return ast.NewBoolean(tok.Span, tok.BoolValue), nil
	case lexer.STRING:
		p.cursor.Advance()
		return ast.NewString(tok.Span, tok.Literal), nil
	case lexer.IDENT:
		return p.parseIdentifierOrCall()
	default:
		return nil, &ParseError{Message: "expected expression, got " + tok.Type.String(), Pos: tok.Span}
	}
}

func (p *Parser) parseIdentifierOrCall() (ast.Stmt, *ParseError) {
	nameTok := p.cursor.Advance()
	if !p.cursor.Check(lexer.LPAREN) {
		return ast.NewIdentifier(nameTok.Span, nameTok.Literal), nil
	}

	p.cursor.Advance() // consume (
	var args []ast.Stmt
	for !p.cursor.Check(lexer.RPAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.cursor.Match(lexer.COMMA) {
			break
		}
	}
	closeTok, err := p.expect(lexer.RPAREN, "to close call arguments")
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(spanFrom(nameTok, closeTok), nameTok.Literal, args), nil
}
