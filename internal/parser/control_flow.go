package parser

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
)

// parseBlock parses a `{ … }` block (primary brace grammar) or an
// INDENT … DEDENT block (legacy indent grammar, spec.md §4.1). Newlines at
// block boundaries are optional and ignored in both forms.
func (p *Parser) parseBlock() (*ast.Block, *ParseError) {
	switch p.cursor.Current().Type {
	case lexer.LBRACE:
		return p.parseBraceBlock()
	case lexer.INDENT:
		return p.parseIndentBlock()
	default:
		return nil, &ParseError{Message: "expected '{' or an indented block", Pos: p.cursor.Current().Span}
	}
}

func (p *Parser) parseBraceBlock() (*ast.Block, *ParseError) {
	openTok, err := p.expect(lexer.LBRACE, "to start a block")
	if err != nil {
		return nil, err
	}
	p.skipNewlines()

	var body []ast.Stmt
	for !p.cursor.Check(lexer.RBRACE) {
		if p.cursor.AtEOF() {
			return nil, &ParseError{Message: "unterminated block, expected '}'", Pos: p.cursor.Current().Span}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		if !p.consumeStatementTerminator() {
			return nil, &ParseError{Message: "expected newline or ';' after statement", Pos: p.cursor.Current().Span}
		}
		p.skipNewlines()
	}
	closeTok, err := p.expect(lexer.RBRACE, "to close block")
	if err != nil {
		return nil, err
	}
	return ast.NewBlock(spanFrom(openTok, closeTok), body), nil
}

func (p *Parser) parseIndentBlock() (*ast.Block, *ParseError) {
	openTok, err := p.expect(lexer.INDENT, "to start an indented block")
	if err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for !p.cursor.Check(lexer.DEDENT) {
		if p.cursor.AtEOF() {
			return nil, &ParseError{Message: "unterminated block, expected dedent", Pos: p.cursor.Current().Span}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		if !p.consumeStatementTerminator() {
			return nil, &ParseError{Message: "expected newline after statement", Pos: p.cursor.Current().Span}
		}
		p.skipNewlines()
	}
	closeTok, err := p.expect(lexer.DEDENT, "to close indented block")
	if err != nil {
		return nil, err
	}
	return ast.NewBlock(spanFrom(openTok, closeTok), body), nil
}

// parseIfStatement parses `if EXPR BLOCK (else (if … | BLOCK))?`. An
// else-if chain is modeled as an IfStatement whose ElseBlock is another
// IfStatement (spec.md §3, §4.2).
func (p *Parser) parseIfStatement() (ast.Stmt, *ParseError) {
	ifTok := p.cursor.Advance() // `if`

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	endSpan := block.Span()
	var elseBlock ast.Stmt
	save := p.cursor.Save()
	p.skipNewlines()
	if p.cursor.Check(lexer.ELSE) {
		p.cursor.Advance()
		if p.cursor.Check(lexer.IF) {
			nested, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			elseBlock = nested
		} else {
			elseBody, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			elseBlock = elseBody
		}
		endSpan = elseBlock.Span()
	} else {
		p.cursor.Restore(save)
	}

	return ast.NewIfStatement(ast.NewSpan(ifTok.Span, endSpan), cond, block, elseBlock), nil
}

// parseReturnStatement parses `return EXPR?`.
func (p *Parser) parseReturnStatement() (ast.Stmt, *ParseError) {
	retTok := p.cursor.Advance() // `return`

	if p.cursor.Check(lexer.NEWLINE) || p.cursor.Check(lexer.RBRACE) || p.cursor.Check(lexer.DEDENT) || p.cursor.AtEOF() {
		return ast.NewReturnStatement(retTok.Span, nil), nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(ast.NewSpan(retTok.Span, value.Span()), value), nil
}
