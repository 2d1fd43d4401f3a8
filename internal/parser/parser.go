package parser

import (
	"fmt"

	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
)

// ParseError is a static message describing the first syntactic failure
// (spec.md §4.2, §7). The parser stops at the first one rather than
// accumulating, unlike the analyzer.
type ParseError struct {
	Message string
	Pos     lexer.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Pos.Start, e.Message)
}

// Parser is a recursive-descent parser over a pre-scanned token stream.
type Parser struct {
	cursor *Cursor
}

// New creates a Parser over tokens (the Lexer's full, already-validated
// output).
func New(tokens []lexer.Token) *Parser {
	return &Parser{cursor: NewCursor(tokens)}
}

// ParseProgram parses a full Program, classifying every top-level
// statement into imports, functions, or body (spec.md §3 "Program").
// It returns the first error encountered; on error the returned Program
// is nil, matching the "parser totality" invariant of spec.md §8: never
// partial output.
func (p *Parser) ParseProgram() (*ast.Program, *ParseError) {
	prog := &ast.Program{}

	for !p.cursor.AtEOF() {
		p.skipNewlines()
		if p.cursor.AtEOF() {
			break
		}

		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			continue
		}

		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			prog.Functions = append(prog.Functions, s)
		case *ast.ImportModule, *ast.ImportModules, *ast.ImportEverything, *ast.ImportCollection:
			prog.Imports = append(prog.Imports, s)
		default:
			prog.Body = append(prog.Body, s)
		}

		if !p.consumeStatementTerminator() {
			return nil, &ParseError{Message: "expected newline or ';' after statement", Pos: p.cursor.Current().Span}
		}
	}

	return prog, nil
}

// parseTopLevelStatement routes import and function declarations, which
// are only legal here, and hands every other form to parseStatement.
func (p *Parser) parseTopLevelStatement() (ast.Stmt, *ParseError) {
	switch p.cursor.Current().Type {
	case lexer.AT, lexer.FUNC:
		return p.parseFunctionDeclaration()
	case lexer.IMPORT:
		return p.parseImport()
	default:
		return p.parseStatement()
	}
}

// parseStatement classifies a statement by its leading token and routes
// to a specialized parser (spec.md §4.2).
func (p *Parser) parseStatement() (ast.Stmt, *ParseError) {
	switch p.cursor.Current().Type {
	case lexer.VAR, lexer.CONST:
		return p.parseDeclaration()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

// consumeStatementTerminator consumes one or more NEWLINEs, or succeeds
// silently at EOF or before a closing brace (braces make trailing
// newlines optional at block boundaries, spec.md §4.2).
func (p *Parser) consumeStatementTerminator() bool {
	if p.cursor.AtEOF() || p.cursor.Check(lexer.RBRACE) {
		return true
	}
	if !p.cursor.Check(lexer.NEWLINE) {
		return false
	}
	for p.cursor.Check(lexer.NEWLINE) {
		p.cursor.Advance()
	}
	return true
}

func (p *Parser) skipNewlines() {
	for p.cursor.Check(lexer.NEWLINE) {
		p.cursor.Advance()
	}
}

func (p *Parser) expect(t lexer.TokenType, context string) (lexer.Token, *ParseError) {
	if !p.cursor.Check(t) {
		return lexer.Token{}, &ParseError{
			Message: fmt.Sprintf("expected %s %s, got %s", t, context, p.cursor.Current().Type),
			Pos:     p.cursor.Current().Span,
		}
	}
	return p.cursor.Advance(), nil
}

func spanFrom(start, end lexer.Token) lexer.Span {
	return lexer.Span{Start: start.Span.Start, End: end.Span.End}
}
