package parser

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
)

// parseImport parses the four import forms (spec.md §6):
//
//	import NAME (as ALIAS)? (, NAME (as ALIAS)?)*
//	import NAME (,…)* from MODULE
//	import * from MODULE
//	import * as ALIAS from MODULE
func (p *Parser) parseImport() (ast.Stmt, *ParseError) {
	importTok := p.cursor.Advance() // `import`

	if p.cursor.Current().Type == lexer.STAR {
		p.cursor.Advance()
		alias := ""
		if p.cursor.Match(lexer.AS) {
			aliasTok, err := p.expect(lexer.IDENT, "as an import alias")
			if err != nil {
				return nil, err
			}
			alias = aliasTok.Literal
		}
		if _, err := p.expect(lexer.FROM, "before the module name"); err != nil {
			return nil, err
		}
		moduleTok, err := p.expect(lexer.IDENT, "as a module name")
		if err != nil {
			return nil, err
		}
		return ast.NewImportEverything(spanFrom(importTok, moduleTok), moduleTok.Literal, alias), nil
	}

	var items []ast.ImportItem
	for {
		item, err := p.parseImportItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.cursor.Match(lexer.COMMA) {
			break
		}
	}
	lastTok := p.cursor.Peek(-1)

	if p.cursor.Match(lexer.FROM) {
		moduleTok, err := p.expect(lexer.IDENT, "as a module name")
		if err != nil {
			return nil, err
		}
		return ast.NewImportCollection(spanFrom(importTok, moduleTok), items, moduleTok.Literal), nil
	}

	if len(items) == 1 {
		return ast.NewImportModule(spanFrom(importTok, lastTok), items[0]), nil
	}
	return ast.NewImportModules(spanFrom(importTok, lastTok), items), nil
}

func (p *Parser) parseImportItem() (ast.ImportItem, *ParseError) {
	nameTok, err := p.expect(lexer.IDENT, "as an import name")
	if err != nil {
		return ast.ImportItem{}, err
	}
	item := ast.ImportItem{Name: nameTok.Literal}
	if p.cursor.Match(lexer.AS) {
		aliasTok, err := p.expect(lexer.IDENT, "as an import alias")
		if err != nil {
			return ast.ImportItem{}, err
		}
		item.Alias = aliasTok.Literal
	}
	return item, nil
}
