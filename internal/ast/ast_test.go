package ast

import (
	"testing"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDeclarationString(t *testing.T) {
	dt := types.Int32
	decl := NewDeclaration(lexer.Span{}, true, "x", &dt, NewInteger(lexer.Span{}, 1))
	assert.Equal(t, "var x : Int32 = 1", decl.String())
}

func TestIfStatementElseIfChain(t *testing.T) {
	inner := NewIfStatement(lexer.Span{}, NewBoolean(lexer.Span{}, false), NewBlock(lexer.Span{}, nil), nil)
	outer := NewIfStatement(lexer.Span{}, NewBoolean(lexer.Span{}, true), NewBlock(lexer.Span{}, nil), inner)
	assert.Contains(t, outer.String(), "else if")
}

func TestBinaryExpressionString(t *testing.T) {
	expr := NewBinaryExpression(lexer.Span{}, NewInteger(lexer.Span{}, 1), NewInteger(lexer.Span{}, 2), Add)
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestProgramBucketsAreDistinctFromBody(t *testing.T) {
	fn := NewFunctionDeclaration(lexer.Span{}, nil, "f", nil, types.Void, NewBlock(lexer.Span{}, nil))
	prog := &Program{
		Functions: []*FunctionDeclaration{fn},
		Body:      []Stmt{NewInteger(lexer.Span{}, 1)},
	}
	assert.Len(t, prog.Functions, 1)
	assert.Len(t, prog.Body, 1)
}
