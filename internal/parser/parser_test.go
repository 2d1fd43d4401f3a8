package parser

import (
	"testing"

	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	require.Nil(t, lexErr)
	prog, parseErr := New(tokens).ParseProgram()
	require.Nil(t, parseErr)
	return prog
}

func TestParseDeclarationWithValueOnly(t *testing.T) {
	prog := mustParse(t, `var x = 1`)
	require.Len(t, prog.Body, 1)
	decl, ok := prog.Body[0].(*ast.Declaration)
	require.True(t, ok)
	assert.True(t, decl.Mutable)
	assert.Equal(t, "x", decl.Name)
	assert.Nil(t, decl.DataType)
}

func TestParseConstIsImmutable(t *testing.T) {
	prog := mustParse(t, `const x: Int32 = 1`)
	decl := prog.Body[0].(*ast.Declaration)
	assert.False(t, decl.Mutable)
	require.NotNil(t, decl.DataType)
}

func TestParseIfElseIfChain(t *testing.T) {
	prog := mustParse(t, `
if a == 1 {
  println(1)
} else if a == 2 {
  println(2)
} else {
  println(3)
}
`)
	stmt := prog.Body[0].(*ast.IfStatement)
	_, ok := stmt.ElseBlock.(*ast.IfStatement)
	assert.True(t, ok, "else-if should nest as an IfStatement")
}

func TestParseFunctionDeclarationWithAnnotations(t *testing.T) {
	prog := mustParse(t, `
@external
func add(a: Int32, b: Int32) -> Int32 {
  return a + b
}
`)
	require.Len(t, prog.Functions, 1)
	fn := prog.Functions[0]
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Annotations, 1)
	assert.Equal(t, "external", fn.Annotations[0].Name)
	require.Len(t, fn.Params, 2)
}

func TestParseFunctionCallAndPrecedence(t *testing.T) {
	prog := mustParse(t, `println(1 + 3 * 4)`)
	call := prog.Body[0].(*ast.FunctionCall)
	assert.Equal(t, "println", call.Name)
	bin := call.Args[0].(*ast.BinaryExpression)
	assert.Equal(t, ast.Add, bin.Operator)
	rightMul := bin.Right.(*ast.BinaryExpression)
	assert.Equal(t, ast.Multiply, rightMul.Operator)
}

func TestParseImportForms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"import foo", "*ast.ImportModule"},
		{"import foo as bar", "*ast.ImportModule"},
		{"import foo, bar", "*ast.ImportModules"},
		{"import foo, bar from mymodule", "*ast.ImportCollection"},
		{"import * from mymodule", "*ast.ImportEverything"},
		{"import * as everything from mymodule", "*ast.ImportEverything"},
	}
	for _, tt := range tests {
		prog := mustParse(t, tt.src)
		require.Len(t, prog.Imports, 1)
		assert.Contains(t, tt.want, typeNameOf(prog.Imports[0]))
	}
}

func typeNameOf(s ast.Stmt) string {
	switch s.(type) {
	case *ast.ImportModule:
		return "*ast.ImportModule"
	case *ast.ImportModules:
		return "*ast.ImportModules"
	case *ast.ImportCollection:
		return "*ast.ImportCollection"
	case *ast.ImportEverything:
		return "*ast.ImportEverything"
	default:
		return "unknown"
	}
}

func TestParserTotalityOnSyntaxError(t *testing.T) {
	tokens, lexErr := lexer.New(`var = 1`).Tokenize()
	require.Nil(t, lexErr)
	prog, parseErr := New(tokens).ParseProgram()
	assert.Nil(t, prog)
	require.NotNil(t, parseErr)
}

func TestBlockNeverContainsImports(t *testing.T) {
	prog := mustParse(t, `
func f() {
  var x = 1
}
`)
	fn := prog.Functions[0]
	for _, s := range fn.Block.Body {
		switch s.(type) {
		case *ast.ImportModule, *ast.ImportModules, *ast.ImportCollection, *ast.ImportEverything:
			t.Fatalf("import leaked into a Block")
		}
	}
}
