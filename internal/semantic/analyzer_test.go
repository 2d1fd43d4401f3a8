package semantic

import (
	"testing"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) *Analyzer {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	require.Nil(t, lexErr)
	prog, parseErr := parser.New(tokens).ParseProgram()
	require.Nil(t, parseErr)
	a := New()
	a.Analyze(prog)
	return a
}

func TestUnusedVariableWarning(t *testing.T) {
	a := analyze(t, `var x = 1`)
	assert.Empty(t, a.Errors)
	require.Len(t, a.Warnings, 1)
	assert.Equal(t, UnusedVariable, a.Warnings[0].Kind)
	assert.Equal(t, "x", a.Warnings[0].Name)
}

func TestVariableNotFound(t *testing.T) {
	a := analyze(t, `y + 1`)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, VariableNotFound, a.Errors[0].Kind)
	assert.Equal(t, "y", a.Errors[0].Name)
}

func TestFunctionCallArgumentCountMismatch(t *testing.T) {
	a := analyze(t, `
func f(a: Int32) -> Int32 { return a }
f(1, 2)
`)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, FunctionCallArgumentCountMismatch, a.Errors[0].Kind)
	assert.Equal(t, "f", a.Errors[0].Name)
	assert.Equal(t, 1, a.Errors[0].Want)
	assert.Equal(t, 2, a.Errors[0].Count)
}

func TestDeclarationTypeMismatch(t *testing.T) {
	a := analyze(t, `var z: Boolean = 1`)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, TypeMismatch, a.Errors[0].Kind)
}

func TestFunctionNotFound(t *testing.T) {
	a := analyze(t, `missing(1)`)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, FunctionNotFound, a.Errors[0].Kind)
	assert.Equal(t, "missing", a.Errors[0].Name)
}

func TestNoTypeOrValueProvidedIsRejectedByAnalyzerNotParser(t *testing.T) {
	tokens, lexErr := lexer.New(`var x`).Tokenize()
	require.Nil(t, lexErr)
	prog, parseErr := parser.New(tokens).ParseProgram()
	require.Nil(t, parseErr, "parser accepts a bare 'var x'; the analyzer rejects it")

	a := New()
	a.Analyze(prog)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, NoTypeOrValueProvided, a.Errors[0].Kind)
}

func TestScopeDisciplineShadowing(t *testing.T) {
	a := analyze(t, `
var x = 1
if x == 1 {
  var x = 2
  println(x)
}
println(x)
`)
	assert.Empty(t, a.Errors)
	assert.Empty(t, a.Warnings, "both x bindings are used, one inside the if-block, one outside")
}

func TestAccumulatesIndependentErrors(t *testing.T) {
	a := analyze(t, `
println(a)
println(b)
println(c)
`)
	require.Len(t, a.Errors, 3)
	for _, e := range a.Errors {
		assert.Equal(t, VariableNotFound, e.Kind)
	}
}

func TestBuiltinCallsAcceptAnyArgs(t *testing.T) {
	a := analyze(t, `println(1, "two", true)`)
	assert.Empty(t, a.Errors)
}

func TestRecursiveFunctionCallsResolve(t *testing.T) {
	a := analyze(t, `
func fib(n: Int32) -> Int32 {
  if n <= 1 { return n }
  return fib(n - 1) + fib(n - 2)
}
println(fib(10))
`)
	assert.Empty(t, a.Errors)
}
