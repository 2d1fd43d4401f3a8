package emitter

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/parser"
	"github.com/sourcec-lang/sourcec/internal/semantic"
)

func emitIR(t *testing.T, src string) string {
	t.Helper()
	tokens, lexErr := lexer.New(src).Tokenize()
	require.Nil(t, lexErr)
	prog, parseErr := parser.New(tokens).ParseProgram()
	require.Nil(t, parseErr)

	a := semantic.New()
	a.Analyze(prog)
	require.Empty(t, a.Errors)

	mod := New().Emit(prog)
	return mod.String()
}

// The seven end-to-end scenarios of spec.md §8, snapshotted as textual IR
// rather than executed (this module never shells out to a toolchain).

func TestEmitHelloWorld(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `println("Hello, World!")`))
}

func TestEmitArithmeticPrecedence(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `println(1 + 3 * 4)`))
}

func TestEmitFunctionCall(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `
func add(a: Int32, b: Int32) -> Int32 { return a + b }
println(add(2, 3))
`))
}

func TestEmitMultiArgPrintln(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `println(1, 2, 3)`))
}

func TestEmitIfElse(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `
if true { println("if") } else { println("else") }
println("finally")
`))
}

func TestEmitRecursiveFibonacci(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `
func fib(n: Int32) -> Int32 {
  if n <= 1 { return n }
  return fib(n - 1) + fib(n - 2)
}
println(fib(42))
`))
}

func TestEmitRecursiveFactorial(t *testing.T) {
	snaps.MatchSnapshot(t, emitIR(t, `
func factorial(n: Int32) -> Int32 {
  if n == 0 { return 1 }
  return n * factorial(n - 1)
}
println(factorial(12))
`))
}

// Determinism: lowering the same AST twice must produce textually
// identical IR up to stable name generation (spec.md §8 "Emitter
// determinism").
func TestEmitIsDeterministic(t *testing.T) {
	src := `
func fib(n: Int32) -> Int32 {
  if n <= 1 { return n }
  return fib(n - 1) + fib(n - 2)
}
println(fib(10))
`
	require.Equal(t, emitIR(t, src), emitIR(t, src))
}

func TestEmitDedupsIdenticalStringLiterals(t *testing.T) {
	e := New()
	a := e.internString("same")
	b := e.internString("same")
	require.Equal(t, a.String(), b.String())
	require.Len(t, e.strings, 1)
}
