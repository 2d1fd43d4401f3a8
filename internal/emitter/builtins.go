package emitter

import (
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sourcec-lang/sourcec/internal/ast"
)

// printfName is the external C library function both print/println lower
// to, registered once at construction (spec.md §4.5 "Built-ins": "register
// the external signature printf(ptr, …) -> i32 (variadic)").
const printfName = "printf"

func (e *Emitter) declarePrintf() {
	fn := e.Module.NewFunc(printfName, types.I32, ir.NewParam("fmt", types.NewPointer(types.I8)))
	fn.Sig.Variadic = true
	e.scope.setFunction(printfName, fn)
}

// lowerPrintCall implements print/println (function_call.rs's
// compile_println, generalized to cover both and to every argument type
// instead of only Int32): each argument is formatted with a type-specific
// printf conversion, space-separated, with println adding a trailing
// newline and print omitting it.
func (e *Emitter) lowerPrintCall(call *ast.FunctionCall, newline bool) value.Value {
	argValues := e.lowerCallArgs(call.Args)

	var format strings.Builder
	for i, v := range argValues {
		format.WriteString(formatSpecifier(v))
		if i != len(argValues)-1 {
			format.WriteByte(' ')
		}
	}
	if newline {
		format.WriteByte('\n')
	}

	fmtPtr := e.internString(format.String())
	printf, _ := e.scope.getFunction(printfName)

	args := make([]value.Value, 0, len(argValues)+1)
	args = append(args, fmtPtr)
	args = append(args, argValues...)
	e.block.NewCall(printf, args...)
	return nil
}

// formatSpecifier picks printf's conversion for dt (spec.md §4.5). Boolean
// values never reach here as i1: every comparison, Not, and Boolean
// literal is zero-extended to i32 in the emitter before it can become an
// operand of anything else (see expressions.go), so the i32 case below
// also covers Boolean.
func formatSpecifier(dt value.Value) string {
	switch dt.Type() {
	case types.I32:
		return "%d"
	case types.Double:
		return "%f"
	default:
		return "%s"
	}
}

// lowerCallArgs lowers each call argument, widening Float32 (f32) to the
// f64 printf's C variadic calling convention requires for floating-point
// arguments. Boolean arguments arrive already widened to i32.
func (e *Emitter) lowerCallArgs(args []ast.Stmt) []value.Value {
	values := make([]value.Value, len(args))
	for i, arg := range args {
		v := e.lowerExpr(arg)
		if v.Type() == types.Float {
			v = e.block.NewFPExt(v, types.Double)
		}
		values[i] = v
	}
	return values
}
