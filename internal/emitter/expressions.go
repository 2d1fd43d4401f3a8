package emitter

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sourcec-lang/sourcec/internal/ast"
)

// lowerExpr lowers an expression-position Stmt to its SSA value, mirroring
// mod.rs's build_stmt dispatch but split per node kind into this file and
// statements.go, Go-package style instead of one large match.
func (e *Emitter) lowerExpr(stmt ast.Stmt) value.Value {
	switch s := stmt.(type) {
	case *ast.Integer:
		return constant.NewInt(types.I32, s.Value)
	case *ast.Float:
		return constant.NewFloat(types.Float, s.Value)
	case *ast.Boolean:
		if s.Value {
			return constant.NewInt(types.I32, 1)
		}
		return constant.NewInt(types.I32, 0)
	case *ast.String:
		return e.internString(s.Value)
	case *ast.Identifier:
		return e.lowerIdentifier(s)
	case *ast.UnaryExpression:
		return e.lowerUnary(s)
	case *ast.BinaryExpression:
		return e.lowerBinary(s)
	case *ast.FunctionCall:
		return e.lowerCall(s)
	default:
		panic("emitter: unsupported expression node")
	}
}

// lowerIdentifier loads the current value of a variable through the
// scope chain (identifier.rs).
func (e *Emitter) lowerIdentifier(id *ast.Identifier) value.Value {
	ptr, ok := e.scope.getVariable(id.Name)
	if !ok {
		panic("emitter: unresolved identifier " + id.Name + " (analyzer should have rejected this)")
	}
	elemType := ptr.Type().(*types.PointerType).ElemType
	return e.block.NewLoad(elemType, ptr)
}

// lowerUnary implements unary_expression.rs, generalized over Int32 and
// Float32 operands for Negative (Not only ever applies to Boolean, per
// the type model). spec.md §9 leaves Not's i1-vs-i32 result ambiguous;
// it is zero-extended to i32 here for consistency with every comparison
// result (see lowerBinary) rather than carved out as a special case.
func (e *Emitter) lowerUnary(u *ast.UnaryExpression) value.Value {
	operand := e.lowerExpr(u.Value)
	switch u.Operator {
	case ast.Not:
		zero := constant.NewInt(types.I32, 0)
		cmp := e.block.NewICmp(enum.IPredEQ, operand, zero)
		return e.block.NewZExt(cmp, types.I32)
	case ast.Negative:
		if operand.Type() == types.Float {
			return e.block.NewFNeg(operand)
		}
		return e.block.NewSub(constant.NewInt(types.I32, 0), operand)
	default:
		panic("emitter: unknown unary operator")
	}
}

var intCmpPredicates = map[ast.BinaryOperator]enum.IPred{
	ast.GreaterThan: enum.IPredSGT, ast.GreaterThanEqual: enum.IPredSGE,
	ast.LessThan: enum.IPredSLT, ast.LessThanEqual: enum.IPredSLE,
	ast.Equal: enum.IPredEQ, ast.NotEqual: enum.IPredNE,
}

// lowerBinary implements binary_expression.rs's operator match, widened
// to Int32/Float32-typed operands (the original hard-codes i32).
// Comparisons emit an icmp/fcmp and zero-extend the i1 result to i32
// (spec.md §4.5: "emit a signed integer compare then zero-extend the i1
// to the working integer type"), matching binary_expression.rs exactly.
func (e *Emitter) lowerBinary(b *ast.BinaryExpression) value.Value {
	left := e.lowerExpr(b.Left)
	right := e.lowerExpr(b.Right)
	isFloat := left.Type() == types.Float

	switch b.Operator {
	case ast.Add:
		if isFloat {
			return e.block.NewFAdd(left, right)
		}
		return e.block.NewAdd(left, right)
	case ast.Subtract:
		if isFloat {
			return e.block.NewFSub(left, right)
		}
		return e.block.NewSub(left, right)
	case ast.Multiply:
		if isFloat {
			return e.block.NewFMul(left, right)
		}
		return e.block.NewMul(left, right)
	case ast.Divide:
		if isFloat {
			return e.block.NewFDiv(left, right)
		}
		return e.block.NewSDiv(left, right)
	case ast.Modulus:
		if isFloat {
			return e.block.NewFRem(left, right)
		}
		return e.block.NewSRem(left, right)
	case ast.And:
		return e.block.NewAnd(left, right)
	case ast.Or:
		return e.block.NewOr(left, right)
	default:
		if pred, ok := intCmpPredicates[b.Operator]; ok {
			var cmp value.Value
			if isFloat {
				cmp = e.block.NewFCmp(floatPredicateFor(b.Operator), left, right)
			} else {
				cmp = e.block.NewICmp(pred, left, right)
			}
			return e.block.NewZExt(cmp, types.I32)
		}
		panic("emitter: unknown binary operator")
	}
}

var floatCmpPredicates = map[ast.BinaryOperator]enum.FPred{
	ast.GreaterThan: enum.FPredOGT, ast.GreaterThanEqual: enum.FPredOGE,
	ast.LessThan: enum.FPredOLT, ast.LessThanEqual: enum.FPredOLE,
	ast.Equal: enum.FPredOEQ, ast.NotEqual: enum.FPredONE,
}

func floatPredicateFor(op ast.BinaryOperator) enum.FPred {
	return floatCmpPredicates[op]
}

// lowerCall implements function_call.rs's compile_function_call:
// print/println are handled as built-ins, everything else resolves
// through the function scope.
func (e *Emitter) lowerCall(c *ast.FunctionCall) value.Value {
	switch c.Name {
	case "println":
		return e.lowerPrintCall(c, true)
	case "print":
		return e.lowerPrintCall(c, false)
	}

	fn, ok := e.scope.getFunction(c.Name)
	if !ok {
		panic("emitter: unresolved function " + c.Name + " (analyzer should have rejected this)")
	}
	args := make([]value.Value, len(c.Args))
	for i, arg := range c.Args {
		args[i] = e.lowerExpr(arg)
	}
	call := e.block.NewCall(fn, args...)
	if fn.Sig.RetType == types.Void {
		return nil
	}
	return call
}
