// Package emitter lowers a type-checked AST to a single LLVM IR module,
// built on github.com/llir/llvm (spec.md §4.5). It keeps the Rust
// reference implementation's architecture (original_source/compiler/src/
// codegen/mod.rs: a Codegen struct wrapping a module, a current insertion
// point, and a chained Scope) but expresses it against llir/llvm's
// ir.Module/ir.Block builder API instead of inkwell's.
package emitter

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sourcec-lang/sourcec/internal/ast"
	sctypes "github.com/sourcec-lang/sourcec/internal/types"
)

// Emitter holds the module under construction, the current basic block
// (the insertion point), and the active scope chain.
type Emitter struct {
	Module *ir.Module

	block        *ir.Block
	scope        *scope
	blockCounter int

	strings map[string]*stringConstant
}

// New creates an Emitter with the printf built-in already registered
// (spec.md §4.5 "Built-ins").
func New() *Emitter {
	e := &Emitter{
		Module:  ir.NewModule(),
		scope:   newScope(nil),
		strings: make(map[string]*stringConstant),
	}
	e.declarePrintf()
	return e
}

// toLLVMType maps a Source DataType to its LLVM representation. Boolean
// is represented as i32, not i1: spec.md §4.5 requires every comparison
// to "emit a signed integer compare then zero-extend the i1 to the
// working integer type", so i1 only ever exists as an icmp/fcmp's
// immediate result, never as a value a Boolean variable, parameter, or
// return slot holds.
func toLLVMType(dt sctypes.DataType) types.Type {
	switch {
	case dt == sctypes.Int32:
		return types.I32
	case dt == sctypes.Float32:
		return types.Float
	case dt == sctypes.Boolean:
		return types.I32
	case dt == sctypes.String:
		return types.NewPointer(types.I8)
	case dt == sctypes.Void:
		return types.Void
	default:
		// Custom(name) types have no core-level representation
		// (spec.md §1 Non-goals); treat as an opaque pointer.
		return types.NewPointer(types.I8)
	}
}

// Emit runs the two-phase lowering of spec.md §4.5 over prog and returns
// the finished module.
func (e *Emitter) Emit(prog *ast.Program) *ir.Module {
	handles := make(map[string]*ir.Func, len(prog.Functions))
	for _, fn := range prog.Functions {
		handles[fn.Name] = e.declareFunction(fn)
	}

	e.buildMain(prog.Body)

	for _, fn := range prog.Functions {
		e.buildFunctionBody(handles[fn.Name], fn)
	}

	return e.Module
}

// declareFunction creates the function's handle with its full signature
// (phase 1: forward declarations, so calls to functions defined later, or
// recursive/mutually-recursive calls, resolve during phase 2).
func (e *Emitter) declareFunction(fn *ast.FunctionDeclaration) *ir.Func {
	params := make([]*ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = ir.NewParam(p.Name, toLLVMType(p.DataType))
	}
	handle := e.Module.NewFunc(fn.Name, toLLVMType(fn.ReturnType), params...)
	e.scope.setFunction(fn.Name, handle)
	return handle
}

// buildFunctionBody lowers one function's body (phase 2). Parameters are
// allocated and stored up front so the body can treat them as ordinary
// mutable locals, matching function_declaration.rs.
func (e *Emitter) buildFunctionBody(handle *ir.Func, fn *ast.FunctionDeclaration) {
	entry := handle.NewBlock("entry")
	savedBlock, savedScope := e.block, e.scope
	e.block = entry
	e.scope = newScope(e.scope)

	for i, p := range fn.Params {
		alloca := e.block.NewAlloca(toLLVMType(p.DataType))
		e.block.NewStore(handle.Params[i], alloca)
		e.scope.setVariable(p.Name, alloca)
	}

	e.lowerBlockBody(fn.Block.Body)
	e.ensureTerminated(fn.ReturnType)

	e.block, e.scope = savedBlock, savedScope
}

// buildMain synthesizes the implicit `main` entry point wrapping the
// program's top-level body (spec.md §4.5).
func (e *Emitter) buildMain(body []ast.Stmt) {
	handle := e.Module.NewFunc("main", types.I32)
	e.scope.setFunction("main", handle)

	entry := handle.NewBlock("entry")
	e.block = entry
	e.scope = newScope(e.scope)

	e.lowerBlockBody(body)
	if e.block.Term == nil {
		e.block.NewRet(constant.NewInt(types.I32, 0))
	}
}

// ensureTerminated adds a default return if the lowered body fell off the
// end of the function without one, matching function_declaration.rs's
// "default to 0 if no return value provided" fallback, generalized across
// DataTypes.
func (e *Emitter) ensureTerminated(returnType sctypes.DataType) {
	if e.block.Term != nil {
		return
	}
	if returnType == sctypes.Void {
		e.block.NewRet(nil)
		return
	}
	e.block.NewRet(zeroValueOf(returnType))
}

// zeroValueOf returns the default value used to pad a missing return
// (function_declaration.rs's "default to 0"), generalized to every
// DataType the emitter supports.
func zeroValueOf(dt sctypes.DataType) value.Value {
	switch {
	case dt == sctypes.Float32:
		return constant.NewFloat(types.Float, 0)
	default:
		if ptr, ok := toLLVMType(dt).(*types.PointerType); ok {
			return constant.NewNull(ptr)
		}
		return constant.NewInt(types.I32, 0)
	}
}

// newBlockName builds a readable, collision-free label. An explicit
// numbering scheme keeps textual IR output stable across repeated
// lowerings of the same AST (spec.md §8 "Emitter determinism"), rather
// than relying on llir/llvm's own positional fallback names.
func (e *Emitter) newBlockName(prefix string) string {
	e.blockCounter++
	return fmt.Sprintf("%s.%d", prefix, e.blockCounter)
}
