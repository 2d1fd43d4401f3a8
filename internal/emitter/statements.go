package emitter

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	llvmtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// lowerBlockBody lowers a sequence of top-level-or-function-body
// statements in the current scope (mod.rs's build_stmt dispatch loop).
// Once the current block is terminated (e.g. by a return), the remaining
// statements are skipped.
func (e *Emitter) lowerBlockBody(body []ast.Stmt) {
	for _, stmt := range body {
		if e.block.Term != nil {
			return
		}
		e.lowerStmt(stmt)
	}
}

// lowerStmt dispatches a statement-position node. Expression statements
// (a bare FunctionCall, for instance) fall through to lowerExpr and their
// value, if any, is discarded.
func (e *Emitter) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		e.lowerDeclaration(s)
	case *ast.Block:
		e.lowerBlock(s)
	case *ast.IfStatement:
		e.lowerIf(s)
	case *ast.ReturnStatement:
		e.lowerReturn(s)
	default:
		e.lowerExpr(stmt)
	}
}

// lowerDeclaration implements declaration.rs's compile_declaration,
// generalized from a hard-coded i32 alloca to the binding's resolved
// DataType.
func (e *Emitter) lowerDeclaration(d *ast.Declaration) {
	dt := sourceTypeOf(d)
	slotType := toLLVMType(dt)

	var val value.Value
	if d.Value != nil {
		val = e.lowerExpr(d.Value)
		if d.DataType == nil && val != nil {
			slotType = val.Type()
		}
	}

	alloca := e.block.NewAlloca(slotType)
	if val != nil {
		e.block.NewStore(val, alloca)
	} else {
		e.block.NewStore(zeroValueOf(dt), alloca)
	}
	e.scope.setVariable(d.Name, alloca)
}

// sourceTypeOf resolves a Declaration's DataType from the AST alone:
// explicit annotation wins, otherwise a literal initializer's type, and
// Int32 for any other initializer. The emitter trusts that analysis
// already rejected an untyped, unvalued declaration. For an unannotated
// non-literal initializer, lowerDeclaration sizes the slot from the
// lowered value's own LLVM type instead of this result.
func sourceTypeOf(d *ast.Declaration) types.DataType {
	if d.DataType != nil {
		return *d.DataType
	}
	switch d.Value.(type) {
	case *ast.Integer:
		return types.Int32
	case *ast.Float:
		return types.Float32
	case *ast.Boolean:
		return types.Boolean
	case *ast.String:
		return types.String
	default:
		return types.Int32
	}
}

// lowerBlock lowers a nested Block in its own scope (block.rs's
// enter_new_scope/exit_scope pair).
func (e *Emitter) lowerBlock(b *ast.Block) {
	e.scope = newScope(e.scope)
	e.lowerBlockBody(b.Body)
	e.scope = e.scope.parent
}

// lowerIf implements if_statement.rs: a condition, a then branch, an
// optional else branch (plain Block or nested IfStatement), and a merge
// block that subsequent code continues from. Each branch's terminator is
// only added if the branch didn't already terminate itself (e.g. with an
// early return), so lowering never appends a second terminator to a
// block.
func (e *Emitter) lowerIf(stmt *ast.IfStatement) {
	// Condition lowers to i32 like every other Boolean value (see
	// expressions.go); NewCondBr needs i1, so it is compared against zero
	// right before branching rather than carrying i1 any further.
	cond := e.block.NewICmp(enum.IPredNE, e.lowerExpr(stmt.Condition), constant.NewInt(llvmtypes.I32, 0))

	fn := e.block.Parent
	thenBlock := fn.NewBlock(e.newBlockName("if.then"))
	mergeBlock := fn.NewBlock(e.newBlockName("if.merge"))

	var elseBlock = mergeBlock
	hasElse := stmt.ElseBlock != nil
	if hasElse {
		elseBlock = fn.NewBlock(e.newBlockName("if.else"))
	}

	e.block.NewCondBr(cond, thenBlock, elseBlock)

	e.block = thenBlock
	e.lowerBlock(stmt.Block)
	if e.block.Term == nil {
		e.block.NewBr(mergeBlock)
	}

	if hasElse {
		e.block = elseBlock
		switch elseStmt := stmt.ElseBlock.(type) {
		case *ast.Block:
			e.lowerBlock(elseStmt)
		case *ast.IfStatement:
			e.lowerIf(elseStmt)
		}
		if e.block.Term == nil {
			e.block.NewBr(mergeBlock)
		}
	}

	e.block = mergeBlock
}

// lowerReturn implements return_statement.rs.
func (e *Emitter) lowerReturn(r *ast.ReturnStatement) {
	if r.Value == nil {
		e.block.NewRet(nil)
		return
	}
	e.block.NewRet(e.lowerExpr(r.Value))
}
