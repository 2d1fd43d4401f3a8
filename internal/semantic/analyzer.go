// Package semantic implements the two-pass analyzer of spec.md §4.4: pass 1
// registers function signatures, pass 2 type-checks the program body while
// accumulating diagnostics rather than aborting at the first one.
package semantic

import (
	"github.com/sourcec-lang/sourcec/internal/ast"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// builtinCalls are the two variadic, any-type, Void-returning functions the
// analyzer never requires to be declared (spec.md §4.4).
var builtinCalls = map[string]bool{"print": true, "println": true}

// Analyzer holds the accumulated diagnostics for one Program.
type Analyzer struct {
	functions map[string]*Function
	Errors    []*Error
	Warnings  []*Warning
}

// New creates an Analyzer ready to run Analyze.
func New() *Analyzer {
	return &Analyzer{functions: make(map[string]*Function)}
}

// Analyze runs both passes over prog. It never returns early: every
// statement is visited so independent errors never suppress one another
// (spec.md §8 "Analyzer accumulation").
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, fn := range prog.Functions {
		params := make([]types.DataType, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.DataType
		}
		a.functions[fn.Name] = &Function{Name: fn.Name, ReturnType: fn.ReturnType, Params: params}
	}

	global := NewSymbolTable()
	for _, fn := range prog.Functions {
		a.analyzeFunctionBody(fn, global)
	}

	a.analyzeBlockBody(prog.Body, global)
	a.reportUnused(global)
}

// analyzeFunctionBody type-checks one function's body in a scope seeded
// with its parameters as already-initialized bindings.
func (a *Analyzer) analyzeFunctionBody(fn *ast.FunctionDeclaration, global *SymbolTable) {
	scope := NewEnclosedSymbolTable(global)
	for _, p := range fn.Params {
		scope.Define(&Variable{Name: p.Name, DataType: p.DataType, Mutable: true, Used: true, Initialized: true})
	}
	a.analyzeBlockBody(fn.Block.Body, scope)
}

// analyzeBlockBody type-checks a sequence of statements within scope,
// without introducing a new nested scope (the caller already pushed one
// for a Block, or passed the function/global scope directly).
func (a *Analyzer) analyzeBlockBody(body []ast.Stmt, scope *SymbolTable) {
	for _, stmt := range body {
		a.analyzeStmt(stmt, scope)
	}
}

// analyzeBlock type-checks a nested Block in its own child scope, then
// reports unused bindings declared directly in it (spec.md §8 "Scope
// discipline": bindings do not escape the Block).
func (a *Analyzer) analyzeBlock(block *ast.Block, parent *SymbolTable) {
	inner := NewEnclosedSymbolTable(parent)
	a.analyzeBlockBody(block.Body, inner)
	a.reportUnused(inner)
}

func (a *Analyzer) reportUnused(scope *SymbolTable) {
	for _, v := range scope.Unused() {
		a.Warnings = append(a.Warnings, &Warning{Kind: UnusedVariable, Pos: v.DeclSpan, Name: v.Name})
	}
}

// analyzeStmt dispatches on concrete Stmt type, recording diagnostics as it
// goes. It never returns an error itself — all findings land in a.Errors.
func (a *Analyzer) analyzeStmt(stmt ast.Stmt, scope *SymbolTable) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		a.analyzeDeclaration(s, scope)
	case *ast.IfStatement:
		a.analyzeExpr(s.Condition, scope)
		a.analyzeBlock(s.Block, scope)
		switch e := s.ElseBlock.(type) {
		case *ast.Block:
			a.analyzeBlock(e, scope)
		case *ast.IfStatement:
			a.analyzeStmt(e, scope)
		}
	case *ast.ReturnStatement:
		if s.Value != nil {
			a.analyzeExpr(s.Value, scope)
		}
	case *ast.Block:
		a.analyzeBlock(s, scope)
	default:
		// Any remaining Stmt in a body position is an expression used as a
		// statement (FunctionCall, Identifier, literal, Binary/Unary).
		a.analyzeExpr(s, scope)
	}
}

// analyzeDeclaration implements spec.md §4.4's Declaration rule: explicit
// type wins; otherwise infer from the initializer; missing both is an
// error. The binding is always recorded, even on error, so later
// references do not cascade into spurious VariableNotFound errors.
func (a *Analyzer) analyzeDeclaration(d *ast.Declaration, scope *SymbolTable) {
	var valueType types.DataType
	haveValue := false
	if d.Value != nil {
		if dt, ok := a.analyzeExpr(d.Value, scope); ok {
			valueType = dt
			haveValue = true
		}
	}

	var dt types.DataType
	switch {
	case d.DataType != nil:
		dt = *d.DataType
		if haveValue && dt != valueType {
			a.Errors = append(a.Errors, &Error{Kind: TypeMismatch, Pos: d.Span(), Expected: dt, Actual: valueType})
		}
	case haveValue:
		dt = valueType
	default:
		a.Errors = append(a.Errors, &Error{Kind: NoTypeOrValueProvided, Pos: d.Span(), Name: d.Name})
		dt = types.Void
	}

	scope.Define(&Variable{
		Name:        d.Name,
		DataType:    dt,
		Mutable:     d.Mutable,
		Used:        false,
		Initialized: d.Value != nil,
		DeclSpan:    d.Span(),
	})
}

// analyzeExpr type-checks an expression, returning its DataType and whether
// a type could be determined at all (false after an already-reported
// error, so callers do not double-report).
func (a *Analyzer) analyzeExpr(expr ast.Stmt, scope *SymbolTable) (types.DataType, bool) {
	switch e := expr.(type) {
	case *ast.Integer:
		return types.Int32, true
	case *ast.Float:
		return types.Float32, true
	case *ast.Boolean:
		return types.Boolean, true
	case *ast.String:
		return types.String, true
	case *ast.Identifier:
		v, ok := scope.Resolve(e.Name)
		if !ok {
			a.Errors = append(a.Errors, &Error{Kind: VariableNotFound, Pos: e.Span(), Name: e.Name})
			return types.Void, false
		}
		v.Used = true
		return v.DataType, true
	case *ast.UnaryExpression:
		dt, ok := a.analyzeExpr(e.Value, scope)
		if e.Operator == ast.Not {
			return types.Boolean, ok
		}
		return dt, ok
	case *ast.BinaryExpression:
		return a.analyzeBinary(e, scope)
	case *ast.FunctionCall:
		return a.analyzeCall(e, scope)
	default:
		return types.Void, false
	}
}

var logicalOrComparison = map[ast.BinaryOperator]bool{
	ast.Equal: true, ast.NotEqual: true, ast.GreaterThan: true, ast.GreaterThanEqual: true,
	ast.LessThan: true, ast.LessThanEqual: true, ast.And: true, ast.Or: true,
}

// analyzeBinary implements spec.md §4.4's binary operator rules:
// comparison/logical operators always produce Boolean; arithmetic operators
// require matching numeric operand types and produce that type, recording
// TypeMismatch (and no result type) otherwise.
func (a *Analyzer) analyzeBinary(e *ast.BinaryExpression, scope *SymbolTable) (types.DataType, bool) {
	leftType, leftOK := a.analyzeExpr(e.Left, scope)
	rightType, rightOK := a.analyzeExpr(e.Right, scope)

	if logicalOrComparison[e.Operator] {
		return types.Boolean, true
	}

	if !leftOK || !rightOK {
		return types.Void, false
	}
	if leftType != rightType || !leftType.IsNumeric() {
		a.Errors = append(a.Errors, &Error{Kind: TypeMismatch, Pos: e.Span(), Expected: leftType, Actual: rightType})
		return types.Void, false
	}
	return leftType, true
}

// analyzeCall implements spec.md §4.4's FunctionCall rule: print/println
// are always valid; everything else must be in the function table, with
// arity checked before per-argument types.
func (a *Analyzer) analyzeCall(c *ast.FunctionCall, scope *SymbolTable) (types.DataType, bool) {
	argTypes := make([]types.DataType, len(c.Args))
	argOK := make([]bool, len(c.Args))
	for i, arg := range c.Args {
		argTypes[i], argOK[i] = a.analyzeExpr(arg, scope)
	}

	if builtinCalls[c.Name] {
		return types.Void, true
	}

	fn, ok := a.functions[c.Name]
	if !ok {
		a.Errors = append(a.Errors, &Error{Kind: FunctionNotFound, Pos: c.Span(), Name: c.Name})
		return types.Void, false
	}

	if len(c.Args) != len(fn.Params) {
		a.Errors = append(a.Errors, &Error{
			Kind: FunctionCallArgumentCountMismatch, Pos: c.Span(), Name: c.Name,
			Want: len(fn.Params), Count: len(c.Args),
		})
		return fn.ReturnType, true
	}

	for i, arg := range c.Args {
		if !argOK[i] {
			continue
		}
		if argTypes[i] != fn.Params[i] {
			a.Errors = append(a.Errors, &Error{
				Kind: FunctionCallArgumentMismatch, Pos: arg.Span(), Name: c.Name,
				Index: i + 1, Expected: fn.Params[i], Actual: argTypes[i],
			})
		}
	}
	return fn.ReturnType, true
}
