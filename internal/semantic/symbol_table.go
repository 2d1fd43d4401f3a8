package semantic

import (
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// Variable is one binding in a scope frame (spec.md §4.4).
type Variable struct {
	Name        string
	DataType    types.DataType
	Mutable     bool
	Used        bool
	Initialized bool
	DeclSpan    lexer.Span
}

// Function is one entry in the disjoint, non-nested function table
// (spec.md §4.4 pass 1).
type Function struct {
	Name       string
	ReturnType types.DataType
	Params     []types.DataType
}

// SymbolTable is a chained scope of variable bindings. The global function
// table lives separately on the Analyzer since functions never nest and are
// never shadowed (spec.md §3 Program invariants).
type SymbolTable struct {
	variables map[string]*Variable
	outer     *SymbolTable
}

// NewSymbolTable creates a top-level (global) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{variables: make(map[string]*Variable)}
}

// NewEnclosedSymbolTable creates a scope nested inside outer, for a Block.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{variables: make(map[string]*Variable), outer: outer}
}

// Define records a new binding in the current scope, shadowing any
// identically-named binding in an outer scope for the current scope's
// lifetime (spec.md §8 "Scope discipline").
func (st *SymbolTable) Define(v *Variable) {
	st.variables[v.Name] = v
}

// Resolve looks up name in the current scope, then each outer scope in
// turn. It does not touch the Used flag; the analyzer sets it on the
// returned binding.
func (st *SymbolTable) Resolve(name string) (*Variable, bool) {
	if v, ok := st.variables[name]; ok {
		return v, true
	}
	if st.outer != nil {
		return st.outer.Resolve(name)
	}
	return nil, false
}

// IsDeclaredInCurrentScope reports whether name is bound in this exact
// scope, ignoring outer scopes.
func (st *SymbolTable) IsDeclaredInCurrentScope(name string) bool {
	_, ok := st.variables[name]
	return ok
}

// Unused returns every binding in this scope (not outer scopes) whose
// Used flag is still false, for the "walk the scope chain on exit" step of
// spec.md §4.4 pass 2.
func (st *SymbolTable) Unused() []*Variable {
	var out []*Variable
	for _, v := range st.variables {
		if !v.Used {
			out = append(out, v)
		}
	}
	return out
}
