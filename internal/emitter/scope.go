package emitter

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// scope is a chained lookup table of local variable storage (alloca
// pointers) and function handles, mirroring the Rust codegen's Scope
// (original_source/compiler/src/codegen/scope.rs) with its parent-pointer
// chain replaced by an explicit outer field, Go style.
type scope struct {
	parent    *scope
	variables map[string]value.Value // alloca pointer per variable name
	functions map[string]*ir.Func
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, variables: make(map[string]value.Value), functions: make(map[string]*ir.Func)}
}

func (s *scope) setVariable(name string, ptr value.Value) {
	s.variables[name] = ptr
}

func (s *scope) getVariable(name string) (value.Value, bool) {
	if v, ok := s.variables[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.getVariable(name)
	}
	return nil, false
}

func (s *scope) setFunction(name string, fn *ir.Func) {
	s.functions[name] = fn
}

func (s *scope) getFunction(name string) (*ir.Func, bool) {
	if f, ok := s.functions[name]; ok {
		return f, true
	}
	if s.parent != nil {
		return s.parent.getFunction(name)
	}
	return nil, false
}
