package semantic

import (
	"fmt"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/types"
)

// ErrorKind is the closed taxonomy of recoverable semantic errors
// (spec.md §4.4, §7).
type ErrorKind int

const (
	FunctionNotFound ErrorKind = iota
	FunctionCallArgumentCountMismatch
	FunctionCallArgumentMismatch
	VariableNotFound
	TypeMismatch
	NoTypeOrValueProvided
)

// Error is one accumulated semantic diagnostic. Unlike LexError/ParseError,
// analysis never stops at the first Error — it keeps every one it finds
// (spec.md §8 "Analyzer accumulation").
type Error struct {
	Kind ErrorKind
	Pos  lexer.Span

	// Populated depending on Kind.
	Name     string // function or variable name
	Index    int    // 1-based argument index (FunctionCallArgumentMismatch)
	Expected types.DataType
	Actual   types.DataType
	Count    int // actual argument count (FunctionCallArgumentCountMismatch)
	Want     int // expected argument count (FunctionCallArgumentCountMismatch)
}

func (e *Error) Error() string {
	switch e.Kind {
	case FunctionNotFound:
		return fmt.Sprintf("function %q is not declared", e.Name)
	case FunctionCallArgumentCountMismatch:
		return fmt.Sprintf("%q expects %d argument(s), got %d", e.Name, e.Want, e.Count)
	case FunctionCallArgumentMismatch:
		return fmt.Sprintf("%q argument %d: expected %s, got %s", e.Name, e.Index, e.Expected, e.Actual)
	case VariableNotFound:
		return fmt.Sprintf("variable %q is not declared", e.Name)
	case TypeMismatch:
		return fmt.Sprintf("type mismatch: %s and %s", e.Expected, e.Actual)
	case NoTypeOrValueProvided:
		return fmt.Sprintf("declaration of %q has neither a type nor an initializer", e.Name)
	default:
		return "semantic error"
	}
}

// WarningKind is the closed taxonomy of non-fatal semantic warnings.
type WarningKind int

const (
	UnusedVariable WarningKind = iota
)

// Warning is one accumulated semantic warning. Warnings never abort
// analysis or the build (spec.md §7).
type Warning struct {
	Kind WarningKind
	Pos  lexer.Span
	Name string
}

func (w *Warning) Error() string {
	switch w.Kind {
	case UnusedVariable:
		return fmt.Sprintf("variable %q is declared but never used", w.Name)
	default:
		return "semantic warning"
	}
}
