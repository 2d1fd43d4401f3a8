package emitter

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// stringConstant is one interned global string, with the null terminator
// already appended to match printf's C string expectation.
type stringConstant struct {
	global *ir.Global
}

// internString returns a pointer to a mutable global array holding value,
// reusing an existing global if the same content was already emitted
// (spec.md's SPEC_FULL.md deviation from the Rust reference: the
// reference's build_global_string_ptr in original_source/compiler/src/
// codegen/strings.rs never deduplicates, emitting one global per literal
// occurrence — this emitter interns by content instead).
func (e *Emitter) internString(val string) value.Value {
	if sc, ok := e.strings[val]; ok {
		return e.gepToFirstByte(sc.global)
	}

	data := constant.NewCharArrayFromString(val + "\x00")
	name := fmt.Sprintf("str.%d", len(e.strings))
	global := e.Module.NewGlobalDef(name, data)
	e.strings[val] = &stringConstant{global: global}

	return e.gepToFirstByte(global)
}

// gepToFirstByte decays a [N x i8]* global into an i8* pointing at its
// first byte, the pointer shape every string-typed value in this emitter
// carries.
func (e *Emitter) gepToFirstByte(global *ir.Global) value.Value {
	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(global.ContentType, global, zero, zero)
}
