// Package output writes the artifacts an emitted *ir.Module produces:
// textual IR, an object file (via an external ObjectWriter), and a linked
// executable (via an external Linker). Grounded on the three-way split of
// original_source/compiler/src/output/{ir,object,executable}.rs.
package output

import (
	"os"
	"path/filepath"

	"github.com/llir/llvm/ir"

	"github.com/sourcec-lang/sourcec/internal/errors"
)

// WriteIR serializes module to textual LLVM IR and writes it to
// <stem>.ll (spec.md §6 "Persisted artifacts"), mirroring ir.rs's
// print_to_string + fs::write pair.
func WriteIR(module *ir.Module, stem string) (string, error) {
	path := withExt(stem, ".ll")
	if err := os.WriteFile(path, []byte(module.String()), 0o644); err != nil {
		return "", &errors.BackendError{Stage: "ir", Message: "failed to write IR file", Cause: err}
	}
	return path, nil
}

func withExt(stem, ext string) string {
	return stem[:len(stem)-len(filepath.Ext(stem))] + ext
}
