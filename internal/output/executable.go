package output

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/llir/llvm/ir"

	"github.com/sourcec-lang/sourcec/internal/errors"
)

// BuildExecutable drives WriteIR, then ObjectWriter, then Linker, and
// cleans up the intermediate object file on success — exactly
// executable.rs's compile_to_executable, generalized from a hard-coded
// gcc invocation to an injected Linker (spec.md §5 "Resources with
// scoped lifetimes": the .o is kept only when something downstream
// failed, for post-mortem inspection).
func BuildExecutable(ctx context.Context, module *ir.Module, stem string, objWriter ObjectWriter, linker Linker) (string, error) {
	irPath, err := WriteIR(module, stem)
	if err != nil {
		return "", err
	}

	objPath := withExt(stem, ".o")
	if err := objWriter.WriteObject(ctx, irPath, objPath); err != nil {
		return "", err
	}

	execPath := executableName(stem)
	if err := linker.Link(ctx, objPath, execPath); err != nil {
		return "", err
	}

	if err := os.Remove(objPath); err != nil {
		return "", &errors.BackendError{Stage: "link", Message: "failed to remove intermediate object file", Cause: err}
	}
	return execPath, nil
}

// executableName appends the platform's native executable suffix to
// stem: ".exe" on Windows (spec.md §4.6), none elsewhere.
func executableName(stem string) string {
	return executableNameFor(runtime.GOOS, stem)
}

func executableNameFor(goos, stem string) string {
	if goos == "windows" && !strings.HasSuffix(stem, ".exe") {
		return stem + ".exe"
	}
	return stem
}
