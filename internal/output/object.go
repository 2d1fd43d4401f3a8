package output

import (
	"context"
	"os/exec"

	"github.com/sourcec-lang/sourcec/internal/errors"
)

// ObjectWriter turns a textual IR file into a native object file. Object
// emission is target-machine work; spec.md §1 names it an explicit
// "external collaborator" the core does not implement itself — this
// interface is the narrow seam the output driver depends on instead.
type ObjectWriter interface {
	WriteObject(ctx context.Context, irPath, objPath string) error
}

// Linker links a single object file into a native executable, the
// second external collaborator of spec.md §1.
type Linker interface {
	Link(ctx context.Context, objPath, execPath string) error
}

// ClangToolchain shells out to a host C compiler driver for both object
// emission and linking (teacher has no in-pack equivalent for either —
// see DESIGN.md's os/exec justification). It implements both ObjectWriter
// and Linker since clang/cc perform both steps through the same CLI.
type ClangToolchain struct {
	// Driver is the compiler driver binary to invoke, e.g. "clang" or
	// "cc". Defaults to "cc" when empty.
	Driver string
}

func (c ClangToolchain) driver() string {
	if c.Driver != "" {
		return c.Driver
	}
	return "cc"
}

func (c ClangToolchain) WriteObject(ctx context.Context, irPath, objPath string) error {
	cmd := exec.CommandContext(ctx, c.driver(), "-c", "-x", "ir", irPath, "-o", objPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &errors.BackendError{Stage: "object", Message: string(out), Cause: err}
	}
	return nil
}

func (c ClangToolchain) Link(ctx context.Context, objPath, execPath string) error {
	cmd := exec.CommandContext(ctx, c.driver(), objPath, "-o", execPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &errors.BackendError{Stage: "link", Message: string(out), Cause: err}
	}
	return nil
}
