package errors

import (
	"errors"
	"testing"

	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func TestCompilerErrorFormatIncludesCaret(t *testing.T) {
	src := "var x = 1\nvar y = z\n"
	err := NewCompilerErrorAt(lexer.Span{Start: 8, End: 9}, "boom", src, "main.src")
	out := err.Format(false)
	assert.Contains(t, out, "main.src")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "^")
}

func TestFormatErrorsSingleVsMultiple(t *testing.T) {
	one := []*CompilerError{NewCompilerError(lexer.Position{Line: 1, Column: 1}, "only", "", "")}
	assert.NotContains(t, FormatErrors(one, false), "Compilation failed")

	two := append(one, NewCompilerError(lexer.Position{Line: 2, Column: 1}, "second", "", ""))
	assert.Contains(t, FormatErrors(two, false), "Compilation failed with 2 error(s)")
}

func TestBackendErrorUnwraps(t *testing.T) {
	cause := errors.New("linker exited 1")
	be := &BackendError{Stage: "link", Message: "cc failed", Cause: cause}
	assert.ErrorIs(t, be, cause)
	assert.Contains(t, be.Error(), "link")
}
