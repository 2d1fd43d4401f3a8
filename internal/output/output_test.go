package output

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llir/llvm/ir"
)

type fakeToolchain struct {
	objErr, linkErr error
	objCalls        int
	linkCalls       int
}

func (f *fakeToolchain) WriteObject(_ context.Context, irPath, objPath string) error {
	f.objCalls++
	if f.objErr != nil {
		return f.objErr
	}
	return os.WriteFile(objPath, []byte("fake object"), 0o644)
}

func (f *fakeToolchain) Link(_ context.Context, objPath, execPath string) error {
	f.linkCalls++
	if f.linkErr != nil {
		return f.linkErr
	}
	return os.WriteFile(execPath, []byte("fake binary"), 0o755)
}

func TestWriteIRWritesLLFile(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "program")

	path, err := WriteIR(ir.NewModule(), stem)
	require.NoError(t, err)
	assert.Equal(t, stem+".ll", path)
	assert.FileExists(t, path)
}

func TestBuildExecutableRemovesObjectOnSuccess(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "program")
	tc := &fakeToolchain{}

	execPath, err := BuildExecutable(context.Background(), ir.NewModule(), stem, tc, tc)
	require.NoError(t, err)
	assert.Equal(t, stem, execPath)
	assert.FileExists(t, execPath)
	assert.NoFileExists(t, stem+".o")
	assert.Equal(t, 1, tc.objCalls)
	assert.Equal(t, 1, tc.linkCalls)
}

func TestBuildExecutableKeepsObjectOnLinkFailure(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "program")
	tc := &fakeToolchain{linkErr: errors.New("undefined symbol")}

	_, err := BuildExecutable(context.Background(), ir.NewModule(), stem, tc, tc)
	require.Error(t, err)
	assert.FileExists(t, stem+".o", "the object file must survive a link failure for post-mortem inspection")
}

func TestBuildExecutableStopsBeforeLinkingOnObjectFailure(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "program")
	tc := &fakeToolchain{objErr: errors.New("bad IR")}

	_, err := BuildExecutable(context.Background(), ir.NewModule(), stem, tc, tc)
	require.Error(t, err)
	assert.Equal(t, 0, tc.linkCalls)
}

func TestExecutableNameAppendsExeOnlyOnWindows(t *testing.T) {
	assert.Equal(t, "program.exe", executableNameFor("windows", "program"))
	assert.Equal(t, "program.exe", executableNameFor("windows", "program.exe"), "must not double-append")
	assert.Equal(t, "program", executableNameFor("linux", "program"))
	assert.Equal(t, "program", executableNameFor("darwin", "program"))
}
