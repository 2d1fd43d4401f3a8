package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourcec-lang/sourcec/internal/output"
)

var runCmd = &cobra.Command{
	Use:   "run PATH",
	Short: "Build a Source file and run the resulting executable",
	Long: `Build PATH (see "build") and immediately execute it, with the child
process's stdin, stdout, and stderr inherited by sourcec and its exit code
propagated as sourcec's own (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	module, err := compileFile(path)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(path, ".src")
	toolchain := output.ClangToolchain{}
	execPath, err := output.BuildExecutable(context.Background(), module, stem, toolchain, toolchain)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if !strings.HasPrefix(execPath, "/") && !strings.HasPrefix(execPath, "./") {
		execPath = "./" + execPath
	}

	child := exec.Command(execPath)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", execPath, err)
	}
	return nil
}
