package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourcec-lang/sourcec/internal/output"
)

var buildCmd = &cobra.Command{
	Use:   "build PATH",
	Short: "Compile a Source file to an LLVM IR file and a native executable",
	Long: `Run the full pipeline (lex, parse, analyze, emit) over PATH and hand the
resulting module to the output driver, which writes "<stem>.ll" and links a
native executable named "<stem>" using the host C compiler driver (spec.md
§5, "Output").`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("wrote %s.ll and %s\n", stem, execPath)
	return nil
}
