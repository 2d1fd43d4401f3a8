package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sourcec-lang/sourcec/internal/errors"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse PATH",
	Short: "Parse a Source file and print a debug representation of its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Caret(source))
		return fmt.Errorf("lex failed")
	}

	prog, parseErr := parser.New(tokens).ParseProgram()
	if parseErr != nil {
		ce := errors.NewCompilerErrorAt(parseErr.Pos, parseErr.Message, source, path)
		fmt.Fprintln(os.Stderr, ce.Format(false))
		return fmt.Errorf("parse failed")
	}

	fmt.Print(prog.String())
	return nil
}
