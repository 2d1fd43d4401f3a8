package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sourcec-lang/sourcec/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex PATH",
	Short: "Tokenize a Source file and print its token stream",
	Long: `Tokenize (lex) a Source program and print one "start..end  <Token>" line
per token, in source order (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s (%d bytes)\n", path, len(source))
	}

	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Caret(source))
		return fmt.Errorf("lex failed")
	}

	for _, tok := range tokens {
		fmt.Printf("%d..%d  %s\n", tok.Span.Start, tok.Span.End, tok)
	}
	return nil
}
