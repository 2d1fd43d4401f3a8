package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sourcec-lang/sourcec/internal/errors"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/parser"
	"github.com/sourcec-lang/sourcec/internal/semantic"
	"github.com/sourcec-lang/sourcec/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check PATH",
	Short: "Watch a Source file and re-check it on every save",
	Long: `Watch PATH and, on every change, re-run lex, parse, and analyze over its
current contents, printing a single-line verdict: ✅ clean, ⚠️ warnings
only, ❗ errors. Runs until interrupted (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return watch.Check(ctx, path, func(r watch.Result) {
		if r.Err != nil {
			fmt.Printf("❗ %s: %v\n", path, r.Err)
			return
		}
		checkSource(path, r.Source)
	})
}

func checkSource(path, source string) {
	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		fmt.Printf("❗ %s\n%s\n", path, lexErr.Caret(source))
		return
	}

	prog, parseErr := parser.New(tokens).ParseProgram()
	if parseErr != nil {
		ce := errors.NewCompilerErrorAt(parseErr.Pos, parseErr.Message, source, path)
		fmt.Printf("❗ %s\n%s\n", path, ce.Format(false))
		return
	}

	analyzer := semantic.New()
	analyzer.Analyze(prog)

	if len(analyzer.Errors) > 0 {
		fmt.Printf("❗ %s: %d error(s)\n", path, len(analyzer.Errors))
		for _, e := range analyzer.Errors {
			ce := errors.NewCompilerErrorAt(e.Pos, e.Error(), source, path)
			fmt.Println(ce.Format(false))
		}
		return
	}

	if len(analyzer.Warnings) > 0 {
		fmt.Printf("⚠️  %s: %d warning(s)\n", path, len(analyzer.Warnings))
		for _, w := range analyzer.Warnings {
			ce := errors.NewCompilerErrorAt(w.Pos, w.Error(), source, path)
			fmt.Println(ce.Format(false))
		}
		return
	}

	fmt.Printf("✅ %s\n", path)
}
