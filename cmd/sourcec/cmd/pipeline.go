package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sourcec-lang/sourcec/internal/emitter"
	"github.com/sourcec-lang/sourcec/internal/errors"
	"github.com/sourcec-lang/sourcec/internal/lexer"
	"github.com/sourcec-lang/sourcec/internal/parser"
	"github.com/sourcec-lang/sourcec/internal/semantic"
	"github.com/llir/llvm/ir"
)

// compileFile runs the full lex -> parse -> analyze -> emit pipeline over
// the file at path, returning the finished LLVM module. Diagnostics from
// any stage are printed to stderr before the returned error is surfaced
// (spec.md §7).
func compileFile(path string) (*ir.Module, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Caret(source))
		return nil, fmt.Errorf("lex failed")
	}

	prog, parseErr := parser.New(tokens).ParseProgram()
	if parseErr != nil {
		ce := errors.NewCompilerErrorAt(parseErr.Pos, parseErr.Message, source, path)
		fmt.Fprintln(os.Stderr, ce.Format(false))
		return nil, fmt.Errorf("parse failed")
	}

	analyzer := semantic.New()
	analyzer.Analyze(prog)
	for _, w := range analyzer.Warnings {
		ce := errors.NewCompilerErrorAt(w.Pos, w.Error(), source, path)
		fmt.Fprintln(os.Stderr, "warning: "+ce.Format(false))
	}
	if len(analyzer.Errors) > 0 {
		var msgs []string
		for _, e := range analyzer.Errors {
			ce := errors.NewCompilerErrorAt(e.Pos, e.Error(), source, path)
			msgs = append(msgs, ce.Format(false))
		}
		fmt.Fprintln(os.Stderr, strings.Join(msgs, "\n\n"))
		return nil, fmt.Errorf("semantic analysis failed with %d error(s)", len(analyzer.Errors))
	}

	module := emitter.New().Emit(prog)
	return module, nil
}
