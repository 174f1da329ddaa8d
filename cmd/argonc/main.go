// Command argonc is the compiler's CLI front door (spec §6.1). Per spec
// §1 the CLI is an external collaborator, not a covered component, so
// this file is kept thin: parse flags, wire source manager → lexer →
// parser → emitter, translate the result to an exit code (spec §6.1/§7).
// No flag-parsing or pipeline-wiring logic lives outside this file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/config"
	"github.com/NotDragon/ArgonLang-sub000/internal/emitter"
	"github.com/NotDragon/ArgonLang-sub000/internal/lexer"
	"github.com/NotDragon/ArgonLang-sub000/internal/parser"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/runtime/templates"
	"github.com/NotDragon/ArgonLang-sub000/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("argonc", pflag.ContinueOnError)
	output := flags.StringP("output", "o", "", "output path (default: out.txt)")
	dotPath := flags.StringP("dot", "d", "", "also emit a DOT graph of the AST")
	verbose := flags.BoolP("verbose", "v", false, "verbose progress")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: argonc [options] <input-file>")
		return 1
	}

	cfg, err := config.Load(config.Config{
		Input:   flags.Arg(0),
		Output:  *output,
		DotPath: *dotPath,
		Verbose: *verbose,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "argonc:", err)
		return 1
	}

	logger := zap.NewNop().Sugar()
	if cfg.Verbose {
		built, buildErr := zap.NewDevelopment()
		if buildErr == nil {
			logger = built.Sugar()
			defer logger.Sync()
		}
	}

	return compile(cfg, logger)
}

// compile runs the full pipeline for one input file and writes the
// emitted translation unit to cfg.Output, returning the process exit code
// (spec §6.1: 0 on success, 1 on any tokenization/parse/missing-main/
// multiple-main/codegen error).
func compile(cfg config.Config, logger *zap.SugaredLogger) int {
	mgr := source.NewManager()
	if err := mgr.Load(cfg.Input); err != nil {
		fmt.Fprintln(os.Stderr, "argonc:", err)
		return 1
	}

	contents, err := os.ReadFile(cfg.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "argonc:", err)
		return 1
	}

	logger.Infow("tokenizing", "file", cfg.Input)
	tokensResult := lexer.Tokenize(cfg.Input, string(contents))
	tokens, lexErr := tokensResult.Unwrap()
	if lexErr != nil {
		printDiagnostic(mgr, lexErr)
		return 1
	}

	logger.Infow("parsing", "file", cfg.Input, "tokens", len(tokens))
	programResult := parser.Parse(cfg.Input, tokens)
	program, parseErr := programResult.Unwrap()
	if parseErr != nil {
		printDiagnostic(mgr, parseErr)
		return 1
	}

	if cfg.DotPath != "" {
		if err := writeDot(cfg.DotPath, program); err != nil {
			fmt.Fprintln(os.Stderr, "argonc:", err)
		}
	}

	logger.Infow("emitting", "file", cfg.Input, "declarations", len(program.Declarations))
	unitResult := emitter.Emit(program)
	unit, emitErr := unitResult.Unwrap()
	if emitErr != nil {
		printDiagnostic(mgr, emitErr)
		return 1
	}

	out := templates.Collect(unit.Dependencies) + unit.Source
	if err := os.WriteFile(cfg.Output, []byte(out), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "argonc:", err)
		return 1
	}
	logger.Infow("wrote output", "path", cfg.Output)
	return 0
}

// printDiagnostic attaches a source snippet to err (when the offending
// file is loadable, per spec §4.1 "a missing file is never an error at
// diagnostic time") and prints it to stderr in the spec §6.3 layout.
func printDiagnostic(mgr *source.Manager, err *result.Error) {
	pos := err.Position
	snippet, ok := mgr.BuildSnippet(pos.Filename, pos.Line, pos.TokenStart, pos.TokenEnd, source.IndicatorCaret, "")
	if ok {
		err = err.WithSnippet(snippet)
	}
	fmt.Fprintln(os.Stderr, err.FormattedMessage())
}

// writeDot renders program as a DOT graph (spec §1 "out of scope ...
// .dot debug dumps of the AST"; kept minimal, with no separate visitor).
// One node per AST node, labeled with its Kind; edges follow ast.Children.
func writeDot(path string, program *ast.ProgramNode) error {
	var b strings.Builder
	b.WriteString("digraph AST {\n")
	id := 0
	ids := make(map[ast.Node]int)
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		ids[n] = id
		fmt.Fprintf(&b, "  n%d [label=%q];\n", id, n.Kind().String())
		id++
		for _, child := range ast.Children(n) {
			childID := id
			visit(child)
			fmt.Fprintf(&b, "  n%d -> n%d;\n", ids[n], childID)
		}
	}
	visit(program)
	b.WriteString("}\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
