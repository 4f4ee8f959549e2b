package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uclang/ucc/internal/codegen"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/lexer"
	"github.com/uclang/ucc/internal/parser"
	"github.com/uclang/ucc/internal/semantic"
	"github.com/uclang/ucc/internal/source"
)

var (
	compileToCpp bool
	backendPhase int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:     "ucc [file]",
	Short:   "uC to C++17 source-to-source compiler",
	Args:    cobra.ExactArgs(1),
	RunE:    runCompile,
	Version: "0.1.0-dev",
}

func init() {
	rootCmd.Flags().BoolVarP(&compileToCpp, "compile", "C", false, "compile to C++ and write the output file")
	rootCmd.Flags().IntVar(&backendPhase, "backend-phase", int(codegen.Phase3), "backend phase (1, 2, or 3)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics (source excerpt with caret)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]

	if backendPhase < 1 || backendPhase > 3 {
		return fmt.Errorf("--backend-phase must be 1, 2, or 3, got %d", backendPhase)
	}

	input, err := source.Read(filename)
	if err != nil {
		return err
	}

	l := lexer.New(filename, input)
	p := parser.New(l)
	prog := p.ParseProgram()

	// spec.md §7: lexical errors terminate compilation immediately, checked
	// ahead of (and independently of) parse errors — a malformed token (an
	// unterminated string or block comment, an unknown escape sequence) is
	// the root cause even when it also confuses the parser into reporting an
	// unrelated syntax error downstream.
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, lerr := range lexErrs {
			cerr := errors.New(errors.Lexical, lerr.Pos, lerr.Message)
			cerr.Source = input
			fmt.Fprintln(os.Stderr, cerr.Format(verbose))
		}
		return fmt.Errorf("lexical analysis failed with %d error(s)", len(lexErrs))
	}

	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			fmt.Fprintln(os.Stderr, perr.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	checker := semantic.New(input)
	checker.Check(prog)

	// spec.md §7: symbol/type errors are collected and reported in source
	// order, but no backend output is produced if any are present.
	if errs := checker.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatAll(errs, verbose))
		return fmt.Errorf("semantic analysis failed with %d error(s)", len(errs))
	}

	if !compileToCpp {
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: no errors\n", filename)
		}
		return nil
	}

	emitter := codegen.New(checker.Registry)
	out, err := emitter.Emit(prog, codegen.Phase(backendPhase))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	outFile := outputPath(filename, codegen.Phase(backendPhase))
	if err := os.WriteFile(outFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s -> %s\n", filename, outFile)
	}
	return nil
}

// outputPath names the emitted file per spec.md §6: replacing `.uc` with
// `.cpp`, or `_phase{N}.cpp` when a sub-phase (not the default full phase)
// is selected.
func outputPath(filename string, phase codegen.Phase) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if phase == codegen.Phase3 {
		return base + ".cpp"
	}
	return fmt.Sprintf("%s_phase%d.cpp", base, int(phase))
}
