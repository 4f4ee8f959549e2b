// Package semantic implements the three analysis passes that sit between
// parsing and code generation: the symbol collector (pass A), the type
// resolver (pass B), and the type checker (pass C).
package semantic

import (
	"fmt"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/types"
)

// Checker runs all three passes over a parsed Program and accumulates
// errors. A single Checker is scoped to one compilation (spec.md §3:
// "Symbol tables are process-scoped but reset per compilation invocation").
type Checker struct {
	Registry *types.Registry

	source string
	errs   []*errors.CompilerError

	// scopes is the lexical stack of local-variable scopes active while
	// checking the body currently being walked; nil between functions.
	scopes []map[string]types.Type

	// fn is the function/method currently being checked, used to check
	// `return` against the declared return type.
	fn *funcContext
}

type funcContext struct {
	returnType types.Type
	receiver   *types.ClassInfo // nil for free functions
}

// New creates a Checker over source, the original text of the file being
// compiled (kept only to render verbose diagnostics with a source excerpt).
func New(source string) *Checker {
	return &Checker{Registry: types.NewRegistry(), source: source}
}

// Errors returns every diagnostic collected so far, in source order.
func (c *Checker) Errors() []*errors.CompilerError { return c.errs }

func (c *Checker) addError(kind errors.Kind, pos ast.Node, format string, args ...any) {
	e := errors.New(kind, pos.Pos(), fmt.Sprintf(format, args...))
	e.Source = c.source
	c.errs = append(c.errs, e)
}

// Check runs pass A, B, and C over prog in order, stopping before pass C if
// pass B produced any errors (a program whose types don't resolve cannot be
// type-checked meaningfully).
func (c *Checker) Check(prog *ast.Program) {
	c.collectSymbols(prog)
	c.resolveTypes(prog)
	if len(c.errs) > 0 {
		return
	}
	c.checkProgram(prog)
}
