// Package codegen serializes a type-checked uC program to portable C++17
// source text against the fixed uc runtime header contract (defs.h, ref.h,
// array.h, library.h, expr.h): UC_PRIMITIVE, UC_REFERENCE, UC_ARRAY,
// UC_FUNCTION, UC_VAR, UC_TYPEDEF, UC_CONCAT name-wrapping macros, plus the
// uc_make_object/uc_make_array_of/uc_length_field/uc_add helper templates
// the runtime header defines.
//
// Emission is phase-selectable: phase 1 emits only type declarations, phase
// 2 adds function/method signatures, phase 3 adds bodies. A single pass
// renders every phase; lower phases simply omit later sections so that
// phase 2's output is phase 1's output with signatures added (method
// signatures inside their class bodies, free functions after the classes),
// and phase 3's is phase 2's with bodies filled in, matching the runtime
// headers (§4.6).
package codegen

import (
	"fmt"
	"strings"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/types"
)

// Phase selects how much of the backend contract is emitted.
type Phase int

const (
	// Phase1 emits class forward declarations, field layouts, the implicit
	// default/positional constructors, and == / != operators. No function
	// or method appears at all, not even as a signature.
	Phase1 Phase = 1
	// Phase2 is Phase1 plus free-function and method signatures, bodies
	// elided.
	Phase2 Phase = 2
	// Phase3 is Phase2 plus full statement/expression bodies.
	Phase3 Phase = 3
)

func (p Phase) String() string {
	switch p {
	case Phase1:
		return "phase 1"
	case Phase2:
		return "phase 2"
	case Phase3:
		return "phase 3"
	default:
		return fmt.Sprintf("phase %d", int(p))
	}
}

// runtimeHeaders are the includes every emitted file opens with, per
// spec.md §6: "defs.h, ref.h, array.h, library.h, expr.h".
var runtimeHeaders = []string{"defs.h", "ref.h", "array.h", "library.h", "expr.h"}

// Emitter renders a checked *ast.Program to C++ text. It is scoped to one
// compilation, mirroring the Checker it consumes (internal/semantic).
type Emitter struct {
	reg   *types.Registry
	phase Phase
	buf   strings.Builder
	errs  []*errors.CompilerError
}

// New creates an Emitter over the registry a Checker produced for the
// program being emitted.
func New(reg *types.Registry) *Emitter {
	return &Emitter{reg: reg}
}

// Emit renders prog at the given phase and returns the C++ source text.
// prog must already have been fully checked by internal/semantic (spec.md
// §7: "no backend output is produced if any [symbol or type errors] are
// present" — callers are expected to check Checker.Errors() first).
func (e *Emitter) Emit(prog *ast.Program, phase Phase) (string, error) {
	e.phase = phase
	e.buf.Reset()
	e.errs = nil

	e.writeHeader()
	e.writeForwardDecls()
	e.writeTypedefs(prog)
	e.writeClasses(prog)
	if phase >= Phase2 {
		e.writeFreeFunctions(prog)
	}
	e.writeFooter()

	if len(e.errs) > 0 {
		return "", e.errs[0]
	}
	return e.buf.String(), nil
}

func (e *Emitter) writeHeader() {
	for _, h := range runtimeHeaders {
		fmt.Fprintf(&e.buf, "#include \"%s\"\n", h)
	}
	e.buf.WriteString("\nnamespace uc {\n\n")
}

func (e *Emitter) writeFooter() {
	e.buf.WriteString("\n} // namespace uc\n")
}

// writeForwardDecls declares every class before anything else so mutually
// referencing field types (spec.md §3: "A class may be referenced before
// its definition") never need more than a forward declaration to typecheck
// under C++ as well.
func (e *Emitter) writeForwardDecls() {
	for _, cls := range e.reg.AllClasses() {
		fmt.Fprintf(&e.buf, "class %s;\n", cls.Name)
	}
	if len(e.reg.AllClasses()) > 0 {
		e.buf.WriteString("\n")
	}
}

// writeTypedefs emits `using` aliases in source order, wrapped in
// UC_TYPEDEF so the runtime controls the alias's own mangled name.
func (e *Emitter) writeTypedefs(prog *ast.Program) {
	any := false
	for _, decl := range prog.Decls {
		td, ok := decl.(*ast.TypedefDecl)
		if !ok {
			continue
		}
		resolved, ok := e.reg.ResolvedTypedef(td.Name.Name)
		if !ok {
			e.errf(errors.Backend, td, "internal error: typedef %q left unresolved reaching codegen", td.Name.Name)
			continue
		}
		fmt.Fprintf(&e.buf, "using UC_TYPEDEF(%s) = %s;\n", td.Name.Name, e.typeName(resolved))
		any = true
	}
	if any {
		e.buf.WriteString("\n")
	}
}

func (e *Emitter) errf(kind errors.Kind, node ast.Node, format string, args ...any) {
	e.errs = append(e.errs, errors.New(kind, node.Pos(), fmt.Sprintf(format, args...)))
}
