package codegen

import (
	"fmt"
	"strings"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/types"
)

// writeFreeFunctions emits every top-level function's signature (phase >= 2)
// and body (phase >= 3), in source order.
func (e *Emitter) writeFreeFunctions(prog *ast.Program) {
	for _, decl := range prog.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		fi := findFunctionInfo(e.reg, fn)
		if fi == nil {
			e.errf(errors.Backend, fn, "internal error: function %q missing from registry reaching codegen", fn.Name.Name)
			continue
		}
		e.writeFunctionSignature(fn, fi.Params, fi.Return, false)
		e.writeFunctionBody(fn)
	}
}

// writeMethods emits a class's own methods' signatures (phase >= 2) and
// bodies (phase >= 3). Marked virtual uniformly: uC supports single
// inheritance and polymorphism, and nothing about the static-overload
// resolution the checker performs prevents a subclass from overriding a
// same-named, same-signature method; emitting every method virtual is what
// makes that override meaningful in the generated C++ without requiring an
// explicit "override" marker in the source grammar.
func (e *Emitter) writeMethods(cls *types.ClassInfo) {
	for _, md := range cls.Decl.Methods {
		mi := findMethodInfo(cls, md)
		if mi == nil {
			e.errf(errors.Backend, md, "internal error: method %q missing from class %q reaching codegen", md.Name.Name, cls.Name)
			continue
		}
		e.writeFunctionSignature(md, mi.Params, mi.Return, true)
		e.writeFunctionBody(md)
	}
}

func (e *Emitter) writeFunctionSignature(fn *ast.FunctionDecl, params []types.Type, ret types.Type, method bool) {
	parts := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		parts[i] = fmt.Sprintf("%s %s", e.typeName(params[i]), uVar(p.Name.Name))
	}
	prefix := "  "
	if method {
		prefix += "virtual "
	}
	fmt.Fprintf(&e.buf, "%s%s %s(%s)", prefix, e.typeName(ret), uVar(fn.Name.Name), strings.Join(parts, ", "))
}

func (e *Emitter) writeFunctionBody(fn *ast.FunctionDecl) {
	if e.phase < Phase3 {
		e.buf.WriteString(";\n")
		return
	}
	e.buf.WriteString(" ")
	e.lowerBlock(fn.Body)
	e.buf.WriteString("\n")
}

func findFunctionInfo(reg *types.Registry, fn *ast.FunctionDecl) *types.FunctionInfo {
	for _, fi := range reg.Functions(fn.Name.Name) {
		if fi.Decl == fn {
			return fi
		}
	}
	return nil
}

func findMethodInfo(cls *types.ClassInfo, fn *ast.FunctionDecl) *types.MethodInfo {
	for _, mi := range cls.OwnMethodOverloads(fn.Name.Name) {
		if mi.Decl == fn {
			return mi
		}
	}
	return nil
}
