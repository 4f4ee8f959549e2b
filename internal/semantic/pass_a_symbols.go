package semantic

import (
	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
)

// collectSymbols is pass A (spec.md §4.3): a single left-to-right traversal
// that interns every class and typedef name into the registry so that later
// passes can resolve forward references. Member lookup does not happen
// here; only the name exists after this pass.
func (c *Checker) collectSymbols(prog *ast.Program) {
	declaredAt := make(map[string]ast.Node)

	checkDuplicate := func(name string, node ast.Node) bool {
		if prev, ok := declaredAt[name]; ok {
			c.addError(errors.Symbol, node, "duplicate top-level name %q (previously declared at %s)", name, prev.Pos())
			return false
		}
		declaredAt[name] = node
		return true
	}

	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			if checkDuplicate(d.Name.Name, d) {
				c.Registry.DeclareClass(d.Name.Name, d)
			}
		case *ast.TypedefDecl:
			if checkDuplicate(d.Name.Name, d) {
				c.Registry.DeclareTypedef(d.Name.Name, d.Alias)
			}
		case *ast.FunctionDecl:
			// Free functions are collected in pass B, once parameter and
			// return types can be resolved (function overloads are keyed
			// by signature, not just name, so no duplicate-name check
			// happens here).
		}
	}
}
