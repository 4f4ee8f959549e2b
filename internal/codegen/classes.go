package codegen

import (
	"fmt"
	"strings"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/types"
)

// writeClasses emits every class's full body, base classes before their
// subclasses, regardless of phase — the implicit constructors and equality
// operators are always part of a class's body, per spec.md §4.6's phase 1
// description. A subclass may be declared ahead of its superclass in source
// (forward references are legal, resolved by registry lookup regardless of
// order), but unlike a forward-referenced field, which only ever needs an
// incomplete type behind UC_REFERENCE, a `class Derived : public Base`
// requires Base to already be a complete type. classEmitOrder keeps source
// order among classes with no dependency between them (spec.md §8 Invariant
// 5 scopes its reordering guarantee to "independent" declarations) while
// still pulling every ancestor ahead of its descendants.
func (e *Emitter) writeClasses(prog *ast.Program) {
	for _, cls := range e.classEmitOrder(prog) {
		e.writeClass(cls)
	}
}

// classEmitOrder walks prog.Decls in source order, visiting each class's
// superclass chain before the class itself, so every base class is emitted
// ahead of anything that derives from it.
func (e *Emitter) classEmitOrder(prog *ast.Program) []*types.ClassInfo {
	order := make([]*types.ClassInfo, 0, len(prog.Decls))
	visited := make(map[int]bool)

	var visit func(cls *types.ClassInfo)
	visit = func(cls *types.ClassInfo) {
		if cls == nil || visited[cls.ID] {
			return
		}
		visited[cls.ID] = true
		visit(cls.Super)
		order = append(order, cls)
	}

	for _, decl := range prog.Decls {
		cd, ok := decl.(*ast.ClassDecl)
		if !ok {
			continue
		}
		cls := e.reg.LookupClass(cd.Name.Name)
		if cls == nil {
			e.errf(errors.Backend, cd, "internal error: class %q missing from registry reaching codegen", cd.Name.Name)
			continue
		}
		visit(cls)
	}
	return order
}

func (e *Emitter) writeClass(cls *types.ClassInfo) {
	if cls.Super != nil {
		fmt.Fprintf(&e.buf, "class %s : public %s {\n", cls.Name, cls.Super.Name)
	} else {
		fmt.Fprintf(&e.buf, "class %s {\n", cls.Name)
	}
	e.buf.WriteString("public:\n")

	e.writeFields(cls)
	e.buf.WriteString("\n")
	e.writeDefaultCtor(cls)
	e.writePositionalCtor(cls)
	e.buf.WriteString("\n")
	e.writeEquality(cls)

	if e.phase >= Phase2 {
		e.buf.WriteString("\n")
		e.writeMethods(cls)
	}

	e.buf.WriteString("};\n\n")
}

// writeFields declares this class's own fields, each with an in-class
// default member initializer: the field's declared default expression if
// it has one, or an empty brace-init otherwise. Because every constructor
// (including the implicit, compiler-generated default constructor) applies
// member initializers that aren't overridden by its own init list, this is
// sufficient on its own to give every field its spec.md §3 "default-initialized"
// value without the emitter hand-rolling a per-type zero value.
func (e *Emitter) writeFields(cls *types.ClassInfo) {
	for _, fd := range cls.Decl.Fields {
		field, ok := cls.Field(fd.Name.Name)
		if !ok {
			continue
		}
		init := ""
		if fd.Default != nil {
			init = e.lowerExpr(fd.Default)
		}
		fmt.Fprintf(&e.buf, "  %s %s{%s};\n", e.typeName(field.Type), uVar(fd.Name.Name), init)
	}
}

// writeDefaultCtor emits the no-argument constructor (spec.md §3: "implicitly
// admits a no-argument constructor producing default-initialized fields").
// `= default` is sufficient: it invokes the base class's default constructor
// (if any) and every field's own in-class initializer.
func (e *Emitter) writeDefaultCtor(cls *types.ClassInfo) {
	fmt.Fprintf(&e.buf, "  %s() = default;\n", cls.Name)
}

// writePositionalCtor emits the constructor taking every field (inherited
// first, then own, in declared order) per spec.md §3. Skipped when the
// class has zero total fields, since its signature would collide with the
// default constructor above.
func (e *Emitter) writePositionalCtor(cls *types.ClassInfo) {
	if len(cls.Fields) == 0 {
		return
	}
	params := make([]string, len(cls.Fields))
	for i, f := range cls.Fields {
		params[i] = fmt.Sprintf("%s %s", e.typeName(f.Type), uVar(f.Name))
	}

	var init []string
	if cls.Super != nil {
		baseArgs := make([]string, len(cls.Super.Fields))
		for i, f := range cls.Super.Fields {
			baseArgs[i] = uVar(f.Name)
		}
		init = append(init, fmt.Sprintf("%s(%s)", cls.Super.Name, strings.Join(baseArgs, ", ")))
	}
	for _, fd := range cls.Decl.Fields {
		init = append(init, fmt.Sprintf("%s(%s)", uVar(fd.Name.Name), uVar(fd.Name.Name)))
	}

	fmt.Fprintf(&e.buf, "  %s(%s)", cls.Name, strings.Join(params, ", "))
	if len(init) > 0 {
		fmt.Fprintf(&e.buf, " : %s", strings.Join(init, ", "))
	}
	e.buf.WriteString(" {}\n")
}

// writeEquality emits `==`/`!=` comparing every field in cls.Fields,
// inherited ones included by name (they're reachable directly through the
// public base-class inheritance writeClass established). Whether two
// references are the same object, or whether they hold the same dynamic
// class at all, is the reference wrapper's job (UC_REFERENCE's own
// operator==, built on uc_id — spec.md §6): by the time the runtime
// delegates to this member operator, both operands are already known to be
// the exact same concrete class, so this only needs to compare fields.
func (e *Emitter) writeEquality(cls *types.ClassInfo) {
	body := "true"
	if len(cls.Fields) > 0 {
		parts := make([]string, len(cls.Fields))
		for i, f := range cls.Fields {
			parts[i] = fmt.Sprintf("%s == other.%s", uVar(f.Name), uVar(f.Name))
		}
		body = strings.Join(parts, " && ")
	}
	fmt.Fprintf(&e.buf, "  bool operator==(const %s& other) const { return %s; }\n", cls.Name, body)
	fmt.Fprintf(&e.buf, "  bool operator!=(const %s& other) const { return !(*this == other); }\n", cls.Name)
}
