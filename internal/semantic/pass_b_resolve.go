package semantic

import (
	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/types"
)

var primitiveNames = map[string]types.PrimitiveKind{
	"int":     types.Int,
	"long":    types.Long,
	"float":   types.Float,
	"boolean": types.Boolean,
	"string":  types.String,
	"void":    types.Void,
}

// resolveType replaces a syntactic TypeExpr with its semantic Type, per
// spec.md §4.4. Typedefs are transparent: resolving a typedef name yields
// its fully unwrapped aliased type, not a wrapper.
func (c *Checker) resolveType(expr ast.TypeExpr) (types.Type, bool) {
	switch t := expr.(type) {
	case *ast.NamedTypeExpr:
		return c.resolveNamedType(t)
	case *ast.ArrayTypeExpr:
		elem, ok := c.resolveType(t.Elem)
		if !ok {
			return nil, false
		}
		return &types.ArrayType{Elem: elem}, true
	case *ast.FuncTypeExpr:
		ret, ok := c.resolveType(t.Return)
		if !ok {
			return nil, false
		}
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			pt, ok := c.resolveType(p)
			if !ok {
				return nil, false
			}
			params[i] = pt
		}
		return &types.FunctionType{Params: params, Return: ret}, true
	default:
		return nil, false
	}
}

func (c *Checker) resolveNamedType(t *ast.NamedTypeExpr) (types.Type, bool) {
	if kind, ok := primitiveNames[t.Name]; ok {
		return types.Primitive(kind), true
	}
	if cls := c.Registry.LookupClass(t.Name); cls != nil {
		return &types.ClassType{ID: cls.ID, Name: cls.Name, Class: cls}, true
	}
	if c.Registry.HasTypedef(t.Name) {
		return c.resolveTypedef(t.Name, t)
	}
	c.addError(errors.Type, t, "unknown type %s%s", t.Name, suggestionSuffix(t.Name, c.typeNameCandidates()))
	return nil, false
}

// typeNameCandidates lists every name that could have been meant where a
// type name was expected: the primitive vocabulary, declared class names,
// and declared typedef names.
func (c *Checker) typeNameCandidates() []string {
	candidates := make([]string, 0, len(primitiveNames)+len(c.Registry.ClassNames())+len(c.Registry.TypedefNames()))
	for name := range primitiveNames {
		candidates = append(candidates, name)
	}
	candidates = append(candidates, c.Registry.ClassNames()...)
	candidates = append(candidates, c.Registry.TypedefNames()...)
	return candidates
}

// resolveTypedef resolves typedef name to its fully unwrapped type, memoizing
// the result and detecting cyclic aliasing (spec.md §4.4: "on entering an
// in-progress typedef, the resolver reports a cycle").
func (c *Checker) resolveTypedef(name string, at ast.Node) (types.Type, bool) {
	if resolved, ok := c.Registry.ResolvedTypedef(name); ok {
		return resolved, true
	}
	if !c.Registry.BeginResolvingTypedef(name) {
		c.addError(errors.Type, at, "typedef cycle detected involving %q", name)
		return nil, false
	}
	defer c.Registry.FinishResolvingTypedef(name)

	rhs, _ := c.Registry.TypedefSyntax(name)
	resolved, ok := c.resolveType(rhs)
	if !ok {
		return nil, false
	}
	c.Registry.MemoizeTypedef(name, resolved)
	return resolved, true
}

// resolveTypes is pass B (spec.md §4.4): links superclasses, computes field
// tables (inherited first, shadowing rejected), computes method signature
// lists, and registers free-function overloads.
func (c *Checker) resolveTypes(prog *ast.Program) {
	c.linkSuperclasses()

	// Resolve every typedef up front, even ones no class or function ever
	// references, so a cyclic alias is always reported (spec.md §3: "No
	// typedef aliases itself transitively" is a standing invariant, not one
	// that only matters on use).
	for _, decl := range prog.Decls {
		if td, ok := decl.(*ast.TypedefDecl); ok {
			c.resolveTypedef(td.Name.Name, td)
		}
	}

	resolved := make(map[int]bool)
	resolving := make(map[int]bool)
	for _, cls := range c.Registry.AllClasses() {
		c.resolveClassMembers(cls, resolved, resolving)
	}

	for _, decl := range prog.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		c.registerFreeFunction(fn)
	}
}

func (c *Checker) linkSuperclasses() {
	for _, cls := range c.Registry.AllClasses() {
		if cls.Decl.Superclass == nil {
			continue
		}
		super := c.Registry.LookupClass(cls.Decl.Superclass.Name)
		if super == nil {
			name := cls.Decl.Superclass.Name
			c.addError(errors.Type, cls.Decl.Superclass, "unknown superclass %q%s", name, suggestionSuffix(name, c.Registry.ClassNames()))
			continue
		}
		cls.Super = super
	}
	// Detect inheritance cycles before anything walks Ancestors(), which
	// would otherwise loop forever.
	for _, cls := range c.Registry.AllClasses() {
		seen := map[int]bool{cls.ID: true}
		for cur := cls.Super; cur != nil; cur = cur.Super {
			if seen[cur.ID] {
				c.addError(errors.Type, cls.Decl, "circular inheritance involving class %q", cls.Name)
				cls.Super = nil
				break
			}
			seen[cur.ID] = true
		}
	}
}

// resolveClassMembers computes cls's field table and method signatures,
// first ensuring its superclass (if any) is fully resolved so inherited
// fields can be copied in, memoized and cycle-guarded the same way typedefs
// are (forward-referenced classes are legal; a cycle through inheritance was
// already broken by linkSuperclasses).
func (c *Checker) resolveClassMembers(cls *types.ClassInfo, resolved, resolving map[int]bool) {
	if resolved[cls.ID] || resolving[cls.ID] {
		return
	}
	resolving[cls.ID] = true
	defer delete(resolving, cls.ID)

	if cls.Super != nil {
		c.resolveClassMembers(cls.Super, resolved, resolving)
		for _, f := range cls.Super.Fields {
			cls.AddField(f)
		}
	}

	ownNames := make(map[string]bool)
	for _, fd := range cls.Decl.Fields {
		if ownNames[fd.Name.Name] {
			c.addError(errors.Symbol, fd, "duplicate field %q in class %q", fd.Name.Name, cls.Name)
			continue
		}
		ownNames[fd.Name.Name] = true
		if _, inherited := cls.Field(fd.Name.Name); inherited {
			c.addError(errors.Symbol, fd, "field %q shadows an inherited field in class %q", fd.Name.Name, cls.Name)
			continue
		}
		ft, ok := c.resolveType(fd.Type)
		if !ok {
			continue
		}
		cls.AddField(&types.FieldInfo{Name: fd.Name.Name, Type: ft, Default: fd.Default, Owner: cls})
	}

	for _, md := range cls.Decl.Methods {
		params, ret := c.resolveSignature(md)
		if params == nil && len(md.Params) > 0 {
			continue
		}
		cls.AddMethod(&types.MethodInfo{Name: md.Name.Name, Params: params, Return: ret, Decl: md, Owner: cls})
	}

	resolved[cls.ID] = true
}

// resolveSignature resolves a function/method's parameter and return types.
// It returns a non-nil empty slice (not nil) when there are zero parameters,
// so callers can distinguish "resolved, zero params" from "a param failed to
// resolve" when len(md.Params) > 0.
func (c *Checker) resolveSignature(fn *ast.FunctionDecl) ([]types.Type, types.Type) {
	ret, ok := c.resolveType(fn.ReturnType)
	if !ok {
		ret = types.Primitive(types.Void)
	}
	params := make([]types.Type, 0, len(fn.Params))
	for _, p := range fn.Params {
		pt, ok := c.resolveType(p.Type)
		if !ok {
			return nil, ret
		}
		params = append(params, pt)
	}
	return params, ret
}

func (c *Checker) registerFreeFunction(fn *ast.FunctionDecl) {
	params, ret := c.resolveSignature(fn)
	if params == nil && len(fn.Params) > 0 {
		return
	}
	c.Registry.DeclareFunction(&types.FunctionInfo{Name: fn.Name.Name, Params: params, Return: ret, Decl: fn})
}
