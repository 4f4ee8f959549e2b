package types

import (
	"github.com/uclang/ucc/internal/ast"
)

// FieldInfo is a resolved class field: name, semantic type, and optional
// default-value expression (still unchecked AST; the checker assigns it a
// type like any other expression).
type FieldInfo struct {
	Name    string
	Type    Type
	Default ast.Expression // nil if the field has no default value
	Owner   *ClassInfo     // the class that declared this field
}

// MethodInfo is one overload of a method name on a class.
type MethodInfo struct {
	Name   string
	Params []Type
	Return Type
	Decl   *ast.FunctionDecl
	Owner  *ClassInfo
}

// ClassInfo is a fully resolved class: its field table (inherited fields
// first, per spec.md §4.4), its method overload sets, and its superclass
// link. The ancestor chain is computed once and cached.
type ClassInfo struct {
	ID         int
	Name       string
	Decl       *ast.ClassDecl
	Super      *ClassInfo // nil if this class has no explicit superclass
	Fields     []*FieldInfo
	fieldIndex map[string]int
	Methods    map[string][]*MethodInfo // own methods only, keyed by name
	ancestors  []*ClassInfo             // cached by computeAncestors, nearest first
	ancestorsComputed bool
}

func newClassInfo(id int, name string, decl *ast.ClassDecl) *ClassInfo {
	return &ClassInfo{
		ID:         id,
		Name:       name,
		Decl:       decl,
		fieldIndex: make(map[string]int),
		Methods:    make(map[string][]*MethodInfo),
	}
}

// AddField appends field to the class's own field table (inherited fields
// must already have been appended first by the resolver).
func (c *ClassInfo) AddField(f *FieldInfo) {
	c.fieldIndex[f.Name] = len(c.Fields)
	c.Fields = append(c.Fields, f)
}

// Field looks up a field by name, searching this class only (not
// ancestors — ancestor fields are already copied into Fields by the
// resolver, so this is a flat lookup).
func (c *ClassInfo) Field(name string) (*FieldInfo, bool) {
	i, ok := c.fieldIndex[name]
	if !ok {
		return nil, false
	}
	return c.Fields[i], true
}

// AddMethod registers a method overload under its name.
func (c *ClassInfo) AddMethod(m *MethodInfo) {
	c.Methods[m.Name] = append(c.Methods[m.Name], m)
}

// OwnMethodOverloads returns this class's own overloads of name, not
// including ancestors.
func (c *ClassInfo) OwnMethodOverloads(name string) []*MethodInfo {
	return c.Methods[name]
}

// MethodOverloads returns every overload of name visible on c, own methods
// first, then ancestors nearest-first, per spec.md §4.5 ("inherited methods
// are visible").
func (c *ClassInfo) MethodOverloads(name string) []*MethodInfo {
	var result []*MethodInfo
	result = append(result, c.Methods[name]...)
	for _, anc := range c.Ancestors() {
		result = append(result, anc.Methods[name]...)
	}
	return result
}

// Ancestors returns c's ancestor chain, nearest superclass first, not
// including c itself. The chain is computed once and cached: spec.md §3
// requires it finite and acyclic, which the resolver guarantees before
// calling this.
func (c *ClassInfo) Ancestors() []*ClassInfo {
	if c.ancestorsComputed {
		return c.ancestors
	}
	for cur := c.Super; cur != nil; cur = cur.Super {
		c.ancestors = append(c.ancestors, cur)
	}
	c.ancestorsComputed = true
	return c.ancestors
}

// IsSubclassOf reports whether c is other or descends from other.
func (c *ClassInfo) IsSubclassOf(other *ClassInfo) bool {
	if c.ID == other.ID {
		return true
	}
	for _, anc := range c.Ancestors() {
		if anc.ID == other.ID {
			return true
		}
	}
	return false
}

// CommonAncestor returns the nearest class that is an ancestor of (or equal
// to) both a and b, or nil if they share none — used by equality-operand
// checking (spec.md §4.5: "two classes with a common ancestor").
func CommonAncestor(a, b *ClassInfo) *ClassInfo {
	chainA := append([]*ClassInfo{a}, a.Ancestors()...)
	chainB := map[int]bool{b.ID: true}
	for _, anc := range b.Ancestors() {
		chainB[anc.ID] = true
	}
	for _, c := range chainA {
		if chainB[c.ID] {
			return c
		}
	}
	return nil
}
