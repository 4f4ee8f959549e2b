// Package types implements the semantic type system used by the resolver
// (pass B) and checker (pass C): a tagged union of primitive, class, array,
// function, and null-literal types, plus the class/field/method tables pass
// B computes for every class definition.
package types

import "strings"

// PrimitiveKind enumerates uC's primitive types.
type PrimitiveKind int

const (
	Int PrimitiveKind = iota
	Long
	Float
	Boolean
	String
	Void
)

func (k PrimitiveKind) String() string {
	switch k {
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return "?"
	}
}

// Type is the semantic type of an expression or declaration. Two types are
// equal by structural identity: a class type equals another iff they name
// the same class definition (by arena id, see Registry); an array of E1
// equals an array of E2 iff E1 equals E2.
type Type interface {
	isType()
	// Equal reports structural/identity equality, per spec.md §3.
	Equal(other Type) bool
	String() string
}

// PrimitiveType is one of int, long, float, boolean, string, void.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (*PrimitiveType) isType() {}
func (p *PrimitiveType) String() string { return p.Kind.String() }
func (p *PrimitiveType) Equal(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Kind == p.Kind
}

// Primitive is a shared instance for the primitive kind k; the type system
// does not allocate a fresh PrimitiveType per use.
func Primitive(k PrimitiveKind) *PrimitiveType { return primitiveSingletons[k] }

var primitiveSingletons = map[PrimitiveKind]*PrimitiveType{
	Int:     {Kind: Int},
	Long:    {Kind: Long},
	Float:   {Kind: Float},
	Boolean: {Kind: Boolean},
	String:  {Kind: String},
	Void:    {Kind: Void},
}

// ClassType references a class definition by its arena id (see Registry),
// not by name: two ClassType values are equal iff they carry the same id,
// which is stable even across classes with forward-referenced, mutually
// recursive field types.
type ClassType struct {
	ID    int
	Name  string
	Class *ClassInfo
}

func (*ClassType) isType() {}
func (c *ClassType) String() string { return c.Name }
func (c *ClassType) Equal(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o.ID == c.ID
}

// ArrayType is an array of Elem.
type ArrayType struct {
	Elem Type
}

func (*ArrayType) isType() {}
func (a *ArrayType) String() string { return a.Elem.String() + "[]" }
func (a *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && a.Elem.Equal(o.Elem)
}

// FunctionType is a first-class function signature.
type FunctionType struct {
	Params []Type
	Return Type
}

func (*FunctionType) isType() {}
func (f *FunctionType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return f.Return.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (f *FunctionType) Equal(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(o.Params) != len(f.Params) || !f.Return.Equal(o.Return) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

// NullType is the type of the `null` literal: assignable to any class or
// array type, but not itself a target for assignment.
type NullType struct{}

func (*NullType) isType()            {}
func (*NullType) String() string     { return "null" }
func (*NullType) Equal(other Type) bool {
	_, ok := other.(*NullType)
	return ok
}

// IsNumeric reports whether t is int, long, or float.
func IsNumeric(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && (p.Kind == Int || p.Kind == Long || p.Kind == Float)
}

// IsClassOrArray reports whether t can be the target of a `null` assignment.
func IsClassOrArray(t Type) bool {
	switch t.(type) {
	case *ClassType, *ArrayType:
		return true
	default:
		return false
	}
}
