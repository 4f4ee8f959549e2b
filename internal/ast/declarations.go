package ast

import (
	"bytes"
	"strings"

	"github.com/uclang/ucc/internal/lexer"
)

// TypedefDecl binds a name to an aliased type: `typedef T U;` binds U to T.
type TypedefDecl struct {
	Token lexer.Token // the 'typedef' token
	Name  *Identifier
	Alias TypeExpr
}

func (d *TypedefDecl) declNode()            {}
func (d *TypedefDecl) TokenLiteral() string { return d.Token.Literal }
func (d *TypedefDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *TypedefDecl) String() string {
	return "typedef " + d.Alias.String() + " " + d.Name.String() + ";"
}

// Param is a single function or method parameter.
type Param struct {
	Name *Identifier
	Type TypeExpr
}

func (p *Param) String() string { return p.Type.String() + " " + p.Name.String() }

// FunctionDecl is a free function or, when Receiver is non-empty, a method
// inside a class body. The shape is identical; the parser sets Receiver to
// the owning class name when it parses a method.
type FunctionDecl struct {
	Token      lexer.Token // the return-type or leading token
	Name       *Identifier
	ReturnType TypeExpr
	Params     []*Param
	Body       *BlockStmt
	Receiver   string // set to the owning class name for methods, empty for free functions
}

func (f *FunctionDecl) declNode()            {}
func (f *FunctionDecl) stmtNode()            {}
func (f *FunctionDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDecl) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString(f.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(f.Name.String())
	out.WriteString("(")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(") ")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	}
	return out.String()
}

// Signature returns the ordered parameter types and return type as written,
// before any type resolution.
func (f *FunctionDecl) Signature() (params []TypeExpr, ret TypeExpr) {
	params = make([]TypeExpr, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return params, f.ReturnType
}

// FieldDecl is a class field: a name, a declared type, and an optional
// default-value expression.
type FieldDecl struct {
	Token   lexer.Token // the type token
	Name    *Identifier
	Type    TypeExpr
	Default Expression // nil if no default value is given
}

func (f *FieldDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FieldDecl) Pos() lexer.Position  { return f.Token.Pos }
func (f *FieldDecl) String() string {
	s := f.Type.String() + " " + f.Name.String()
	if f.Default != nil {
		s += " = " + f.Default.String()
	}
	return s + ";"
}

// ClassDecl is a class definition: an optional superclass, fields, and
// methods. A class may be referenced before its definition appears in
// source; the symbol collector (pass A) resolves forward references.
type ClassDecl struct {
	Token      lexer.Token // the 'class' token
	Name       *Identifier
	Superclass *Identifier // nil if the class has no explicit superclass
	Fields     []*FieldDecl
	Methods    []*FunctionDecl
}

func (c *ClassDecl) declNode()            {}
func (c *ClassDecl) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDecl) Pos() lexer.Position  { return c.Token.Pos }
func (c *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(c.Name.String())
	if c.Superclass != nil {
		out.WriteString(" : ")
		out.WriteString(c.Superclass.String())
	}
	out.WriteString(" {\n")
	for _, f := range c.Fields {
		out.WriteString("  " + f.String() + "\n")
	}
	for _, m := range c.Methods {
		out.WriteString("  " + m.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}
