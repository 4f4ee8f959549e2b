package ast

import (
	"bytes"
	"strings"

	"github.com/uclang/ucc/internal/lexer"
)

// TypeExpr is the syntactic shape of a type reference as written in source:
// a primitive or class name, an array suffix, or a function-type signature.
// The type resolver (pass B) replaces every TypeExpr with a semantic
// *types.Type; TypeExpr itself carries no semantic information.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is a bare type name: a primitive keyword, a class name, or a
// typedef name.
type NamedTypeExpr struct {
	Token lexer.Token
	Name  string
}

func (t *NamedTypeExpr) typeExprNode()          {}
func (t *NamedTypeExpr) TokenLiteral() string   { return t.Token.Literal }
func (t *NamedTypeExpr) String() string         { return t.Name }
func (t *NamedTypeExpr) Pos() lexer.Position    { return t.Token.Pos }

// ArrayTypeExpr is an element type suffixed with one `[]`. Repeated
// suffixes nest: `int[][]` is ArrayTypeExpr{Elem: ArrayTypeExpr{Elem: int}}.
type ArrayTypeExpr struct {
	Token lexer.Token // the '[' token
	Elem  TypeExpr
}

func (t *ArrayTypeExpr) typeExprNode()        {}
func (t *ArrayTypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *ArrayTypeExpr) String() string       { return t.Elem.String() + "[]" }
func (t *ArrayTypeExpr) Pos() lexer.Position  { return t.Token.Pos }

// FuncTypeExpr is a first-class function type annotation: `R(P1, P2, ...)`.
type FuncTypeExpr struct {
	Token  lexer.Token // the '(' token
	Return TypeExpr
	Params []TypeExpr
}

func (t *FuncTypeExpr) typeExprNode()        {}
func (t *FuncTypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *FuncTypeExpr) Pos() lexer.Position  { return t.Token.Pos }
func (t *FuncTypeExpr) String() string {
	var out bytes.Buffer
	out.WriteString(t.Return.String())
	out.WriteString("(")
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	return out.String()
}
