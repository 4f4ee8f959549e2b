// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the semantic passes.
package ast

import (
	"bytes"

	"github.com/uclang/ucc/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Decl is a top-level declaration: a typedef, a class, or a free function.
type Decl interface {
	Node
	declNode()
}

// Statement is a node that performs an action but does not itself produce a
// value.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a node that produces a value. After pass C every Expression
// carries a non-nil inferred type, attached via SetType/GetType.
//
// The attached value's concrete type is *types.Type (package
// internal/types); it is stored here as `any` rather than a typed field so
// that the ast package, which the types package itself depends on (class
// field defaults and method bodies are ast.Expression/ast.Statement), does
// not import types back and create a cycle. internal/semantic and
// internal/codegen, which depend on both packages, perform the assertion.
type Expression interface {
	Node
	exprNode()
	GetType() any
	SetType(any)
}

// typed is embedded by every Expression implementation to provide the
// inferred-type attribute uniformly.
type typed struct {
	inferred any
}

func (t *typed) GetType() any   { return t.inferred }
func (t *typed) SetType(v any)  { t.inferred = v }

// Program is the root node: an ordered sequence of top-level declarations.
// Order is preserved for diagnostics but does not restrict reference order
// between declarations (forward references are legal).
type Program struct {
	Decls []Decl
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Decls {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Identifier is a bare name: a variable reference, a type name, a field or
// method name occurrence, etc. Which binding it resolves to depends on
// context and is recorded by the semantic passes, not on the node itself.
type Identifier struct {
	typed
	Token lexer.Token
	Name  string
}

func (i *Identifier) exprNode()              {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Name }
func (i *Identifier) Pos() lexer.Position    { return i.Token.Pos }
