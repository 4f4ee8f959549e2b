package ast

import (
	"bytes"

	"github.com/uclang/ucc/internal/lexer"
)

// BlockStmt is a brace-delimited sequence of statements.
type BlockStmt struct {
	Token lexer.Token // the '{' token
	Stmts []Statement
}

func (b *BlockStmt) stmtNode()            {}
func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Stmts {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// VarDeclStmt declares a local variable, optionally with an initializer.
type VarDeclStmt struct {
	Token lexer.Token // the type token
	Name  *Identifier
	Type  TypeExpr
	Init  Expression // nil if uninitialized
}

func (v *VarDeclStmt) stmtNode()            {}
func (v *VarDeclStmt) TokenLiteral() string { return v.Token.Literal }
func (v *VarDeclStmt) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDeclStmt) String() string {
	s := v.Type.String() + " " + v.Name.String()
	if v.Init != nil {
		s += " = " + v.Init.String()
	}
	return s + ";"
}

// ExprStmt is an expression evaluated for effect, terminated by ';'.
// Assignment statements are ExprStmt wrapping an AssignExpr.
type ExprStmt struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExprStmt) stmtNode()            {}
func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExprStmt) String() string       { return e.Expr.String() + ";" }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Token     lexer.Token // the 'if' token
	Cond      Expression
	Then      *BlockStmt
	Else      Statement // *BlockStmt or *IfStmt (else-if chaining), nil if absent
}

func (i *IfStmt) stmtNode()            {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) Pos() lexer.Position  { return i.Token.Pos }
func (i *IfStmt) String() string {
	s := "if (" + i.Cond.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

// WhileStmt is a pretest loop.
type WhileStmt struct {
	Token lexer.Token // the 'while' token
	Cond  Expression
	Body  *BlockStmt
}

func (w *WhileStmt) stmtNode()            {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) Pos() lexer.Position  { return w.Token.Pos }
func (w *WhileStmt) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// ForStmt is a C-style three-clause loop. Init and Post may be nil.
type ForStmt struct {
	Token lexer.Token // the 'for' token
	Init  Statement   // *VarDeclStmt or *ExprStmt, or nil
	Cond  Expression  // nil means "always true"
	Post  Statement   // *ExprStmt, or nil
	Body  *BlockStmt
}

func (f *ForStmt) stmtNode()            {}
func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) Pos() lexer.Position  { return f.Token.Pos }
func (f *ForStmt) String() string {
	return "for (...) " + f.Body.String()
}

// ReturnStmt returns a value (Value non-nil) or returns from a void
// function (Value nil).
type ReturnStmt struct {
	Token lexer.Token // the 'return' token
	Value Expression
}

func (r *ReturnStmt) stmtNode()            {}
func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) Pos() lexer.Position  { return r.Token.Pos }
func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}
