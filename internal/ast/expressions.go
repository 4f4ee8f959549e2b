package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/uclang/ucc/internal/lexer"
)

// IntegerLiteral is an integer literal; its type is always int.
type IntegerLiteral struct {
	typed
	Token lexer.Token
	Value int64
}

func (l *IntegerLiteral) exprNode()            {}
func (l *IntegerLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *IntegerLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *IntegerLiteral) String() string       { return strconv.FormatInt(l.Value, 10) }

// FloatLiteral is a floating-point literal; its type is always float.
type FloatLiteral struct {
	typed
	Token lexer.Token
	Value float64
}

func (l *FloatLiteral) exprNode()            {}
func (l *FloatLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *FloatLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *FloatLiteral) String() string       { return l.Token.Literal }

// StringLiteral is a double-quoted string literal with escapes resolved.
type StringLiteral struct {
	typed
	Token lexer.Token
	Value string
}

func (l *StringLiteral) exprNode()            {}
func (l *StringLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *StringLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *StringLiteral) String() string       { return strconv.Quote(l.Value) }

// BoolLiteral is the `true` or `false` keyword used as a value.
type BoolLiteral struct {
	typed
	Token lexer.Token
	Value bool
}

func (l *BoolLiteral) exprNode()            {}
func (l *BoolLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BoolLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *BoolLiteral) String() string       { return l.Token.Literal }

// NullLiteral is the `null` keyword; assignable to any class or array type.
type NullLiteral struct {
	typed
	Token lexer.Token
}

func (l *NullLiteral) exprNode()            {}
func (l *NullLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *NullLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *NullLiteral) String() string       { return "null" }

// AssignExpr is `lhs = rhs`, right-associative, evaluating to the assigned
// value. lhs must be an assignable place: a variable, a field access, or an
// array index.
type AssignExpr struct {
	typed
	Token lexer.Token // the '=' token
	Lhs   Expression
	Rhs   Expression
}

func (a *AssignExpr) exprNode()            {}
func (a *AssignExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AssignExpr) Pos() lexer.Position  { return a.Token.Pos }
func (a *AssignExpr) String() string       { return a.Lhs.String() + " = " + a.Rhs.String() }

// BinaryExpr is a binary operator application. ResolvedKind is set by the
// checker (pass C) for overloaded operators (+, ==, !=) to record which
// concrete lowering the backend must emit; its concrete type is
// types.OverloadKind (package internal/types, see ast.Expression's doc).
type BinaryExpr struct {
	typed
	Token        lexer.Token // the operator token
	Op           lexer.TokenType
	Left, Right  Expression
	ResolvedKind any
}

func (b *BinaryExpr) exprNode()            {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Token.Literal + " " + b.Right.String() + ")"
}

// UnaryExpr is unary `!` or unary `-`.
type UnaryExpr struct {
	typed
	Token   lexer.Token
	Op      lexer.TokenType
	Operand Expression
}

func (u *UnaryExpr) exprNode()            {}
func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string       { return "(" + u.Token.Literal + u.Operand.String() + ")" }

// CallExpr calls a free function.
type CallExpr struct {
	typed
	Token    lexer.Token // the '(' token
	Func     *Identifier
	Args     []Expression
	Resolved any // *types.FunctionInfo chosen by overload resolution
}

func (c *CallExpr) exprNode()            {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Func.String() + "(" + strings.Join(args, ", ") + ")"
}

// MethodCallExpr calls a method on a receiver expression.
type MethodCallExpr struct {
	typed
	Token    lexer.Token // the '(' token
	Receiver Expression
	Method   *Identifier
	Args     []Expression
	Resolved any // *types.MethodInfo chosen by overload resolution
}

func (m *MethodCallExpr) exprNode()            {}
func (m *MethodCallExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MethodCallExpr) Pos() lexer.Position  { return m.Token.Pos }
func (m *MethodCallExpr) String() string {
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.String()
	}
	return m.Receiver.String() + "." + m.Method.String() + "(" + strings.Join(args, ", ") + ")"
}

// LengthKind records how a `.length` access resolved: to a declared class
// field named `length`, or to the built-in array-length operation. Set by
// the checker; spec.md's rule is "class field wins" when both are possible.
type LengthKind int

const (
	LengthUnresolved LengthKind = iota
	LengthField
	LengthArrayBuiltin
)

// FieldAccessExpr is `receiver.name`. When Field.Name == "length" the
// checker distinguishes a length-field access from an array-length access
// and records the choice in LengthKind.
type FieldAccessExpr struct {
	typed
	Token      lexer.Token // the '.' token
	Receiver   Expression
	Field      *Identifier
	LengthKind LengthKind
}

func (f *FieldAccessExpr) exprNode()            {}
func (f *FieldAccessExpr) TokenLiteral() string { return f.Token.Literal }
func (f *FieldAccessExpr) Pos() lexer.Position  { return f.Token.Pos }
func (f *FieldAccessExpr) String() string       { return f.Receiver.String() + "." + f.Field.String() }

// IndexExpr is `array[index]`.
type IndexExpr struct {
	typed
	Token lexer.Token // the '[' token
	Array Expression
	Index Expression
}

func (i *IndexExpr) exprNode()            {}
func (i *IndexExpr) TokenLiteral() string { return i.Token.Literal }
func (i *IndexExpr) Pos() lexer.Position  { return i.Token.Pos }
func (i *IndexExpr) String() string       { return i.Array.String() + "[" + i.Index.String() + "]" }

// NewObjectExpr is `new C(args)`, matched against C's default or
// positional-by-field constructor.
type NewObjectExpr struct {
	typed
	Token    lexer.Token // the 'new' token
	Class    *Identifier
	Args     []Expression
	Resolved any // types.ConstructorKind chosen: default vs. positional
}

func (n *NewObjectExpr) exprNode()            {}
func (n *NewObjectExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NewObjectExpr) Pos() lexer.Position  { return n.Token.Pos }
func (n *NewObjectExpr) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return "new " + n.Class.String() + "(" + strings.Join(args, ", ") + ")"
}

// NewArrayExpr is `new T[n]`.
type NewArrayExpr struct {
	typed
	Token    lexer.Token // the 'new' token
	ElemType TypeExpr
	Size     Expression
}

func (n *NewArrayExpr) exprNode()            {}
func (n *NewArrayExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NewArrayExpr) Pos() lexer.Position  { return n.Token.Pos }
func (n *NewArrayExpr) String() string {
	return "new " + n.ElemType.String() + "[" + n.Size.String() + "]"
}

// CastExpr converts Expr to Target's type.
type CastExpr struct {
	typed
	Token  lexer.Token // the '(' token of the cast
	Target TypeExpr
	Expr   Expression
}

func (c *CastExpr) exprNode()            {}
func (c *CastExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CastExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CastExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(c.Target.String())
	out.WriteString(")")
	out.WriteString(c.Expr.String())
	return out.String()
}
