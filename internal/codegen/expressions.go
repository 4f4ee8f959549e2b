package codegen

import (
	"fmt"
	"strings"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/types"
)

// lowerExpr renders e as a C++ expression. Every overloaded operator lowers
// to its single runtime entry point regardless of which concrete
// OverloadKind/LengthKind the checker computed for it: spec.md's uc_add and
// uc_length_field overload sets already cover every case the checker
// distinguishes, so the distinction is informational metadata on the node,
// not a branch here — the runtime header picks the concrete overload by the
// argument types it sees, the same way C++ overload resolution always does.
func (e *Emitter) lowerExpr(expr ast.Expression) string {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%d", ex.Value)
	case *ast.FloatLiteral:
		return ex.Token.Literal
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", ex.Value)
	case *ast.BoolLiteral:
		if ex.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteral:
		// UC_REFERENCE/UC_ARRAY wrappers carry identity semantics (see the
		// class-equality note in classes.go); like any identity-bearing
		// handle type they're expected to accept nullptr as their "no
		// object" state, the same way a smart pointer does.
		return "nullptr"
	case *ast.Identifier:
		return uVar(ex.Name)
	case *ast.AssignExpr:
		return fmt.Sprintf("%s = %s", e.lowerExpr(ex.Lhs), e.lowerExpr(ex.Rhs))
	case *ast.BinaryExpr:
		return e.lowerBinary(ex)
	case *ast.UnaryExpr:
		return fmt.Sprintf("(%s%s)", ex.Token.Literal, e.lowerExpr(ex.Operand))
	case *ast.CallExpr:
		return fmt.Sprintf("%s(%s)", uVar(ex.Func.Name), e.lowerArgs(ex.Args))
	case *ast.MethodCallExpr:
		return fmt.Sprintf("%s->%s(%s)", e.lowerExpr(ex.Receiver), uVar(ex.Method.Name), e.lowerArgs(ex.Args))
	case *ast.FieldAccessExpr:
		return e.lowerFieldAccess(ex)
	case *ast.IndexExpr:
		return fmt.Sprintf("%s[%s]", e.lowerExpr(ex.Array), e.lowerExpr(ex.Index))
	case *ast.NewObjectExpr:
		return fmt.Sprintf("uc_make_object<UC_REFERENCE(%s)>(%s)", ex.Class.Name, e.lowerArgs(ex.Args))
	case *ast.NewArrayExpr:
		return e.lowerNewArray(ex)
	case *ast.CastExpr:
		return fmt.Sprintf("static_cast<%s>(%s)", e.typeName(ex.GetType().(types.Type)), e.lowerExpr(ex.Expr))
	default:
		return "/* unsupported expression */"
	}
}

func (e *Emitter) lowerArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.lowerExpr(a)
	}
	return strings.Join(parts, ", ")
}

// lowerBinary lowers `+` uniformly to uc_add; relational, equality, and
// logical operators lower to native C++ operator syntax, trusting the
// runtime's primitive/string/reference/array wrapper types to supply the
// matching overload (spec.md §6).
func (e *Emitter) lowerBinary(b *ast.BinaryExpr) string {
	left, right := e.lowerExpr(b.Left), e.lowerExpr(b.Right)
	if b.ResolvedKind == types.AddNumeric || b.ResolvedKind == types.AddConcat {
		return fmt.Sprintf("uc_add(%s, %s)", left, right)
	}
	return fmt.Sprintf("(%s %s %s)", left, b.Token.Literal, right)
}

// lowerFieldAccess always lowers `.length` through uc_length_field,
// regardless of whether the checker resolved it against a declared field or
// the array built-in (spec.md §8, Testable Property 3: the runtime header
// selects the overload by the receiver's expression type, not this
// emitter). Any other field access reaches through the reference wrapper's
// `->`, the same way method calls do.
func (e *Emitter) lowerFieldAccess(fa *ast.FieldAccessExpr) string {
	if fa.LengthKind != ast.LengthUnresolved {
		return fmt.Sprintf("uc_length_field(%s)", e.lowerExpr(fa.Receiver))
	}
	return fmt.Sprintf("%s->%s", e.lowerExpr(fa.Receiver), uVar(fa.Field.Name))
}

func (e *Emitter) lowerNewArray(n *ast.NewArrayExpr) string {
	at, ok := n.GetType().(*types.ArrayType)
	if !ok {
		return "/* unresolved array type */"
	}
	return fmt.Sprintf("uc_make_array_of<%s>(%s)", e.typeName(at.Elem), e.lowerExpr(n.Size))
}

// lowerBlock renders a brace-delimited statement sequence.
func (e *Emitter) lowerBlock(b *ast.BlockStmt) {
	e.buf.WriteString("{\n")
	for _, s := range b.Stmts {
		e.lowerStmt(s)
	}
	e.buf.WriteString("  }")
}

func (e *Emitter) lowerStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.BlockStmt:
		e.lowerBlock(st)
		e.buf.WriteString("\n")
	case *ast.VarDeclStmt:
		e.writeVarDecl(st)
	case *ast.ExprStmt:
		fmt.Fprintf(&e.buf, "    %s;\n", e.lowerExpr(st.Expr))
	case *ast.IfStmt:
		e.lowerIf(st)
	case *ast.WhileStmt:
		fmt.Fprintf(&e.buf, "    while (%s) ", e.lowerExpr(st.Cond))
		e.lowerBlock(st.Body)
		e.buf.WriteString("\n")
	case *ast.ForStmt:
		e.lowerFor(st)
	case *ast.ReturnStmt:
		if st.Value == nil {
			e.buf.WriteString("    return;\n")
			return
		}
		fmt.Fprintf(&e.buf, "    return %s;\n", e.lowerExpr(st.Value))
	}
}

// writeVarDecl emits a local variable declaration. The declared type comes
// from the VarDeclStmt's own Type syntax, resolved the same way every other
// declared type is: through the class/typedef/primitive vocabulary the
// Emitter already renders field and parameter types with.
func (e *Emitter) writeVarDecl(st *ast.VarDeclStmt) {
	typeName := e.typeExprName(st.Type)
	if st.Init != nil {
		fmt.Fprintf(&e.buf, "    %s %s = %s;\n", typeName, uVar(st.Name.Name), e.lowerExpr(st.Init))
		return
	}
	fmt.Fprintf(&e.buf, "    %s %s{};\n", typeName, uVar(st.Name.Name))
}

func (e *Emitter) lowerIf(st *ast.IfStmt) {
	e.buf.WriteString("    ")
	e.lowerIfHead(st)
	e.buf.WriteString("\n")
}

// lowerIfHead renders `if (cond) { ... }` and, recursively, every chained
// `else if`/`else` that follows it, without a leading indent or trailing
// newline of its own (the caller supplies both). Chained else-ifs are
// themselves *ast.IfStmt nodes (internal/parser/statements.go), nested
// arbitrarily deep, so the whole chain has to be walked recursively rather
// than unrolled one level at a time.
func (e *Emitter) lowerIfHead(st *ast.IfStmt) {
	fmt.Fprintf(&e.buf, "if (%s) ", e.lowerExpr(st.Cond))
	e.lowerBlock(st.Then)
	if st.Else == nil {
		return
	}
	e.buf.WriteString(" else ")
	switch els := st.Else.(type) {
	case *ast.BlockStmt:
		e.lowerBlock(els)
	case *ast.IfStmt:
		e.lowerIfHead(els)
	}
}

func (e *Emitter) lowerFor(st *ast.ForStmt) {
	e.buf.WriteString("    for (")
	if st.Init != nil {
		e.lowerForClause(st.Init)
	} else {
		e.buf.WriteString(";")
	}
	if st.Cond != nil {
		fmt.Fprintf(&e.buf, " %s;", e.lowerExpr(st.Cond))
	} else {
		e.buf.WriteString(";")
	}
	if st.Post != nil {
		if es, ok := st.Post.(*ast.ExprStmt); ok {
			fmt.Fprintf(&e.buf, " %s", e.lowerExpr(es.Expr))
		}
	}
	e.buf.WriteString(") ")
	e.lowerBlock(st.Body)
	e.buf.WriteString("\n")
}

// lowerForClause renders a for-loop's init clause inline (no trailing
// newline, a single trailing ';' as the C++ grammar expects).
func (e *Emitter) lowerForClause(s ast.Statement) {
	switch st := s.(type) {
	case *ast.VarDeclStmt:
		typeName := e.typeExprName(st.Type)
		if st.Init != nil {
			fmt.Fprintf(&e.buf, "%s %s = %s;", typeName, uVar(st.Name.Name), e.lowerExpr(st.Init))
			return
		}
		fmt.Fprintf(&e.buf, "%s %s{};", typeName, uVar(st.Name.Name))
	case *ast.ExprStmt:
		fmt.Fprintf(&e.buf, "%s;", e.lowerExpr(st.Expr))
	}
}

// typeExprName resolves a syntactic TypeExpr to its macro-wrapped C++
// spelling, mirroring resolveType in internal/semantic but working from the
// registry alone: by the time codegen runs, every typedef the program
// declares has already been memoized (pass B resolves every one up front),
// and every class name is already in the registry, so no fresh resolution
// state (cycle guards, pending errors) is needed here.
func (e *Emitter) typeExprName(t ast.TypeExpr) string {
	switch tt := t.(type) {
	case *ast.NamedTypeExpr:
		if kind, ok := primitiveKind[tt.Name]; ok {
			return "UC_PRIMITIVE(" + kind + ")"
		}
		if cls := e.reg.LookupClass(tt.Name); cls != nil {
			return "UC_REFERENCE(" + cls.Name + ")"
		}
		if resolved, ok := e.reg.ResolvedTypedef(tt.Name); ok {
			return e.typeName(resolved)
		}
		return "/* unknown type " + tt.Name + " */"
	case *ast.ArrayTypeExpr:
		return "UC_ARRAY(" + e.typeExprName(tt.Elem) + ")"
	case *ast.FuncTypeExpr:
		return e.funcTypeExprName(tt)
	default:
		return "/* unknown type */"
	}
}

func (e *Emitter) funcTypeExprName(tt *ast.FuncTypeExpr) string {
	parts := make([]string, 0, len(tt.Params)+1)
	parts = append(parts, bareTypeExprTag(tt.Return))
	for _, p := range tt.Params {
		parts = append(parts, bareTypeExprTag(p))
	}
	tag := parts[0]
	for _, p := range parts[1:] {
		tag = "UC_CONCAT(" + tag + ", " + p + ")"
	}
	return "UC_FUNCTION(" + tag + ")"
}

func bareTypeExprTag(t ast.TypeExpr) string {
	switch tt := t.(type) {
	case *ast.NamedTypeExpr:
		return tt.Name
	case *ast.ArrayTypeExpr:
		return bareTypeExprTag(tt.Elem) + "Arr"
	case *ast.FuncTypeExpr:
		parts := make([]string, 0, len(tt.Params)+1)
		parts = append(parts, bareTypeExprTag(tt.Return))
		for _, p := range tt.Params {
			parts = append(parts, bareTypeExprTag(p))
		}
		return "Fn" + strings.Join(parts, "")
	default:
		return "Unknown"
	}
}

var primitiveKind = map[string]string{
	"int":     "int",
	"long":    "long",
	"float":   "float",
	"boolean": "boolean",
	"string":  "string",
	"void":    "void",
}
