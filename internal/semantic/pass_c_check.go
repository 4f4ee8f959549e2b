package semantic

import (
	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/errors"
	"github.com/uclang/ucc/internal/lexer"
	"github.com/uclang/ucc/internal/types"
)

// checkProgram is pass C (spec.md §4.5): walks every declaration, attaching
// a semantic type to every expression node. Only the first error found in a
// declaration is kept; anything reported after it in the same declaration
// is dropped, and the next declaration is still checked (spec.md §4.5, §7).
func (c *Checker) checkProgram(prog *ast.Program) {
	for _, decl := range prog.Decls {
		before := len(c.errs)
		switch d := decl.(type) {
		case *ast.ClassDecl:
			c.checkClass(d)
		case *ast.FunctionDecl:
			c.checkFunction(d, nil)
		}
		if len(c.errs) > before+1 {
			c.errs = c.errs[:before+1]
		}
	}
}

func (c *Checker) checkClass(cd *ast.ClassDecl) {
	cls := c.Registry.LookupClass(cd.Name.Name)
	if cls == nil {
		return
	}
	for _, fd := range cd.Fields {
		if fd.Default == nil {
			continue
		}
		field, ok := cls.Field(fd.Name.Name)
		if !ok {
			continue // already reported in pass B
		}
		c.scopes = nil
		c.fn = nil
		t := c.checkExpr(fd.Default)
		if !types.Assignable(t, field.Type) {
			c.addError(errors.Type, fd.Default, "default value of type %s is not assignable to field %q of type %s", t, fd.Name.Name, field.Type)
		}
	}
	for _, md := range cd.Methods {
		c.checkFunction(md, cls)
	}
}

func (c *Checker) checkFunction(fn *ast.FunctionDecl, receiver *types.ClassInfo) {
	ret, ok := c.resolveType(fn.ReturnType)
	if !ok {
		ret = types.Primitive(types.Void)
	}
	c.fn = &funcContext{returnType: ret, receiver: receiver}
	c.scopes = nil
	c.pushScope()
	for _, p := range fn.Params {
		pt, ok := c.resolveType(p.Type)
		if !ok {
			pt = types.Primitive(types.Void)
		}
		c.declareLocal(p.Name.Name, pt)
	}
	c.checkStmt(fn.Body)
	c.popScope()

	if ret.Equal(types.Primitive(types.Void)) {
		return
	}
	if !blockReturnsOnAllPaths(fn.Body) {
		c.addError(errors.Type, fn, "function %q does not return a value on all control-flow paths", fn.Name.Name)
	}
}

// blockReturnsOnAllPaths implements the flow rule from spec.md §4.5: a block
// returns if its last statement returns; if/else returns if both branches
// return. Loops are never considered to guarantee a return.
func blockReturnsOnAllPaths(b *ast.BlockStmt) bool {
	if len(b.Stmts) == 0 {
		return false
	}
	return stmtReturnsOnAllPaths(b.Stmts[len(b.Stmts)-1])
}

func stmtReturnsOnAllPaths(s ast.Statement) bool {
	switch st := s.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.BlockStmt:
		return blockReturnsOnAllPaths(st)
	case *ast.IfStmt:
		if st.Else == nil {
			return false
		}
		return stmtReturnsOnAllPaths(st.Then) && stmtReturnsOnAllPaths(st.Else)
	default:
		return false
	}
}

func (c *Checker) pushScope() { c.scopes = append(c.scopes, map[string]types.Type{}) }
func (c *Checker) popScope()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *Checker) declareLocal(name string, t types.Type) {
	c.scopes[len(c.scopes)-1][name] = t
}

func (c *Checker) lookupLocal(name string) (types.Type, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// checkStmt type-checks a statement and everything beneath it.
func (c *Checker) checkStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.BlockStmt:
		c.pushScope()
		for _, inner := range st.Stmts {
			c.checkStmt(inner)
		}
		c.popScope()
	case *ast.VarDeclStmt:
		declared, ok := c.resolveType(st.Type)
		if !ok {
			declared = types.Primitive(types.Void)
		}
		if st.Init != nil {
			initType := c.checkExpr(st.Init)
			if !types.Assignable(initType, declared) {
				c.addError(errors.Type, st.Init, "cannot initialize variable %q of type %s with value of type %s", st.Name.Name, declared, initType)
			}
		}
		c.declareLocal(st.Name.Name, declared)
	case *ast.ExprStmt:
		c.checkExpr(st.Expr)
	case *ast.IfStmt:
		c.checkCondition(st.Cond)
		c.checkStmt(st.Then)
		if st.Else != nil {
			c.checkStmt(st.Else)
		}
	case *ast.WhileStmt:
		c.checkCondition(st.Cond)
		c.checkStmt(st.Body)
	case *ast.ForStmt:
		c.pushScope()
		if st.Init != nil {
			c.checkStmt(st.Init)
		}
		if st.Cond != nil {
			c.checkCondition(st.Cond)
		}
		if st.Post != nil {
			c.checkStmt(st.Post)
		}
		c.checkStmt(st.Body)
		c.popScope()
	case *ast.ReturnStmt:
		c.checkReturn(st)
	}
}

func (c *Checker) checkCondition(cond ast.Expression) {
	t := c.checkExpr(cond)
	if !t.Equal(types.Primitive(types.Boolean)) {
		c.addError(errors.Type, cond, "condition must be boolean, got %s", t)
	}
}

func (c *Checker) checkReturn(st *ast.ReturnStmt) {
	isVoid := c.fn.returnType.Equal(types.Primitive(types.Void))
	if st.Value == nil {
		if !isVoid {
			c.addError(errors.Type, st, "missing return value in function returning %s", c.fn.returnType)
		}
		return
	}
	t := c.checkExpr(st.Value)
	if isVoid {
		c.addError(errors.Type, st.Value, "unexpected return value in void function")
		return
	}
	if !types.Assignable(t, c.fn.returnType) {
		c.addError(errors.Type, st.Value, "return value of type %s is not assignable to return type %s", t, c.fn.returnType)
	}
}

// errorType is returned by checkExpr after reporting an error. It is plain
// void; a follow-on diagnostic that a use of it triggers in the same
// declaration is dropped by checkProgram, which keeps only a declaration's
// first error.
func errorType() types.Type { return types.Primitive(types.Void) }

func (c *Checker) checkExpr(e ast.Expression) types.Type {
	var t types.Type
	switch expr := e.(type) {
	case *ast.IntegerLiteral:
		t = types.Primitive(types.Int)
	case *ast.FloatLiteral:
		t = types.Primitive(types.Float)
	case *ast.StringLiteral:
		t = types.Primitive(types.String)
	case *ast.BoolLiteral:
		t = types.Primitive(types.Boolean)
	case *ast.NullLiteral:
		t = &types.NullType{}
	case *ast.Identifier:
		t = c.checkIdentifier(expr)
	case *ast.AssignExpr:
		t = c.checkAssign(expr)
	case *ast.BinaryExpr:
		t = c.checkBinary(expr)
	case *ast.UnaryExpr:
		t = c.checkUnary(expr)
	case *ast.CallExpr:
		t = c.checkCall(expr)
	case *ast.MethodCallExpr:
		t = c.checkMethodCall(expr)
	case *ast.FieldAccessExpr:
		t = c.checkFieldAccess(expr)
	case *ast.IndexExpr:
		t = c.checkIndex(expr)
	case *ast.NewObjectExpr:
		t = c.checkNewObject(expr)
	case *ast.NewArrayExpr:
		t = c.checkNewArray(expr)
	case *ast.CastExpr:
		t = c.checkCast(expr)
	default:
		t = errorType()
	}
	e.SetType(t)
	return t
}

func (c *Checker) checkIdentifier(id *ast.Identifier) types.Type {
	if t, ok := c.lookupLocal(id.Name); ok {
		return t
	}
	if c.fn != nil && c.fn.receiver != nil {
		if f, ok := c.fn.receiver.Field(id.Name); ok {
			return f.Type
		}
	}
	if overloads := c.Registry.Functions(id.Name); len(overloads) == 1 {
		return &types.FunctionType{Params: overloads[0].Params, Return: overloads[0].Return}
	} else if len(overloads) > 1 {
		c.addError(errors.Type, id, "ambiguous reference to overloaded function %q", id.Name)
		return errorType()
	}
	c.addError(errors.Symbol, id, "unknown name %q%s", id.Name, suggestionSuffix(id.Name, c.identifierCandidates()))
	return errorType()
}

// identifierCandidates lists every name that could have been meant where a
// bare identifier was expected: locals and parameters in every enclosing
// scope, the receiver's fields (if any), and declared free-function names.
func (c *Checker) identifierCandidates() []string {
	var candidates []string
	for _, scope := range c.scopes {
		for name := range scope {
			candidates = append(candidates, name)
		}
	}
	if c.fn != nil && c.fn.receiver != nil {
		for _, f := range c.fn.receiver.Fields {
			candidates = append(candidates, f.Name)
		}
	}
	candidates = append(candidates, c.Registry.FunctionNames()...)
	return candidates
}

func isAssignablePlace(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.FieldAccessExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

func (c *Checker) checkAssign(a *ast.AssignExpr) types.Type {
	lhsType := c.checkExpr(a.Lhs)
	rhsType := c.checkExpr(a.Rhs)
	if !isAssignablePlace(a.Lhs) {
		c.addError(errors.Type, a.Lhs, "left-hand side of assignment is not an assignable place")
		return errorType()
	}
	if !types.Assignable(rhsType, lhsType) {
		c.addError(errors.Type, a, "cannot assign value of type %s to place of type %s", rhsType, lhsType)
		return errorType()
	}
	return lhsType
}

func (c *Checker) checkBinary(b *ast.BinaryExpr) types.Type {
	left := c.checkExpr(b.Left)
	right := c.checkExpr(b.Right)

	switch b.Op {
	case lexer.PLUS:
		if types.IsNumeric(left) && types.IsNumeric(right) {
			promoted, _ := types.NumericPromotion(left, right)
			b.ResolvedKind = types.AddNumeric
			return promoted
		}
		if isStringOperand(left) || isStringOperand(right) {
			b.ResolvedKind = types.AddConcat
			return types.Primitive(types.String)
		}
		c.addError(errors.Type, b, "invalid operand types for '+': %s and %s", left, right)
		return errorType()

	case lexer.MINUS, lexer.ASTERISK, lexer.SLASH, lexer.PERCENT:
		if !types.IsNumeric(left) || !types.IsNumeric(right) {
			c.addError(errors.Type, b, "operator %s requires numeric operands, got %s and %s", b.Token.Literal, left, right)
			return errorType()
		}
		promoted, _ := types.NumericPromotion(left, right)
		return promoted

	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		numeric := types.IsNumeric(left) && types.IsNumeric(right)
		stringy := left.Equal(types.Primitive(types.String)) && right.Equal(types.Primitive(types.String))
		if !numeric && !stringy {
			c.addError(errors.Type, b, "operator %s requires two numeric or two string operands, got %s and %s", b.Token.Literal, left, right)
			return errorType()
		}
		return types.Primitive(types.Boolean)

	case lexer.EQ, lexer.NOT_EQ:
		if !comparable(left, right) {
			c.addError(errors.Type, b, "incomparable operand types for %s: %s and %s", b.Token.Literal, left, right)
			return errorType()
		}
		if _, ok := left.(*types.PrimitiveType); ok {
			if _, ok2 := right.(*types.PrimitiveType); ok2 {
				b.ResolvedKind = types.EqualPrimitive
				return types.Primitive(types.Boolean)
			}
		}
		b.ResolvedKind = types.EqualReference
		return types.Primitive(types.Boolean)

	case lexer.AND, lexer.OR:
		if !left.Equal(types.Primitive(types.Boolean)) || !right.Equal(types.Primitive(types.Boolean)) {
			c.addError(errors.Type, b, "operator %s requires boolean operands, got %s and %s", b.Token.Literal, left, right)
			return errorType()
		}
		return types.Primitive(types.Boolean)

	default:
		c.addError(errors.Backend, b, "internal error: unhandled binary operator %s", b.Token.Literal)
		return errorType()
	}
}

func isStringOperand(t types.Type) bool {
	return t.Equal(types.Primitive(types.String))
}

// comparable implements spec.md §4.5's `==`/`!=` operand rule: same
// primitive type, two classes with a common ancestor (including identical),
// two arrays of the same element type, or one side null-literal against a
// class/array.
func comparable(a, b types.Type) bool {
	_, aNull := a.(*types.NullType)
	_, bNull := b.(*types.NullType)
	if aNull && bNull {
		return true
	}
	if aNull {
		return types.IsClassOrArray(b)
	}
	if bNull {
		return types.IsClassOrArray(a)
	}
	if ap, ok := a.(*types.PrimitiveType); ok {
		bp, ok2 := b.(*types.PrimitiveType)
		return ok2 && ap.Kind == bp.Kind
	}
	if ac, ok := a.(*types.ClassType); ok {
		bc, ok2 := b.(*types.ClassType)
		return ok2 && types.CommonAncestor(ac.Class, bc.Class) != nil
	}
	if aa, ok := a.(*types.ArrayType); ok {
		ba, ok2 := b.(*types.ArrayType)
		return ok2 && aa.Elem.Equal(ba.Elem)
	}
	return false
}

func (c *Checker) checkUnary(u *ast.UnaryExpr) types.Type {
	operand := c.checkExpr(u.Operand)
	switch u.Op {
	case lexer.NOT:
		if !operand.Equal(types.Primitive(types.Boolean)) {
			c.addError(errors.Type, u, "operator ! requires a boolean operand, got %s", operand)
			return errorType()
		}
		return types.Primitive(types.Boolean)
	case lexer.MINUS:
		if !types.IsNumeric(operand) {
			c.addError(errors.Type, u, "unary - requires a numeric operand, got %s", operand)
			return errorType()
		}
		return operand
	default:
		c.addError(errors.Backend, u, "internal error: unhandled unary operator %s", u.Token.Literal)
		return errorType()
	}
}

// matchOverload returns the index of the unique overload in candidates whose
// parameter count matches argTypes and whose parameters are pointwise
// assignable from argTypes. ambiguous is true when more than one candidate
// matches (spec.md §4.5: "If multiple overloads exist, the most specific
// match wins; ambiguity is a type error" — uC has no subtyping-based
// overload ranking beyond assignability, so "most specific" reduces to
// "exactly one assignable candidate"). Callers must check ambiguous before
// treating idx == -1 as "no match": the two failure modes get distinct
// diagnostics.
func matchOverload(argTypes []types.Type, paramLists [][]types.Type) (idx int, ambiguous bool) {
	idx = -1
	for i, params := range paramLists {
		if len(params) != len(argTypes) {
			continue
		}
		ok := true
		for j, pt := range params {
			if !types.Assignable(argTypes[j], pt) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if idx != -1 {
			return -1, true
		}
		idx = i
	}
	return idx, false
}

func (c *Checker) checkArgs(args []ast.Expression) []types.Type {
	out := make([]types.Type, len(args))
	for i, a := range args {
		out[i] = c.checkExpr(a)
	}
	return out
}

func (c *Checker) checkCall(call *ast.CallExpr) types.Type {
	argTypes := c.checkArgs(call.Args)
	overloads := c.Registry.Functions(call.Func.Name)
	if len(overloads) == 0 {
		c.addError(errors.Symbol, call, "unknown function %q%s", call.Func.Name, suggestionSuffix(call.Func.Name, c.Registry.FunctionNames()))
		return errorType()
	}
	paramLists := make([][]types.Type, len(overloads))
	for i, o := range overloads {
		paramLists[i] = o.Params
	}
	idx, ambiguous := matchOverload(argTypes, paramLists)
	if ambiguous {
		c.addError(errors.Type, call, "ambiguous overload for call to %q", call.Func.Name)
		return errorType()
	}
	if idx == -1 {
		c.addError(errors.Type, call, "no matching overload for call to %q", call.Func.Name)
		return errorType()
	}
	call.Resolved = overloads[idx]
	return overloads[idx].Return
}

func (c *Checker) checkMethodCall(call *ast.MethodCallExpr) types.Type {
	receiverType := c.checkExpr(call.Receiver)
	argTypes := c.checkArgs(call.Args)

	ct, ok := receiverType.(*types.ClassType)
	if !ok {
		c.addError(errors.Type, call, "method call on non-class type %s", receiverType)
		return errorType()
	}
	overloads := ct.Class.MethodOverloads(call.Method.Name)
	if len(overloads) == 0 {
		c.addError(errors.Symbol, call, "class %q has no method %q", ct.Name, call.Method.Name)
		return errorType()
	}
	paramLists := make([][]types.Type, len(overloads))
	for i, o := range overloads {
		paramLists[i] = o.Params
	}
	idx, ambiguous := matchOverload(argTypes, paramLists)
	if ambiguous {
		c.addError(errors.Type, call, "ambiguous overload for method %q on class %q", call.Method.Name, ct.Name)
		return errorType()
	}
	if idx == -1 {
		c.addError(errors.Type, call, "no matching overload for method %q on class %q", call.Method.Name, ct.Name)
		return errorType()
	}
	call.Resolved = overloads[idx]
	return overloads[idx].Return
}

func (c *Checker) checkFieldAccess(fa *ast.FieldAccessExpr) types.Type {
	receiverType := c.checkExpr(fa.Receiver)

	if ct, ok := receiverType.(*types.ClassType); ok {
		if f, ok := ct.Class.Field(fa.Field.Name); ok {
			if fa.Field.Name == "length" {
				fa.LengthKind = ast.LengthField
			}
			return f.Type
		}
		c.addError(errors.Symbol, fa, "class %q has no field %q", ct.Name, fa.Field.Name)
		return errorType()
	}
	if _, ok := receiverType.(*types.ArrayType); ok {
		if fa.Field.Name == "length" {
			fa.LengthKind = ast.LengthArrayBuiltin
			return types.Primitive(types.Int)
		}
		c.addError(errors.Symbol, fa, "arrays have no field %q (did you mean .length?)", fa.Field.Name)
		return errorType()
	}
	c.addError(errors.Type, fa, "field access on non-class, non-array type %s", receiverType)
	return errorType()
}

func (c *Checker) checkIndex(ix *ast.IndexExpr) types.Type {
	arrType := c.checkExpr(ix.Array)
	idxType := c.checkExpr(ix.Index)
	at, ok := arrType.(*types.ArrayType)
	if !ok {
		c.addError(errors.Type, ix, "index operator applied to non-array type %s", arrType)
		return errorType()
	}
	if !idxType.Equal(types.Primitive(types.Int)) {
		c.addError(errors.Type, ix.Index, "array index must be int, got %s", idxType)
	}
	return at.Elem
}

func (c *Checker) checkNewObject(n *ast.NewObjectExpr) types.Type {
	cls := c.Registry.LookupClass(n.Class.Name)
	if cls == nil {
		c.addError(errors.Symbol, n, "unknown class %q%s", n.Class.Name, suggestionSuffix(n.Class.Name, c.Registry.ClassNames()))
		return errorType()
	}
	argTypes := c.checkArgs(n.Args)

	if len(argTypes) == 0 {
		n.Resolved = types.DefaultConstructor
		return &types.ClassType{ID: cls.ID, Name: cls.Name, Class: cls}
	}
	if len(argTypes) != len(cls.Fields) {
		c.addError(errors.Type, n, "class %q takes 0 or %d constructor arguments, got %d", cls.Name, len(cls.Fields), len(argTypes))
		return errorType()
	}
	for i, f := range cls.Fields {
		if !types.Assignable(argTypes[i], f.Type) {
			c.addError(errors.Type, n.Args[i], "constructor argument %d: cannot assign %s to field %q of type %s", i+1, argTypes[i], f.Name, f.Type)
		}
	}
	n.Resolved = types.PositionalConstructor
	return &types.ClassType{ID: cls.ID, Name: cls.Name, Class: cls}
}

func (c *Checker) checkNewArray(n *ast.NewArrayExpr) types.Type {
	elem, ok := c.resolveType(n.ElemType)
	if !ok {
		return errorType()
	}
	sizeType := c.checkExpr(n.Size)
	if !sizeType.Equal(types.Primitive(types.Int)) {
		c.addError(errors.Type, n.Size, "array size must be int, got %s", sizeType)
	}
	return &types.ArrayType{Elem: elem}
}

func (c *Checker) checkCast(cast *ast.CastExpr) types.Type {
	target, ok := c.resolveType(cast.Target)
	if !ok {
		target = errorType()
	}
	c.checkExpr(cast.Expr)
	return target
}
