package parser

import (
	"testing"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New("test.uc", src)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return prog
}

func TestParseTypedef(t *testing.T) {
	prog := parseProgram(t, `typedef int IntAlias;`)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	td, ok := prog.Decls[0].(*ast.TypedefDecl)
	if !ok {
		t.Fatalf("expected *ast.TypedefDecl, got %T", prog.Decls[0])
	}
	if td.Name.Name != "IntAlias" {
		t.Errorf("got name %q, want IntAlias", td.Name.Name)
	}
	if td.Alias.String() != "int" {
		t.Errorf("got alias %q, want int", td.Alias.String())
	}
}

func TestParseTypedef_FuncType(t *testing.T) {
	prog := parseProgram(t, `typedef int(int, int) BinOp;`)
	td := prog.Decls[0].(*ast.TypedefDecl)
	ft, ok := td.Alias.(*ast.FuncTypeExpr)
	if !ok {
		t.Fatalf("expected *ast.FuncTypeExpr, got %T", td.Alias)
	}
	if len(ft.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(ft.Params))
	}
}

func TestParseClass_Empty(t *testing.T) {
	prog := parseProgram(t, `class Foo { }`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	if cd.Name.Name != "Foo" {
		t.Errorf("got name %q, want Foo", cd.Name.Name)
	}
	if cd.Superclass != nil {
		t.Errorf("expected no superclass, got %v", cd.Superclass)
	}
}

func TestParseClass_WithSuperclassFieldsAndMethods(t *testing.T) {
	src := `
class Animal {
  string name = "animal";
  int legs;

  string describe() {
    return name;
  }
}

class Dog : Animal {
  boolean barks = true;
}
`
	prog := parseProgram(t, src)
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(prog.Decls))
	}
	animal := prog.Decls[0].(*ast.ClassDecl)
	if len(animal.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(animal.Fields))
	}
	if animal.Fields[0].Default == nil {
		t.Error("expected name field to have a default value")
	}
	if len(animal.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(animal.Methods))
	}
	if animal.Methods[0].Name.Name != "describe" {
		t.Errorf("got method name %q, want describe", animal.Methods[0].Name.Name)
	}

	dog := prog.Decls[1].(*ast.ClassDecl)
	if dog.Superclass == nil || dog.Superclass.Name != "Animal" {
		t.Fatalf("expected superclass Animal, got %v", dog.Superclass)
	}
}

func TestParseClass_ArrayField(t *testing.T) {
	prog := parseProgram(t, `class Box { int[] items; }`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	arr, ok := cd.Fields[0].Type.(*ast.ArrayTypeExpr)
	if !ok {
		t.Fatalf("expected *ast.ArrayTypeExpr, got %T", cd.Fields[0].Type)
	}
	if arr.Elem.String() != "int" {
		t.Errorf("got elem %q, want int", arr.Elem.String())
	}
}

func TestParseFreeFunction(t *testing.T) {
	prog := parseProgram(t, `int add(int a, int b) { return a + b; }`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if fn.Name.Name != "add" {
		t.Errorf("got name %q, want add", fn.Name.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr, got %T", ret.Value)
	}
	if bin.Op != lexer.PLUS {
		t.Errorf("got op %v, want PLUS", bin.Op)
	}
}

func TestParseStatements_VarDeclIfWhileFor(t *testing.T) {
	src := `
void run() {
  int i = 0;
  while (i < 10) {
    if (i == 5) {
      i = i + 1;
    } else {
      i = i + 2;
    }
  }
  for (int j = 0; j < 3; j = j + 1) {
    i = i + j;
  }
}
`
	prog := parseProgram(t, src)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if len(fn.Body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(fn.Body.Stmts))
	}
	if _, ok := fn.Body.Stmts[0].(*ast.VarDeclStmt); !ok {
		t.Errorf("stmt 0: expected *ast.VarDeclStmt, got %T", fn.Body.Stmts[0])
	}
	whileStmt, ok := fn.Body.Stmts[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("stmt 1: expected *ast.WhileStmt, got %T", fn.Body.Stmts[1])
	}
	ifStmt, ok := whileStmt.Body.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt inside while body, got %T", whileStmt.Body.Stmts[0])
	}
	if ifStmt.Else == nil {
		t.Error("expected an else branch")
	}
	if _, ok := fn.Body.Stmts[2].(*ast.ForStmt); !ok {
		t.Errorf("stmt 2: expected *ast.ForStmt, got %T", fn.Body.Stmts[2])
	}
}

func TestParseExpression_PrecedenceAndAssociativity(t *testing.T) {
	prog := parseProgram(t, `int f() { return 1 + 2 * 3 == 7 && !false || 1 < 2; } `)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	top, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || top.Op != lexer.OR {
		t.Fatalf("expected top-level ||, got %#v", ret.Value)
	}
}

func TestParseExpression_AssignmentRightAssociative(t *testing.T) {
	prog := parseProgram(t, `void f() { a = b = c; }`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", stmt.Expr)
	}
	if _, ok := outer.Lhs.(*ast.Identifier); !ok {
		t.Fatalf("expected lhs identifier, got %T", outer.Lhs)
	}
	if _, ok := outer.Rhs.(*ast.AssignExpr); !ok {
		t.Fatalf("expected nested assignment on rhs, got %T", outer.Rhs)
	}
}

func TestParseExpression_MethodCallFieldIndexChaining(t *testing.T) {
	prog := parseProgram(t, `void f() { a.items[0].describe(); }`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.Expr.(*ast.MethodCallExpr)
	if !ok {
		t.Fatalf("expected *ast.MethodCallExpr, got %T", stmt.Expr)
	}
	if call.Method.Name != "describe" {
		t.Errorf("got method %q, want describe", call.Method.Name)
	}
	idx, ok := call.Receiver.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected *ast.IndexExpr receiver, got %T", call.Receiver)
	}
	if _, ok := idx.Array.(*ast.FieldAccessExpr); !ok {
		t.Fatalf("expected field access as array, got %T", idx.Array)
	}
}

func TestParseExpression_NewObjectAndNewArray(t *testing.T) {
	prog := parseProgram(t, `
void f() {
  Dog d = new Dog("Rex");
  int[] xs = new int[10];
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	v1 := fn.Body.Stmts[0].(*ast.VarDeclStmt)
	newObj, ok := v1.Init.(*ast.NewObjectExpr)
	if !ok {
		t.Fatalf("expected *ast.NewObjectExpr, got %T", v1.Init)
	}
	if newObj.Class.Name != "Dog" {
		t.Errorf("got class %q, want Dog", newObj.Class.Name)
	}
	v2 := fn.Body.Stmts[1].(*ast.VarDeclStmt)
	newArr, ok := v2.Init.(*ast.NewArrayExpr)
	if !ok {
		t.Fatalf("expected *ast.NewArrayExpr, got %T", v2.Init)
	}
	if newArr.ElemType.String() != "int" {
		t.Errorf("got elem type %q, want int", newArr.ElemType.String())
	}
}

func TestParseVarDecl_DisambiguatedFromIndexAssignment(t *testing.T) {
	prog := parseProgram(t, `
void f() {
  int[] xs;
  xs[0] = 1;
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fn.Body.Stmts[0].(*ast.VarDeclStmt); !ok {
		t.Fatalf("stmt 0: expected *ast.VarDeclStmt, got %T", fn.Body.Stmts[0])
	}
	exprStmt, ok := fn.Body.Stmts[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmt 1: expected *ast.ExprStmt, got %T", fn.Body.Stmts[1])
	}
	assign, ok := exprStmt.Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", exprStmt.Expr)
	}
	if _, ok := assign.Lhs.(*ast.IndexExpr); !ok {
		t.Fatalf("expected index expression lhs, got %T", assign.Lhs)
	}
}

func TestParseVarDecl_DisambiguatedFromCallExpression(t *testing.T) {
	prog := parseProgram(t, `
void f() {
  foo();
  Foo x = new Foo();
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fn.Body.Stmts[0].(*ast.ExprStmt); !ok {
		t.Fatalf("stmt 0: expected *ast.ExprStmt, got %T", fn.Body.Stmts[0])
	}
	if _, ok := fn.Body.Stmts[1].(*ast.VarDeclStmt); !ok {
		t.Fatalf("stmt 1: expected *ast.VarDeclStmt, got %T", fn.Body.Stmts[1])
	}
}

func TestParseError_RecordsAndSynchronizes(t *testing.T) {
	l := lexer.New("test.uc", `@@@ int f() { return 1; }`)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parse error")
	}
	// Recovery should still pick up the free function declared after the
	// illegal leading characters.
	found := false
	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.FunctionDecl); ok && fn.Name.Name == "f" {
			found = true
		}
	}
	if !found {
		t.Error("expected parser to recover and parse function f")
	}
}
