package semantic

import (
	"strings"
	"testing"

	"github.com/uclang/ucc/internal/lexer"
	"github.com/uclang/ucc/internal/parser"
)

func check(t *testing.T, src string) *Checker {
	t.Helper()
	l := lexer.New("test.uc", src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	c := New(src)
	c.Check(prog)
	return c
}

func TestCheck_ForwardReference(t *testing.T) {
	c := check(t, `
class foo { baz b; }
class baz { string s; }
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_DefaultConstructionAndArrayField(t *testing.T) {
	c := check(t, `
class foo { int x; }
class bar { foo f; int x; string[] a; }
void use() {
  bar b = new bar();
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_TypedefCycle(t *testing.T) {
	c := check(t, `
typedef A B;
typedef B A;
void f() { }
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected a typedef cycle error")
	}
}

func TestCheck_LengthFieldWinsOverArrayBuiltin(t *testing.T) {
	c := check(t, `
class Sized { int length; }
void f() {
  Sized s = new Sized(3);
  int n = s.length;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_ArrayLengthAccess(t *testing.T) {
	c := check(t, `
void f() {
  int[] xs = new int[5];
  int n = xs.length;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_AssignabilityNumericWidening(t *testing.T) {
	c := check(t, `
void f() {
  long l = 1;
  float fl = l;
  float fl2 = 1;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_AssignabilityRejectsNarrowing(t *testing.T) {
	c := check(t, `
void f() {
  float fl = 1.5;
  int i = fl;
}
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected an error assigning float to int")
	}
}

func TestCheck_StringConcatAndNumericAdd(t *testing.T) {
	c := check(t, `
string greet(string name) {
  return "hello " + name;
}
long sum(int a, long b) {
  return a + b;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_MissingReturnOnPath(t *testing.T) {
	c := check(t, `
int f(boolean cond) {
  if (cond) {
    return 1;
  }
}
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected a missing-return error")
	}
}

func TestCheck_MissingReturnOnPath_IfElseOK(t *testing.T) {
	c := check(t, `
int f(boolean cond) {
  if (cond) {
    return 1;
  } else {
    return 2;
  }
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_EqualityByStructure(t *testing.T) {
	c := check(t, `
class foo { int x; }
boolean same(foo a, foo b) {
  return a == b;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_InheritedMethodVisible(t *testing.T) {
	c := check(t, `
class Animal {
  string describe() {
    return "animal";
  }
}
class Dog : Animal { }
void f() {
  Dog d = new Dog();
  string s = d.describe();
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
}

func TestCheck_DuplicateTopLevelName(t *testing.T) {
	c := check(t, `
class Foo { }
class Foo { }
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected a duplicate-name error")
	}
}

func TestCheck_UnknownType(t *testing.T) {
	c := check(t, `
void f() {
  Nope n;
}
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected an unknown-type error")
	}
}

func TestCheck_FieldShadowingRejected(t *testing.T) {
	c := check(t, `
class Animal { int legs; }
class Dog : Animal { int legs; }
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected a field-shadowing error")
	}
}

func TestCheck_NoMatchingOverload(t *testing.T) {
	c := check(t, `
int add(int a, int b) { return a + b; }
void f() {
  int x = add(1);
}
`)
	if len(c.Errors()) == 0 {
		t.Fatal("expected a no-matching-overload error")
	}
}

func TestCheck_AmbiguousOverloadDistinctFromNoMatch(t *testing.T) {
	c := check(t, `
void f(int a, int b) { }
void f(long a, long b) { }
void g() {
  f(1, 2);
}
`)
	errs := c.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an ambiguous-overload error")
	}
	if !strings.Contains(errs[0].Message, "ambiguous overload") {
		t.Errorf("expected an ambiguous-overload message, got: %s", errs[0].Message)
	}
}

func TestCheck_NullEqualsNullIsComparable(t *testing.T) {
	c := check(t, `
void f() {
  boolean b = null == null;
}
`)
	if len(c.Errors()) != 0 {
		t.Fatalf("unexpected errors comparing null to null: %v", c.Errors())
	}
}

func TestCheck_UnknownTypeSuggestsClosestClassName(t *testing.T) {
	c := check(t, `
class Animal { int legs; }
void f() {
  Animel a;
}
`)
	errs := c.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an unknown-type error")
	}
	if !strings.Contains(errs[0].Message, `"Animal"`) {
		t.Errorf("expected a did-you-mean suggestion for %q, got: %s", "Animel", errs[0].Message)
	}
}

func TestCheck_UnknownNameSuggestsClosestLocal(t *testing.T) {
	c := check(t, `
void f() {
  int count;
  int x = cout;
}
`)
	errs := c.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an unknown-name error")
	}
	if !strings.Contains(errs[0].Message, `"count"`) {
		t.Errorf("expected a did-you-mean suggestion for %q, got: %s", "cout", errs[0].Message)
	}
}

func TestCheck_UnknownFunctionSuggestsClosestDeclared(t *testing.T) {
	c := check(t, `
int square(int n) { return n * n; }
void f() {
  int x = squre(2);
}
`)
	errs := c.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an unknown-function error")
	}
	if !strings.Contains(errs[0].Message, `"square"`) {
		t.Errorf("expected a did-you-mean suggestion for %q, got: %s", "squre", errs[0].Message)
	}
}

func TestCheck_UnknownTypeNoSuggestionWhenNothingClose(t *testing.T) {
	c := check(t, `
class Animal { int legs; }
void f() {
  Zzzzzzzzz z;
}
`)
	errs := c.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an unknown-type error")
	}
	if strings.Contains(errs[0].Message, "did you mean") {
		t.Errorf("expected no suggestion for a name with no close candidate, got: %s", errs[0].Message)
	}
}
