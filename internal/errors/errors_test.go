package errors

import (
	"strings"
	"testing"

	"github.com/uclang/ucc/internal/lexer"
)

func TestFormat_OneLine(t *testing.T) {
	e := New(Type, lexer.Position{File: "a.uc", Line: 3, Column: 5}, "unknown type Foo")
	got := e.Format(false)
	want := "a.uc:3:5: type: unknown type Foo"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormat_Verbose(t *testing.T) {
	e := &CompilerError{
		Kind:    Syntactic,
		Message: "expected ';'",
		Pos:     lexer.Position{File: "a.uc", Line: 2, Column: 3},
		Source:  "class C {\n  int x\n}",
	}
	got := e.Format(true)
	if !strings.Contains(got, "int x") || !strings.Contains(got, "^") {
		t.Fatalf("verbose format missing source excerpt: %q", got)
	}
}

func TestFormatAll_PreservesOrder(t *testing.T) {
	errs := []*CompilerError{
		New(Symbol, lexer.Position{File: "a.uc", Line: 1, Column: 1}, "duplicate name Foo"),
		New(Type, lexer.Position{File: "a.uc", Line: 5, Column: 1}, "unknown type Bar"),
	}
	got := FormatAll(errs, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "duplicate") || !strings.Contains(lines[1], "unknown type") {
		t.Fatalf("unexpected order: %v", lines)
	}
}
