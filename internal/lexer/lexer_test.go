package lexer

import "testing"

func TestNextToken_Punctuation(t *testing.T) {
	input := `{}()[];,.: + - * / % && || !`

	want := []TokenType{
		LBRACE, RBRACE, LPAREN, RPAREN, LBRACKET, RBRACKET, SEMICOLON, COMMA, DOT, COLON,
		PLUS, MINUS, ASTERISK, SLASH, PERCENT, AND, OR, NOT, EOF,
	}

	l := New("test.uc", input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := `= == != < <= > >=`
	want := []TokenType{ASSIGN, EQ, NOT_EQ, LT, LE, GT, GE, EOF}

	l := New("test.uc", input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	input := `class typedef if else while for return new null true false int long float boolean string void foo Bar123`

	want := []struct {
		typ TokenType
		lit string
	}{
		{CLASS, "class"}, {TYPEDEF, "typedef"}, {IF, "if"}, {ELSE, "else"},
		{WHILE, "while"}, {FOR, "for"}, {RETURN, "return"}, {NEW, "new"},
		{NULL, "null"}, {TRUE, "true"}, {FALSE, "false"},
		{INT_TYPE, "int"}, {LONG_TYPE, "long"}, {FLOAT_TYPE, "float"},
		{BOOLEAN_TYPE, "boolean"}, {STRING_TYPE, "string"}, {VOID_TYPE, "void"},
		{IDENT, "foo"}, {IDENT, "Bar123"}, {EOF, ""},
	}

	l := New("test.uc", input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Fatalf("token %d: got (%s, %q), want (%s, %q)", i, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextToken_Numbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		lit   string
	}{
		{"123", INT, "123"},
		{"0", INT, "0"},
		{"1.5", FLOAT, "1.5"},
		{"1.", INT, "1"}, // trailing dot without digits is not part of the number
		{"1e10", FLOAT, "1e10"},
		{"1.5e-3", FLOAT, "1.5e-3"},
		{"2E+4", FLOAT, "2E+4"},
	}
	for _, tt := range tests {
		l := New("test.uc", tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Errorf("input %q: got (%s, %q), want (%s, %q)", tt.input, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextToken_Strings(t *testing.T) {
	input := `"hello" "line\nbreak" "quote\"inside" "back\\slash"`
	want := []string{"hello", "line\nbreak", "quote\"inside", "back\\slash"}

	l := New("test.uc", input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != STRING || tok.Literal != w {
			t.Fatalf("string %d: got (%s, %q), want %q", i, tok.Type, tok.Literal, w)
		}
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New("test.uc", `"never closed`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexical error, got %d", len(l.Errors()))
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := "x // a line comment\n/* a\nblock comment */ y"
	l := New("test.uc", input)
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Fatalf("got %v", tok)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Literal != "y" {
		t.Fatalf("got %v", tok)
	}
	if tok.Pos.Line != 3 {
		t.Fatalf("expected block comment to advance line tracking, got line %d", tok.Pos.Line)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("test.uc", "@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %v", tok)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexical error, got %d", len(l.Errors()))
	}
}

func TestNextToken_Positions(t *testing.T) {
	input := "int x;\nint y;"
	l := New("test.uc", input)

	tok := l.NextToken() // int
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("got %+v", tok.Pos)
	}
	l.NextToken() // x
	l.NextToken() // ;
	tok = l.NextToken() // int on line 2
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("got %+v", tok.Pos)
	}
}
