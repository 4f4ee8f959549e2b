// Package parser implements a hand-written recursive-descent parser that
// turns a uC token stream into an untyped AST.
package parser

import (
	"fmt"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/lexer"
)

// ParseError is a single syntactic error with position information.
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: syntactic: %s", e.Pos, e.Message)
}

// Parser consumes tokens from a Lexer and builds an untyped *ast.Program.
// On a syntax error it records the error and resynchronizes at the next
// top-level declaration boundary, so later declarations can still be
// parsed and checked (spec.md §4.2, §7).
type Parser struct {
	l *lexer.Lexer

	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every syntax error recorded so far, in source order.
func (p *Parser) Errors() []ParseError { return p.errors }

func (p *Parser) next() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// expect advances past curTok if it has type tt, else records an error and
// does not advance.
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	tok := p.curTok
	if tok.Type != tt {
		p.errorf(tok.Pos, "expected %s, got %s", tt, tok.Type)
		return tok
	}
	p.next()
	return tok
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.curTok.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peekTok.Type == tt }

// parserSnapshot captures enough state to backtrack a speculative parse.
type parserSnapshot struct {
	lex     lexer.State
	curTok  lexer.Token
	peekTok lexer.Token
	nErrors int
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{
		lex:     p.l.Mark(),
		curTok:  p.curTok,
		peekTok: p.peekTok,
		nErrors: len(p.errors),
	}
}

func (p *Parser) restore(s parserSnapshot) {
	p.l.Reset(s.lex)
	p.curTok = s.curTok
	p.peekTok = s.peekTok
	p.errors = p.errors[:s.nErrors]
}

// synchronize advances tokens until the start of what looks like the next
// top-level declaration (a '}' that closed the broken declaration, or one
// of the leading keywords/types of typedef/class/function), or EOF. This
// bounds error recovery to "resynchronize at the next top-level boundary"
// per spec.md §4.2/§7 — it does not attempt statement-level recovery.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		if p.curTok.Type == lexer.SEMICOLON || p.curTok.Type == lexer.RBRACE {
			p.next()
			return
		}
		switch p.curTok.Type {
		case lexer.CLASS, lexer.TYPEDEF, lexer.INT_TYPE, lexer.LONG_TYPE,
			lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE, lexer.STRING_TYPE, lexer.VOID_TYPE, lexer.IDENT:
			return
		}
		p.next()
	}
}

// ParseProgram parses the entire token stream into a Program. Order in the
// source file is preserved; reference order between declarations is
// unconstrained (handled by the symbol collector, not here).
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		before := p.curTok
		decl := p.parseTopLevelDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
		if p.curTok == before {
			// Guard against an unconsumed token causing an infinite loop
			// after a parse error with no natural synchronization point.
			p.next()
		}
	}
	return prog
}

func (p *Parser) parseTopLevelDecl() ast.Decl {
	switch p.curTok.Type {
	case lexer.TYPEDEF:
		return p.parseTypedef()
	case lexer.CLASS:
		return p.parseClass()
	case lexer.INT_TYPE, lexer.LONG_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE,
		lexer.STRING_TYPE, lexer.VOID_TYPE, lexer.IDENT:
		return p.parseFunctionDecl("")
	default:
		p.errorf(p.curTok.Pos, "expected typedef, class, or function declaration, got %s", p.curTok.Type)
		p.synchronize()
		return nil
	}
}
