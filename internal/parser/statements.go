package parser

import (
	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/lexer"
)

func (p *Parser) parseBlock() *ast.BlockStmt {
	tok := p.expect(lexer.LBRACE)
	block := &ast.BlockStmt{Token: tok}
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		before := p.curTok
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if p.curTok == before {
			p.next()
		}
	}
	p.expect(lexer.RBRACE)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.INT_TYPE, lexer.LONG_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE, lexer.STRING_TYPE:
		return p.parseVarDecl()
	case lexer.IDENT:
		// A bare identifier starts either a local variable declaration
		// (`Foo x = ...;`, `Foo[] xs;`, `Foo(int) f;`) or an expression
		// statement (`x = 1;`, `foo();`). The declaration forms are always
		// followed by a second identifier (the variable name) before any
		// '=' or ';'; an expression statement's leading identifier is
		// followed directly by an operator, '(', '.', '[', or '='.
		if p.looksLikeVarDecl() {
			return p.parseVarDecl()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// looksLikeVarDecl decides, while positioned on a leading IDENT, whether
// what follows is a type (so this is a variable declaration) rather than an
// expression. It scans the TypeExpr grammar (name, '[]'*, or '(' param-type
// list ')') without consuming tokens, then checks whether an IDENT follows.
func (p *Parser) looksLikeVarDecl() bool {
	save := p.snapshot()
	defer p.restore(save)

	p.parseType()
	return p.curIs(lexer.IDENT)
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.curTok
	typ := p.parseType()
	nameTok := p.curTok
	p.expect(lexer.IDENT)
	stmt := &ast.VarDeclStmt{
		Token: tok,
		Type:  typ,
		Name:  &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
	}
	if p.curIs(lexer.ASSIGN) {
		p.next()
		stmt.Init = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMICOLON)
	return stmt
}

func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.curTok
	expr := p.parseExpression(LOWEST)
	p.expect(lexer.SEMICOLON)
	return &ast.ExprStmt{Token: tok, Expr: expr}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.curTok
	p.next() // consume 'if'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	then := p.parseBlock()
	stmt := &ast.IfStmt{Token: tok, Cond: cond, Then: then}
	if p.curIs(lexer.ELSE) {
		p.next()
		if p.curIs(lexer.IF) {
			stmt.Else = p.parseIf()
		} else {
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curTok
	p.next() // consume 'while'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.curTok
	p.next() // consume 'for'
	p.expect(lexer.LPAREN)

	stmt := &ast.ForStmt{Token: tok}
	if !p.curIs(lexer.SEMICOLON) {
		stmt.Init = p.parseForClauseStmt()
	} else {
		p.next()
	}
	if !p.curIs(lexer.SEMICOLON) {
		stmt.Cond = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMICOLON)
	if !p.curIs(lexer.RPAREN) {
		postTok := p.curTok
		expr := p.parseExpression(LOWEST)
		stmt.Post = &ast.ExprStmt{Token: postTok, Expr: expr}
	}
	p.expect(lexer.RPAREN)
	stmt.Body = p.parseBlock()
	return stmt
}

// parseForClauseStmt parses the init clause of a for loop (a var decl or an
// expression statement), consuming the trailing ';'.
func (p *Parser) parseForClauseStmt() ast.Statement {
	switch p.curTok.Type {
	case lexer.INT_TYPE, lexer.LONG_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE, lexer.STRING_TYPE:
		return p.parseVarDecl()
	case lexer.IDENT:
		if p.looksLikeVarDecl() {
			return p.parseVarDecl()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curTok
	p.next() // consume 'return'
	stmt := &ast.ReturnStmt{Token: tok}
	if !p.curIs(lexer.SEMICOLON) {
		stmt.Value = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMICOLON)
	return stmt
}
