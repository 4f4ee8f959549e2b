package parser

import (
	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/lexer"
)

// parseTypedef parses `typedef T U;` binding U to T.
func (p *Parser) parseTypedef() *ast.TypedefDecl {
	tok := p.curTok
	p.next() // consume 'typedef'
	alias := p.parseType()
	nameTok := p.curTok
	p.expect(lexer.IDENT)
	p.expect(lexer.SEMICOLON)
	return &ast.TypedefDecl{
		Token: tok,
		Alias: alias,
		Name:  &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
	}
}

// parseClass parses a class definition:
//
//	class Name [: Super] { field* method* }
func (p *Parser) parseClass() *ast.ClassDecl {
	tok := p.curTok
	p.next() // consume 'class'

	nameTok := p.curTok
	p.expect(lexer.IDENT)
	decl := &ast.ClassDecl{
		Token: tok,
		Name:  &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
	}

	if p.curIs(lexer.COLON) {
		p.next()
		superTok := p.curTok
		p.expect(lexer.IDENT)
		decl.Superclass = &ast.Identifier{Token: superTok, Name: superTok.Literal}
	}

	p.expect(lexer.LBRACE)
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		before := p.curTok
		switch m := p.parseClassMember(decl.Name.Name).(type) {
		case *ast.FieldDecl:
			decl.Fields = append(decl.Fields, m)
		case *ast.FunctionDecl:
			decl.Methods = append(decl.Methods, m)
		}
		if p.curTok == before {
			p.next()
		}
	}
	p.expect(lexer.RBRACE)
	return decl
}

// parseClassMember parses one field or method declaration: both start with
// a type, then a name; a method's name is followed by '(', a field's is
// followed by '=' or ';'.
func (p *Parser) parseClassMember(className string) ast.Node {
	typeTok := p.curTok
	typ := p.parseType()
	nameTok := p.curTok
	p.expect(lexer.IDENT)

	if p.curIs(lexer.LPAREN) {
		return p.finishFunctionDecl(typeTok, typ, nameTok, className)
	}

	field := &ast.FieldDecl{
		Token: typeTok,
		Type:  typ,
		Name:  &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
	}
	if p.curIs(lexer.ASSIGN) {
		p.next()
		field.Default = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMICOLON)
	return field
}

// parseFunctionDecl parses a top-level free function declaration. receiver
// is always "" here; methods are parsed via parseClassMember/finishFunctionDecl.
func (p *Parser) parseFunctionDecl(receiver string) *ast.FunctionDecl {
	typeTok := p.curTok
	typ := p.parseType()
	nameTok := p.curTok
	p.expect(lexer.IDENT)
	return p.finishFunctionDecl(typeTok, typ, nameTok, receiver)
}

func (p *Parser) finishFunctionDecl(typeTok lexer.Token, retType ast.TypeExpr, nameTok lexer.Token, receiver string) *ast.FunctionDecl {
	fn := &ast.FunctionDecl{
		Token:      typeTok,
		ReturnType: retType,
		Name:       &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
		Receiver:   receiver,
	}
	p.expect(lexer.LPAREN)
	fn.Params = p.parseParamList()
	p.expect(lexer.RPAREN)
	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.curIs(lexer.RPAREN) {
		return params
	}
	for {
		typ := p.parseType()
		nameTok := p.curTok
		p.expect(lexer.IDENT)
		params = append(params, &ast.Param{
			Type: typ,
			Name: &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
		})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.next()
	}
	return params
}

// parseType parses a syntactic type reference: a primitive or named type,
// optionally suffixed by one or more repeated `[]`, or a function-type
// annotation `R(P1, P2, ...)`.
func (p *Parser) parseType() ast.TypeExpr {
	base := p.parseBaseType()
	if p.curIs(lexer.LPAREN) {
		return p.parseFuncTypeSuffix(base)
	}
	for p.curIs(lexer.LBRACKET) {
		tok := p.curTok
		p.next()
		p.expect(lexer.RBRACKET)
		base = &ast.ArrayTypeExpr{Token: tok, Elem: base}
	}
	return base
}

func (p *Parser) parseBaseType() ast.TypeExpr {
	tok := p.curTok
	switch tok.Type {
	case lexer.INT_TYPE, lexer.LONG_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE,
		lexer.STRING_TYPE, lexer.VOID_TYPE, lexer.IDENT:
		p.next()
		return &ast.NamedTypeExpr{Token: tok, Name: tok.Literal}
	default:
		p.errorf(tok.Pos, "expected a type, got %s", tok.Type)
		p.next()
		return &ast.NamedTypeExpr{Token: tok, Name: tok.Literal}
	}
}

func (p *Parser) parseFuncTypeSuffix(ret ast.TypeExpr) ast.TypeExpr {
	tok := p.curTok // '('
	p.next()
	var params []ast.TypeExpr
	if !p.curIs(lexer.RPAREN) {
		for {
			params = append(params, p.parseType())
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.next()
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.FuncTypeExpr{Token: tok, Return: ret, Params: params}
}
