package parser

import (
	"strconv"

	"github.com/uclang/ucc/internal/ast"
	"github.com/uclang/ucc/internal/lexer"
)

// Precedence levels, loosest to tightest, per the operator table: assignment
// is right-associative and binds loosest; postfix member/call/index access
// binds tightest.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALITY    // == !=
	RELATIONAL  // < <= > >=
	ADDITIVE    // + -
	MULTIPLICATIVE
	UNARY
	POSTFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   ASSIGNMENT,
	lexer.OR:       LOGICAL_OR,
	lexer.AND:      LOGICAL_AND,
	lexer.EQ:       EQUALITY,
	lexer.NOT_EQ:   EQUALITY,
	lexer.LT:       RELATIONAL,
	lexer.LE:       RELATIONAL,
	lexer.GT:       RELATIONAL,
	lexer.GE:       RELATIONAL,
	lexer.PLUS:     ADDITIVE,
	lexer.MINUS:    ADDITIVE,
	lexer.ASTERISK: MULTIPLICATIVE,
	lexer.SLASH:    MULTIPLICATIVE,
	lexer.PERCENT:  MULTIPLICATIVE,
}

// parseExpression implements precedence climbing: it parses a unary/primary
// operand, then folds in binary operators whose precedence is at least
// minPrec. Assignment is right-associative (its own precedence on the
// recursive call); every other binary operator is left-associative (its
// precedence + 1 on the recursive call).
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		opPrec, ok := precedences[p.curTok.Type]
		if !ok || opPrec < minPrec {
			break
		}

		if p.curTok.Type == lexer.ASSIGN {
			tok := p.curTok
			p.next()
			right := p.parseExpression(ASSIGNMENT)
			left = &ast.AssignExpr{Token: tok, Lhs: left, Rhs: right}
			continue
		}

		tok := p.curTok
		op := tok.Type
		p.next()
		right := p.parseExpression(opPrec + 1)
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.curTok.Type {
	case lexer.NOT, lexer.MINUS:
		tok := p.curTok
		p.next()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Token: tok, Op: tok.Type, Operand: operand}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix folds in '.', '[', and trailing call '(' suffixes, all left
// associative and of equal (tightest) precedence.
func (p *Parser) parsePostfix(expr ast.Expression) ast.Expression {
	for {
		switch p.curTok.Type {
		case lexer.DOT:
			tok := p.curTok
			p.next()
			nameTok := p.curTok
			p.expect(lexer.IDENT)
			field := &ast.Identifier{Token: nameTok, Name: nameTok.Literal}
			if p.curIs(lexer.LPAREN) {
				callTok := p.curTok
				args := p.parseArgList()
				expr = &ast.MethodCallExpr{Token: callTok, Receiver: expr, Method: field, Args: args}
			} else {
				expr = &ast.FieldAccessExpr{Token: tok, Receiver: expr, Field: field}
			}
		case lexer.LBRACKET:
			tok := p.curTok
			p.next()
			idx := p.parseExpression(LOWEST)
			p.expect(lexer.RBRACKET)
			expr = &ast.IndexExpr{Token: tok, Array: expr, Index: idx}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expression {
	p.expect(lexer.LPAREN)
	var args []ast.Expression
	if !p.curIs(lexer.RPAREN) {
		for {
			args = append(args, p.parseExpression(LOWEST))
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.next()
		}
	}
	p.expect(lexer.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curTok.Type {
	case lexer.INT:
		return p.parseIntegerLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		tok := p.curTok
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case lexer.TRUE, lexer.FALSE:
		tok := p.curTok
		p.next()
		return &ast.BoolLiteral{Token: tok, Value: tok.Type == lexer.TRUE}
	case lexer.NULL:
		tok := p.curTok
		p.next()
		return &ast.NullLiteral{Token: tok}
	case lexer.NEW:
		return p.parseNew()
	case lexer.LPAREN:
		p.next()
		expr := p.parseExpression(LOWEST)
		p.expect(lexer.RPAREN)
		return expr
	case lexer.IDENT:
		return p.parseIdentOrCall()
	default:
		tok := p.curTok
		p.errorf(tok.Pos, "unexpected token %s in expression", tok.Type)
		p.next()
		return &ast.NullLiteral{Token: tok}
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok.Pos, "invalid integer literal %q", tok.Literal)
	}
	p.next()
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok.Pos, "invalid float literal %q", tok.Literal)
	}
	p.next()
	return &ast.FloatLiteral{Token: tok, Value: v}
}

// parseIdentOrCall parses a bare identifier, which is either a free-function
// call (`name(...)`) or a variable/identifier reference; member access and
// indexing are handled uniformly by parsePostfix once this returns.
func (p *Parser) parseIdentOrCall() ast.Expression {
	tok := p.curTok
	p.next()
	id := &ast.Identifier{Token: tok, Name: tok.Literal}
	if p.curIs(lexer.LPAREN) {
		args := p.parseArgList()
		return &ast.CallExpr{Token: tok, Func: id, Args: args}
	}
	return id
}

// parseNew parses `new C(args)` or `new T[size]`.
func (p *Parser) parseNew() ast.Expression {
	tok := p.curTok
	p.next() // consume 'new'

	base := p.parseBaseType()
	if p.curIs(lexer.LBRACKET) {
		p.next()
		size := p.parseExpression(LOWEST)
		p.expect(lexer.RBRACKET)
		return &ast.NewArrayExpr{Token: tok, ElemType: base, Size: size}
	}

	named, ok := base.(*ast.NamedTypeExpr)
	if !ok {
		p.errorf(tok.Pos, "expected a class name after 'new'")
		return &ast.NullLiteral{Token: tok}
	}
	class := &ast.Identifier{Token: named.Token, Name: named.Name}
	args := p.parseArgList()
	return &ast.NewObjectExpr{Token: tok, Class: class, Args: args}
}
