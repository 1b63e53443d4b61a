package parser

import (
	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/token"
)

// parseExpr parses the full expr grammar by precedence climbing, from the
// loosest-binding boolean operators down to unary prefix operators and
// atoms. Each level's grammar comment names the spec.md production it
// implements.
func (p *parser) parseExpr() ast.Expr {
	return p.parseOr()
}

// expr : expr 'or' expr
func (p *parser) parseOr() ast.Expr {
	x := p.parseAnd()
	for p.at(token.OR) {
		opPos := p.tok.Pos
		p.advance()
		y := p.parseAnd()
		x = &ast.BinaryExpr{Op: token.OR, OpText: "or", X: x, Y: y, OpPos: opPos}
	}
	return x
}

// expr : expr 'and' expr
func (p *parser) parseAnd() ast.Expr {
	x := p.parseRelational()
	for p.at(token.AND) {
		opPos := p.tok.Pos
		p.advance()
		y := p.parseRelational()
		x = &ast.BinaryExpr{Op: token.AND, OpText: "and", X: x, Y: y, OpPos: opPos}
	}
	return x
}

// expr : expr ('=='|'!='|'<'|'<='|'>'|'>=') expr
func (p *parser) parseRelational() ast.Expr {
	x := p.parseAdditive()
	for isRelational(p.tok.Kind) {
		op := p.tok
		p.advance()
		y := p.parseAdditive()
		x = &ast.BinaryExpr{Op: op.Kind, OpText: op.Kind.String(), X: x, Y: y, OpPos: op.Pos}
	}
	return x
}

func isRelational(k token.Kind) bool {
	switch k {
	case token.EQ, token.NEQ, token.LT, token.LE, token.GT, token.GE:
		return true
	}
	return false
}

// expr : expr ('+'|'-') expr
func (p *parser) parseAdditive() ast.Expr {
	x := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.tok
		p.advance()
		y := p.parseMultiplicative()
		x = &ast.BinaryExpr{Op: op.Kind, OpText: op.Kind.String(), X: x, Y: y, OpPos: op.Pos}
	}
	return x
}

// expr : expr ('*'|'/') expr
func (p *parser) parseMultiplicative() ast.Expr {
	x := p.parseUnary()
	for p.at(token.STAR) || p.at(token.SLASH) {
		op := p.tok
		p.advance()
		y := p.parseUnary()
		x = &ast.BinaryExpr{Op: op.Kind, OpText: op.Kind.String(), X: x, Y: y, OpPos: op.Pos}
	}
	return x
}

// expr : ('+'|'-'|'not') expr
func (p *parser) parseUnary() ast.Expr {
	if p.at(token.PLUS) || p.at(token.MINUS) || p.at(token.NOT) {
		op := p.tok
		p.advance()
		x := p.parseUnary()
		return &ast.UnaryExpr{Op: op.Kind, OpText: op.Kind.String(), X: x, OpPos: op.Pos}
	}
	return p.parsePrimary()
}

// parsePrimary parses the remaining productions: parenthesis, call,
// array access, and the atom literals.
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case token.LPAREN:
		lparenPos := p.tok.Pos
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.ParenExpr{Inner: inner, LparenPos: lparenPos}

	case token.INTVAL:
		lit := &ast.IntLit{Value: p.tok.IntVal, StartPos: p.tok.Pos}
		p.advance()
		return lit

	case token.FLOATVAL:
		lit := &ast.FloatLit{Value: p.tok.FloatVal, StartPos: p.tok.Pos}
		p.advance()
		return lit

	case token.CHARVAL:
		lit := &ast.CharLit{Value: p.tok.CharVal, StartPos: p.tok.Pos}
		p.advance()
		return lit

	case token.BOOLVAL:
		lit := &ast.BoolLit{Value: p.tok.BoolVal, StartPos: p.tok.Pos}
		p.advance()
		return lit

	case token.IDENT:
		name := p.ident()
		switch p.tok.Kind {
		case token.LPAREN:
			p.advance()
			args := p.parseArgs()
			p.expect(token.RPAREN)
			return &ast.CallExpr{Name: name, Args: args}
		case token.LBRACK:
			lbrackPos := p.tok.Pos
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACK)
			return &ast.IndexExpr{Array: &ast.IdentExpr{Name: name}, Index: idx, LbrackPos: lbrackPos}
		default:
			return &ast.IdentExpr{Name: name}
		}

	default:
		p.error(p.tok.Pos, "expected an expression, found %s", describe(p.tok))
		panic(errPanicMode)
	}
}
