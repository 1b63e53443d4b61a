// Package parser implements a recursive-descent parser that turns ASL
// source text into a lang/ast tree, consuming tokens from lang/lexer.
package parser

import (
	"fmt"

	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/lexer"
	"github.com/aslcomp/aslc/lang/token"
)

// Parse scans and parses a single ASL source file. The returned error, if
// non-nil, is a lexer.ErrorList or a parser ErrorList (both support Err()
// and aggregate printing); the returned Program is always non-nil, but may
// be partial when errors were recorded.
func Parse(filename string, src []byte) (*ast.Program, error) {
	var p parser
	p.init(filename, src)
	prog := p.parseProgram()
	if err := p.lex.Errors().Err(); err != nil {
		return prog, err
	}
	return prog, p.errs.Err()
}

// Error is one syntax error, with the position of the offending token.
type Error struct {
	Pos token.Position
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Col, e.Msg)
}

// ErrorList accumulates syntax errors so parsing can continue past the
// first one, surfacing as many diagnostics as possible in a single pass.
type ErrorList []Error

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0], len(el)-1)
	}
}

// Err returns el as an error, or nil if el is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

type parser struct {
	filename string
	lex      *lexer.Lexer
	errs     ErrorList

	tok lexer.Token
}

func (p *parser) init(filename string, src []byte) {
	p.filename = filename
	p.lex = lexer.New(filename, src)
	p.advance()
}

func (p *parser) advance() {
	p.tok = p.lex.Next()
}

func (p *parser) position(pos token.Pos) token.Position {
	return token.PositionOf(p.filename, pos)
}

func (p *parser) error(pos token.Pos, format string, args ...any) {
	p.errs = append(p.errs, Error{Pos: p.position(pos), Msg: fmt.Sprintf(format, args...)})
}

// errPanicMode unwinds to the nearest statement or function boundary after
// a syntax error, recovered in parseStmt and parseFunction so a single
// malformed construct does not abort the whole parse.
var errPanicMode = fmt.Errorf("parser: panic mode")

func (p *parser) expect(kind token.Kind) token.Pos {
	pos := p.tok.Pos
	if p.tok.Kind != kind {
		p.error(pos, "expected %s, found %s", kind, describe(p.tok))
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

func describe(tok lexer.Token) string {
	switch tok.Kind {
	case token.IDENT, token.INTVAL, token.FLOATVAL, token.CHARVAL, token.STRING:
		return fmt.Sprintf("%q", tok.Lit)
	default:
		return tok.Kind.String()
	}
}

func (p *parser) ident() *ast.Ident {
	pos := p.tok.Pos
	name := p.tok.Lit
	p.expect(token.IDENT)
	return &ast.Ident{Name: name, NamePos: pos}
}

// parseProgram parses `function+ EOF`.
func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		if !p.at(token.FUNC) {
			p.error(p.tok.Pos, "expected 'func', found %s", describe(p.tok))
			p.advance()
			continue
		}
		if fn := p.parseFunction(); fn != nil {
			prog.Functions = append(prog.Functions, fn)
		}
	}
	prog.EOFPos = p.tok.Pos
	return prog
}

// parseFunction parses `'func' ID '(' params? ')' (':' type)? decl* stmt* 'endfunc'`,
// recovering to the next 'endfunc' (or EOF) if its body is malformed.
func (p *parser) parseFunction() (fn *ast.Function) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.syncTo(token.ENDFUNC)
		}
	}()

	funcPos := p.expect(token.FUNC)
	name := p.ident()
	p.expect(token.LPAREN)

	fn = &ast.Function{Name: name, FuncPos: funcPos}
	if !p.at(token.RPAREN) {
		fn.Params = append(fn.Params, p.parseParam())
		for p.at(token.COMMA) {
			p.advance()
			fn.Params = append(fn.Params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)

	if p.at(token.COLON) {
		p.advance()
		fn.Output = p.parseType()
	}

	for p.at(token.VAR) {
		fn.Decls = append(fn.Decls, p.parseDecl())
	}
	for !p.at(token.ENDFUNC) && !p.at(token.EOF) {
		fn.Stmts = append(fn.Stmts, p.parseStmt())
	}
	fn.EndPos = p.expect(token.ENDFUNC)
	return fn
}

func (p *parser) parseParam() *ast.Param {
	name := p.ident()
	p.expect(token.COLON)
	typ := p.parseType()
	return &ast.Param{Name: name, Type: typ}
}

// parseDecl parses `'var' ID (',' ID)* ':' type`.
func (p *parser) parseDecl() *ast.VarDecl {
	startPos := p.expect(token.VAR)
	names := []*ast.Ident{p.ident()}
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.ident())
	}
	p.expect(token.COLON)
	typ := p.parseType()
	p.expect(token.SEMI)
	return &ast.VarDecl{Names: names, Type: typ, StartPos: startPos}
}

// parseType parses `basic_type | 'array' '[' INTVAL ']' 'of' basic_type`.
func (p *parser) parseType() *ast.TypeNode {
	pos := p.tok.Pos
	if p.at(token.ARRAY) {
		p.advance()
		p.expect(token.LBRACK)
		sizePos := p.tok.Pos
		size := int(p.tok.IntVal)
		p.expect(token.INTVAL)
		if size <= 0 {
			p.error(sizePos, "array size must be a positive integer literal")
		}
		p.expect(token.RBRACK)
		p.expect(token.OF)
		basic := p.basicType()
		return &ast.TypeNode{IsArray: true, Size: size, Basic: basic, StartPos: pos}
	}
	basic := p.basicType()
	return &ast.TypeNode{Basic: basic, StartPos: pos}
}

func (p *parser) basicType() token.Kind {
	switch p.tok.Kind {
	case token.INT, token.BOOL, token.FLOAT, token.CHAR:
		k := p.tok.Kind
		p.advance()
		return k
	default:
		p.error(p.tok.Pos, "expected a basic type, found %s", describe(p.tok))
		panic(errPanicMode)
	}
}

// syncTo advances the token stream until it finds kind (consuming it) or
// reaches EOF, recovering the parser after a malformed construct.
func (p *parser) syncTo(kind token.Kind) {
	for !p.at(kind) && !p.at(token.EOF) {
		p.advance()
	}
	if p.at(kind) {
		p.advance()
	}
}
