// Package symbolpass implements the first tree walk of the compiler: it
// builds the scope stack from a parsed ast.Program, declaring every
// function, parameter and local variable, and leaves a scope attached to
// every function node for TypePass to re-enter.
package symbolpass

import (
	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/token"
	"github.com/aslcomp/aslc/lang/typesys"
)

// Run walks prog, populating tab and decor and reporting declaration
// errors to rep. The TypeSystem is shared with TypePass and CodegenPass so
// array and function types interned here compare equal downstream.
func Run(filename string, prog *ast.Program, tab *symtab.Table, dec *decor.Table, ts *typesys.TypeSystem, rep *errs.Reporter) {
	p := &pass{filename: filename, tab: tab, dec: dec, ts: ts, rep: rep}
	p.program(prog)
}

type pass struct {
	filename string
	tab      *symtab.Table
	dec      *decor.Table
	ts       *typesys.TypeSystem
	rep      *errs.Reporter
}

func (p *pass) pos(tp token.Pos) token.Position { return token.PositionOf(p.filename, tp) }

func (p *pass) program(prog *ast.Program) {
	// $global$ already current: symtab.New() pushes it.
	for _, fn := range prog.Functions {
		p.function(fn)
	}
	if !p.hasWellFormedMain() {
		p.rep.NoMainProperlyDeclaredf(p.pos(prog.Pos()))
	}
}

func (p *pass) hasWellFormedMain() bool {
	sym, ok := p.tab.GlobalScope().Lookup("main")
	if !ok || sym.Kind != symtab.FunctionSym {
		return false
	}
	return sym.Type.IsFunction() && sym.Type.FuncArity() == 0 && sym.Type.FuncReturn().IsVoid()
}

func (p *pass) function(fn *ast.Function) {
	paramTypes := make([]typesys.TypeId, len(fn.Params))
	for i, param := range fn.Params {
		paramTypes[i] = p.typeNode(param.Type)
	}
	retTy := typesys.Void
	if fn.Output != nil {
		retTy = p.typeNode(fn.Output)
	}
	fnTy := p.ts.Function(paramTypes, retTy)

	if _, exists := p.tab.GlobalScope().Lookup(fn.Name.Name); exists {
		p.rep.DeclaredIdentf(p.pos(fn.Name.Pos()), fn.Name.Name)
	} else {
		p.tab.GlobalScope().Insert(&symtab.Symbol{Kind: symtab.FunctionSym, Name: fn.Name.Name, Type: fnTy})
	}

	scope := p.tab.PushNewScope()
	p.dec.SetScope(fn, scope)
	for i, param := range fn.Params {
		if !scope.Insert(&symtab.Symbol{Kind: symtab.Parameter, Name: param.Name.Name, Type: paramTypes[i]}) {
			p.rep.DeclaredIdentf(p.pos(param.Name.Pos()), param.Name.Name)
		}
	}

	for _, decl := range fn.Decls {
		p.varDecl(decl)
	}

	p.tab.PopScope()
}

func (p *pass) varDecl(decl *ast.VarDecl) {
	ty := p.typeNode(decl.Type)
	for _, name := range decl.Names {
		if !p.tab.CurrentScope().Insert(&symtab.Symbol{Kind: symtab.LocalVar, Name: name.Name, Type: ty}) {
			p.rep.DeclaredIdentf(p.pos(name.Pos()), name.Name)
		}
	}
}

func (p *pass) typeNode(t *ast.TypeNode) typesys.TypeId {
	basic := p.basicType(t.Basic)
	var ty typesys.TypeId
	if t.IsArray {
		ty = p.ts.Array(t.Size, basic)
	} else {
		ty = basic
	}
	p.dec.SetType(t, ty)
	return ty
}

func (p *pass) basicType(k token.Kind) typesys.TypeId {
	switch k {
	case token.INT:
		return typesys.Int
	case token.BOOL:
		return typesys.Bool
	case token.FLOAT:
		return typesys.Float
	case token.CHAR:
		return typesys.Char
	default:
		return typesys.Error
	}
}
