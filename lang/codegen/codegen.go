// Package codegen implements the third tree walk: it lowers a typed,
// decorated ast.Program into an ir.Program of three-address instructions,
// one subroutine per function. It assumes symbolpass and typepass already
// ran without reporting any error; codegen does not itself validate
// anything.
package codegen

import (
	"fmt"

	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/ir"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typesys"
)

// Run lowers prog to an ir.Program. tab and dec must already carry the
// scope and type decorations left by symbolpass.Run and typepass.Run.
func Run(prog *ast.Program, tab *symtab.Table, dec *decor.Table) *ir.Program {
	p := &pass{tab: tab, dec: dec}
	out := &ir.Program{}
	for _, fn := range prog.Functions {
		out.Subroutines = append(out.Subroutines, p.function(fn))
	}
	return out
}

type pass struct {
	tab  *symtab.Table
	dec  *decor.Table
	temp int
	lbl  int
}

func (p *pass) newTemp() string {
	t := fmt.Sprintf("%%t%d", p.temp)
	p.temp++
	return t
}

func (p *pass) newLabel(prefix string) string {
	l := fmt.Sprintf("%s_%d", prefix, p.lbl)
	p.lbl++
	return l
}

func (p *pass) function(fn *ast.Function) *ir.Subroutine {
	scope := p.dec.Scope(fn)
	p.tab.PushThisScope(scope)
	p.temp, p.lbl = 0, 0

	fnSym, _ := p.tab.GlobalScope().Lookup(fn.Name.Name)
	retTy := typesys.Void
	if fnSym != nil {
		retTy = fnSym.Type.FuncReturn()
	}

	sub := &ir.Subroutine{Name: fn.Name.Name}
	if !retTy.IsVoid() {
		sub.Params = append(sub.Params, "_result")
		sub.Locals = append(sub.Locals, ir.Local{Name: "_result", Size: 1})
	}
	for _, param := range fn.Params {
		sym, _ := scope.Lookup(param.Name.Name)
		size := 1
		if sym != nil {
			size = sym.Type.SizeOf()
		}
		sub.Params = append(sub.Params, param.Name.Name)
		sub.Locals = append(sub.Locals, ir.Local{Name: param.Name.Name, Size: size})
	}
	for _, decl := range fn.Decls {
		declTy, _ := p.dec.Type(decl.Type)
		for _, name := range decl.Names {
			sub.Locals = append(sub.Locals, ir.Local{Name: name.Name, Size: declTy.SizeOf()})
		}
	}

	var body ir.InstructionList
	for _, stmt := range fn.Stmts {
		body = ir.Concat(body, p.stmt(stmt))
	}
	body = ir.Concat(body, ir.InstructionList{ir.Return()})
	sub.Code = body

	p.tab.PopScope()
	return sub
}

func (p *pass) typeOf(n ast.Node) typesys.TypeId {
	ty, _ := p.dec.Type(n)
	return ty
}
