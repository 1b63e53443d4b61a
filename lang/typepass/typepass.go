// Package typepass implements the second tree walk: it computes a TypeId
// and an l-value flag for every expression and left-expression, and
// validates every statement's operand types, reporting violations to an
// errs.Reporter.
package typepass

import (
	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/token"
	"github.com/aslcomp/aslc/lang/typesys"
)

// Run re-enters every function's scope (as attached by symbolpass.Run) and
// type-checks its body.
func Run(filename string, prog *ast.Program, tab *symtab.Table, dec *decor.Table, rep *errs.Reporter) {
	p := &pass{filename: filename, tab: tab, dec: dec, rep: rep}
	for _, fn := range prog.Functions {
		p.function(fn)
	}
}

type pass struct {
	filename string
	tab      *symtab.Table
	dec      *decor.Table
	rep      *errs.Reporter
}

func (p *pass) pos(tp token.Pos) token.Position { return token.PositionOf(p.filename, tp) }

func (p *pass) function(fn *ast.Function) {
	scope := p.dec.Scope(fn)
	if scope == nil {
		return // symbolpass already reported why this function has no usable scope
	}
	p.tab.PushThisScope(scope)

	fnSym, ok := p.tab.GlobalScope().Lookup(fn.Name.Name)
	if ok {
		p.tab.EnterFunction(fnSym)
	}

	for _, stmt := range fn.Stmts {
		p.stmt(stmt)
	}

	if ok {
		p.tab.ExitFunction()
	}
	p.tab.PopScope()
}

func (p *pass) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		p.assignStmt(s)
	case *ast.IfStmt:
		p.guardedBlock(s.Cond, "if")
		for _, st := range s.Then {
			p.stmt(st)
		}
		for _, st := range s.Else {
			p.stmt(st)
		}
	case *ast.WhileStmt:
		p.guardedBlock(s.Cond, "while")
		for _, st := range s.Body {
			p.stmt(st)
		}
	case *ast.ReadStmt:
		p.readStmt(s)
	case *ast.WriteExprStmt:
		p.writeExprStmt(s)
	case *ast.WriteStringStmt:
		// always accepted; escape decoding is codegen's concern.
	case *ast.CallStmt:
		p.call(s.Pos(), s.Name, s.Args)
	case *ast.ReturnStmt:
		p.returnStmt(s)
	}
}

func (p *pass) guardedBlock(cond ast.Expr, text string) {
	ty := p.expr(cond)
	if !ty.IsBool() {
		p.rep.BooleanRequiredf(p.pos(cond.Pos()), text)
	}
}

func (p *pass) assignStmt(s *ast.AssignStmt) {
	lty, lIsLValue := p.leftExpr(s.Left)
	rty := p.exprAsValue(s.Right)

	if !lIsLValue && !lty.IsError() {
		p.rep.NonReferenceableLeftExprf(p.pos(s.AssignPos))
	}
	if lty.IsError() || rty.IsError() {
		return // already reported where the Error type was produced
	}
	if !typesys.Copyable(lty, rty) {
		p.rep.IncompatibleAssignmentf(p.pos(s.AssignPos))
	}
}

// exprAsValue types an expression in value context, reporting
// IsNotFunction when a Void-returning call is used where a value is
// required.
func (p *pass) exprAsValue(e ast.Expr) typesys.TypeId {
	ty := p.expr(e)
	if call, ok := e.(*ast.CallExpr); ok && ty.IsVoid() {
		p.rep.IsNotFunctionf(p.pos(call.Pos()), call.Name.Name)
		return typesys.Error
	}
	return ty
}

func (p *pass) readStmt(s *ast.ReadStmt) {
	ty, isLValue := p.leftExpr(s.Target)
	if !isLValue {
		p.rep.NonReferenceableExpressionf(p.pos(s.ReadPos), "read")
	}
	if !ty.IsPrimitive() {
		p.rep.ReadWriteRequireBasicf(p.pos(s.ReadPos), "read")
	}
}

func (p *pass) writeExprStmt(s *ast.WriteExprStmt) {
	ty := p.expr(s.Value)
	if !ty.IsPrimitive() {
		p.rep.ReadWriteRequireBasicf(p.pos(s.WritePos), "write")
	}
}

func (p *pass) returnStmt(s *ast.ReturnStmt) {
	fnTy, ok := p.tab.CurrentFunctionTy()
	if !ok {
		return
	}
	retTy := fnTy.FuncReturn()
	if s.Value == nil {
		if !retTy.IsVoid() {
			p.rep.IncompatibleReturnf(p.pos(s.ReturnPos))
		}
		return
	}
	valTy := p.exprAsValue(s.Value)
	if retTy.IsVoid() || !typesys.Copyable(retTy, valTy) {
		p.rep.IncompatibleReturnf(p.pos(s.ReturnPos))
	}
}

// leftExpr types the left_expr grammar form, used by assignment and read
// targets. isLValue is false only when the name resolves to a function.
func (p *pass) leftExpr(l *ast.LeftExpr) (typesys.TypeId, bool) {
	sym, found := p.tab.FindInStack(l.Name.Name)
	if !found {
		p.rep.UndeclaredIdentf(p.pos(l.Name.Pos()), l.Name.Name)
		p.dec.SetType(l, typesys.Error)
		p.dec.SetLValue(l, false)
		return typesys.Error, false
	}

	isLValue := sym.Kind != symtab.FunctionSym
	ty := sym.Type

	if l.Index != nil {
		idxTy := p.expr(l.Index)
		if !ty.IsArray() {
			p.rep.NonArrayInArrayAccessf(p.pos(l.Pos()))
			ty = typesys.Error
		} else {
			if !idxTy.IsInt() {
				p.rep.NonIntegerIndexInArrayAccessf(p.pos(l.Pos()))
				ty = typesys.Error
			} else {
				ty = ty.ArrayElem()
			}
		}
	}

	p.dec.SetType(l, ty)
	p.dec.SetLValue(l, isLValue)
	return ty, isLValue
}

// expr types an expression node, recording its TypeId and isLValue flag.
func (p *pass) expr(e ast.Expr) typesys.TypeId {
	ty, isLValue := p.exprType(e)
	p.dec.SetType(e, ty)
	p.dec.SetLValue(e, isLValue)
	return ty
}

func (p *pass) exprType(e ast.Expr) (typesys.TypeId, bool) {
	switch e := e.(type) {
	case *ast.IntLit:
		return typesys.Int, false
	case *ast.FloatLit:
		return typesys.Float, false
	case *ast.CharLit:
		return typesys.Char, false
	case *ast.BoolLit:
		return typesys.Bool, false
	case *ast.ParenExpr:
		ty := p.expr(e.Inner)
		return ty, false
	case *ast.IdentExpr:
		sym, found := p.tab.FindInStack(e.Name.Name)
		if !found {
			p.rep.UndeclaredIdentf(p.pos(e.Name.Pos()), e.Name.Name)
			return typesys.Error, false
		}
		return sym.Type, false
	case *ast.UnaryExpr:
		return p.unary(e), false
	case *ast.BinaryExpr:
		return p.binary(e), false
	case *ast.IndexExpr:
		return p.index(e), true
	case *ast.CallExpr:
		return p.call(e.Pos(), e.Name, e.Args), false
	default:
		return typesys.Error, false
	}
}

func (p *pass) unary(e *ast.UnaryExpr) typesys.TypeId {
	xty := p.expr(e.X)
	switch e.OpText {
	case "not":
		if !xty.IsBool() {
			p.rep.IncompatibleOperatorf(p.pos(e.OpPos), e.OpText)
			return typesys.Error
		}
		return typesys.Bool
	default: // "+", "-"
		if !xty.IsNumeric() {
			p.rep.IncompatibleOperatorf(p.pos(e.OpPos), e.OpText)
			return typesys.Error
		}
		return xty
	}
}

func (p *pass) binary(e *ast.BinaryExpr) typesys.TypeId {
	xty := p.expr(e.X)
	yty := p.expr(e.Y)

	switch e.OpText {
	case "+", "-", "*", "/":
		if !xty.IsNumeric() || !yty.IsNumeric() {
			p.rep.IncompatibleOperatorf(p.pos(e.OpPos), e.OpText)
			return typesys.Error
		}
		if xty.IsFloat() || yty.IsFloat() {
			return typesys.Float
		}
		return typesys.Int
	case "==", "!=", "<", "<=", ">", ">=":
		if !typesys.Comparable(xty, yty, e.OpText) {
			p.rep.IncompatibleOperatorf(p.pos(e.OpPos), e.OpText)
			return typesys.Error
		}
		return typesys.Bool
	case "and", "or":
		if !xty.IsBool() || !yty.IsBool() {
			p.rep.IncompatibleOperatorf(p.pos(e.OpPos), e.OpText)
			return typesys.Error
		}
		return typesys.Bool
	default:
		return typesys.Error
	}
}

func (p *pass) index(e *ast.IndexExpr) typesys.TypeId {
	aty := p.expr(e.Array)
	ity := p.expr(e.Index)
	if !aty.IsArray() {
		p.rep.NonArrayInArrayAccessf(p.pos(e.Pos()))
		return typesys.Error
	}
	if !ity.IsInt() {
		p.rep.NonIntegerIndexInArrayAccessf(p.pos(e.Pos()))
		return typesys.Error
	}
	return aty.ArrayElem()
}

func (p *pass) call(pos token.Pos, name *ast.Ident, args []ast.Expr) typesys.TypeId {
	argTys := make([]typesys.TypeId, len(args))
	for i, a := range args {
		argTys[i] = p.expr(a)
	}

	sym, found := p.tab.FindInStack(name.Name)
	if !found {
		p.rep.UndeclaredIdentf(p.pos(name.Pos()), name.Name)
		return typesys.Error
	}
	if sym.Kind != symtab.FunctionSym || !sym.Type.IsFunction() {
		p.rep.IsNotCallablef(p.pos(name.Pos()), name.Name)
		return typesys.Error
	}
	if sym.Type.FuncArity() != len(args) {
		p.rep.NumberOfParametersf(p.pos(pos), name.Name)
		return sym.Type.FuncReturn()
	}
	for i, argTy := range argTys {
		if !typesys.Copyable(sym.Type.FuncParam(i), argTy) {
			p.rep.IncompatibleParameterf(p.pos(args[i].Pos()), i+1, name.Name)
		}
	}
	return sym.Type.FuncReturn()
}
