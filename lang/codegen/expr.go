package codegen

import (
	"fmt"
	"strconv"

	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/ir"
)

// expr lowers e, returning the code that computes its value and the
// operand that holds the result. The result is also recorded on e's
// decoration; a while guard, which is lowered twice, keeps the record of
// its second lowering.
func (p *pass) expr(e ast.Expr) (ir.InstructionList, string) {
	code, addr := p.exprCode(e)
	p.dec.SetCode(e, code)
	p.dec.SetAddr(e, addr)
	return code, addr
}

func (p *pass) exprCode(e ast.Expr) (ir.InstructionList, string) {
	switch e := e.(type) {
	case *ast.IntLit:
		t := p.newTemp()
		return ir.InstructionList{ir.ILoad(t, strconv.FormatInt(e.Value, 10))}, t
	case *ast.FloatLit:
		t := p.newTemp()
		return ir.InstructionList{ir.FLoad(t, strconv.FormatFloat(e.Value, 'g', -1, 64))}, t
	case *ast.CharLit:
		t := p.newTemp()
		return ir.InstructionList{ir.CHLoad(t, strconv.Itoa(int(e.Value)))}, t
	case *ast.BoolLit:
		t := p.newTemp()
		lit := "0"
		if e.Value {
			lit = "1"
		}
		return ir.InstructionList{ir.ILoad(t, lit)}, t
	case *ast.IdentExpr:
		return nil, e.Name.Name
	case *ast.ParenExpr:
		return p.expr(e.Inner)
	case *ast.UnaryExpr:
		return p.unary(e)
	case *ast.BinaryExpr:
		return p.binary(e)
	case *ast.IndexExpr:
		return p.index(e)
	case *ast.CallExpr:
		return p.call(e.Name, e.Args)
	default:
		return nil, ""
	}
}

func (p *pass) unary(e *ast.UnaryExpr) (ir.InstructionList, string) {
	code, xaddr := p.expr(e.X)
	switch e.OpText {
	case "+":
		return code, xaddr
	case "not":
		t := p.newTemp()
		return ir.Concat(code, ir.InstructionList{ir.Not(t, xaddr)}), t
	default: // "-"
		t := p.newTemp()
		if p.typeOf(e).IsFloat() {
			return ir.Concat(code, ir.InstructionList{ir.FNegI(t, xaddr)}), t
		}
		return ir.Concat(code, ir.InstructionList{ir.Neg(t, xaddr)}), t
	}
}

// coerceToFloat inserts a FLOAT coercion of addr when childTy is Int but
// the surrounding operation needs a Float operand, returning the (possibly
// new) operand to use.
func (p *pass) coerceToFloat(code ir.InstructionList, addr string, isInt bool) (ir.InstructionList, string) {
	if !isInt {
		return code, addr
	}
	t := p.newTemp()
	return ir.Concat(code, ir.InstructionList{ir.Float(t, addr)}), t
}

func (p *pass) binary(e *ast.BinaryExpr) (ir.InstructionList, string) {
	xcode, xaddr := p.expr(e.X)
	ycode, yaddr := p.expr(e.Y)
	xty, yty := p.typeOf(e.X), p.typeOf(e.Y)
	resultIsFloat := xty.IsFloat() || yty.IsFloat()

	switch e.OpText {
	case "+", "-", "*", "/":
		if resultIsFloat {
			xcode, xaddr = p.coerceToFloat(xcode, xaddr, xty.IsInt())
			ycode, yaddr = p.coerceToFloat(ycode, yaddr, yty.IsInt())
		}
		t := p.newTemp()
		code := ir.Concat(xcode, ycode)
		var inst ir.Instruction
		switch {
		case !resultIsFloat && e.OpText == "+":
			inst = ir.Add(t, xaddr, yaddr)
		case !resultIsFloat && e.OpText == "-":
			inst = ir.Sub(t, xaddr, yaddr)
		case !resultIsFloat && e.OpText == "*":
			inst = ir.Mul(t, xaddr, yaddr)
		case !resultIsFloat && e.OpText == "/":
			inst = ir.Div(t, xaddr, yaddr)
		case resultIsFloat && e.OpText == "+":
			inst = ir.FAdd(t, xaddr, yaddr)
		case resultIsFloat && e.OpText == "-":
			inst = ir.FSub(t, xaddr, yaddr)
		case resultIsFloat && e.OpText == "*":
			inst = ir.FMul(t, xaddr, yaddr)
		default:
			inst = ir.FDiv(t, xaddr, yaddr)
		}
		return ir.Concat(code, ir.InstructionList{inst}), t

	case "==", "!=", "<", "<=", ">", ">=":
		relFloat := xty.IsFloat() || yty.IsFloat()
		if relFloat {
			xcode, xaddr = p.coerceToFloat(xcode, xaddr, xty.IsInt())
			ycode, yaddr = p.coerceToFloat(ycode, yaddr, yty.IsInt())
		}
		code := ir.Concat(xcode, ycode)
		t := p.newTemp()
		switch e.OpText {
		case "<=":
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FLeI(t, xaddr, yaddr)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Le(t, xaddr, yaddr)})
			}
		case "<":
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FLtI(t, xaddr, yaddr)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Lt(t, xaddr, yaddr)})
			}
		case "==":
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FEqI(t, xaddr, yaddr)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Eq(t, xaddr, yaddr)})
			}
		case "!=":
			eqT := t
			t = p.newTemp()
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FEqI(eqT, xaddr, yaddr), ir.Not(t, eqT)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Eq(eqT, xaddr, yaddr), ir.Not(t, eqT)})
			}
		case ">":
			leT := t
			t = p.newTemp()
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FLeI(leT, xaddr, yaddr), ir.Not(t, leT)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Le(leT, xaddr, yaddr), ir.Not(t, leT)})
			}
		case ">=":
			ltT := t
			t = p.newTemp()
			if relFloat {
				code = ir.Concat(code, ir.InstructionList{ir.FLtI(ltT, xaddr, yaddr), ir.Not(t, ltT)})
			} else {
				code = ir.Concat(code, ir.InstructionList{ir.Lt(ltT, xaddr, yaddr), ir.Not(t, ltT)})
			}
		}
		return code, t

	case "and", "or":
		code := ir.Concat(xcode, ycode)
		t := p.newTemp()
		if e.OpText == "and" {
			code = ir.Concat(code, ir.InstructionList{ir.And(t, xaddr, yaddr)})
		} else {
			code = ir.Concat(code, ir.InstructionList{ir.Or(t, xaddr, yaddr)})
		}
		return code, t

	default:
		return ir.Concat(xcode, ycode), xaddr
	}
}

// index lowers `a[e]`, ending with the final LOADX (value-context use);
// offsetCode supplies everything up to (but not including) that load.
// Assignment and read into an array slot use leftExprOffset instead.
func (p *pass) index(e *ast.IndexExpr) (ir.InstructionList, string) {
	code, base, off := p.offsetCode(e.Array, e.Index)
	t := p.newTemp()
	code = ir.Concat(code, ir.InstructionList{ir.LoadX(t, base, off)})
	return code, t
}

// offsetCode emits the index computation for an array element read in
// value context: evaluates index, scales it by the element's size, and
// returns the array's base operand and offset operand without the final
// load.
func (p *pass) offsetCode(arr ast.Expr, index ast.Expr) (code ir.InstructionList, base, offset string) {
	arrTy := p.typeOf(arr)
	elemSize := 1
	if arrTy.IsArray() {
		elemSize = arrTy.ArrayElem().SizeOf()
	}
	_, baseAddr := p.expr(arr)
	idxCode, idxAddr := p.expr(index)

	i := p.newTemp()
	off := p.newTemp()
	code = ir.Concat(idxCode, ir.InstructionList{
		ir.ILoad(i, fmt.Sprintf("%d", elemSize)),
		ir.Mul(off, i, idxAddr),
	})
	return code, baseAddr, off
}

// leftExprOffset computes the offset of an array-slot left-expr (`a[e]`
// used as an assignment or read target), without going through p.expr on
// the array name: a left-expr's own decoration holds its *element* type,
// not the array's, so the array's type is looked up directly in the
// symbol table instead.
func (p *pass) leftExprOffset(l *ast.LeftExpr) (code ir.InstructionList, base, offset string) {
	sym, _ := p.tab.FindInStack(l.Name.Name)
	elemSize := 1
	if sym != nil && sym.Type.IsArray() {
		elemSize = sym.Type.ArrayElem().SizeOf()
	}
	idxCode, idxAddr := p.expr(l.Index)
	i := p.newTemp()
	off := p.newTemp()
	code = ir.Concat(idxCode, ir.InstructionList{
		ir.ILoad(i, fmt.Sprintf("%d", elemSize)),
		ir.Mul(off, i, idxAddr),
	})
	return code, l.Name.Name, off
}

// call lowers a call used in an expression context: a non-void callee
// always reserves and pops a result slot, since the caller needs the
// value. Statement-context calls go through callStmt instead.
func (p *pass) call(name *ast.Ident, args []ast.Expr) (ir.InstructionList, string) {
	return p.callResult(name, args, true)
}

// callStmt lowers a call used as a statement on its own (`f(a);`). The
// return value, if any, is unused, so no result slot is reserved or
// popped for it.
func (p *pass) callStmt(name *ast.Ident, args []ast.Expr) ir.InstructionList {
	code, _ := p.callResult(name, args, false)
	return code
}

func (p *pass) callResult(name *ast.Ident, args []ast.Expr, keepResult bool) (ir.InstructionList, string) {
	sym, _ := p.tab.FindInStack(name.Name)
	fnTy := sym.Type
	isVoid := fnTy.FuncReturn().IsVoid()

	var code ir.InstructionList
	if !isVoid && keepResult {
		code = append(code, ir.Push(""))
	}
	for i, arg := range args {
		argCode, argAddr := p.expr(arg)
		code = ir.Concat(code, argCode)
		paramTy := fnTy.FuncParam(i)
		if paramTy.IsArray() {
			t := p.newTemp()
			code = ir.Concat(code, ir.InstructionList{ir.ALoad(t, argAddr)})
			argAddr = t
		} else if paramTy.IsFloat() && p.typeOf(arg).IsInt() {
			t := p.newTemp()
			code = ir.Concat(code, ir.InstructionList{ir.Float(t, argAddr)})
			argAddr = t
		}
		code = append(code, ir.Push(argAddr))
	}
	code = append(code, ir.Call(name.Name))
	for range args {
		code = append(code, ir.Pop(""))
	}
	if isVoid || !keepResult {
		return code, ""
	}
	t := p.newTemp()
	code = append(code, ir.Pop(t))
	return code, t
}
