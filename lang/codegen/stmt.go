package codegen

import (
	"strconv"

	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/ir"
)

func (p *pass) stmt(s ast.Stmt) ir.InstructionList {
	switch s := s.(type) {
	case *ast.AssignStmt:
		return p.assignStmt(s)
	case *ast.IfStmt:
		return p.ifStmt(s)
	case *ast.WhileStmt:
		return p.whileStmt(s)
	case *ast.ReadStmt:
		return p.readStmt(s)
	case *ast.WriteExprStmt:
		return p.writeExprStmt(s)
	case *ast.WriteStringStmt:
		return p.writeStringStmt(s)
	case *ast.CallStmt:
		return p.callStmt(s.Name, s.Args)
	case *ast.ReturnStmt:
		return p.returnStmt(s)
	default:
		return nil
	}
}

func (p *pass) assignStmt(s *ast.AssignStmt) ir.InstructionList {
	if s.Left.Index == nil {
		rcode, raddr := p.expr(s.Right)
		return ir.Concat(rcode, ir.InstructionList{ir.Load(s.Left.Name.Name, raddr)})
	}

	offCode, base, off := p.leftExprOffset(s.Left)
	rcode, raddr := p.expr(s.Right)
	return ir.Concat(offCode, rcode, ir.InstructionList{ir.XLoad(base, off, raddr)})
}

func (p *pass) ifStmt(s *ast.IfStmt) ir.InstructionList {
	guardCode, guardAddr := p.expr(s.Cond)
	endLabel := p.newLabel("if_end")

	var thenCode, elseCode ir.InstructionList
	for _, st := range s.Then {
		thenCode = ir.Concat(thenCode, p.stmt(st))
	}

	if len(s.Else) == 0 {
		return ir.Concat(guardCode, ir.InstructionList{ir.FJump(guardAddr, endLabel)}, thenCode, ir.InstructionList{ir.Label(endLabel)})
	}

	elseLabel := p.newLabel("if_else")
	for _, st := range s.Else {
		elseCode = ir.Concat(elseCode, p.stmt(st))
	}
	return ir.Concat(
		guardCode,
		ir.InstructionList{ir.FJump(guardAddr, elseLabel)},
		thenCode,
		ir.InstructionList{ir.UJump(endLabel), ir.Label(elseLabel)},
		elseCode,
		ir.InstructionList{ir.Label(endLabel)},
	)
}

// whileStmt emits the guard twice (once before the loop body, once at its
// end) rather than an unconditional backward jump to a single header
// label; both encodings have equivalent termination semantics.
func (p *pass) whileStmt(s *ast.WhileStmt) ir.InstructionList {
	loopLabel := p.newLabel("loop")
	endLabel := p.newLabel("endwhile")

	guardCode, guardAddr := p.expr(s.Cond)
	var body ir.InstructionList
	for _, st := range s.Body {
		body = ir.Concat(body, p.stmt(st))
	}
	guardCode2, guardAddr2 := p.expr(s.Cond)

	return ir.Concat(
		guardCode,
		ir.InstructionList{ir.FJump(guardAddr, endLabel), ir.Label(loopLabel)},
		body,
		guardCode2,
		ir.InstructionList{ir.FJump(guardAddr2, endLabel), ir.UJump(loopLabel), ir.Label(endLabel)},
	)
}

func (p *pass) readStmt(s *ast.ReadStmt) ir.InstructionList {
	ty := p.typeOf(s.Target)

	if s.Target.Index == nil {
		name := s.Target.Name.Name
		switch {
		case ty.IsFloat():
			return ir.InstructionList{ir.ReadF(name)}
		case ty.IsChar():
			return ir.InstructionList{ir.ReadC(name)}
		default:
			return ir.InstructionList{ir.ReadI(name)}
		}
	}

	offCode, base, off := p.leftExprOffset(s.Target)
	t := p.newTemp()
	var readInst ir.Instruction
	switch {
	case ty.IsFloat():
		readInst = ir.ReadF(t)
	case ty.IsChar():
		readInst = ir.ReadC(t)
	default:
		readInst = ir.ReadI(t)
	}
	return ir.Concat(offCode, ir.InstructionList{readInst, ir.XLoad(base, off, t)})
}

func (p *pass) writeExprStmt(s *ast.WriteExprStmt) ir.InstructionList {
	code, addr := p.expr(s.Value)
	ty := p.typeOf(s.Value)
	switch {
	case ty.IsFloat():
		return ir.Concat(code, ir.InstructionList{ir.WriteF(addr)})
	case ty.IsChar():
		return ir.Concat(code, ir.InstructionList{ir.WriteC(addr)})
	default: // Int, Bool
		return ir.Concat(code, ir.InstructionList{ir.WriteI(addr)})
	}
}

// writeStringStmt decodes s.Raw (the source literal including its
// surrounding quotes) one character at a time: a bare newline escape
// becomes WRITELN, every other character (escaped or not) is loaded as a
// char constant and emitted with WRITEC.
func (p *pass) writeStringStmt(s *ast.WriteStringStmt) ir.InstructionList {
	raw := s.Raw
	inner := raw
	if len(raw) >= 2 {
		inner = raw[1 : len(raw)-1]
	}

	var code ir.InstructionList
	for i := 0; i < len(inner); i++ {
		b := inner[i]
		if b == '\\' && i+1 < len(inner) {
			i++
			esc := inner[i]
			if esc == 'n' {
				code = append(code, ir.WriteLn())
				continue
			}
			t := p.newTemp()
			code = append(code, ir.CHLoad(t, strconv.Itoa(int(decodeEscape(esc)))), ir.WriteC(t))
			continue
		}
		t := p.newTemp()
		code = append(code, ir.CHLoad(t, strconv.Itoa(int(b))), ir.WriteC(t))
	}
	return code
}

func decodeEscape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	default:
		return b
	}
}

// returnStmt in a void function emits an immediate RETURN. In a non-void
// function it only stores the result; the RETURN instruction itself is
// emitted once at function exit (see pass.function), so control falls
// through any statements that follow a non-void return.
func (p *pass) returnStmt(s *ast.ReturnStmt) ir.InstructionList {
	if s.Value == nil {
		return ir.InstructionList{ir.Return()}
	}
	code, addr := p.expr(s.Value)
	ty := p.typeOf(s.Value)
	var loader ir.Instruction
	switch {
	case ty.IsFloat():
		loader = ir.FLoad("_result", addr)
	case ty.IsChar():
		loader = ir.CHLoad("_result", addr)
	default:
		loader = ir.ILoad("_result", addr)
	}
	return ir.Concat(code, ir.InstructionList{loader})
}
