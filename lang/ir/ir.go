// Package ir defines the three-address, stack-based instruction set that
// CodegenPass emits, and the subroutine/program containers that hold it.
package ir

import "fmt"

// Op identifies an instruction opcode.
type Op int8

const (
	ADD Op = iota
	SUB
	MUL
	DIV
	FADD
	FSUB
	FMUL
	FDIV

	EQ
	LT
	LE
	FEQ
	FLT
	FLE

	AND
	OR
	NOT
	NEG
	FNEG

	ILOAD
	FLOAD
	CHLOAD
	LOAD
	XLOAD
	LOADX
	FLOAT

	READI
	READF
	READC
	WRITEI
	WRITEF
	WRITEC
	WRITELN

	UJUMP
	FJUMP
	LABEL

	PUSH
	POP
	CALL
	RETURN
	ALOAD
)

var opNames = [...]string{
	ADD: "ADD", SUB: "SUB", MUL: "MUL", DIV: "DIV",
	FADD: "FADD", FSUB: "FSUB", FMUL: "FMUL", FDIV: "FDIV",
	EQ: "EQ", LT: "LT", LE: "LE", FEQ: "FEQ", FLT: "FLT", FLE: "FLE",
	AND: "AND", OR: "OR", NOT: "NOT", NEG: "NEG", FNEG: "FNEG",
	ILOAD: "ILOAD", FLOAD: "FLOAD", CHLOAD: "CHLOAD", LOAD: "LOAD",
	XLOAD: "XLOAD", LOADX: "LOADX", FLOAT: "FLOAT",
	READI: "READI", READF: "READF", READC: "READC",
	WRITEI: "WRITEI", WRITEF: "WRITEF", WRITEC: "WRITEC", WRITELN: "WRITELN",
	UJUMP: "UJUMP", FJUMP: "FJUMP", LABEL: "LABEL",
	PUSH: "PUSH", POP: "POP", CALL: "CALL", RETURN: "RETURN", ALOAD: "ALOAD",
}

func (op Op) String() string {
	if int(op) < 0 || int(op) >= len(opNames) {
		return "UNKNOWN"
	}
	return opNames[op]
}

// Instruction is one three-address instruction. Operands are string
// identifiers: a named variable, a literal constant's textual form, a
// temporary of the form "%tN", or a label name, depending on the opcode.
type Instruction struct {
	Op   Op
	Args []string
}

// String renders an instruction in "OP a, b, c" disassembly form, or
// "label:" for LABEL.
func (i Instruction) String() string {
	if i.Op == LABEL {
		return fmt.Sprintf("%s:", i.Args[0])
	}
	s := i.Op.String()
	for j, a := range i.Args {
		if j == 0 {
			s += " " + a
		} else {
			s += ", " + a
		}
	}
	return s
}

func inst(op Op, args ...string) Instruction { return Instruction{Op: op, Args: args} }

// Constructors, one per opcode, matching the operand shapes of spec.md.

func Add(dst, a, b string) Instruction    { return inst(ADD, dst, a, b) }
func Sub(dst, a, b string) Instruction    { return inst(SUB, dst, a, b) }
func Mul(dst, a, b string) Instruction    { return inst(MUL, dst, a, b) }
func Div(dst, a, b string) Instruction    { return inst(DIV, dst, a, b) }
func FAdd(dst, a, b string) Instruction   { return inst(FADD, dst, a, b) }
func FSub(dst, a, b string) Instruction   { return inst(FSUB, dst, a, b) }
func FMul(dst, a, b string) Instruction   { return inst(FMUL, dst, a, b) }
func FDiv(dst, a, b string) Instruction   { return inst(FDIV, dst, a, b) }

func Eq(dst, a, b string) Instruction  { return inst(EQ, dst, a, b) }
func Lt(dst, a, b string) Instruction  { return inst(LT, dst, a, b) }
func Le(dst, a, b string) Instruction  { return inst(LE, dst, a, b) }
func FEqI(dst, a, b string) Instruction { return inst(FEQ, dst, a, b) }
func FLtI(dst, a, b string) Instruction { return inst(FLT, dst, a, b) }
func FLeI(dst, a, b string) Instruction { return inst(FLE, dst, a, b) }

func And(dst, a, b string) Instruction { return inst(AND, dst, a, b) }
func Or(dst, a, b string) Instruction  { return inst(OR, dst, a, b) }
func Not(dst, a string) Instruction    { return inst(NOT, dst, a) }
func Neg(dst, a string) Instruction    { return inst(NEG, dst, a) }
func FNegI(dst, a string) Instruction  { return inst(FNEG, dst, a) }

func ILoad(dst, constant string) Instruction  { return inst(ILOAD, dst, constant) }
func FLoad(dst, constant string) Instruction  { return inst(FLOAD, dst, constant) }
func CHLoad(dst, constant string) Instruction { return inst(CHLOAD, dst, constant) }
func Load(dst, src string) Instruction        { return inst(LOAD, dst, src) }
func XLoad(base, offset, src string) Instruction { return inst(XLOAD, base, offset, src) }
func LoadX(dst, base, offset string) Instruction { return inst(LOADX, dst, base, offset) }
func Float(dst, src string) Instruction       { return inst(FLOAT, dst, src) }

func ReadI(dst string) Instruction { return inst(READI, dst) }
func ReadF(dst string) Instruction { return inst(READF, dst) }
func ReadC(dst string) Instruction { return inst(READC, dst) }
func WriteI(src string) Instruction { return inst(WRITEI, src) }
func WriteF(src string) Instruction { return inst(WRITEF, src) }
func WriteC(src string) Instruction { return inst(WRITEC, src) }
func WriteLn() Instruction          { return inst(WRITELN) }

func UJump(label string) Instruction            { return inst(UJUMP, label) }
func FJump(cond, label string) Instruction      { return inst(FJUMP, cond, label) }
func Label(name string) Instruction             { return inst(LABEL, name) }

func Push(x string) Instruction  { return inst(PUSH, x) }
func Pop(x string) Instruction   { return inst(POP, x) }
func Call(f string) Instruction  { return inst(CALL, f) }
func Return() Instruction        { return inst(RETURN) }
func ALoad(dst, base string) Instruction { return inst(ALOAD, dst, base) }
