package ir

// InstructionList is an ordered sequence of instructions, concatenable in
// the order CodegenPass assembles expression and statement code.
type InstructionList []Instruction

// Concat returns a new list containing lists in order. It never mutates
// its arguments.
func Concat(lists ...InstructionList) InstructionList {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make(InstructionList, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Local is one local variable or parameter slot of a subroutine: its name
// and its size in words (1 for a scalar, the array length for an array).
type Local struct {
	Name string
	Size int
}

// Subroutine is the emitted form of one function: its name, the names of
// its parameters (in declaration order, a subset of Locals), its full
// locals list, and its instruction stream.
type Subroutine struct {
	Name   string
	Params []string
	Locals []Local
	Code   InstructionList
}

// Program is the whole compiled unit: an ordered list of subroutines.
type Program struct {
	Subroutines []*Subroutine
}

// Disassemble renders the program as a human-readable instruction listing,
// one subroutine at a time.
func (p *Program) Disassemble() string {
	var s string
	for _, sub := range p.Subroutines {
		s += sub.Name + ":\n"
		for _, inst := range sub.Code {
			if inst.Op == LABEL {
				s += "  " + inst.String() + "\n"
				continue
			}
			s += "    " + inst.String() + "\n"
		}
	}
	return s
}
