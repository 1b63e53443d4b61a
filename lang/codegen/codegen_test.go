package codegen_test

import (
	"testing"

	"github.com/aslcomp/aslc/lang/codegen"
	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/ir"
	"github.com/aslcomp/aslc/lang/parser"
	"github.com/aslcomp/aslc/lang/symbolpass"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typepass"
	"github.com/aslcomp/aslc/lang/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) *ir.Program {
	t.Helper()
	prog, err := parser.Parse("test.asl", []byte(src))
	require.NoError(t, err)

	tab := symtab.New()
	dec := decor.New()
	ts := typesys.New()
	rep := &errs.Reporter{}
	symbolpass.Run("test.asl", prog, tab, dec, ts, rep)
	typepass.Run("test.asl", prog, tab, dec, rep)
	require.Equal(t, 0, rep.NumErrors(), "unexpected type errors: %v", rep.Errors())

	return codegen.Run(prog, tab, dec)
}

func subroutine(t *testing.T, p *ir.Program, name string) *ir.Subroutine {
	t.Helper()
	for _, sub := range p.Subroutines {
		if sub.Name == name {
			return sub
		}
	}
	t.Fatalf("no subroutine named %q", name)
	return nil
}

func ops(sub *ir.Subroutine) []ir.Op {
	out := make([]ir.Op, len(sub.Code))
	for i, inst := range sub.Code {
		out[i] = inst.Op
	}
	return out
}

func TestSimpleAssignmentEmitsLoadAndTrailingReturn(t *testing.T) {
	p := compile(t, `
func main()
	var x: int;
	x = 1 + 2;
endfunc
`)
	main := subroutine(t, p, "main")
	assert.Equal(t, []ir.Op{ir.ILOAD, ir.ILOAD, ir.ADD, ir.LOAD, ir.RETURN}, ops(main))
	assert.Equal(t, "main", main.Name)
	assert.Contains(t, main.Locals, ir.Local{Name: "x", Size: 1})
}

func TestFloatWideningCoercesIntOperand(t *testing.T) {
	p := compile(t, `
func main()
	var x: int;
	var y: float;
	x = 1;
	y = x + 1.5;
endfunc
`)
	main := subroutine(t, p, "main")
	assert.Equal(t,
		[]ir.Op{ir.ILOAD, ir.LOAD, ir.FLOAT, ir.FLOAD, ir.FADD, ir.LOAD, ir.RETURN},
		ops(main))
}

func TestIfWithoutElseEmitsSingleEndLabel(t *testing.T) {
	p := compile(t, `
func main()
	var x: int;
	if x < 10 then
		x = 1;
	endif
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	assert.Contains(t, o, ir.FJUMP)
	assert.Contains(t, o, ir.LABEL)
	assert.Equal(t, ir.RETURN, o[len(o)-1])
}

func TestIfElseEmitsBothBranchesAndJoinLabel(t *testing.T) {
	p := compile(t, `
func main()
	var x: int;
	if x < 10 then
		x = 1;
	else
		x = 2;
	endif
endfunc
`)
	main := subroutine(t, p, "main")
	var labels, ujumps int
	for _, inst := range main.Code {
		switch inst.Op {
		case ir.LABEL:
			labels++
		case ir.UJUMP:
			ujumps++
		}
	}
	assert.Equal(t, 2, labels)
	assert.Equal(t, 1, ujumps)
}

func TestWhileLoopEvaluatesGuardTwice(t *testing.T) {
	p := compile(t, `
func main()
	var x: int;
	x = 0;
	while x < 10 do
		x = x + 1;
	endwhile
endfunc
`)
	main := subroutine(t, p, "main")
	var lt int
	for _, inst := range main.Code {
		if inst.Op == ir.LT {
			lt++
		}
	}
	assert.Equal(t, 2, lt, "guard must be evaluated once before the loop and once at its end")
}

func TestArrayAssignmentComputesScaledOffset(t *testing.T) {
	p := compile(t, `
func main()
	var a: array [5] of int;
	var i: int;
	a[i] = 9;
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	assert.Contains(t, o, ir.MUL)
	assert.Contains(t, o, ir.XLOAD)
}

func TestArrayReadComputesScaledOffset(t *testing.T) {
	p := compile(t, `
func main()
	var a: array [5] of int;
	var i: int;
	read a[i];
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	assert.Contains(t, o, ir.READI)
	assert.Contains(t, o, ir.MUL)
	assert.Contains(t, o, ir.XLOAD)
}

func TestNotEqualLowersToEqThenNot(t *testing.T) {
	p := compile(t, `
func main()
	var x, y: int;
	var b: bool;
	b = x != y;
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	eqIdx, notIdx := -1, -1
	for i, op := range o {
		if op == ir.EQ {
			eqIdx = i
		}
		if op == ir.NOT && eqIdx >= 0 && notIdx < 0 {
			notIdx = i
		}
	}
	require.NotEqual(t, -1, eqIdx)
	require.NotEqual(t, -1, notIdx)
	assert.Less(t, eqIdx, notIdx)
}

func TestGreaterThanLowersToLeThenNot(t *testing.T) {
	p := compile(t, `
func main()
	var x, y: int;
	var b: bool;
	b = x > y;
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	assert.Contains(t, o, ir.LE)
	assert.Contains(t, o, ir.NOT)
}

func TestCallConventionPushesReservationAndArgsThenPops(t *testing.T) {
	p := compile(t, `
func helper(n: int): int
	return n;
endfunc
func main()
	var x: int;
	x = helper(3);
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	// PUSH "" (result reservation), PUSH arg, CALL, POP "" (arg discard), POP result
	var pushes, pops, calls int
	for _, op := range o {
		switch op {
		case ir.PUSH:
			pushes++
		case ir.POP:
			pops++
		case ir.CALL:
			calls++
		}
	}
	assert.Equal(t, 2, pushes)
	assert.Equal(t, 2, pops)
	assert.Equal(t, 1, calls)
}

func TestCallStmtWithUnusedResultReservesNoResultSlot(t *testing.T) {
	p := compile(t, `
func helper(n: int): int
	return n;
endfunc
func main()
	helper(3);
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	// Only the argument PUSH/POP pair: no result-slot reservation PUSH
	// and no trailing POP of a discarded result.
	var pushes, pops, calls int
	for _, op := range o {
		switch op {
		case ir.PUSH:
			pushes++
		case ir.POP:
			pops++
		case ir.CALL:
			calls++
		}
	}
	assert.Equal(t, 1, pushes)
	assert.Equal(t, 1, pops)
	assert.Equal(t, 1, calls)
}

func TestVoidFunctionReturnEmitsImmediateReturn(t *testing.T) {
	p := compile(t, `
func proc()
	return;
	write 1;
endfunc
func main()
	proc();
endfunc
`)
	proc := subroutine(t, p, "proc")
	o := ops(proc)
	// the explicit return plus the trailing function-exit RETURN; code
	// after the explicit return is still emitted (no early-exit folding).
	var returns int
	for _, op := range o {
		if op == ir.RETURN {
			returns++
		}
	}
	assert.Equal(t, 2, returns)
	assert.Contains(t, o, ir.WRITEI)
}

func TestNonVoidReturnStoresResultWithoutImmediateReturn(t *testing.T) {
	p := compile(t, `
func f(): int
	return 1;
	return 2;
endfunc
func main()
endfunc
`)
	f := subroutine(t, p, "f")
	o := ops(f)
	var returns, iloads int
	for _, op := range o {
		if op == ir.RETURN {
			returns++
		}
		if op == ir.ILOAD {
			iloads++
		}
	}
	assert.Equal(t, 1, returns, "only the function-exit RETURN is emitted")
	assert.GreaterOrEqual(t, iloads, 2)
	assert.Contains(t, f.Params, "_result")
}

func TestWriteStringDecodesNewlineEscapeToWriteLn(t *testing.T) {
	p := compile(t, `
func main()
	write "hi\n";
endfunc
`)
	main := subroutine(t, p, "main")
	o := ops(main)
	assert.Contains(t, o, ir.WRITELN)
	assert.Contains(t, o, ir.WRITEC)
}

func TestWriteStringDecodesQuoteEscapeAsSingleChar(t *testing.T) {
	p := compile(t, `
func main()
	write "a\"b";
endfunc
`)
	main := subroutine(t, p, "main")
	var writecs int
	for _, inst := range main.Code {
		if inst.Op == ir.WRITEC {
			writecs++
		}
	}
	assert.Equal(t, 3, writecs) // 'a', '"', 'b'
}

func TestTempCounterResetsPerFunction(t *testing.T) {
	p := compile(t, `
func f()
	var x: int;
	x = 1 + 2;
endfunc
func g()
	var y: int;
	y = 3 + 4;
endfunc
func main()
endfunc
`)
	fCode := subroutine(t, p, "f").Code
	gCode := subroutine(t, p, "g").Code
	require.NotEmpty(t, fCode)
	require.NotEmpty(t, gCode)
	assert.Equal(t, fCode[0].Args[0], gCode[0].Args[0], "first temp name should be identical across functions")
}
