package typepass_test

import (
	"testing"

	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/parser"
	"github.com/aslcomp/aslc/lang/symbolpass"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typepass"
	"github.com/aslcomp/aslc/lang/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, src string) *errs.Reporter {
	t.Helper()
	prog, err := parser.Parse("test.asl", []byte(src))
	require.NoError(t, err)

	tab := symtab.New()
	dec := decor.New()
	ts := typesys.New()
	rep := &errs.Reporter{}
	symbolpass.Run("test.asl", prog, tab, dec, ts, rep)
	typepass.Run("test.asl", prog, tab, dec, rep)
	return rep
}

func TestWellTypedProgramHasNoErrors(t *testing.T) {
	rep := check(t, `
func main()
	var x: int;
	var y: float;
	x = 1 + 2;
	y = x + 1.5;
	if x < 10 then
		write x;
	endif
endfunc
`)
	assert.Equal(t, 0, rep.NumErrors())
}

func TestIncompatibleAssignment(t *testing.T) {
	rep := check(t, `
func main()
	var b: bool;
	b = 1;
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.IncompatibleAssignment, rep.Errors()[0].Kind)
}

func TestIncompatibleOperator(t *testing.T) {
	rep := check(t, `
func main()
	var b: bool;
	b = 1 and true;
endfunc
`)
	require.Len(t, rep.Errors(), 1) // IncompatibleOperator only; the Error rhs suppresses IncompatibleAssignment
	assert.Equal(t, errs.IncompatibleOperator, rep.Errors()[0].Kind)
}

func TestBooleanRequired(t *testing.T) {
	rep := check(t, `
func main()
	if 1 then
	endif
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.BooleanRequired, rep.Errors()[0].Kind)
}

func TestArrayAccessChecks(t *testing.T) {
	rep := check(t, `
func main()
	var a: array [5] of int;
	var x: int;
	var f: float;
	x = a[f];
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.NonIntegerIndexInArrayAccess, rep.Errors()[0].Kind)
}

func TestNonArrayAccess(t *testing.T) {
	rep := check(t, `
func main()
	var x: int;
	var y: int;
	y = x[0];
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.NonArrayInArrayAccess, rep.Errors()[0].Kind)
}

func TestCallArityAndParamChecks(t *testing.T) {
	rep := check(t, `
func helper(n: int): int
	return n;
endfunc
func main()
	var x: int;
	x = helper(1, 2);
	x = helper(true);
endfunc
`)
	require.Len(t, rep.Errors(), 2)
	assert.Equal(t, errs.NumberOfParameters, rep.Errors()[0].Kind)
	assert.Equal(t, errs.IncompatibleParameter, rep.Errors()[1].Kind)
}

func TestVoidCallUsedAsValueIsNotFunction(t *testing.T) {
	rep := check(t, `
func proc()
endfunc
func main()
	var x: int;
	x = proc();
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.IsNotFunction, rep.Errors()[0].Kind)
}

func TestReturnTypeChecks(t *testing.T) {
	rep := check(t, `
func f(): int
	return;
endfunc
func main()
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.IncompatibleReturn, rep.Errors()[0].Kind)
}

func TestImplicitIntToFloatWidening(t *testing.T) {
	rep := check(t, `
func f(): float
	return 1;
endfunc
func main()
endfunc
`)
	assert.Equal(t, 0, rep.NumErrors())
}

func TestReadRequiresLValueAndBasicType(t *testing.T) {
	rep := check(t, `
func main()
	var a: array [3] of int;
	read a;
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.ReadWriteRequireBasic, rep.Errors()[0].Kind)
}
