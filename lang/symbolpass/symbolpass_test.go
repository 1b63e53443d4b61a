package symbolpass_test

import (
	"testing"

	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/parser"
	"github.com/aslcomp/aslc/lang/symbolpass"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (*errs.Reporter, *symtab.Table, *decor.Table) {
	t.Helper()
	prog, err := parser.Parse("test.asl", []byte(src))
	require.NoError(t, err)

	tab := symtab.New()
	dec := decor.New()
	ts := typesys.New()
	rep := &errs.Reporter{}
	symbolpass.Run("test.asl", prog, tab, dec, ts, rep)
	return rep, tab, dec
}

func TestMainDeclaredAndWellFormed(t *testing.T) {
	rep, tab, _ := run(t, `
func main()
endfunc
`)
	assert.Equal(t, 0, rep.NumErrors())
	sym, ok := tab.GlobalScope().Lookup("main")
	require.True(t, ok)
	assert.True(t, sym.Type.IsFunction())
	assert.Equal(t, 0, sym.Type.FuncArity())
}

func TestMissingMainReportsError(t *testing.T) {
	rep, _, _ := run(t, `
func helper()
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.NoMainProperlyDeclared, rep.Errors()[0].Kind)
}

func TestDuplicateFunctionNameReportsDeclaredIdent(t *testing.T) {
	rep, _, _ := run(t, `
func f()
endfunc
func f()
endfunc
func main()
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.DeclaredIdent, rep.Errors()[0].Kind)
}

func TestDuplicateLocalReportsDeclaredIdent(t *testing.T) {
	rep, _, _ := run(t, `
func main()
	var x: int;
	var x: float;
endfunc
`)
	require.Equal(t, 1, rep.NumErrors())
	assert.Equal(t, errs.DeclaredIdent, rep.Errors()[0].Kind)
}

func TestParameterAndLocalTypesRecorded(t *testing.T) {
	rep, tab, _ := run(t, `
func f(n: int, a: array [4] of char): bool
	var total: int;
endfunc
func main()
endfunc
`)
	assert.Equal(t, 0, rep.NumErrors())
	sym, ok := tab.GlobalScope().Lookup("f")
	require.True(t, ok)
	assert.Equal(t, 2, sym.Type.FuncArity())
	assert.True(t, sym.Type.FuncParam(0).IsInt())
	assert.True(t, sym.Type.FuncParam(1).IsArray())
	assert.True(t, sym.Type.FuncReturn().IsBool())
}
