package typesys_test

import (
	"testing"

	"github.com/aslcomp/aslc/lang/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivePredicates(t *testing.T) {
	assert.True(t, typesys.Int.IsInt())
	assert.True(t, typesys.Int.IsNumeric())
	assert.True(t, typesys.Int.IsPrimitive())
	assert.False(t, typesys.Int.IsFloat())

	assert.True(t, typesys.Float.IsFloat())
	assert.True(t, typesys.Float.IsNumeric())

	assert.True(t, typesys.Bool.IsBool())
	assert.False(t, typesys.Bool.IsNumeric())

	assert.True(t, typesys.Char.IsChar())
	assert.True(t, typesys.Void.IsVoid())
	assert.True(t, typesys.Error.IsError())
}

func TestArrayInterning(t *testing.T) {
	ts := typesys.New()
	a1 := ts.Array(10, typesys.Int)
	a2 := ts.Array(10, typesys.Int)
	a3 := ts.Array(5, typesys.Int)

	require.True(t, a1.IsArray())
	assert.True(t, typesys.Equal(a1, a2), "same shape must intern to the same handle")
	assert.False(t, typesys.Equal(a1, a3))
	assert.Equal(t, 10, a1.ArrayLen())
	assert.True(t, typesys.Equal(a1.ArrayElem(), typesys.Int))
	assert.Equal(t, 10, a1.SizeOf())
	assert.Equal(t, 1, typesys.Int.SizeOf())
}

func TestFunctionInterning(t *testing.T) {
	ts := typesys.New()
	f1 := ts.Function([]typesys.TypeId{typesys.Int, typesys.Float}, typesys.Bool)
	f2 := ts.Function([]typesys.TypeId{typesys.Int, typesys.Float}, typesys.Bool)
	f3 := ts.Function([]typesys.TypeId{typesys.Int}, typesys.Bool)

	assert.True(t, typesys.Equal(f1, f2))
	assert.False(t, typesys.Equal(f1, f3))
	assert.Equal(t, 2, f1.FuncArity())
	assert.True(t, typesys.Equal(f1.FuncParam(0), typesys.Int))
	assert.True(t, typesys.Equal(f1.FuncReturn(), typesys.Bool))
}

func TestErrorNeverEqual(t *testing.T) {
	assert.False(t, typesys.Equal(typesys.Error, typesys.Error))
	assert.False(t, typesys.Equal(typesys.Error, typesys.Int))
}

func TestCopyable(t *testing.T) {
	ts := typesys.New()
	assert.True(t, typesys.Copyable(typesys.Int, typesys.Int))
	assert.True(t, typesys.Copyable(typesys.Float, typesys.Int), "int widens to float")
	assert.False(t, typesys.Copyable(typesys.Int, typesys.Float), "float narrows to int is not copyable")
	assert.False(t, typesys.Copyable(typesys.Bool, typesys.Int))

	a1 := ts.Array(3, typesys.Int)
	a2 := ts.Array(3, typesys.Int)
	a3 := ts.Array(4, typesys.Int)
	assert.True(t, typesys.Copyable(a1, a2))
	assert.False(t, typesys.Copyable(a1, a3))
	assert.False(t, typesys.Copyable(typesys.Error, typesys.Int))
	assert.False(t, typesys.Copyable(typesys.Int, typesys.Error))
}

func TestComparable(t *testing.T) {
	assert.True(t, typesys.Comparable(typesys.Int, typesys.Float, "=="))
	assert.True(t, typesys.Comparable(typesys.Int, typesys.Int, "!="))
	assert.False(t, typesys.Comparable(typesys.Bool, typesys.Int, "=="))
	assert.True(t, typesys.Comparable(typesys.Int, typesys.Float, "<"))
	assert.True(t, typesys.Comparable(typesys.Char, typesys.Char, "<="))
	assert.False(t, typesys.Comparable(typesys.Char, typesys.Int, "<"))
	assert.False(t, typesys.Comparable(typesys.Bool, typesys.Bool, "<"))
}
