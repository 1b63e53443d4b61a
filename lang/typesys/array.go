package typesys

import "fmt"

// TypeSystem owns the interning tables for the compound types (Array and
// Function) built while compiling a single program. Primitive and
// sentinel types need no instance since they have exactly one possible
// shape; TypeSystem exists so that two requests for the same array or
// function shape return the identical TypeId, making Equal a pointer
// comparison.
type TypeSystem struct {
	arrays    map[string]*descriptor
	functions map[string]*descriptor
}

// New returns a TypeSystem ready to intern compound types.
func New() *TypeSystem {
	return &TypeSystem{
		arrays:    make(map[string]*descriptor),
		functions: make(map[string]*descriptor),
	}
}

// Array interns and returns the type Array(size, elem). elem must be a
// primitive type; ASL arrays are single-dimensional with a primitive
// element type.
func (ts *TypeSystem) Array(size int, elem TypeId) TypeId {
	key := fmt.Sprintf("[%d]%s", size, elem)
	if d, ok := ts.arrays[key]; ok {
		return TypeId{d: d}
	}
	d := &descriptor{kind: KindArray, size: size, elem: elem}
	ts.arrays[key] = d
	return TypeId{d: d}
}
