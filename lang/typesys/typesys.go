// Package typesys implements the static type system of the ASL language:
// interned type descriptors, the predicates used throughout SymbolPass,
// TypePass and CodegenPass, and the assignability (Copyable) and
// comparability (Comparable) relations of spec.md §3.1.
//
// A TypeId is a small comparable handle. Two TypeId values describe the
// same type iff their underlying descriptor pointers are equal, except
// for Error, which is never equal to any type, including itself — this
// is what lets Error suppress cascading diagnostics: a node decorated
// with Error never accidentally satisfies an equality check downstream.
package typesys

import "fmt"

// Kind identifies which alternative of the type grammar a TypeId denotes.
type Kind uint8

const (
	KindError Kind = iota
	KindVoid
	KindInt
	KindFloat
	KindBool
	KindChar
	KindArray
	KindFunction
)

// descriptor is the interned representation behind a TypeId. Primitive
// and sentinel kinds have a single, package-level descriptor; Array and
// Function descriptors are interned per TypeSystem instance since their
// shape depends on caller-provided sizes, element types and signatures.
type descriptor struct {
	kind   Kind
	size   int      // Array: number of elements
	elem   TypeId   // Array: element type
	params []TypeId // Function: parameter types, in order
	ret    TypeId   // Function: return type (may be Void)
}

// TypeId is an interned handle for a value type.
type TypeId struct {
	d *descriptor
}

var (
	errorDescriptor = &descriptor{kind: KindError}
	voidDescriptor  = &descriptor{kind: KindVoid}
	intDescriptor   = &descriptor{kind: KindInt}
	floatDescriptor = &descriptor{kind: KindFloat}
	boolDescriptor  = &descriptor{kind: KindBool}
	charDescriptor  = &descriptor{kind: KindChar}
)

// Error is the sentinel type produced at a node whose children were
// already ill-typed. It suppresses cascading errors: callers must check
// IsError before applying any other type rule.
var Error = TypeId{d: errorDescriptor}

// Void is only a legal type for a function's declared return type, or for
// the type of a statement-context call to a Void-returning function.
var Void = TypeId{d: voidDescriptor}

// Int, Float, Bool and Char are the four primitive types.
var (
	Int   = TypeId{d: intDescriptor}
	Float = TypeId{d: floatDescriptor}
	Bool  = TypeId{d: boolDescriptor}
	Char  = TypeId{d: charDescriptor}
)

// Kind returns the type's top-level alternative.
func (t TypeId) Kind() Kind { return t.d.kind }

func (t TypeId) IsError() bool    { return t.d.kind == KindError }
func (t TypeId) IsVoid() bool     { return t.d.kind == KindVoid }
func (t TypeId) IsInt() bool      { return t.d.kind == KindInt }
func (t TypeId) IsFloat() bool    { return t.d.kind == KindFloat }
func (t TypeId) IsBool() bool     { return t.d.kind == KindBool }
func (t TypeId) IsChar() bool     { return t.d.kind == KindChar }
func (t TypeId) IsArray() bool    { return t.d.kind == KindArray }
func (t TypeId) IsFunction() bool { return t.d.kind == KindFunction }

// IsNumeric is true for Int and Float.
func (t TypeId) IsNumeric() bool { return t.IsInt() || t.IsFloat() }

// IsPrimitive is true for Int, Float, Bool and Char.
func (t TypeId) IsPrimitive() bool {
	return t.IsInt() || t.IsFloat() || t.IsBool() || t.IsChar()
}

// SizeOf returns the storage stride of the type: 1 for every primitive,
// and the element count for an array. It is used only as a per-element
// stride multiplier in codegen.
func (t TypeId) SizeOf() int {
	if t.IsArray() {
		return t.d.size
	}
	return 1
}

// ArrayLen panics if t is not an array; callers must check IsArray first.
func (t TypeId) ArrayLen() int {
	if !t.IsArray() {
		panic("typesys: ArrayLen of non-array type")
	}
	return t.d.size
}

// ArrayElem panics if t is not an array; callers must check IsArray first.
func (t TypeId) ArrayElem() TypeId {
	if !t.IsArray() {
		panic("typesys: ArrayElem of non-array type")
	}
	return t.d.elem
}

// FuncArity panics if t is not a function type.
func (t TypeId) FuncArity() int {
	if !t.IsFunction() {
		panic("typesys: FuncArity of non-function type")
	}
	return len(t.d.params)
}

// FuncParam panics if t is not a function type or i is out of range.
func (t TypeId) FuncParam(i int) TypeId {
	if !t.IsFunction() {
		panic("typesys: FuncParam of non-function type")
	}
	return t.d.params[i]
}

// FuncReturn panics if t is not a function type.
func (t TypeId) FuncReturn() TypeId {
	if !t.IsFunction() {
		panic("typesys: FuncReturn of non-function type")
	}
	return t.d.ret
}

// Equal reports whether a and b denote the same type. Error is never
// equal to anything, not even to another Error value, so that a
// suppressed node never silently satisfies a downstream equality check.
func Equal(a, b TypeId) bool {
	if a.IsError() || b.IsError() {
		return false
	}
	return a.d == b.d
}

func (t TypeId) String() string {
	switch t.d.kind {
	case KindError:
		return "error"
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindArray:
		return fmt.Sprintf("array[%d] of %s", t.d.size, t.d.elem)
	case KindFunction:
		return fmt.Sprintf("function(%v) -> %s", t.d.params, t.d.ret)
	default:
		return "<invalid type>"
	}
}

// Copyable implements the assignability relation of spec.md §3.1: true
// iff L and R are the same primitive type, or L is Float and R is Int
// (widening), or both are arrays of equal length and equal element type
// and neither side is Error.
func Copyable(l, r TypeId) bool {
	if l.IsError() || r.IsError() {
		return false
	}
	if l.IsPrimitive() && r.IsPrimitive() {
		if Equal(l, r) {
			return true
		}
		return l.IsFloat() && r.IsInt()
	}
	if l.IsArray() && r.IsArray() {
		return l.ArrayLen() == r.ArrayLen() && Equal(l.ArrayElem(), r.ArrayElem())
	}
	return false
}

// Comparable implements the comparability relation of spec.md §3.1 for
// the given operator. op must be one of "==", "!=", "<", "<=", ">", ">=".
func Comparable(l, r TypeId, op string) bool {
	if l.IsError() || r.IsError() {
		return false
	}
	switch op {
	case "==", "!=":
		if Equal(l, r) {
			return true
		}
		return l.IsNumeric() && r.IsNumeric()
	case "<", "<=", ">", ">=":
		if l.IsNumeric() && r.IsNumeric() {
			return true
		}
		return l.IsChar() && r.IsChar()
	default:
		return false
	}
}
