// Package symtab implements the scope stack that SymbolPass populates and
// TypePass and CodegenPass query: a stack of scopes with $global$ always at
// the bottom, each holding an insertion-ordered set of symbols.
package symtab

import (
	"github.com/aslcomp/aslc/lang/typesys"
	"github.com/dolthub/swiss"
)

// SymbolKind distinguishes the three symbol shapes a scope can hold.
type SymbolKind uint8

const (
	LocalVar SymbolKind = iota
	Parameter
	FunctionSym
)

// Symbol is one entry of a Scope: a declared local variable, a function
// parameter, or a function signature.
type Symbol struct {
	Kind SymbolKind
	Name string
	Type typesys.TypeId // variable/parameter type, or the Function(params, ret) type
}

// Scope is an ordered mapping from identifier to Symbol. Order is the
// order of insertion, preserved in names alongside the swiss.Map used for
// O(1) lookup.
type Scope struct {
	names []string
	index *swiss.Map[string, *Symbol]
}

func newScope() *Scope {
	return &Scope{index: swiss.NewMap[string, *Symbol](8)}
}

// Insert adds sym under sym.Name. It returns false without modifying the
// scope if the name already exists in it.
func (s *Scope) Insert(sym *Symbol) bool {
	if _, ok := s.index.Get(sym.Name); ok {
		return false
	}
	s.index.Put(sym.Name, sym)
	s.names = append(s.names, sym.Name)
	return true
}

// Lookup finds a symbol by name in this scope only.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	return s.index.Get(name)
}

// Symbols returns the scope's symbols in insertion order.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, len(s.names))
	for i, n := range s.names {
		sym, _ := s.index.Get(n)
		out[i] = sym
	}
	return out
}

// Table is the scope stack shared by all three compiler passes. $global$
// is pushed once by New and is never popped.
type Table struct {
	stack     []*Scope
	funcStack []*Symbol
}

const globalScopeName = "$global$"

// New returns a Table with the global scope pushed.
func New() *Table {
	t := &Table{}
	t.stack = append(t.stack, newScope())
	return t
}

// GlobalScope returns the bottommost, always-present scope.
func (t *Table) GlobalScope() *Scope { return t.stack[0] }

// PushNewScope pushes a fresh, empty scope (used when entering a
// function's body).
func (t *Table) PushNewScope() *Scope {
	s := newScope()
	t.stack = append(t.stack, s)
	return s
}

// PushThisScope pushes an already-built scope back onto the stack (used
// when a pass needs to re-enter a scope decorated by an earlier pass).
func (t *Table) PushThisScope(s *Scope) {
	t.stack = append(t.stack, s)
}

// PopScope removes the top scope. It panics if called when only the
// global scope remains, since that pairing invariant must never break.
func (t *Table) PopScope() {
	if len(t.stack) <= 1 {
		panic("symtab: PopScope called with no function scope on the stack")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// CurrentScope returns the scope on top of the stack.
func (t *Table) CurrentScope() *Scope { return t.stack[len(t.stack)-1] }

// FindInStack walks the stack from top to bottom and returns the first
// matching symbol.
func (t *Table) FindInStack(name string) (*Symbol, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if sym, ok := t.stack[i].Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// FindInCurrentScope probes only the top scope.
func (t *Table) FindInCurrentScope(name string) (*Symbol, bool) {
	return t.CurrentScope().Lookup(name)
}

// EnterFunction and ExitFunction track the function whose body is
// currently being walked, independent of the scope stack depth, so
// CurrentFunctionTy is O(1) instead of re-deriving it from scope contents.
func (t *Table) EnterFunction(sym *Symbol) { t.funcStack = append(t.funcStack, sym) }

func (t *Table) ExitFunction() { t.funcStack = t.funcStack[:len(t.funcStack)-1] }

// CurrentFunctionTy returns the signature of the function currently being
// walked, or false if none (at the top level between functions).
func (t *Table) CurrentFunctionTy() (typesys.TypeId, bool) {
	if len(t.funcStack) == 0 {
		return typesys.TypeId{}, false
	}
	top := t.funcStack[len(t.funcStack)-1]
	return top.Type, true
}
