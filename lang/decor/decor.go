// Package decor implements the tree-decoration side-table shared by the
// three compiler passes: SymbolPass, TypePass and CodegenPass write
// per-node metadata here instead of mutating the parse tree, keyed by the
// identity of the ast.Node pointer they apply to.
package decor

import (
	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/ir"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typesys"
)

// entry is the sparse per-node record. Only the fields a given node kind
// and pass need are ever populated; zero values mean "not decorated".
type entry struct {
	scope    *symtab.Scope
	typ      typesys.TypeId
	hasType  bool
	isLValue bool
	addr     string
	offset   string
	code     ir.InstructionList
}

// Table is the decoration side-table for a single compilation. It is not
// safe for concurrent use; the passes run strictly sequentially.
type Table struct {
	entries map[ast.Node]*entry
}

// New returns an empty decoration table.
func New() *Table {
	return &Table{entries: make(map[ast.Node]*entry)}
}

func (t *Table) entry(n ast.Node) *entry {
	e, ok := t.entries[n]
	if !ok {
		e = &entry{}
		t.entries[n] = e
	}
	return e
}

// SetScope attaches the scope pushed for a function node.
func (t *Table) SetScope(n ast.Node, s *symtab.Scope) { t.entry(n).scope = s }

// Scope returns the scope previously attached to n, or nil.
func (t *Table) Scope(n ast.Node) *symtab.Scope { return t.entry(n).scope }

// SetType records the type computed for an expression, left-expression, or
// type node.
func (t *Table) SetType(n ast.Node, ty typesys.TypeId) {
	e := t.entry(n)
	e.typ = ty
	e.hasType = true
}

// Type returns the type recorded for n, and whether one was ever set.
func (t *Table) Type(n ast.Node) (typesys.TypeId, bool) {
	e, ok := t.entries[n]
	if !ok || !e.hasType {
		return typesys.TypeId{}, false
	}
	return e.typ, true
}

// SetLValue records whether n denotes a referenceable storage location.
func (t *Table) SetLValue(n ast.Node, isLValue bool) { t.entry(n).isLValue = isLValue }

// IsLValue returns the l-value flag recorded for n.
func (t *Table) IsLValue(n ast.Node) bool { return t.entry(n).isLValue }

// SetAddr records the operand name CodegenPass synthesized for n's value.
func (t *Table) SetAddr(n ast.Node, addr string) { t.entry(n).addr = addr }

// Addr returns the operand name recorded for n.
func (t *Table) Addr(n ast.Node) string { return t.entry(n).addr }

// SetOffset records the byte-offset operand for an array-slot left-expr.
func (t *Table) SetOffset(n ast.Node, offset string) { t.entry(n).offset = offset }

// Offset returns the offset operand recorded for n, empty when n is not an
// array slot.
func (t *Table) Offset(n ast.Node) string { return t.entry(n).offset }

// SetCode records the instruction list synthesized to compute n's value.
func (t *Table) SetCode(n ast.Node, code ir.InstructionList) { t.entry(n).code = code }

// Code returns the instruction list recorded for n.
func (t *Table) Code(n ast.Node) ir.InstructionList { return t.entry(n).code }
