// Package ast defines the parse-tree node types for ASL, corresponding
// one-to-one with the grammar productions of spec.md §6. The lexer and
// parser that build this tree are outside the core specification (the
// core passes treat an *ast.Program as a read-only, well-formed input)
// but are included here so the compiler is a complete, runnable pipeline.
//
// Node identity (pointer identity of the concrete *T value) is the key
// used by the lang/decor side-table: nodes are never copied by value
// once built, and the tree is never mutated by the analysis passes.
package ast

import "github.com/aslcomp/aslc/lang/token"

// Node is implemented by every node in the tree.
type Node interface {
	// Pos returns the position of the node's leading token, used to
	// locate semantic errors.
	Pos() token.Pos
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Ident is a bare identifier occurrence (a use or a declaration site).
type Ident struct {
	Name    string
	NamePos token.Pos
}

func (id *Ident) Pos() token.Pos { return id.NamePos }

// Program is the root node: one or more functions.
type Program struct {
	Functions []*Function
	EOFPos    token.Pos
}

func (p *Program) Pos() token.Pos {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return p.EOFPos
}

// Param is one entry of a function's parameter list.
type Param struct {
	Name *Ident
	Type *TypeNode
}

// VarDecl is a `var x, y, ...: type;` declaration inside a function body.
type VarDecl struct {
	Names    []*Ident
	Type     *TypeNode
	StartPos token.Pos
}

func (d *VarDecl) Pos() token.Pos { return d.StartPos }

// TypeNode represents the `type` grammar production: either a bare basic
// type, or `array [N] of basic_type`.
type TypeNode struct {
	IsArray  bool
	Size     int        // valid only when IsArray
	Basic    token.Kind // INT, BOOL, FLOAT or CHAR
	StartPos token.Pos
}

func (t *TypeNode) Pos() token.Pos { return t.StartPos }

// Function is one `func ... endfunc` declaration.
type Function struct {
	Name    *Ident
	Params  []*Param
	Output  *TypeNode // nil when the function has no output clause (Void)
	Decls   []*VarDecl
	Stmts   []Stmt
	FuncPos token.Pos // position of the 'func' keyword
	EndPos  token.Pos // position of the 'endfunc' keyword
}

func (f *Function) Pos() token.Pos { return f.FuncPos }
