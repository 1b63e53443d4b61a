package ast

import "github.com/aslcomp/aslc/lang/token"

// LeftExpr is the `left_expr` grammar production: a bare identifier, or an
// indexed array slot. It is distinct from the general expression grammar
// because only these two shapes may appear as an assignment target or a
// read target.
type LeftExpr struct {
	Name     *Ident
	Index    Expr // nil for a bare identifier
	StartPos token.Pos
}

func (l *LeftExpr) Pos() token.Pos { return l.StartPos }

// AssignStmt is `left_expr '=' expr ';'`.
type AssignStmt struct {
	Left      *LeftExpr
	Right     Expr
	AssignPos token.Pos // position of the '=' token
}

func (s *AssignStmt) Pos() token.Pos { return s.Left.Pos() }
func (*AssignStmt) stmtNode()        {}

// IfStmt is `'if' expr 'then' stmt* ('else' stmt*)? 'endif'`.
type IfStmt struct {
	Cond  Expr
	Then  []Stmt
	Else  []Stmt // nil when there is no else clause
	IfPos token.Pos
}

func (s *IfStmt) Pos() token.Pos { return s.IfPos }
func (*IfStmt) stmtNode()        {}

// ReadStmt is `'read' left_expr ';'`.
type ReadStmt struct {
	Target  *LeftExpr
	ReadPos token.Pos
}

func (s *ReadStmt) Pos() token.Pos { return s.ReadPos }
func (*ReadStmt) stmtNode()        {}

// WhileStmt is `'while' expr 'do' stmt* 'endwhile'`.
type WhileStmt struct {
	Cond     Expr
	Body     []Stmt
	WhilePos token.Pos
}

func (s *WhileStmt) Pos() token.Pos { return s.WhilePos }
func (*WhileStmt) stmtNode()        {}

// WriteExprStmt is `'write' expr ';'`.
type WriteExprStmt struct {
	Value    Expr
	WritePos token.Pos
}

func (s *WriteExprStmt) Pos() token.Pos { return s.WritePos }
func (*WriteExprStmt) stmtNode()        {}

// WriteStringStmt is `'write' STRING ';'`. Raw retains the original
// source text including the surrounding quotes, so codegen can decode its
// escapes exactly as the source wrote them.
type WriteStringStmt struct {
	Raw      string
	WritePos token.Pos
}

func (s *WriteStringStmt) Pos() token.Pos { return s.WritePos }
func (*WriteStringStmt) stmtNode()        {}

// CallStmt is `ID '(' (expr (',' expr)*)? ')' ';'` used as a statement.
type CallStmt struct {
	Name *Ident
	Args []Expr
}

func (s *CallStmt) Pos() token.Pos { return s.Name.Pos() }
func (*CallStmt) stmtNode()        {}

// ReturnStmt is `'return' expr? ';'`.
type ReturnStmt struct {
	Value     Expr // nil when no expression is present
	ReturnPos token.Pos
}

func (s *ReturnStmt) Pos() token.Pos { return s.ReturnPos }
func (*ReturnStmt) stmtNode()        {}
