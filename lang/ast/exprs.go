package ast

import "github.com/aslcomp/aslc/lang/token"

// IdentExpr is an identifier occurring in expression position: a variable,
// parameter or array reference by name (no index).
type IdentExpr struct {
	Name *Ident
}

func (e *IdentExpr) Pos() token.Pos { return e.Name.Pos() }
func (*IdentExpr) exprNode()        {}

// IndexExpr is `expr '[' expr ']'`: an array element access.
type IndexExpr struct {
	Array     Expr
	Index     Expr
	LbrackPos token.Pos
}

func (e *IndexExpr) Pos() token.Pos { return e.Array.Pos() }
func (*IndexExpr) exprNode()        {}

// ParenExpr is `'(' expr ')'`. It is kept as its own node (rather than
// discarded by the parser) so error positions and any future pretty
// printing reflect the source faithfully.
type ParenExpr struct {
	Inner     Expr
	LparenPos token.Pos
}

func (e *ParenExpr) Pos() token.Pos { return e.LparenPos }
func (*ParenExpr) exprNode()        {}

// UnaryExpr is a prefix operator application: '+', '-', 'not'.
type UnaryExpr struct {
	Op     token.Kind
	OpText string
	X      Expr
	OpPos  token.Pos
}

func (e *UnaryExpr) Pos() token.Pos { return e.OpPos }
func (*UnaryExpr) exprNode()        {}

// BinaryExpr is an infix operator application. Pos is the operator token's
// position, not the left operand's, since IncompatibleOperator errors are
// reported at the operator.
type BinaryExpr struct {
	Op     token.Kind
	OpText string
	X, Y   Expr
	OpPos  token.Pos
}

func (e *BinaryExpr) Pos() token.Pos { return e.OpPos }
func (*BinaryExpr) exprNode()        {}

// CallExpr is `ID '(' (expr (',' expr)*)? ')'` in expression position: a
// call to a function with a non-void return.
type CallExpr struct {
	Name *Ident
	Args []Expr
}

func (e *CallExpr) Pos() token.Pos { return e.Name.Pos() }
func (*CallExpr) exprNode()        {}

// IntLit is an integer literal.
type IntLit struct {
	Value    int64
	StartPos token.Pos
}

func (e *IntLit) Pos() token.Pos { return e.StartPos }
func (*IntLit) exprNode()        {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value    float64
	StartPos token.Pos
}

func (e *FloatLit) Pos() token.Pos { return e.StartPos }
func (*FloatLit) exprNode()        {}

// CharLit is a single-quoted character literal.
type CharLit struct {
	Value    byte
	StartPos token.Pos
}

func (e *CharLit) Pos() token.Pos { return e.StartPos }
func (*CharLit) exprNode()        {}

// BoolLit is the `true` or `false` keyword literal.
type BoolLit struct {
	Value    bool
	StartPos token.Pos
}

func (e *BoolLit) Pos() token.Pos { return e.StartPos }
func (*BoolLit) exprNode()        {}
