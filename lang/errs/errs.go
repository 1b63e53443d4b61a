// Package errs implements the semantic error taxonomy of the ASL
// compiler: an accumulating, non-fatal error reporter used by SymbolPass
// and TypePass. Analysis never stops early on an error; it keeps
// annotating the tree so that later errors remain precise, and the driver
// decides whether the accumulated count suppresses code generation.
package errs

import (
	"fmt"
	"io"

	"github.com/aslcomp/aslc/lang/token"
)

// Kind identifies one of the semantic error variants of spec.md §7. The
// message text associated with each Kind is part of the compiler's
// contract with its users and must not be changed casually.
type Kind int

const (
	DeclaredIdent Kind = iota
	UndeclaredIdent
	IncompatibleAssignment
	NonReferenceableLeftExpr
	IncompatibleOperator
	NonArrayInArrayAccess
	NonIntegerIndexInArrayAccess
	BooleanRequired
	IsNotCallable
	IsNotFunction
	NumberOfParameters
	IncompatibleParameter
	NonReferenceableExpression
	IncompatibleReturn
	ReadWriteRequireBasic
	NoMainProperlyDeclared
)

// Error is one reported semantic error, carrying its source location and
// fully rendered message.
type Error struct {
	Kind Kind
	Pos  token.Position
	Msg  string
}

// Error formats the error in the "Line L:C error: <message>" form users
// see on the error stream, independent of Position's own file-qualified
// String() form (used in the parse command's AST listing instead).
func (e Error) Error() string {
	return fmt.Sprintf("Line %d:%d error: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Reporter accumulates semantic errors in the order they are discovered.
// It is owned by the driver and passed by reference to SymbolPass and
// TypePass; both only ever append to it.
type Reporter struct {
	errors []Error
}

// NumErrors returns the number of errors accumulated so far.
func (r *Reporter) NumErrors() int { return len(r.errors) }

// Errors returns the accumulated errors, in the order they were reported.
func (r *Reporter) Errors() []Error { return r.errors }

// Print writes every accumulated error to w, one per line.
func (r *Reporter) Print(w io.Writer) {
	for _, e := range r.errors {
		fmt.Fprintln(w, e.Error())
	}
}

func (r *Reporter) add(kind Kind, pos token.Position, msg string) {
	r.errors = append(r.errors, Error{Kind: kind, Pos: pos, Msg: msg})
}

// DeclaredIdentf reports a second declaration of ident in the same scope.
func (r *Reporter) DeclaredIdentf(pos token.Position, ident string) {
	r.add(DeclaredIdent, pos, fmt.Sprintf("Identifier '%s' already declared.", ident))
}

// UndeclaredIdentf reports the use of an identifier not found in any
// enclosing scope.
func (r *Reporter) UndeclaredIdentf(pos token.Position, ident string) {
	r.add(UndeclaredIdent, pos, fmt.Sprintf("Identifier '%s' is undeclared.", ident))
}

// IncompatibleAssignmentf reports lhs := rhs where copyable(type(lhs),
// type(rhs)) does not hold.
func (r *Reporter) IncompatibleAssignmentf(pos token.Position) {
	r.add(IncompatibleAssignment, pos, "Assignment with incompatible types.")
}

// NonReferenceableLeftExprf reports a left-expression lacking l-value
// status on the left of an assignment.
func (r *Reporter) NonReferenceableLeftExprf(pos token.Position) {
	r.add(NonReferenceableLeftExpr, pos, "Left expression of assignment is not referenceable.")
}

// IncompatibleOperatorf reports an operator applied to operand types it
// does not support.
func (r *Reporter) IncompatibleOperatorf(pos token.Position, op string) {
	r.add(IncompatibleOperator, pos, fmt.Sprintf("Operator '%s' with incompatible types.", op))
}

// NonArrayInArrayAccessf reports an index operation on a non-array value.
func (r *Reporter) NonArrayInArrayAccessf(pos token.Position) {
	r.add(NonArrayInArrayAccess, pos, "Array access to a non array operand.")
}

// NonIntegerIndexInArrayAccessf reports an array index expression that is
// not of type Int.
func (r *Reporter) NonIntegerIndexInArrayAccessf(pos token.Position) {
	r.add(NonIntegerIndexInArrayAccess, pos, "Array access witn non integer index.")
}

// BooleanRequiredf reports an if/while guard that is not of type Bool.
func (r *Reporter) BooleanRequiredf(pos token.Position, text string) {
	r.add(BooleanRequired, pos, fmt.Sprintf("Instruction '%s' requires a boolean condition.", text))
}

// IsNotCallablef reports a call whose target is not a function.
func (r *Reporter) IsNotCallablef(pos token.Position, ident string) {
	r.add(IsNotCallable, pos, fmt.Sprintf("Identifier '%s' is not a callable function.", ident))
}

// IsNotFunctionf reports a Void-returning call used where a value is
// required.
func (r *Reporter) IsNotFunctionf(pos token.Position, ident string) {
	r.add(IsNotFunction, pos, fmt.Sprintf("Identifier '%s' is a void returning function.", ident))
}

// NumberOfParametersf reports a call whose argument count does not match
// the callee's arity.
func (r *Reporter) NumberOfParametersf(pos token.Position, ident string) {
	r.add(NumberOfParameters, pos, fmt.Sprintf("The number of parameters in the call to '%s' does not match.", ident))
}

// IncompatibleParameterf reports argument n (1-based) of a call not
// assignable to the corresponding parameter type.
func (r *Reporter) IncompatibleParameterf(pos token.Position, n int, ident string) {
	r.add(IncompatibleParameter, pos, fmt.Sprintf("Parameter #%d with incompatible types in call to '%s'.", n, ident))
}

// NonReferenceableExpressionf reports a read target, or an array
// parameter, that is not a reference.
func (r *Reporter) NonReferenceableExpressionf(pos token.Position, text string) {
	r.add(NonReferenceableExpression, pos, fmt.Sprintf("Referenceable expression required in '%s'.", text))
}

// IncompatibleReturnf reports a return value incompatible with the
// enclosing function's declared return type.
func (r *Reporter) IncompatibleReturnf(pos token.Position) {
	r.add(IncompatibleReturn, pos, "Return with incompatible type.")
}

// ReadWriteRequireBasicf reports a read/write operand that is not of a
// primitive type.
func (r *Reporter) ReadWriteRequireBasicf(pos token.Position, text string) {
	r.add(ReadWriteRequireBasic, pos, fmt.Sprintf("Basic type required in '%s'.", text))
}

// NoMainProperlyDeclaredf reports a program lacking a well-formed
// main : () -> Void function in the global scope.
func (r *Reporter) NoMainProperlyDeclaredf(pos token.Position) {
	r.add(NoMainProperlyDeclared, pos, "There is no 'main' function properly declared.")
}
