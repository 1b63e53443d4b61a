package maincmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/aslcomp/aslc/lang/ast"
	"github.com/aslcomp/aslc/lang/token"
)

// dumpProgram writes a structural dump of prog: one line per function,
// declaration and statement, each carrying its source position, with
// nested statements indented by depth and an else branch introduced by a
// bare "else" line. Expressions are not listed.
// It exists to give the parse command something human-readable to print;
// it is not a round-trippable source formatter.
func dumpProgram(w io.Writer, filename string, prog *ast.Program) {
	for _, fn := range prog.Functions {
		dumpFunction(w, filename, fn)
	}
}

func position(filename string, p token.Pos) string {
	return token.PositionOf(filename, p).String()
}

func typeString(t *ast.TypeNode) string {
	if t == nil {
		return "void"
	}
	if t.IsArray {
		return fmt.Sprintf("array[%d] of %s", t.Size, t.Basic)
	}
	return t.Basic.String()
}

func dumpFunction(w io.Writer, filename string, fn *ast.Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name.Name, typeString(p.Type))
	}
	fmt.Fprintf(w, "%s function %s(%s): %s\n",
		position(filename, fn.Pos()), fn.Name.Name, strings.Join(params, ", "), typeString(fn.Output))

	for _, d := range fn.Decls {
		names := make([]string, len(d.Names))
		for i, n := range d.Names {
			names[i] = n.Name
		}
		fmt.Fprintf(w, "%s  decl %s: %s\n", position(filename, d.Pos()), strings.Join(names, ", "), typeString(d.Type))
	}
	for _, s := range fn.Stmts {
		dumpStmt(w, filename, s, 1)
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpStmt(w io.Writer, filename string, s ast.Stmt, depth int) {
	p := position(filename, s.Pos())
	switch s := s.(type) {
	case *ast.AssignStmt:
		fmt.Fprintf(w, "%s%s assign %s\n", indent(depth), p, s.Left.Name.Name)
	case *ast.IfStmt:
		fmt.Fprintf(w, "%s%s if\n", indent(depth), p)
		for _, st := range s.Then {
			dumpStmt(w, filename, st, depth+1)
		}
		if len(s.Else) > 0 {
			fmt.Fprintf(w, "%selse\n", indent(depth))
			for _, st := range s.Else {
				dumpStmt(w, filename, st, depth+1)
			}
		}
	case *ast.WhileStmt:
		fmt.Fprintf(w, "%s%s while\n", indent(depth), p)
		for _, st := range s.Body {
			dumpStmt(w, filename, st, depth+1)
		}
	case *ast.ReadStmt:
		fmt.Fprintf(w, "%s%s read %s\n", indent(depth), p, s.Target.Name.Name)
	case *ast.WriteExprStmt:
		fmt.Fprintf(w, "%s%s write\n", indent(depth), p)
	case *ast.WriteStringStmt:
		fmt.Fprintf(w, "%s%s write %s\n", indent(depth), p, s.Raw)
	case *ast.CallStmt:
		fmt.Fprintf(w, "%s%s call %s\n", indent(depth), p, s.Name.Name)
	case *ast.ReturnStmt:
		fmt.Fprintf(w, "%s%s return\n", indent(depth), p)
	default:
		fmt.Fprintf(w, "%s%s stmt\n", indent(depth), p)
	}
}
