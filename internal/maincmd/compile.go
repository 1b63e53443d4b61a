package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/aslcomp/aslc/internal/config"
	"github.com/aslcomp/aslc/lang/codegen"
	"github.com/aslcomp/aslc/lang/decor"
	"github.com/aslcomp/aslc/lang/errs"
	"github.com/aslcomp/aslc/lang/parser"
	"github.com/aslcomp/aslc/lang/symbolpass"
	"github.com/aslcomp/aslc/lang/symtab"
	"github.com/aslcomp/aslc/lang/typepass"
	"github.com/aslcomp/aslc/lang/typesys"
)

func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return CompileFiles(ctx, stdio, cfg, args...)
}

// CompileFiles runs the full pipeline (lex, parse, SymbolPass, TypePass,
// CodegenPass) over each file independently. A file with any semantic
// error skips code generation and only prints its errors; when the error
// count reaches cfg.MaxErrors a summary line is printed after them.
// Otherwise, when cfg.PrintDisassembly is set, the emitted subroutines'
// disassembly is printed to stdout.
func CompileFiles(ctx context.Context, stdio mainer.Stdio, cfg config.Config, files ...string) error {
	var firstErr error
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := compileFile(stdio, cfg, name); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func compileFile(stdio mainer.Stdio, cfg config.Config, name string) error {
	src, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	prog, perr := parser.Parse(name, src)
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return perr
	}

	tab := symtab.New()
	dec := decor.New()
	ts := typesys.New()
	rep := &errs.Reporter{}
	symbolpass.Run(name, prog, tab, dec, ts, rep)
	typepass.Run(name, prog, tab, dec, rep)

	if rep.NumErrors() > 0 {
		rep.Print(stdio.Stderr)
		if rep.NumErrors() >= cfg.MaxErrors {
			fmt.Fprintf(stdio.Stderr, "%s: %d errors, code generation skipped\n", name, rep.NumErrors())
		}
		return rep.Errors()[0]
	}

	out := codegen.Run(prog, tab, dec)
	if cfg.PrintDisassembly {
		fmt.Fprint(stdio.Stdout, out.Disassemble())
	}
	return nil
}
