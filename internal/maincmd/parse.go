package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/aslcomp/aslc/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, args...)
}

// ParseFiles parses each file in turn and prints a structural dump of its
// abstract syntax tree. The first parse error encountered is returned
// after every file has been attempted.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var firstErr error
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		prog, perr := parser.Parse(name, src)
		if prog != nil {
			dumpProgram(stdio.Stdout, name, prog)
		}
		if perr != nil {
			fmt.Fprintln(stdio.Stderr, perr)
			if firstErr == nil {
				firstErr = perr
			}
		}
	}
	return firstErr
}
