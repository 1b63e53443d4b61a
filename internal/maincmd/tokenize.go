package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/aslcomp/aslc/lang/lexer"
	"github.com/aslcomp/aslc/lang/token"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, args...)
}

// TokenizeFiles lexes each file in turn and prints its tokens, one per
// line, as "filename:line:col: kind [literal]". The first file whose
// lexer reports any error determines the returned error.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
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

		lx := lexer.New(name, src)
		for {
			tok := lx.Next()
			line, col := tok.Pos.LineCol()
			fmt.Fprintf(stdio.Stdout, "%s:%d:%d: %s", name, line, col, tok.Kind)
			if tok.Lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", tok.Lit)
			}
			fmt.Fprintln(stdio.Stdout)
			if tok.Kind == token.EOF {
				break
			}
		}
		if lerr := lx.Errors().Err(); lerr != nil {
			fmt.Fprintln(stdio.Stderr, lerr)
			if firstErr == nil {
				firstErr = lerr
			}
		}
	}
	return firstErr
}
