package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslcomp/aslc/internal/config"
	"github.com/aslcomp/aslc/internal/filetest"
	"github.com/aslcomp/aslc/internal/maincmd"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.asl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func newStdio() (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &errOut}, &out, &errOut
}

func TestTokenizeFilesPrintsEveryToken(t *testing.T) {
	path := writeSource(t, "func main()\nendfunc\n")
	stdio, out, errOut := newStdio()

	err := maincmd.TokenizeFiles(context.Background(), stdio, path)
	require.NoError(t, err)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "func")
	assert.Contains(t, out.String(), "end of file")
}

func TestParseFilesPrintsFunction(t *testing.T) {
	path := writeSource(t, "func main()\nendfunc\n")
	stdio, out, _ := newStdio()

	err := maincmd.ParseFiles(context.Background(), stdio, path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "function main(): void")
}

func TestParseFilesReportsSyntaxError(t *testing.T) {
	path := writeSource(t, "func main(\nendfunc\n")
	stdio, _, errOut := newStdio()

	err := maincmd.ParseFiles(context.Background(), stdio, path)
	require.Error(t, err)
	assert.NotEmpty(t, errOut.String())
}

func TestCompileFilesPrintsDisassemblyOnSuccess(t *testing.T) {
	path := writeSource(t, `
func main()
	var x: int;
	x = 1 + 2;
endfunc
`)
	stdio, out, errOut := newStdio()
	cfg := config.Config{MaxErrors: 20, PrintDisassembly: true}

	err := maincmd.CompileFiles(context.Background(), stdio, cfg, path)
	require.NoError(t, err)
	assert.Empty(t, errOut.String())
	filetest.DiffStrings(t, "main:\n    ILOAD %t0, 1\n    ILOAD %t1, 2\n    ADD %t2, %t0, %t1\n    LOAD x, %t2\n    RETURN\n", out.String())
}

func TestCompileFilesReportsSemanticErrors(t *testing.T) {
	path := writeSource(t, `
func main()
	var b: bool;
	b = 1;
endfunc
`)
	stdio, out, errOut := newStdio()
	cfg := config.Config{MaxErrors: 20, PrintDisassembly: true}

	err := maincmd.CompileFiles(context.Background(), stdio, cfg, path)
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Assignment with incompatible types.")
}
