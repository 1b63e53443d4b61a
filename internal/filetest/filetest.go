// Package filetest provides string-diff test assertions, used by the
// driver's compile test in internal/maincmd, grounded on the same
// github.com/kylelemons/godebug/diff use as the original golden-file
// helper, but comparing in-test expected strings instead of on-disk
// fixtures.
package filetest

import (
	"testing"

	"github.com/kylelemons/godebug/diff"
)

// DiffStrings fails t and prints a unified diff if got does not equal
// want.
func DiffStrings(t *testing.T, want, got string) {
	t.Helper()
	if patch := diff.Diff(want, got); patch != "" {
		if testing.Verbose() {
			t.Logf("want:\n%s\n", want)
			t.Logf("got:\n%s\n", got)
		}
		t.Errorf("unexpected output:\n%s", patch)
	}
}
