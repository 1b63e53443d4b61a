// Command aslc is the compiler front-end and code generator for the ASL
// programming language.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/aslcomp/aslc/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
