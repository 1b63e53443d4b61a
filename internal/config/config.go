// Package config loads the environment-driven settings of the aslc
// driver: the semantic error count at which the compile command prints a
// "code generation skipped" summary, and whether it prints a disassembly
// listing on success.
package config

import "github.com/caarlos0/env/v6"

// Config holds the aslc driver's environment-configurable behavior.
type Config struct {
	// MaxErrors is the number of semantic errors from SymbolPass and
	// TypePass at or above which the compile command prints a summary
	// line saying code generation was skipped. Any error at all skips
	// CodegenPass, whatever this value.
	MaxErrors int `env:"ASLC_MAX_ERRORS" envDefault:"20"`

	// PrintDisassembly controls whether the compile command prints the
	// emitted subroutines' disassembly after a successful compilation.
	PrintDisassembly bool `env:"ASLC_PRINT_DISASSEMBLY" envDefault:"true"`
}

// Load parses a Config from the process environment, applying the
// defaults above for any variable left unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
