package config_test

import (
	"testing"

	"github.com/aslcomp/aslc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, c.MaxErrors)
	assert.True(t, c.PrintDisassembly)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ASLC_MAX_ERRORS", "5")
	t.Setenv("ASLC_PRINT_DISASSEMBLY", "false")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, c.MaxErrors)
	assert.False(t, c.PrintDisassembly)
}
