package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "todos.csv", c.ListFile)
	assert.Equal(t, ".todolist_history", c.HistoryFile)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "todos.csv", cfg.ListFile)
	assert.Equal(t, ".todolist_history", cfg.HistoryFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-f", "work.csv", "-l", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "work.csv", cfg.ListFile)
	assert.Equal(t, ".todolist_history", cfg.HistoryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
