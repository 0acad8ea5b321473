package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTempYAML(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.yaml"
	}
	path := filepath.Join(dir, name)
	b, err := yaml.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseYaml_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempYAML(t, dir, "flag.yaml", map[string]any{
		"list_file":    "vacation.csv",
		"history_file": ".vacation_history",
		"log_level":    "debug",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseYaml(cfg)

		assert.Equal(t, "vacation.csv", cfg.ListFile)
		assert.Equal(t, ".vacation_history", cfg.HistoryFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ListFile: "defaults.csv",
			LogLevel: "warn",
		}
		parseYaml(cfg)

		assert.Equal(t, "defaults.csv", cfg.ListFile)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("empty values keep earlier settings", func(t *testing.T) {
		partial := writeTempYAML(t, dir, "partial.yaml", map[string]any{
			"log_level": "error",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{ListFile: "defaults.csv", HistoryFile: ".h", LogLevel: "info"}
		parseYaml(cfg)

		assert.Equal(t, "defaults.csv", cfg.ListFile)
		assert.Equal(t, ".h", cfg.HistoryFile)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("invalid YAML → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("list_file: [unclosed"), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseYaml(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.yaml")}

		cfg := &Config{}
		require.Panics(t, func() { parseYaml(cfg) })
	})
}
