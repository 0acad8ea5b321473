package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-f", "work.csv", "-l", "debug"}, expectPanic: false,
			expected: &Config{ListFile: "work.csv", LogLevel: "debug"}},
		{name: "Test2 list file only", args: []string{"cmd", "-f", "work.csv"}, expectPanic: false,
			expected: &Config{ListFile: "work.csv"}},
		{name: "Test3 foreign flags are ignored", args: []string{"cmd", "-x", "1", "-l", "warn"}, expectPanic: false,
			expected: &Config{LogLevel: "warn"}},
		{name: "Test4 missing value", args: []string{"cmd", "-f"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
