package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mixassio/todolist/internal/flagx"
)

// YamlConfig is a DTO used exclusively for YAML unmarshalling. After
// parsing, values are copied into the runtime Config.
type YamlConfig struct {
	ListFile    string `yaml:"list_file"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
}

// parseYaml overlays Config with values loaded from a YAML file.
//
// Lookup order for the YAML file path:
//  1. Command-line flags (-c or -config) via flagx.ConfigFileFlags().
//  2. If empty, no YAML is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the YAML into YamlConfig.
//   - Copies fields into the provided Config, skipping empty values so a
//     file can override a single setting.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseYaml -> parseFlags, where later stages
// override earlier ones.
func parseYaml(cfg *Config) {
	// Resolve file path from flags.
	yamlConfigFile := flagx.ConfigFileFlags()
	if yamlConfigFile == "" {
		return
	}

	var yc YamlConfig

	data, err := os.ReadFile(yamlConfigFile)
	if err != nil {
		panic(err)
	}
	if err := yaml.Unmarshal(data, &yc); err != nil {
		panic(err)
	}

	if yc.ListFile != "" {
		cfg.ListFile = yc.ListFile
	}
	if yc.HistoryFile != "" {
		cfg.HistoryFile = yc.HistoryFile
	}
	if yc.LogLevel != "" {
		cfg.LogLevel = yc.LogLevel
	}
}
