// Package config loads runtime configuration for the todolist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML file (see parseYaml) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   todo list file to load on start and save to
//	-l string   log level: debug, info, warn or error
//
// # YAML schema
//
//	list_file: todos.csv
//	history_file: .todolist_history
//	log_level: info
//
// Empty YAML values leave the earlier value in place, so a file can
// override a single setting.
//
// The core list packages never look at flags or files; configuration is a
// CLI-layer concern only.
package config
