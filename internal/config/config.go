package config

// Config holds all settings the CLI needs at startup.
type Config struct {
	// ListFile is the comma-separated todo list loaded on start and
	// written by the save command.
	ListFile string
	// HistoryFile stores interactive input history between sessions.
	HistoryFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults resets c to the built-in defaults.
func (c *Config) LoadDefaults() {
	c.ListFile = "todos.csv"
	c.HistoryFile = ".todolist_history"
	c.LogLevel = "info"
}

// LoadConfig assembles the effective configuration: defaults first, then an
// optional YAML file, then command-line flags. Later sources win.
func LoadConfig() *Config {
	config := &Config{}
	config.LoadDefaults()
	parseYaml(config)
	parseFlags(config)
	return config
}
