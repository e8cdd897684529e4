package log

import (
	"io"
	"log/slog"
)

// Env holds the environment variable names read by [Config.Load].
type Env struct {
	Level  string
	Format string
}

// NewConfig creates a new [Config] reading these variables.
func (e Env) NewConfig() *Config {
	return &Config{
		Env:    e,
		Level:  string(LevelWarn),
		Format: string(FormatText),
	}
}

// Config holds log configuration.
//
// The keybind commands print nothing but their JSON to stdout and accept no
// flags besides --path, so logging is configured from the environment.
// Create instances with [NewConfig], call [Config.Load], then
// [Config.NewHandler].
type Config struct {
	Env    Env
	Level  string
	Format string
}

// NewConfig returns a [Config] reading KEYSHEET_LOG_LEVEL and
// KEYSHEET_LOG_FORMAT, defaulting to warn-level text logs.
func NewConfig() *Config {
	e := Env{
		Level:  "KEYSHEET_LOG_LEVEL",
		Format: "KEYSHEET_LOG_FORMAT",
	}

	return e.NewConfig()
}

// Load overrides the configured values with any set variables. lookup has
// the signature of [os.LookupEnv].
func (c *Config) Load(lookup func(string) (string, bool)) {
	if v, ok := lookup(c.Env.Level); ok && v != "" {
		c.Level = v
	}

	if v, ok := lookup(c.Env.Format); ok && v != "" {
		c.Format = v
	}
}

// NewHandler creates a handler that writes to w using the level and format
// stored in c. It delegates to [NewHandlerFromStrings].
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
