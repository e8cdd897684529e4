package sheet

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for source configuration.
type Flags struct {
	Path string
}

// Config holds the source flag of a cheatsheet command.
//
// The cheatsheet UI always passes a --path flag, so it is accepted, but the
// command reads from Default regardless of its value. Use [Config.Source] to
// obtain the path that is actually read.
type Config struct {
	Flags   Flags
	Path    string
	Default string
}

// NewConfig returns a [Config] that reads from defaultPath.
func NewConfig(defaultPath string) *Config {
	return &Config{
		Flags:   Flags{Path: "path"},
		Default: defaultPath,
	}
}

// RegisterFlags adds the source flag to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Path, c.Flags.Path, c.Default,
		"ignored; keybinds are always read from the default path")
}

// RegisterCompletions registers shell completions for the source flag on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Path,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Path, err)
	}

	return nil
}

// Source returns the path to read, which is always the default.
func (c *Config) Source() string {
	if c.Path != "" && c.Path != c.Default {
		slog.Debug("ignoring source override",
			slog.String("flag", c.Flags.Path),
			slog.String("path", c.Path),
			slog.String("source", c.Default),
		)
	}

	return c.Default
}
