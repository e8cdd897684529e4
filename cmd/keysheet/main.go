// Package main provides the CLI entry point for keysheet, a tool that prints
// the keybinds documented in NixOS home modules as JSON for a cheatsheet UI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/keysheet/log"
	"go.jacobcolvin.com/keysheet/version"
)

var (
	// ErrWriteOutput indicates that output could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrUnknownSheet indicates a sheet name that no command produces.
	ErrUnknownSheet = errors.New("unknown sheet")
	// ErrUnknownFormat indicates an unsupported schema output format.
	ErrUnknownFormat = errors.New("unknown format")
)

func main() {
	setupLogging(os.Stderr, log.NewConfig(), os.LookupEnv)

	rootCmd := newRootCmd(defaultSources())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the default logger. An invalid configuration is
// reported on stderr and replaced by the defaults; it never fails a command.
func setupLogging(w io.Writer, cfg *log.Config, lookup func(string) (string, bool)) {
	cfg.Load(lookup)

	handler, err := cfg.NewHandler(w)
	if err != nil {
		fmt.Fprintf(w, "keysheet: %v; using defaults\n", err)

		handler = log.NewHandler(w, log.LevelWarn, log.FormatText)
	}

	slog.SetDefault(slog.New(handler))
}

func newRootCmd(src sources) *cobra.Command {
	sheets := newSheets(src)

	rootCmd := &cobra.Command{
		Use:   "keysheet",
		Short: "Print documented keybinds as JSON",
		Long: `keysheet reads the keybinds documented in NixOS home-manager modules and
prints them as a tree of named sections for a cheatsheet UI.

Each sheet command prints one JSON object and exits 0, even when its source
is missing. Logging is configured with KEYSHEET_LOG_LEVEL and
KEYSHEET_LOG_FORMAT and always goes to stderr.`,
		Version:       version.Get().String(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	for _, s := range sheets {
		rootCmd.AddCommand(newSheetCmd(s))
	}

	rootCmd.AddCommand(
		newSchemaCmd(sheets),
		newViewCmd(sheets),
	)

	return rootCmd
}
