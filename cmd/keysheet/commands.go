package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/keysheet/sheet"
)

func newSheetCmd(s sheetDef) *cobra.Command {
	cfg := sheet.NewConfig(s.path)

	cmd := &cobra.Command{
		Use:   s.name,
		Short: s.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), s.tree(cfg.Source()))
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		slog.Warn("register completions", slog.Any("error", err))
	}

	return cmd
}

// writeJSON encodes v to w, indented when w is a terminal.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if isTerminal(w) {
		enc.SetIndent("", "  ")
	}

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newSchemaCmd(sheets []sheetDef) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:       "schema <sheet>",
		Short:     "Print the JSON Schema of a sheet's output",
		Args:      cobra.ExactArgs(1),
		ValidArgs: sheetNames(sheets),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := findSheet(sheets, args[0])
			if err != nil {
				return err
			}

			out, err := renderSchema(s, format)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeOutput(cmd.OutOrStdout(), out)
			}

			err = os.WriteFile(output, out, 0o644)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, or - for stdout")

	err := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		slog.Warn("register completions", slog.Any("error", err))
	}

	return cmd
}

func renderSchema(s sheetDef, format string) ([]byte, error) {
	out, err := json.MarshalIndent(s.schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", s.name, err)
	}

	switch format {
	case formatJSON:
		return append(out, '\n'), nil

	case formatYAML:
		out, err = yaml.JSONToYAML(out)
		if err != nil {
			return nil, fmt.Errorf("convert %s schema: %w", s.name, err)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func newViewCmd(sheets []sheetDef) *cobra.Command {
	return &cobra.Command{
		Use:       "view <sheet>",
		Short:     "Browse a sheet in the terminal",
		Args:      cobra.ExactArgs(1),
		ValidArgs: sheetNames(sheets),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := findSheet(sheets, args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(s.view(s.path),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("view %s: %w", s.name, err)
			}

			return nil
		},
	}
}
