package main

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/keysheet/hyprland"
	"go.jacobcolvin.com/keysheet/nixvim"
	"go.jacobcolvin.com/keysheet/sheet"
	"go.jacobcolvin.com/keysheet/terminal"
	"go.jacobcolvin.com/keysheet/view"
)

// sources locates the modules read by each sheet.
type sources struct {
	Hyprland string
	Nixvim   string
	// Terminal is the module directory holding kitty.nix and the alias
	// modules.
	Terminal string
}

func defaultSources() sources {
	return sources{
		Hyprland: filepath.Join(terminal.DefaultModuleDir, "hyprland", "keybinds.nix"),
		Nixvim:   filepath.Join(terminal.DefaultModuleDir, "nixvim.nix"),
		Terminal: terminal.DefaultModuleDir,
	}
}

// sheetDef is one kind of cheatsheet the CLI can produce.
type sheetDef struct {
	schema func() *jsonschema.Schema
	tree   func(path string) any
	view   func(path string) *view.Model
	name   string
	title  string
	short  string
	path   string
}

func newSheetDef[T sheet.Entry](
	name, title, short, path string,
	parse func(string) *sheet.Section[T],
	schema func() *jsonschema.Schema,
) sheetDef {
	return sheetDef{
		name:   name,
		title:  title,
		short:  short,
		path:   path,
		schema: schema,
		tree:   func(p string) any { return parse(p) },
		view:   func(p string) *view.Model { return view.New(title, parse(p)) },
	}
}

func newSheets(src sources) []sheetDef {
	return []sheetDef{
		newSheetDef("hyprland", "Hyprland keybinds",
			"Print the Hyprland keybind tree as JSON", src.Hyprland,
			hyprland.ParseFile, hyprland.Schema),
		newSheetDef("nvim", "Neovim keymaps",
			"Print the nixvim keymaps as JSON", src.Nixvim,
			nixvim.ParseFile, nixvim.Schema),
		newSheetDef("terminal", "Terminal keybinds and aliases",
			"Print the kitty keybinds and shell aliases as JSON", src.Terminal,
			func(dir string) *terminal.Section {
				return terminal.Build(terminal.DefaultSources(dir))
			}, terminal.Schema),
	}
}

func sheetNames(sheets []sheetDef) []string {
	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.name)
	}

	return names
}

func findSheet(sheets []sheetDef, name string) (sheetDef, error) {
	i := slices.IndexFunc(sheets, func(s sheetDef) bool {
		return s.name == name
	})
	if i < 0 {
		return sheetDef{}, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSheet, name, sheetNames(sheets))
	}

	return sheets[i], nil
}

func writeOutput(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
