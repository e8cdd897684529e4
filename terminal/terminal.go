package terminal

import (
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/keysheet/sheet"
)

// DefaultModuleDir is the directory of the host's home-manager modules.
const DefaultModuleDir = "/etc/nixos/home/modules"

// Section names of the combined tree.
const (
	KittySection = "Kitty"
	AliasSection = "Shell Aliases"
)

// Section is a node of the terminal keybind tree.
type Section = sheet.Section[sheet.Binding]

// Sources locates the modules read by [Build].
type Sources struct {
	Kitty   string
	Aliases []AliasSource
}

// DefaultSources returns the kitty and alias modules under dir.
func DefaultSources(dir string) Sources {
	return Sources{
		Kitty: filepath.Join(dir, "kitty.nix"),
		Aliases: []AliasSource{
			{Path: filepath.Join(dir, "zsh", "default.nix"), Name: "ZSH"},
			{Path: filepath.Join(dir, "eza.nix"), Name: "Eza"},
			{Path: filepath.Join(dir, "claude.nix"), Name: "Claude"},
		},
	}
}

// Build reads src and returns the combined tree. The "Kitty" child holds one
// section per kitty heading and the "Shell Aliases" child holds the aliases.
// Either child is omitted when its sources define nothing.
func Build(src Sources) *Section {
	return Combine(ReadKitty(src.Kitty), ReadAliases(src.Aliases))
}

// Combine assembles the tree built by [Build] from already parsed input.
func Combine(mappings []Mapping, aliases []Alias) *Section {
	root := sheet.NewSection[sheet.Binding]("")

	if len(mappings) > 0 {
		kitty := sheet.NewSection[sheet.Binding](KittySection)
		for _, s := range GroupKitty(mappings) {
			kitty.AddChild(s)
		}

		root.AddChild(kitty)
	}

	if len(aliases) > 0 {
		s := sheet.NewSection[sheet.Binding](AliasSection)
		for _, a := range aliases {
			s.AddKeybind(a.Binding())
		}

		root.AddChild(s)
	}

	return root
}

// Schema returns the JSON Schema of the tree produced by [Build].
func Schema() *jsonschema.Schema {
	return sheet.Schema("Terminal keybinds and shell aliases", sheet.BindingSchema())
}
