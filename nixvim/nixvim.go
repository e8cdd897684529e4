// Package nixvim extracts documented keymaps from a nixvim module.
//
// Only keymaps written as a single attribute set with the fields in the
// order nixvim's documentation uses are recognized:
//
//	{ mode = "n"; key = "<leader>ff"; action = "<cmd>Telescope find_files<CR>"; options.desc = "Find files"; }
//
// Keymaps without options.desc are not documentation and are ignored. The
// result has one section per mode.
package nixvim

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/keysheet/sheet"
)

// Section is a node of the nixvim keymap tree.
type Section = sheet.Section[sheet.Binding]

var keymapPattern = regexp.MustCompile(
	`\{\s*mode\s*=\s*"([^"]+)";\s*key\s*=\s*"([^"]+)";\s*action\s*=\s*"([^"]+)";\s*options\.desc\s*=\s*"([^"]+)";\s*\}`,
)

// modeOrder lists the modes whose sections come first, in this order.
// Other modes follow in order of first appearance.
var modeOrder = []string{"n", "i", "t", "v", "x"}

var modeNames = map[string]string{
	"n": "Normal Mode",
	"i": "Insert Mode",
	"t": "Terminal Mode",
	"v": "Visual Mode",
	"x": "Visual Block Mode",
}

// ModeName returns the section name for a vim mode letter.
func ModeName(mode string) string {
	if name, ok := modeNames[mode]; ok {
		return name
	}

	return strings.ToUpper(mode) + " Mode"
}

// Parse builds the keymap tree from the content of a nixvim module.
func Parse(content []byte) *Section {
	order := slices.Clone(modeOrder)
	byMode := map[string][]sheet.Binding{}

	for _, m := range keymapPattern.FindAllSubmatch(content, -1) {
		mode, key, action, desc := string(m[1]), string(m[2]), string(m[3]), string(m[4])

		if !slices.Contains(order, mode) {
			order = append(order, mode)
		}

		mods, k := SplitKey(key)
		byMode[mode] = append(byMode[mode], sheet.Binding{
			Mods:    mods,
			Key:     k,
			Action:  action,
			Comment: desc,
		})
	}

	root := sheet.NewSection[sheet.Binding]("")

	for _, mode := range order {
		binds := byMode[mode]
		if len(binds) == 0 {
			continue
		}

		s := sheet.NewSection[sheet.Binding](ModeName(mode))
		s.Keybinds = binds
		root.AddChild(s)
	}

	return root
}

// ParseFile reads the nixvim module at path and builds its keymap tree. An
// unreadable file yields an empty root.
func ParseFile(path string) *Section {
	content, err := sheet.ReadFile(path)
	if err != nil {
		slog.Debug("no keymaps",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return sheet.NewSection[sheet.Binding]("")
	}

	return Parse(content)
}

// Schema returns the JSON Schema of the tree produced by [Parse].
func Schema() *jsonschema.Schema {
	return sheet.Schema("Neovim keymaps", sheet.BindingSchema())
}
