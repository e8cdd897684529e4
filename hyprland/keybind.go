package hyprland

import (
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/keysheet/sheet"
)

// KeyBinding is one parsed bind line.
type KeyBinding struct {
	// Mods are the modifier names in source order.
	Mods []string `json:"mods"`
	// Key is the key name, verbatim.
	Key        string `json:"key"`
	Dispatcher string `json:"dispatcher"`
	// Params is the comma-joined argument text; possibly empty.
	Params  string `json:"params"`
	Comment string `json:"comment"`
}

// Section is a node of the Hyprland keybind tree.
type Section = sheet.Section[KeyBinding]

// Chord implements [sheet.Entry].
func (k KeyBinding) Chord() string {
	return sheet.JoinChord(k.Mods, k.Key)
}

// Description implements [sheet.Entry].
func (k KeyBinding) Description() string {
	return k.Comment
}

// BindingSchema returns the JSON Schema of a [KeyBinding].
func BindingSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"mods", "key", "dispatcher", "params", "comment"},
		Properties: map[string]*jsonschema.Schema{
			"mods":       sheet.StringArraySchema(),
			"key":        {Type: "string"},
			"dispatcher": {Type: "string"},
			"params":     {Type: "string"},
			"comment":    {Type: "string"},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// Schema returns the JSON Schema of the tree produced by [Parse].
func Schema() *jsonschema.Schema {
	return sheet.Schema("Hyprland keybinds", BindingSchema())
}
