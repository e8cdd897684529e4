package sheet

import "github.com/google/jsonschema-go/jsonschema"

// SchemaDraft is the JSON Schema dialect produced by [Schema].
const SchemaDraft = "https://json-schema.org/draft/2020-12/schema"

const (
	sectionRef = "#/$defs/section"
	bindingRef = "#/$defs/binding"
)

// Schema returns a JSON Schema describing a [Section] tree whose keybind
// records match binding.
func Schema(title string, binding *jsonschema.Schema) *jsonschema.Schema {
	section := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"children", "keybinds", "name"},
		Properties: map[string]*jsonschema.Schema{
			"children": {
				Type:  "array",
				Items: &jsonschema.Schema{Ref: sectionRef},
			},
			"keybinds": {
				Type:  "array",
				Items: &jsonschema.Schema{Ref: bindingRef},
			},
			"name": {
				Type:        "string",
				Description: "Section heading; empty for the root.",
			},
		},
		AdditionalProperties: falseSchema(),
	}

	return &jsonschema.Schema{
		Schema: SchemaDraft,
		Title:  title,
		Ref:    sectionRef,
		Defs: map[string]*jsonschema.Schema{
			"section": section,
			"binding": binding,
		},
	}
}

// BindingSchema returns the JSON Schema of a [Binding].
func BindingSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"mods", "key", "comment"},
		Properties: map[string]*jsonschema.Schema{
			"mods":    StringArraySchema(),
			"key":     {Type: "string"},
			"action":  {Type: "string"},
			"comment": {Type: "string"},
		},
		AdditionalProperties: falseSchema(),
	}
}

// StringArraySchema returns a schema for an array of strings.
func StringArraySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Type: "string"},
	}
}

func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
