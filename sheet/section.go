package sheet

import (
	"slices"
	"strings"
)

// Section is one named node of a cheatsheet tree. T is the keybind record
// type of the source that produced the tree.
//
// Create instances with [NewSection] so that both slices marshal as empty
// JSON arrays instead of null.
type Section[T any] struct {
	Children []*Section[T] `json:"children"`
	Keybinds []T           `json:"keybinds"`
	Name     string        `json:"name"`
}

// NewSection returns an empty [Section] with the given heading name. The root
// of a tree uses the empty name.
func NewSection[T any](name string) *Section[T] {
	return &Section[T]{
		Children: []*Section[T]{},
		Keybinds: []T{},
		Name:     name,
	}
}

// AddChild appends child after any existing children.
func (s *Section[T]) AddChild(child *Section[T]) {
	s.Children = append(s.Children, child)
}

// AddKeybind appends kb after any existing keybinds.
func (s *Section[T]) AddKeybind(kb T) {
	s.Keybinds = append(s.Keybinds, kb)
}

// Child returns the first direct child named name, or nil.
func (s *Section[T]) Child(name string) *Section[T] {
	i := slices.IndexFunc(s.Children, func(c *Section[T]) bool {
		return c.Name == name
	})
	if i < 0 {
		return nil
	}

	return s.Children[i]
}

// Count returns the number of keybinds in s and all of its descendants.
func (s *Section[T]) Count() int {
	n := len(s.Keybinds)
	for _, c := range s.Children {
		n += c.Count()
	}

	return n
}

// Entry is a keybind record that can be displayed as a single row.
type Entry interface {
	// Chord returns the full key combination, e.g. "SUPER + SHIFT + Q".
	Chord() string
	// Description returns the human-readable action text.
	Description() string
}

// Binding is the keybind record used by the editor and terminal sources.
type Binding struct {
	Mods    []string `json:"mods"`
	Key     string   `json:"key"`
	Action  string   `json:"action,omitempty"`
	Comment string   `json:"comment"`
}

// Chord implements [Entry].
func (b Binding) Chord() string {
	return JoinChord(b.Mods, b.Key)
}

// Description implements [Entry].
func (b Binding) Description() string {
	return b.Comment
}

// JoinChord joins modifiers and a key with " + ". Empty parts are skipped.
func JoinChord(mods []string, key string) string {
	parts := make([]string, 0, len(mods)+1)
	for _, p := range append(slices.Clone(mods), key) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " + ")
}
