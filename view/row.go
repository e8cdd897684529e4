// Package view displays a cheatsheet tree in the terminal.
package view

import (
	"go.jacobcolvin.com/keysheet/sheet"
)

// Row is one line of a flattened tree: a section heading or a keybind.
type Row struct {
	Heading     string
	Chord       string
	Description string
	// Depth is the nesting depth of the heading or of the keybind's section.
	// The root is 0.
	Depth int
}

// IsHeading reports whether r is a section heading.
func (r Row) IsHeading() bool {
	return r.Heading != ""
}

// Flatten lists root in reading order: each section's keybinds, then each
// child's heading followed by the child's contents.
func Flatten[T sheet.Entry](root *sheet.Section[T]) []Row {
	var rows []Row

	flatten(root, 0, &rows)

	return rows
}

func flatten[T sheet.Entry](s *sheet.Section[T], depth int, rows *[]Row) {
	for _, kb := range s.Keybinds {
		*rows = append(*rows, Row{
			Chord:       kb.Chord(),
			Description: kb.Description(),
			Depth:       depth,
		})
	}

	for _, c := range s.Children {
		name := c.Name
		if name == "" {
			name = "(unnamed)"
		}

		*rows = append(*rows, Row{Heading: name, Depth: depth + 1})
		flatten(c, depth+1, rows)
	}
}
