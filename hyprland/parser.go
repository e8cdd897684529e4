package hyprland

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"go.jacobcolvin.com/keysheet/sheet"
)

// headingPattern matches "#! Name", "## ! Name", ... at the start of a
// trimmed line. The "#" run is the depth.
var headingPattern = regexp.MustCompile(`^(#+)\s*!(.*)$`)

type lineKind int

const (
	lineSkip lineKind = iota
	lineHeading
	lineBind
)

// line is a classified source line.
type line struct {
	text  string
	name  string
	kind  lineKind
	depth int
}

// classify decides what a raw source line is. Headings take precedence over
// binds, so "#! ..." is never parsed as a comment bind.
func classify(raw string) line {
	s := strings.TrimSpace(raw)

	if m := headingPattern.FindStringSubmatch(s); m != nil {
		return line{
			kind:  lineHeading,
			depth: len(m[1]),
			name:  strings.TrimSpace(m[2]),
		}
	}

	if strings.HasPrefix(s, commentBindPrefix) || strings.HasPrefix(s, bindKeyword) {
		return line{kind: lineBind, text: s}
	}

	return line{kind: lineSkip}
}

// parser holds the state of one parse. Sections are built by recursive
// calls that share the cursor, so a caller resumes at the line its nested
// section stopped on.
type parser struct {
	lines []string
	pos   int
}

// fill appends keybinds and child sections to s until it reaches a heading
// of depth <= depth or the end of input. The closing heading is left for the
// caller.
func (p *parser) fill(s *Section, depth int) {
	for p.pos < len(p.lines) {
		l := classify(p.lines[p.pos])

		switch l.kind {
		case lineHeading:
			if l.depth <= depth {
				return
			}

			p.pos++

			child := sheet.NewSection[KeyBinding](l.name)
			p.fill(child, l.depth)
			s.AddChild(child)

			continue

		case lineBind:
			kb, err := ParseBindLine(l.text)
			if err != nil {
				slog.Debug("skipping bind line",
					slog.Int("line", p.pos+1),
					slog.String("text", l.text),
					slog.Any("error", err),
				)
			} else {
				s.AddKeybind(kb)
			}

		case lineSkip:
		}

		p.pos++
	}
}

// ParseLines builds the keybind tree from the lines of an extraConfig block.
func ParseLines(lines []string) *Section {
	p := &parser{lines: lines}
	root := sheet.NewSection[KeyBinding]("")
	p.fill(root, 0)

	return root
}

// Parse builds the keybind tree from the text of an extraConfig block.
func Parse(block string) *Section {
	return ParseLines(slices.Collect(strings.Lines(block)))
}

// ParseConfig builds the keybind tree from the extraConfig block of a Nix
// module. Content without a block yields an empty root.
func ParseConfig(content []byte) *Section {
	block, err := sheet.ExtractBlock(content)
	if err != nil {
		slog.Debug("no keybinds", slog.Any("error", err))

		return sheet.NewSection[KeyBinding]("")
	}

	return Parse(block)
}

// ParseFile reads the Nix module at path and builds its keybind tree. An
// unreadable file yields an empty root.
func ParseFile(path string) *Section {
	content, err := sheet.ReadFile(path)
	if err != nil {
		slog.Debug("no keybinds",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return sheet.NewSection[KeyBinding]("")
	}

	return ParseConfig(content)
}
