package terminal

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go.jacobcolvin.com/keysheet/sheet"
)

// DefaultKittySection is the section of mappings that precede any heading.
const DefaultKittySection = "General"

// maxHeadingLen bounds the length of a comment that is treated as a section
// heading. Longer comments are prose.
const maxHeadingLen = 30

var mapPattern = regexp.MustCompile(`^map\s+(\S+)\s+(\S+)(.*)$`)

// Mapping is one kitty "map" line.
type Mapping struct {
	Section string
	Action  string
	Args    string
	Key     string
	Comment string
	Mods    []string
}

// Binding returns m as a display record. The action is not part of it.
func (m Mapping) Binding() sheet.Binding {
	return sheet.Binding{
		Mods:    m.Mods,
		Key:     m.Key,
		Comment: m.Comment,
	}
}

var kittyActions = map[string]string{
	"paste_from_selection": "Paste from selection",
	"scroll_line_up":       "Scroll up one line",
	"scroll_line_down":     "Scroll down one line",
	"scroll_page_up":       "Scroll page up",
	"scroll_page_down":     "Scroll page down",
	"scroll_home":          "Scroll to top",
	"scroll_end":           "Scroll to bottom",
	"show_scrollback":      "Show scrollback",
	"new_window_with_cwd":  "New window (same dir)",
	"new_os_window":        "New OS window",
	"close_window":         "Close window",
	"next_window":          "Next window",
	"previous_window":      "Previous window",
	"move_window_forward":  "Move window forward",
	"move_window_backward": "Move window backward",
	"move_window_to_top":   "Move window to top",
	"first_window":         "Go to window 1",
	"second_window":        "Go to window 2",
	"third_window":         "Go to window 3",
	"fourth_window":        "Go to window 4",
	"fifth_window":         "Go to window 5",
	"sixth_window":         "Go to window 6",
	"seventh_window":       "Go to window 7",
	"eighth_window":        "Go to window 8",
	"ninth_window":         "Go to window 9",
	"tenth_window":         "Go to window 10",
	"next_tab":             "Next tab",
	"previous_tab":         "Previous tab",
	"new_tab":              "New tab",
	"close_tab":            "Close tab",
	"next_layout":          "Next layout",
	"move_tab_forward":     "Move tab forward",
	"move_tab_backward":    "Move tab backward",
	"increase_font_size":   "Increase font size",
	"decrease_font_size":   "Decrease font size",
	"restore_font_size":    "Restore font size",
}

// DescribeKitty returns a description of a kitty action and its arguments.
func DescribeKitty(action, args string) string {
	if desc, ok := kittyActions[action]; ok {
		return desc
	}

	if action == "launch" {
		switch {
		case strings.Contains(args, "--location=hsplit"):
			return "Horizontal split"
		case strings.Contains(args, "--location=vsplit"):
			return "Vertical split"
		}

		return "Launch: " + args
	}

	return cases.Title(language.English).String(strings.ReplaceAll(action, "_", " "))
}

var kittyModifiers = map[string]string{
	"ctrl":  "Ctrl",
	"shift": "Shift",
	"alt":   "Alt",
	"super": "Super",
}

// SplitKittyKey splits kitty key notation such as "ctrl+shift+t" into
// modifier names and the final key. Unknown modifiers are kept verbatim.
func SplitKittyKey(notation string) ([]string, string) {
	parts := strings.Split(notation, "+")
	mods := make([]string, 0, len(parts)-1)

	for _, p := range parts[:len(parts)-1] {
		if name, ok := kittyModifiers[strings.ToLower(p)]; ok {
			p = name
		}

		mods = append(mods, p)
	}

	return mods, parts[len(parts)-1]
}

// ParseKitty returns the mappings of a kitty extraConfig block in source
// order.
func ParseKitty(block string) []Mapping {
	var mappings []Mapping

	section := DefaultKittySection

	for raw := range strings.Lines(block) {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#map") {
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if heading != "" && utf8.RuneCountInString(heading) < maxHeadingLen {
				section = heading
			}

			continue
		}

		m := mapPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		args, comment, _ := strings.Cut(m[3], "#")
		args = strings.TrimSpace(args)
		comment = strings.TrimSpace(comment)

		if comment == "" {
			comment = DescribeKitty(m[2], args)
		}

		mods, key := SplitKittyKey(m[1])
		mappings = append(mappings, Mapping{
			Section: section,
			Mods:    mods,
			Key:     key,
			Action:  m[2],
			Args:    args,
			Comment: comment,
		})
	}

	return mappings
}

// GroupKitty returns one section per distinct mapping section, in order of
// first appearance.
func GroupKitty(mappings []Mapping) []*Section {
	var sections []*Section

	byName := map[string]*Section{}

	for _, m := range mappings {
		s, ok := byName[m.Section]
		if !ok {
			s = sheet.NewSection[sheet.Binding](m.Section)
			byName[m.Section] = s
			sections = append(sections, s)
		}

		s.AddKeybind(m.Binding())
	}

	return sections
}

// ReadKitty reads the kitty module at path and returns its mappings. A file
// that cannot be read or has no extraConfig block has none.
func ReadKitty(path string) []Mapping {
	block, err := sheet.ReadBlock(path)
	if err != nil {
		slog.Debug("no kitty mappings",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil
	}

	return ParseKitty(block)
}
