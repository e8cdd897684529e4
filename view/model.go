package view

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/keysheet/sheet"
)

// defaultHeight is used until the first window size message.
const defaultHeight = 24

// chrome is the number of lines taken by the title and the footer.
const chrome = 2

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	chordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is a scrollable bubbletea model of a flattened tree.
type Model struct {
	title      string
	rows       []Row
	chordWidth int
	width      int
	height     int
	offset     int
}

// NewModel returns a model that displays rows under title.
func NewModel(title string, rows []Row) *Model {
	m := &Model{
		title:  title,
		rows:   rows,
		height: defaultHeight,
	}

	for _, r := range rows {
		if w := lipgloss.Width(r.Chord) + 2*r.Depth; w > m.chordWidth {
			m.chordWidth = w
		}
	}

	return m
}

// New returns a model of the flattened root.
func New[T sheet.Entry](title string, root *sheet.Section[T]) *Model {
	return NewModel(title, Flatten(root))
}

// Offset returns the index of the first visible row.
func (m *Model) Offset() int {
	return m.offset
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window size changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		case "pgdown", "space", "f":
			m.scroll(m.visible())
		case "pgup", "b":
			m.scroll(-m.visible())
		case "g", "home":
			m.offset = 0
		case "G", "shift+g", "end":
			m.offset = m.maxOffset()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll(0)
	}

	return m, nil
}

// View implements [tea.Model].
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true

	return v
}

// Render returns the visible page as styled text.
func (m *Model) Render() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteByte('\n')

	end := min(m.offset+m.visible(), len(m.rows))
	for _, r := range m.rows[m.offset:end] {
		sb.WriteString(m.renderRow(r))
		sb.WriteByte('\n')
	}

	sb.WriteString(footerStyle.Render(m.footer()))

	return sb.String()
}

func (m *Model) renderRow(r Row) string {
	if r.IsHeading() {
		return strings.Repeat("  ", r.Depth-1) + headingStyle.Render(r.Heading)
	}

	indent := strings.Repeat("  ", r.Depth)
	pad := m.chordWidth - lipgloss.Width(r.Chord) - len(indent)

	line := indent + chordStyle.Render(r.Chord) + strings.Repeat(" ", pad+2) + r.Description
	if m.width > 0 && lipgloss.Width(line) > m.width {
		// Styled text cannot be cut by byte; drop the description instead.
		line = indent + chordStyle.Render(r.Chord)
	}

	return line
}

func (m *Model) footer() string {
	if len(m.rows) == 0 {
		return "no keybinds · q to quit"
	}

	end := min(m.offset+m.visible(), len(m.rows))

	return fmt.Sprintf("%d-%d of %d · j/k scroll · q to quit", m.offset+1, end, len(m.rows))
}

func (m *Model) visible() int {
	return max(1, m.height-chrome)
}

func (m *Model) maxOffset() int {
	return max(0, len(m.rows)-m.visible())
}

func (m *Model) scroll(n int) {
	m.offset = min(max(0, m.offset+n), m.maxOffset())
}
