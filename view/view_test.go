package view_test

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/keysheet/hyprland"
	"go.jacobcolvin.com/keysheet/nixtest"
	"go.jacobcolvin.com/keysheet/view"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	root := hyprland.Parse(nixtest.JoinLF(
		"bind = SUPER SHIFT, E, exit # Exit Hyprland",
		"# ! Window",
		"bind = SUPER, Q, killactive",
		"## ! Focus",
		"bind = SUPER, H, movefocus, l",
	))

	got := view.Flatten(root)
	require.Len(t, got, 5)

	assert.Equal(t, view.Row{Chord: "SUPER + SHIFT + E", Description: "Exit Hyprland", Depth: 0}, got[0])
	assert.Equal(t, view.Row{Heading: "Window", Depth: 1}, got[1])
	assert.Equal(t, "SUPER + Q", got[2].Chord)
	assert.Equal(t, 1, got[2].Depth)
	assert.True(t, got[3].IsHeading())
	assert.Equal(t, 2, got[3].Depth)
	assert.False(t, got[4].IsHeading())
	assert.Equal(t, 2, got[4].Depth)
}

func manyRows(n int) []view.Row {
	rows := make([]view.Row, n)
	for i := range rows {
		rows[i] = view.Row{Chord: fmt.Sprintf("SUPER + %d", i), Description: fmt.Sprintf("row %d", i)}
	}

	return rows
}

func press(m *view.Model, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(msg)

	return cmd
}

func TestModelScroll(t *testing.T) {
	t.Parallel()

	m := view.NewModel("test", manyRows(50))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	// 10 rows fit between the title and the footer.
	tcs := []struct {
		msg  tea.KeyPressMsg
		want int
	}{
		{msg: tea.KeyPressMsg{Code: 'j', Text: "j"}, want: 1},
		{msg: tea.KeyPressMsg{Code: tea.KeyDown}, want: 2},
		{msg: tea.KeyPressMsg{Code: 'k', Text: "k"}, want: 1},
		{msg: tea.KeyPressMsg{Code: tea.KeyPgDown}, want: 11},
		{msg: tea.KeyPressMsg{Code: tea.KeyEnd}, want: 40},
		{msg: tea.KeyPressMsg{Code: tea.KeyDown}, want: 40},
		{msg: tea.KeyPressMsg{Code: tea.KeyPgUp}, want: 30},
		{msg: tea.KeyPressMsg{Code: 'g', Text: "g"}, want: 0},
		{msg: tea.KeyPressMsg{Code: tea.KeyUp}, want: 0},
	}

	for i, tc := range tcs {
		assert.Nil(t, press(m, tc.msg))
		assert.Equal(t, tc.want, m.Offset(), "step %d", i)
	}
}

func TestModelResizeClampsOffset(t *testing.T) {
	t.Parallel()

	m := view.NewModel("test", manyRows(20))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 7})
	press(m, tea.KeyPressMsg{Code: tea.KeyEnd})
	assert.Equal(t, 15, m.Offset())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 0, m.Offset())
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	tcs := map[string]tea.KeyPressMsg{
		"q":      {Code: 'q', Text: "q"},
		"esc":    {Code: tea.KeyEscape},
		"ctrl+c": {Code: 'c', Mod: tea.ModCtrl},
	}

	for name, msg := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := view.NewModel("test", nil)
			assert.Nil(t, m.Init())

			cmd := press(m, msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModelRender(t *testing.T) {
	t.Parallel()

	m := view.New("Hyprland", hyprland.Parse(nixtest.JoinLF(
		"# ! Window",
		"bind = SUPER, Q, killactive",
	)))

	out := ansi.Strip(m.Render())
	assert.Contains(t, out, "Hyprland")
	assert.Contains(t, out, "Window")
	assert.Contains(t, out, "SUPER + Q")
	assert.Contains(t, out, "Close window")
	assert.Contains(t, out, "1-2 of 2")

	empty := ansi.Strip(view.NewModel("Empty", nil).Render())
	assert.Contains(t, empty, "no keybinds")
}
