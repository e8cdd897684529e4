package hyprland_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/keysheet/hyprland"
)

func TestParseBindLine(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		line    string
		want    hyprland.KeyBinding
	}{
		"plain synthesized": {
			line: "bind = SUPER, Q, killactive",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "Q", Dispatcher: "killactive", Params: "", Comment: "Close window",
			},
		},
		"plain with params": {
			line: "bind = SUPER, H, movefocus, l",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "H", Dispatcher: "movefocus", Params: "l", Comment: "Window: move focus left",
			},
		},
		"trailing comment wins": {
			line: "bind = SUPER, Return, exec, kitty # Terminal",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "Return", Dispatcher: "exec", Params: "kitty", Comment: "Terminal",
			},
		},
		"empty trailing comment": {
			line: "bind = SUPER, Return, exec, kitty #",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "Return", Dispatcher: "exec", Params: "kitty", Comment: "",
			},
		},
		"params with commas": {
			line: "bind = SUPER, E, exec, notify-send a,b ,  c",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "E", Dispatcher: "exec", Params: "notify-send a, b, c",
				Comment: "Execute: notify-send a, b, c",
			},
		},
		"params beyond split bound": {
			line: "bind = SUPER, E, exec, one, two,three",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "E", Dispatcher: "exec", Params: "one, two, three",
				Comment: "Execute: one, two, three",
			},
		},
		"no mods": {
			line: "bindl = , XF86AudioPlay, exec, playerctl play-pause",
			want: hyprland.KeyBinding{
				Mods: []string{}, Key: "XF86AudioPlay", Dispatcher: "exec", Params: "playerctl play-pause",
				Comment: "Execute: playerctl play-pause",
			},
		},
		"compound mods": {
			line: "bind = SUPER+SHIFT, Q, exit",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER", "SHIFT"}, Key: "Q", Dispatcher: "exit", Params: "", Comment: "",
			},
		},
		"unknown dispatcher kept": {
			line: "bind = SUPER, M, exit",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "M", Dispatcher: "exit", Params: "", Comment: "",
			},
		},
		"described": {
			line: `bindd = SUPER, W, "Open browser", exec, firefox`,
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "W", Dispatcher: "exec", Params: "firefox", Comment: "Open browser",
			},
		},
		"described unquoted": {
			line: "bindd = SUPER, W, Open browser, exec, firefox",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "W", Dispatcher: "exec", Params: "firefox", Comment: "Open browser",
			},
		},
		"described trailing comment wins": {
			line: "bindd = SUPER, W, Open browser, exec, firefox # Browser",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "W", Dispatcher: "exec", Params: "firefox", Comment: "Browser",
			},
		},
		"described empty description synthesizes": {
			line: "bindd = SUPER, Q, , killactive",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "Q", Dispatcher: "killactive", Params: "", Comment: "Close window",
			},
		},
		"described variant letter later": {
			line: "bindld = , switch:on:Lid Switch, Lock, exec, hyprlock",
			want: hyprland.KeyBinding{
				Mods: []string{}, Key: "switch:on:Lid Switch", Dispatcher: "exec", Params: "hyprlock", Comment: "Lock",
			},
		},
		"described hidden description is kept": {
			line: "bindd = SUPER, L, [hidden] lock, exec, hyprlock",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "L", Dispatcher: "exec", Params: "hyprlock", Comment: "[hidden] lock",
			},
		},
		"d only in prefix is plain": {
			line: "bind = SUPER, D, exec, rofi -show drun",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "D", Dispatcher: "exec", Params: "rofi -show drun",
				Comment: "Execute: rofi -show drun",
			},
		},
		"comment bind": {
			line: "#/# bind = SUPER, 1..9, workspace, [1-9]",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "1..9", Dispatcher: "workspace", Params: "[1-9]",
				Comment: "Focus workspace [1-9]",
			},
		},
		"comment bind with comment": {
			line: "  #/#bind = SUPER, Tab, cyclenext # Cycle windows",
			want: hyprland.KeyBinding{
				Mods: []string{"SUPER"}, Key: "Tab", Dispatcher: "cyclenext", Params: "", Comment: "Cycle windows",
			},
		},
		"hidden": {
			line:    "bind = SUPER, P, pin # [hidden]",
			wantErr: hyprland.ErrHidden,
		},
		"hidden with text": {
			line:    "bindd = SUPER, P, Pin, pin #   [hidden] rarely used",
			wantErr: hyprland.ErrHidden,
		},
		"no separator": {
			line:    "bind SUPER, Q, killactive",
			wantErr: hyprland.ErrNoSeparator,
		},
		"too few plain fields": {
			line:    "bind = SUPER, Q",
			wantErr: hyprland.ErrTooFewFields,
		},
		"too few described fields": {
			line:    "bindd = SUPER, Q, Close",
			wantErr: hyprland.ErrTooFewFields,
		},
		"empty body": {
			line:    "bind =",
			wantErr: hyprland.ErrTooFewFields,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := hyprland.ParseBindLine(tc.line)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseBindLineTrailingCommentOverridesDescription(t *testing.T) {
	t.Parallel()

	descriptions := []string{"", "Open browser", "[hidden] x", "Execute: firefox"}
	for _, desc := range descriptions {
		kb, err := hyprland.ParseBindLine("bindd = SUPER, W, " + desc + ", exec, firefox #  Web  ")
		require.NoError(t, err)
		assert.Equal(t, "Web", kb.Comment, "description %q", desc)
	}
}

func TestKeyBindingEntry(t *testing.T) {
	t.Parallel()

	kb := hyprland.KeyBinding{Mods: []string{"SUPER", "SHIFT"}, Key: "Q", Comment: "Exit"}
	assert.Equal(t, "SUPER + SHIFT + Q", kb.Chord())
	assert.Equal(t, "Exit", kb.Description())
}
