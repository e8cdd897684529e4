package sheet_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/keysheet/sheet"
)

func TestConfigSourceIgnoresFlag(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
	}{
		"no flag":         {args: nil},
		"other path":      {args: []string{"--path", "/tmp/other.nix"}},
		"same as default": {args: []string{"--path", "/etc/nixos/keybinds.nix"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := sheet.NewConfig("/etc/nixos/keybinds.nix")
			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())

			require.NoError(t, cmd.Flags().Parse(tc.args))
			assert.Equal(t, "/etc/nixos/keybinds.nix", cfg.Source())
		})
	}
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := sheet.NewConfig("/etc/nixos/keybinds.nix")
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("path")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Empty(t, values)
	assert.Equal(t, cobra.ShellCompDirectiveDefault, directive)
}
