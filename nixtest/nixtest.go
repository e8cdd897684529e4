// Package nixtest builds Nix host configuration fixtures for tests.
package nixtest

import (
	"fmt"
	"strings"
)

// JoinLF joins lines with LF line endings.
//
// Example:
//
//	nixtest.JoinLF(
//		"# ! Window",
//		"bind = SUPER, Q, killactive",
//	) // -> "# ! Window\nbind = SUPER, Q, killactive"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// ExtraConfig wraps lines in a Nix module whose attr is a multi-line
// extraConfig string, the layout used by the Hyprland and kitty modules.
//
//	nixtest.ExtraConfig("wayland.windowManager.hyprland", "bind = SUPER, Q, killactive")
func ExtraConfig(attr string, lines ...string) string {
	var sb strings.Builder

	sb.WriteString("{ config, pkgs, ... }:\n{\n")
	fmt.Fprintf(&sb, "  %s.extraConfig = ''\n", attr)

	for _, l := range lines {
		sb.WriteString("    ")
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	sb.WriteString("  '';\n}\n")

	return sb.String()
}

// Keymap renders one nixvim keymap attribute set on a single line.
func Keymap(mode, key, action, desc string) string {
	return fmt.Sprintf(`{ mode = %q; key = %q; action = %q; options.desc = %q; }`,
		mode, key, action, desc)
}

// ShellAliases renders a shellAliases attribute set. pairs alternates alias
// names and commands.
func ShellAliases(attr string, pairs ...string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %s = {\n", attr)

	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&sb, "    %s = %q;\n", pairs[i], pairs[i+1])
	}

	sb.WriteString("  };\n")

	return sb.String()
}
