// Package hyprland extracts documented keybinds from the Hyprland
// extraConfig block of a Nix module and arranges them into a [Section] tree.
//
// # Headings
//
// A line made of one or more "#" followed by "!" opens a section. The number
// of "#" is the nesting depth; whitespace between the markers and "!" is
// allowed:
//
//	# ! Window
//	bind = SUPER, Q, killactive
//	## ! Focus
//	bind = SUPER, H, movefocus, l
//
// A heading whose depth is not greater than the open section's depth closes
// that section and is handled by the nearest ancestor that can contain it.
// Keybinds attach to the innermost open section.
//
// # Bind lines
//
// Lines starting with "bind" use Hyprland's syntax. Keywords carrying a "d"
// after the "bind" prefix (bindd, bindld, binddl, ...) take an extra
// description field:
//
//	bind  = MODS, KEY, DISPATCHER, PARAMS...
//	bindd = MODS, KEY, DESCRIPTION, DISPATCHER, PARAMS...
//
// A bind written inside a comment as "#/# bind = ..." is documented the same
// way as a live one. A trailing "# text" comment becomes the description; a
// comment starting with "[hidden]" drops the bind. Without either, the
// description comes from [Describe].
//
// Malformed lines are skipped. Parsing never fails: an unreadable file or a
// missing block yields an empty root.
package hyprland
