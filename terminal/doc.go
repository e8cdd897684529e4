// Package terminal extracts kitty key mappings and shell aliases from Nix
// home modules.
//
// Kitty mappings are read from the extraConfig block of the kitty module:
//
//	# Tabs
//	map ctrl+shift+t new_tab
//	map ctrl+shift+enter launch --location=hsplit # Split below
//
// A short "#" comment line starts a new section; mappings before the first
// one belong to "General". A mapping without an inline comment is described
// from its action.
//
// Shell aliases are read from shellAliases attribute sets in any number of
// modules. Aliases are keyed by name and the first definition wins.
package terminal
