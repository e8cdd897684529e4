// Package sheet defines the tree shape shared by every cheatsheet source and
// the helpers used to pull keybind text out of Nix host configuration files.
//
// A cheatsheet is a [Section] tree. The root has an empty name and owns every
// descendant; children and keybinds keep source order. The JSON form is the
// contract consumed by the cheatsheet UI:
//
//	{"children": [...], "keybinds": [...], "name": ""}
//
// Both arrays are always present, even when empty.
//
// Sources embed their keybinds in a Nix multi-line string. [ExtractBlock]
// returns the text of the first extraConfig = '' ... ''; block, and
// [ReadFile] reads a source after expanding "~" and environment variables:
//
//	content, err := sheet.ReadFile("~/nixos/home/modules/kitty.nix")
//	if err != nil {
//	    // errors.Is(err, sheet.ErrUnreadable)
//	}
//
//	block, err := sheet.ExtractBlock(content)
//
// Every command built on this package treats both errors as "no keybinds"
// rather than as failures.
package sheet
