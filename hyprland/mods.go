package hyprland

import "unicode/utf8"

// SplitMods splits a modifier field such as "SUPER+SHIFT" or "SUPER SHIFT"
// into modifier names. Fragments of a single character, such as those left
// by doubled separators, are dropped.
func SplitMods(field string) []string {
	mods := []string{}
	if field == "" {
		return mods
	}

	// The trailing separator flushes the last token.
	field += "+"
	start := 0

	for i, r := range field {
		if r != '+' && r != ' ' {
			continue
		}

		if tok := field[start:i]; utf8.RuneCountInString(tok) > 1 {
			mods = append(mods, tok)
		}

		start = i + 1
	}

	return mods
}
