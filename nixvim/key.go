package nixvim

import (
	"regexp"
	"strings"
)

const leader = "<leader>"

// modifierPattern matches "<C-x>", "<C-S-x>", "<A-CR>", ...
var modifierPattern = regexp.MustCompile(`^<((?:[CSAM]-)+)(.+)>$`)

var modifierNames = map[byte]string{
	'C': "Ctrl",
	'S': "Shift",
	'A': "Alt",
	'M': "Meta",
}

var specialKeys = map[string]string{
	"CR":    "Enter",
	"Esc":   "Esc",
	"Space": "Space",
	"BS":    "Backspace",
	"Tab":   "Tab",
}

// SplitKey splits vim key notation into modifier names and the remaining
// key: "<leader>ff" is Leader + "ff", "<C-S-x>" is Ctrl + Shift + "x", and
// "<CR>" is "Enter".
func SplitKey(notation string) ([]string, string) {
	mods := []string{}
	key := notation

	if rest, ok := strings.CutPrefix(key, leader); ok {
		mods = append(mods, "Leader")
		key = rest
	}

	if m := modifierPattern.FindStringSubmatch(key); m != nil {
		// m[1] is a run of "X-" pairs.
		for i := 0; i < len(m[1]); i += 2 {
			mods = append(mods, modifierNames[m[1][i]])
		}

		return mods, specialName(m[2])
	}

	if len(key) > 2 && key[0] == '<' && key[len(key)-1] == '>' {
		return mods, specialName(key[1 : len(key)-1])
	}

	// Unbracketed keys are literal: "CR" is the two keys C and R.
	return mods, key
}

func specialName(key string) string {
	if name, ok := specialKeys[key]; ok {
		return name
	}

	return key
}
