package terminal

import (
	"log/slog"
	"regexp"

	"go.jacobcolvin.com/keysheet/sheet"
)

var (
	// aliasBlockPattern also matches "home.shellAliases = { ... }".
	aliasBlockPattern = regexp.MustCompile(`shellAliases\s*=\s*\{([^}]+)\}`)
	aliasPattern      = regexp.MustCompile(`(\w+(?:-\w+)*)\s*=\s*"([^"]+)"`)
)

// Alias is one shell alias definition.
type Alias struct {
	Name    string
	Command string
	// Source names the module the alias came from, e.g. "ZSH".
	Source string
}

// Binding returns a as a display record: the alias name is the key and the
// command is the description.
func (a Alias) Binding() sheet.Binding {
	return sheet.Binding{
		Mods:    []string{},
		Key:     a.Name,
		Comment: a.Command,
	}
}

// AliasSource is a module that may define shell aliases.
type AliasSource struct {
	Path string
	Name string
}

// ParseAliases returns the aliases defined in every shellAliases block of
// content, in source order.
func ParseAliases(content []byte, source string) []Alias {
	var aliases []Alias

	for _, block := range aliasBlockPattern.FindAllSubmatch(content, -1) {
		for _, m := range aliasPattern.FindAllSubmatch(block[1], -1) {
			aliases = append(aliases, Alias{
				Name:    string(m[1]),
				Command: string(m[2]),
				Source:  source,
			})
		}
	}

	return aliases
}

// ReadAliases reads every source in order and returns the aliases they
// define. When a name is defined more than once, the first definition is
// kept. Unreadable sources are skipped.
func ReadAliases(sources []AliasSource) []Alias {
	var aliases []Alias

	seen := map[string]bool{}

	for _, src := range sources {
		content, err := sheet.ReadFile(src.Path)
		if err != nil {
			slog.Debug("no aliases",
				slog.String("source", src.Name),
				slog.Any("error", err),
			)

			continue
		}

		for _, a := range ParseAliases(content, src.Name) {
			if seen[a.Name] {
				slog.Debug("duplicate alias",
					slog.String("name", a.Name),
					slog.String("source", a.Source),
				)

				continue
			}

			seen[a.Name] = true
			aliases = append(aliases, a)
		}
	}

	return aliases
}
