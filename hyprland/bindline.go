package hyprland

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	bindKeyword = "bind"
	// commentBindPrefix marks a bind documented inside a comment.
	commentBindPrefix = "#/#"
	// hiddenMarker at the start of a trailing comment drops the bind.
	hiddenMarker = "[hidden]"
)

var (
	// ErrNoSeparator indicates a bind line without "=".
	ErrNoSeparator = errors.New("missing '=' separator")
	// ErrTooFewFields indicates a bind line with fewer fields than its
	// keyword requires.
	ErrTooFewFields = errors.New("too few fields")
	// ErrHidden indicates a bind whose comment starts with "[hidden]".
	ErrHidden = errors.New("hidden bind")
)

// grammar describes the comma-separated field layout of a bind keyword.
type grammar struct {
	// fields is the most fields SplitN produces; the last one holds any
	// remaining parameters.
	fields int
	// required is the fewest fields a usable line has.
	required int
	// described reports whether the third field is a description.
	described bool
}

var (
	plainGrammar     = grammar{fields: 5, required: 3}
	describedGrammar = grammar{fields: 6, required: 4, described: true}
)

// grammarFor picks the layout for keyword. Any "d" after the "bind" prefix
// selects the described layout: bindd, bindld, binddl, bindrde, ...
func grammarFor(keyword string) grammar {
	if len(keyword) > len(bindKeyword) && strings.ContainsRune(keyword[len(bindKeyword):], 'd') {
		return describedGrammar
	}

	return plainGrammar
}

// ParseBindLine parses one bind line. Lines prefixed with "#/#" are parsed as
// if the prefix were absent.
//
// The returned error is one of [ErrNoSeparator], [ErrTooFewFields] or
// [ErrHidden] and means the line documents nothing.
func ParseBindLine(line string) (KeyBinding, error) {
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, commentBindPrefix); ok {
		line = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}

	keyword, body, ok := strings.Cut(line, "=")
	if !ok {
		return KeyBinding{}, ErrNoSeparator
	}

	keyword = strings.TrimSpace(keyword)
	body, comment, hasComment := strings.Cut(body, "#")

	g := grammarFor(keyword)

	fields := splitFields(body, g.fields)
	if len(fields) < g.required {
		return KeyBinding{}, fmt.Errorf("%w: %s needs %d, got %d",
			ErrTooFewFields, keyword, g.required, len(fields))
	}

	kb := KeyBinding{
		Mods: SplitMods(fields[0]),
		Key:  fields[1],
	}

	var description string

	rest := fields[2:]
	if g.described {
		description = unquote(rest[0])
		rest = rest[1:]
	}

	kb.Dispatcher = rest[0]
	kb.Params = joinParams(rest[1:])

	switch {
	case hasComment:
		comment = strings.TrimSpace(comment)
		if strings.HasPrefix(comment, hiddenMarker) {
			return KeyBinding{}, ErrHidden
		}

		kb.Comment = comment

	case description != "":
		kb.Comment = description

	default:
		kb.Comment = Describe(kb.Dispatcher, kb.Params)
	}

	return kb, nil
}

// splitFields splits s on commas into at most n trimmed fields.
func splitFields(s string, n int) []string {
	fields := strings.SplitN(s, ",", n)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}

// joinParams rejoins parameter fields with ", ", normalizing the spacing of
// commas inside the trailing field as well.
func joinParams(fields []string) string {
	params := make([]string, 0, len(fields))
	for _, f := range fields {
		for p := range strings.SplitSeq(f, ",") {
			params = append(params, strings.TrimSpace(p))
		}
	}

	return strings.Join(params, ", ")
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
