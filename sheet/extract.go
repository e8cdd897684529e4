package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrUnreadable indicates a source file could not be read.
	ErrUnreadable = errors.New("source unreadable")
	// ErrNoBlock indicates the content has no extraConfig block.
	ErrNoBlock = errors.New("extraConfig block not found")
)

// First block wins; the body may span lines.
var extraConfigPattern = regexp.MustCompile(`(?s)extraConfig\s*=\s*''(.*?)'';`)

// ExtractBlock returns the text strictly between the opening
// extraConfig = '' and the first following ''; marker. Escapes inside the
// block are not interpreted.
func ExtractBlock(content []byte) (string, error) {
	m := extraConfigPattern.FindSubmatch(content)
	if m == nil {
		return "", ErrNoBlock
	}

	return string(m[1]), nil
}

// ReadFile expands path with [ExpandPath] and reads it. Any failure is
// wrapped with [ErrUnreadable].
func ReadFile(path string) ([]byte, error) {
	expanded := ExpandPath(path)

	data, err := os.ReadFile(expanded) //nolint:gosec // Source paths are fixed by the caller.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	return data, nil
}

// ReadBlock reads path and returns its extraConfig block.
func ReadBlock(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}

	block, err := ExtractBlock(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return block, nil
}

// ExpandPath expands environment variables and a leading "~" in path.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
