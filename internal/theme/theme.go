// Package theme resolves, applies and persists the light/dark theme.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is a visual mode.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Fallback is used when neither a stored preference nor a system signal exists.
const Fallback = Light

// ErrInvalidTheme is returned for values other than "light" and "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// All returns every supported theme.
func All() []Theme {
	return []Theme{Light, Dark}
}

// ParseTheme converts a user-facing string to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w %q: must be light or dark", ErrInvalidTheme, s)
	}
}

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Class returns the visual-root class token for t.
func (t Theme) Class() string {
	return "theme-" + string(t)
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}
