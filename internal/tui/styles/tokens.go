// Package styles maps the active theme class to lipgloss styles.
package styles

import "github.com/opencode-ai/osiview/internal/theme"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Selection  string
	Success    string
	Warning    string
	Error      string
	// MediaLayer and HostLayer tint the lower (1-3) and upper (4-7) layers.
	MediaLayer string
	HostLayer  string
}

// Palette bundles color tokens with the theme they belong to.
type Palette struct {
	Theme  theme.Theme
	Tokens ThemeTokens
}

// Palettes lists available palettes by theme.
var Palettes = map[theme.Theme]Palette{
	theme.Light: LightPalette,
	theme.Dark:  DarkPalette,
}

// PaletteFor returns the palette for t, falling back to the light palette.
func PaletteFor(t theme.Theme) Palette {
	if p, ok := Palettes[t]; ok {
		return p
	}
	return Palettes[theme.Fallback]
}
