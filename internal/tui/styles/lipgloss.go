package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/osiview/internal/theme"
)

// Styles contains lipgloss styles derived from palette tokens.
type Styles struct {
	Palette    Palette
	Title      lipgloss.Style
	Header     lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Panel      lipgloss.Style
	Border     lipgloss.Style
	Focus      lipgloss.Style
	Selected   lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	MediaLayer lipgloss.Style
	HostLayer  lipgloss.Style
}

// DefaultStyles builds styles for the fallback theme.
func DefaultStyles() Styles {
	return ForTheme(theme.Fallback)
}

// ForTheme builds styles for t.
func ForTheme(t theme.Theme) Styles {
	return BuildStyles(PaletteFor(t))
}

// ForRoot builds styles for whichever theme class root carries.
func ForRoot(root theme.Root) Styles {
	t, ok := theme.Current(root)
	if !ok {
		return DefaultStyles()
	}
	return ForTheme(t)
}

// BuildStyles converts palette tokens into lipgloss styles.
func BuildStyles(palette Palette) Styles {
	tokens := palette.Tokens

	return Styles{
		Palette:    palette,
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).Bold(true).Padding(0, 1),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Background(lipgloss.Color(tokens.Selection)).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		MediaLayer: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.MediaLayer)).Bold(true),
		HostLayer:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.HostLayer)).Bold(true),
	}
}
