package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/osiview/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "h", "t")
	Label   string // Display label (e.g., "Header", "Theme")
	Enabled bool   // Whether the action is available
}

// View identifies which screen the footer describes.
type View int

// Screens.
const (
	ViewDiagram View = iota
	ViewDetail
	ViewHelp
)

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "enter:Details  h:Header  t:Theme  ?:Help  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label)))
	}
	return strings.Join(parts, "  ")
}

// ViewQuickActions returns the actions available on view. headerVisible
// switches the header label between hide and show.
func ViewQuickActions(view View, headerVisible bool) []QuickAction {
	headerLabel := "Hide header"
	if !headerVisible {
		headerLabel = "Show header"
	}

	var actions []QuickAction
	switch view {
	case ViewDiagram:
		actions = []QuickAction{
			{Key: "j/k", Label: "Select", Enabled: true},
			{Key: "enter", Label: "Details", Enabled: true},
		}
	case ViewDetail, ViewHelp:
		actions = []QuickAction{
			{Key: "esc", Label: "Back", Enabled: true},
		}
	}
	return append(actions,
		QuickAction{Key: "h", Label: headerLabel, Enabled: true},
		QuickAction{Key: "t", Label: "Theme", Enabled: true},
		QuickAction{Key: "?", Label: "Help", Enabled: view != ViewHelp},
		QuickAction{Key: "q", Label: "Quit", Enabled: true},
	)
}

// RenderFooter renders the centered action bar for view.
func RenderFooter(styleSet styles.Styles, view View, headerVisible bool, width int) string {
	bar := RenderQuickActionBar(styleSet, ViewQuickActions(view, headerVisible))
	if bar == "" || width <= 0 {
		return bar
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(bar)
}
