// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/osiview/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍", "🚀").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "osiview theme toggle").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptyLayersFiltered returns an empty state for a protocol that no layer lists.
func EmptyLayersFiltered(protocol string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No layer lists protocol '%s'", protocol),
		Subtitle: "Protocol names match case-insensitively.",
		Suggestions: []Suggestion{
			{Command: "osiview layers", Description: "list every layer"},
		},
	}
}

// EmptyThemeHistory returns an empty state for when no theme change was recorded.
func EmptyThemeHistory() EmptyState {
	return EmptyState{
		Icon:     "📋",
		Title:    "No theme changes recorded yet",
		Subtitle: "Explicit theme choices are logged as they are applied.",
		Suggestions: []Suggestion{
			{Command: "osiview theme toggle", Description: "flip between light and dark"},
			{Command: "osiview theme set dark", Description: "pick a theme"},
		},
	}
}

// TerminalTooSmall returns the warning shown below the minimum size.
func TerminalTooSmall(width, height, minWidth, minHeight int) EmptyState {
	return EmptyState{
		Icon:     "↔",
		Title:    "Terminal too small",
		Subtitle: fmt.Sprintf("Need %dx%d, have %dx%d. Resize or press q to quit.", minWidth, minHeight, width, height),
	}
}
