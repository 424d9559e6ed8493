package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/opencode-ai/osiview/internal/osi"
	"github.com/opencode-ai/osiview/internal/tui/styles"
)

const minCardWidth = 24

// RenderLayerRow renders one line of the stacked diagram.
func RenderLayerRow(styleSet styles.Styles, layer osi.Layer, selected bool, width int) string {
	label := fmt.Sprintf(" %s  %-12s %s", RenderLayerBadge(styleSet, layer), layer.Name, styleSet.Muted.Render(layer.PDU))
	if width > 0 {
		label = lipgloss.NewStyle().Width(width).MaxWidth(width).Render(label)
	}
	if selected {
		return styleSet.Selected.Render(label)
	}
	return styleSet.Text.Render(label)
}

// RenderLayerCard renders the detail card for layer.
func RenderLayerCard(styleSet styles.Styles, layer osi.Layer, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - 4

	header := fmt.Sprintf("%s %s  %s",
		RenderLayerBadge(styleSet, layer),
		styleSet.Title.Render(layer.Name),
		RenderGroupLabel(styleSet, layer),
	)
	lines := []string{
		header,
		styleSet.Muted.Render("PDU: " + layer.PDU),
		"",
	}
	lines = append(lines, wrap(styleSet.Text, layer.Function, inner)...)
	lines = append(lines, "")
	lines = append(lines, styleSet.Accent.Render("Protocols"))
	lines = append(lines, listLines(styleSet, layer.Protocols, inner)...)
	if len(layer.Devices) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Accent.Render("Devices"))
		lines = append(lines, listLines(styleSet, layer.Devices, inner)...)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleSet.Border.GetForeground()).
		Padding(0, 1).
		Width(width - 2)

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func listLines(styleSet styles.Styles, items []string, width int) []string {
	if len(items) == 0 {
		return []string{styleSet.Muted.Render("  --")}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, styleSet.Text.Render("  • "+runewidth.Truncate(item, width-4, "…")))
	}
	return out
}

// wrap breaks text on spaces so no line is wider than width cells.
func wrap(style lipgloss.Style, text string, width int) []string {
	if width <= 0 {
		return []string{style.Render(text)}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, style.Render(current))
			current = word
		}
	}
	if current != "" {
		lines = append(lines, style.Render(current))
	}
	return lines
}
