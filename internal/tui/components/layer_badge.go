package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/osiview/internal/osi"
	"github.com/opencode-ai/osiview/internal/tui/styles"
)

// RenderLayerBadge renders "L<n>" tinted by the layer's group.
func RenderLayerBadge(styleSet styles.Styles, layer osi.Layer) string {
	return groupStyle(styleSet, layer.Group()).Render(fmt.Sprintf("L%d", layer.Number))
}

// RenderGroupLabel renders the group name of layer.
func RenderGroupLabel(styleSet styles.Styles, layer osi.Layer) string {
	switch layer.Group() {
	case osi.GroupMedia:
		return groupStyle(styleSet, osi.GroupMedia).Render("media")
	default:
		return groupStyle(styleSet, osi.GroupHost).Render("host")
	}
}

func groupStyle(styleSet styles.Styles, group osi.Group) lipgloss.Style {
	if group == osi.GroupMedia {
		return styleSet.MediaLayer
	}
	return styleSet.HostLayer
}
