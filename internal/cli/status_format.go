package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/opencode-ai/osiview/internal/osi"
	"github.com/opencode-ai/osiview/internal/theme"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

func colorEnabled() bool {
	if noColor || IsStructuredOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}

func colorize(value, color string) string {
	if !colorEnabled() || color == "" {
		return value
	}
	return color + value + colorReset
}

func formatThemeSource(source theme.Source) string {
	label, color := sourceLabel(source)
	return colorize(formatStatusLabel(label, string(source)), color)
}

func sourceLabel(source theme.Source) (string, string) {
	switch source {
	case theme.SourcePersisted:
		return "SET", colorGreen
	case theme.SourceSystem:
		return "SYS", colorCyan
	case theme.SourceHeadless:
		return "OFF", colorMagenta
	default:
		return "DEF", colorYellow
	}
}

func formatGroup(group osi.Group) string {
	if group == osi.GroupMedia {
		return colorize(string(group), colorYellow)
	}
	return colorize(string(group), colorBlue)
}

func formatEventType(value string) string {
	if strings.HasSuffix(value, "error") {
		return colorize(value, colorRed)
	}
	return value
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
