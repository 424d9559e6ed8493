// Package components provides reusable TUI components.
package components

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/opencode-ai/osiview/internal/tui/styles"
	"github.com/opencode-ai/osiview/internal/visibility"
)

// Header renders the top bar. Its visibility comes from the provider found
// in the context it was created with.
type Header struct {
	provider    *visibility.Provider
	title       string
	unsubscribe func()

	mu    sync.Mutex
	valid bool
	key   headerKey
	cache string
}

type headerKey struct {
	width int
	theme string
	right string
}

// NewHeader binds a header to the provider in ctx. It panics with
// visibility.ErrNoProvider when ctx carries no mounted provider.
func NewHeader(ctx context.Context, title string) *Header {
	h := &Header{
		provider: visibility.Use(ctx),
		title:    title,
	}
	h.unsubscribe = h.provider.Subscribe(func(bool) {
		h.Invalidate()
	})
	return h
}

// Visible reports the provider's current value.
func (h *Header) Visible() bool {
	return h.provider.Visible()
}

// Invalidate drops the cached render.
func (h *Header) Invalidate() {
	h.mu.Lock()
	h.valid = false
	h.cache = ""
	h.mu.Unlock()
}

// View renders the header at width, or "" while hidden. right is shown
// flush right when it fits.
func (h *Header) View(styleSet styles.Styles, width int, right string) string {
	if !h.Visible() {
		return ""
	}

	key := headerKey{width: width, theme: string(styleSet.Palette.Theme), right: right}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.valid && h.key == key {
		return h.cache
	}

	h.cache = renderHeader(styleSet, h.title, right, width)
	h.key = key
	h.valid = true
	return h.cache
}

// Close stops listening for visibility changes.
func (h *Header) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

func renderHeader(styleSet styles.Styles, title, right string, width int) string {
	style := styleSet.Header
	if width <= 0 {
		return style.Render(title)
	}

	inner := width - style.GetHorizontalFrameSize()
	if inner <= 0 {
		return ""
	}
	title = runewidth.Truncate(title, inner, "…")
	gap := inner - runewidth.StringWidth(title) - runewidth.StringWidth(right)
	line := title
	if right != "" && gap >= 1 {
		line = title + strings.Repeat(" ", gap) + right
	}
	return style.Width(width).Render(lipgloss.NewStyle().MaxWidth(inner).Render(line))
}
