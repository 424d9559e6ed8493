// Package tui implements the osiview terminal user interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/osiview/internal/osi"
	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/tui/components"
	"github.com/opencode-ai/osiview/internal/tui/styles"
	"github.com/opencode-ai/osiview/internal/visibility"
)

const (
	minWidth  = 60
	minHeight = 15
	title     = "OSI Model Visualizer"
)

// Config configures a TUI run.
type Config struct {
	// Resolver owns the theme. A resolver without a root runs headless.
	Resolver *theme.Resolver
	// Root is the visual root the resolver writes theme classes to.
	Root theme.Root
	// HeaderVisible is the provider's initial value.
	HeaderVisible bool
	Logger        zerolog.Logger
	// ProgramOptions are appended to the defaults (alt screen, context).
	ProgramOptions []tea.ProgramOption
}

// RunWithConfig mounts the visibility provider, resolves the startup theme
// and runs the program until the user quits or ctx is cancelled.
func RunWithConfig(ctx context.Context, cfg Config) error {
	if cfg.Resolver == nil {
		return errors.New("tui: resolver is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	provider := visibility.NewProvider(cfg.HeaderVisible, visibility.WithLogger(cfg.Logger))
	defer provider.Unmount()
	ctx = visibility.WithProvider(ctx, provider)

	m := newModel(ctx, cfg)
	defer m.close()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, cfg.ProgramOptions...)
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

type viewID int

const (
	viewDiagram viewID = iota
	viewDetail
	viewHelp
)

type model struct {
	ctx      context.Context
	logger   zerolog.Logger
	resolver *theme.Resolver
	root     theme.Root
	provider *visibility.Provider
	header   *components.Header
	vis      *visibilityBridge
	rootSub  *rootBridge

	layers   []osi.Layer
	selected int
	view     viewID
	previous viewID
	theme    theme.Theme
	styles   styles.Styles
	width    int
	height   int
	err      error
}

// newModel expects ctx to carry a mounted provider.
func newModel(ctx context.Context, cfg Config) *model {
	provider := visibility.Use(ctx)
	current := cfg.Resolver.ResolveInitial(ctx)

	return &model{
		ctx:      ctx,
		logger:   cfg.Logger,
		resolver: cfg.Resolver,
		root:     cfg.Root,
		provider: provider,
		header:   components.NewHeader(ctx, title),
		vis:      newVisibilityBridge(provider),
		rootSub:  newRootBridge(cfg.Root),
		layers:   osi.Layers(),
		selected: osi.Count,
		view:     viewDiagram,
		theme:    current,
		styles:   styles.ForTheme(current),
	}
}

func (m *model) close() {
	m.vis.close()
	m.rootSub.close()
	m.header.Close()
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.vis.wait(m.ctx), m.rootSub.wait(m.ctx))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case VisibilityChangedMsg:
		m.logger.Debug().Bool("visible", msg.Visible).Msg("header visibility changed")
		return m, m.vis.wait(m.ctx)
	case RootChangedMsg:
		m.syncTheme("")
		return m, m.rootSub.wait(m.ctx)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "h":
		m.provider.Toggle()
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	case "?":
		if m.view != viewHelp {
			m.previous = m.view
			m.view = viewHelp
		}
		return m, nil
	case "esc":
		switch m.view {
		case viewHelp:
			m.view = m.previous
		case viewDetail:
			m.view = viewDiagram
		}
		return m, nil
	}

	if m.view == viewHelp {
		return m, nil
	}

	switch key {
	case "k", "up":
		if m.selected < osi.Count {
			m.selected++
		}
	case "j", "down":
		if m.selected > 1 {
			m.selected--
		}
	case "enter":
		m.view = viewDetail
	case "1", "2", "3", "4", "5", "6", "7":
		m.selected = int(key[0] - '0')
	}
	return m, nil
}

// toggleTheme flips the theme read from the live root, so presses queued
// before a render still alternate. Root and storage are updated before it
// returns.
func (m *model) toggleTheme() {
	current, ok := theme.Current(m.root)
	if !ok {
		current = m.theme
	}
	next := current.Toggle()
	if err := m.resolver.Apply(m.ctx, next); err != nil {
		m.err = err
		m.logger.Error().Err(err).Msg("theme apply failed")
		return
	}
	m.err = nil
	m.syncTheme(next)
}

// syncTheme reads the active theme back from the root. Without a root
// class it keeps fallback, the theme the caller asked for.
func (m *model) syncTheme(fallback theme.Theme) {
	if current, ok := theme.Current(m.root); ok {
		m.theme = current
	} else if fallback != "" {
		m.theme = fallback
	}
	m.styles = styles.ForTheme(m.theme)
}

func (m *model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return components.TerminalTooSmall(m.width, m.height, minWidth, minHeight).Render(m.styles) + "\n"
	}

	var sections []string
	if header := m.header.View(m.styles, m.width, "theme: "+m.theme.String()); header != "" {
		sections = append(sections, header, "")
	}

	switch m.view {
	case viewDetail:
		sections = append(sections, m.detailView())
	case viewHelp:
		sections = append(sections, m.helpView())
	default:
		sections = append(sections, m.diagramView())
	}

	if m.err != nil {
		sections = append(sections, "", m.styles.Error.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, "", components.RenderFooter(m.styles, m.footerView(), m.provider.Visible(), m.width))
	return strings.Join(sections, "\n") + "\n"
}

func (m *model) diagramView() string {
	width := m.width
	if width > 48 {
		width = 48
	}
	lines := make([]string, 0, osi.Count)
	for i := len(m.layers) - 1; i >= 0; i-- {
		layer := m.layers[i]
		lines = append(lines, components.RenderLayerRow(m.styles, layer, layer.Number == m.selected, width))
	}
	return strings.Join(lines, "\n")
}

func (m *model) detailView() string {
	layer, err := osi.ByNumber(m.selected)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	width := m.width
	if width <= 0 || width > 72 {
		width = 72
	}
	return components.RenderLayerCard(m.styles, layer, width)
}

func (m *model) helpView() string {
	rows := [][2]string{
		{"j / down", "select the layer below"},
		{"k / up", "select the layer above"},
		{"1-7", "jump to a layer"},
		{"enter", "show layer details"},
		{"esc", "go back"},
		{"h", "show or hide the header"},
		{"t", "switch between light and dark"},
		{"?", "this help"},
		{"q", "quit"},
	}
	lines := []string{m.styles.Title.Render("Keys"), ""}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %s  %s", m.styles.Accent.Render(fmt.Sprintf("%-9s", row[0])), m.styles.Text.Render(row[1])))
	}
	return strings.Join(lines, "\n")
}

func (m *model) footerView() components.View {
	switch m.view {
	case viewDetail:
		return components.ViewDetail
	case viewHelp:
		return components.ViewHelp
	default:
		return components.ViewDiagram
	}
}
