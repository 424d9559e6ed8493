package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/visibility"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/charmbracelet/bubbletea.(*Program).readLoop"),
	)
}

type fixture struct {
	model    *model
	root     *theme.ClassList
	store    *theme.MemoryStore
	provider *visibility.Provider
	ctx      context.Context
}

func newFixture(t *testing.T, visible bool) fixture {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	provider := visibility.NewProvider(visible)
	t.Cleanup(provider.Unmount)
	ctx = visibility.WithProvider(ctx, provider)

	root := theme.NewClassList()
	store := theme.NewMemoryStore()
	resolver := theme.NewResolver(theme.Environment{
		Root:   root,
		Store:  store,
		Signal: theme.OverrideSignal(theme.OverrideLight),
	}, zerolog.Nop())

	m := newModel(ctx, Config{Resolver: resolver, Root: root, HeaderVisible: visible, Logger: zerolog.Nop()})
	t.Cleanup(m.close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return fixture{model: m, root: root, store: store, provider: provider, ctx: ctx}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialThemeApplied(t *testing.T) {
	f := newFixture(t, true)

	require.Equal(t, theme.Light, f.model.theme)
	require.True(t, f.root.HasClass("theme-light"))
	require.Zero(t, f.store.Writes())
}

func TestHeaderToggleKey(t *testing.T) {
	f := newFixture(t, true)
	require.Contains(t, f.model.View(), title)

	f.model.Update(keyRunes("h"))
	require.False(t, f.provider.Visible())
	require.NotContains(t, f.model.View(), title)

	msg := f.model.vis.wait(f.ctx)()
	require.Equal(t, VisibilityChangedMsg{Visible: false}, msg)

	f.model.Update(keyRunes("h"))
	require.True(t, f.provider.Visible())
	require.Contains(t, f.model.View(), title)
}

func TestHeaderStartsHidden(t *testing.T) {
	f := newFixture(t, false)
	require.NotContains(t, f.model.View(), title)
	require.Contains(t, f.model.View(), "Show header")
}

func TestThemeToggleKey(t *testing.T) {
	f := newFixture(t, true)

	_, cmd := f.model.Update(keyRunes("t"))
	require.Nil(t, cmd)

	require.Equal(t, theme.Dark, f.model.theme)
	require.Equal(t, theme.Dark, f.model.styles.Palette.Theme)
	require.True(t, f.root.HasClass("theme-dark"))
	require.False(t, f.root.HasClass("theme-light"))

	stored, ok, err := f.store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, theme.Dark, stored)
}

func TestThemeToggleTwiceReturnsToLight(t *testing.T) {
	f := newFixture(t, true)

	f.model.Update(keyRunes("t"))
	f.model.Update(keyRunes("t"))

	require.Equal(t, theme.Light, f.model.theme)
	require.Equal(t, []string{"theme-light"}, f.root.Classes())

	stored, ok, err := f.store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, theme.Light, stored)
}

func TestThemeToggleReadsLiveRoot(t *testing.T) {
	f := newFixture(t, true)

	// Root changed underneath the model before any message was handled.
	f.root.RemoveClass("theme-light")
	f.root.AddClass("theme-dark")

	f.model.Update(keyRunes("t"))
	require.Equal(t, theme.Light, f.model.theme)
	require.True(t, f.root.HasClass("theme-light"))
}

func TestRootChangeRestyles(t *testing.T) {
	f := newFixture(t, true)

	f.root.RemoveClass("theme-light")
	f.root.AddClass("theme-dark")

	msg := f.model.rootSub.wait(f.ctx)()
	_, ok := msg.(RootChangedMsg)
	require.True(t, ok)
	f.model.Update(msg)

	require.Equal(t, theme.Dark, f.model.theme)
}

func TestNavigation(t *testing.T) {
	f := newFixture(t, true)
	require.Equal(t, 7, f.model.selected)

	f.model.Update(keyRunes("k"))
	require.Equal(t, 7, f.model.selected)

	f.model.Update(keyRunes("j"))
	f.model.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 5, f.model.selected)

	f.model.Update(keyRunes("3"))
	require.Equal(t, 3, f.model.selected)

	f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewDetail, f.model.view)
	require.Contains(t, f.model.View(), "Network")
	require.Contains(t, f.model.View(), "Packet")

	f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewDiagram, f.model.view)

	for i := 0; i < 10; i++ {
		f.model.Update(keyRunes("j"))
	}
	require.Equal(t, 1, f.model.selected)
}

func TestHelpView(t *testing.T) {
	f := newFixture(t, true)

	f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.model.Update(keyRunes("?"))
	require.Equal(t, viewHelp, f.model.view)
	require.Contains(t, f.model.View(), "switch between light and dark")

	f.model.Update(keyRunes("4"))
	require.Equal(t, 7, f.model.selected)

	f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewDetail, f.model.view)
}

func TestDiagramOrder(t *testing.T) {
	f := newFixture(t, true)
	view := f.model.View()

	app := strings.Index(view, "Application")
	phys := strings.Index(view, "Physical")
	require.True(t, app >= 0 && phys >= 0)
	require.Less(t, app, phys)
}

func TestSmallTerminal(t *testing.T) {
	f := newFixture(t, true)
	f.model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	view := f.model.View()
	require.Contains(t, view, "Terminal too small")
	require.NotContains(t, view, title)
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t, true)

	for _, key := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := f.model.Update(key)
		require.NotNil(t, cmd)
		require.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestRunWithConfig(t *testing.T) {
	root := theme.NewClassList()
	store := theme.NewMemoryStore(theme.Dark)
	resolver := theme.NewResolver(theme.Environment{Root: root, Store: store}, zerolog.Nop())

	err := RunWithConfig(context.Background(), Config{
		Resolver:      resolver,
		Root:          root,
		HeaderVisible: true,
		Logger:        zerolog.Nop(),
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		},
	})
	require.NoError(t, err)
	require.True(t, root.HasClass("theme-dark"))
}

func TestRunWithConfigRequiresResolver(t *testing.T) {
	require.Error(t, RunWithConfig(context.Background(), Config{}))
}
