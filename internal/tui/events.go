package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/visibility"
)

// VisibilityChangedMsg reports a header-visibility change made through the provider.
type VisibilityChangedMsg struct {
	Visible bool
}

// RootChangedMsg reports a class mutation on the visual root.
type RootChangedMsg struct {
	Mutation theme.Mutation
}

// mailbox holds the most recent value from a callback until the program
// reads it. Senders never block, so callbacks may fire from inside Update.
type mailbox[T any] struct {
	ch chan T
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{ch: make(chan T, 1)}
}

func (b *mailbox[T]) put(v T) {
	for {
		select {
		case b.ch <- v:
			return
		default:
		}
		select {
		case <-b.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next value as a message.
// It returns nil once ctx is done.
func (b *mailbox[T]) wait(ctx context.Context, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-b.ch:
			return wrap(v)
		case <-ctx.Done():
			return nil
		}
	}
}

// visibilityBridge forwards provider changes to the program.
type visibilityBridge struct {
	box         *mailbox[bool]
	unsubscribe func()
}

func newVisibilityBridge(provider *visibility.Provider) *visibilityBridge {
	b := &visibilityBridge{box: newMailbox[bool]()}
	b.unsubscribe = provider.Subscribe(b.box.put)
	return b
}

func (b *visibilityBridge) wait(ctx context.Context) tea.Cmd {
	return b.box.wait(ctx, func(v bool) tea.Msg {
		return VisibilityChangedMsg{Visible: v}
	})
}

func (b *visibilityBridge) close() {
	b.unsubscribe()
}

// observable is implemented by roots that report class mutations.
type observable interface {
	Observe(fn func(theme.Mutation)) func()
}

// rootBridge forwards class mutations to the program. Roots that cannot be
// observed produce no messages.
type rootBridge struct {
	box    *mailbox[theme.Mutation]
	cancel func()
}

func newRootBridge(root theme.Root) *rootBridge {
	b := &rootBridge{box: newMailbox[theme.Mutation](), cancel: func() {}}
	if o, ok := root.(observable); ok {
		b.cancel = o.Observe(b.box.put)
	}
	return b
}

func (b *rootBridge) wait(ctx context.Context) tea.Cmd {
	return b.box.wait(ctx, func(m theme.Mutation) tea.Msg {
		return RootChangedMsg{Mutation: m}
	})
}

func (b *rootBridge) close() {
	b.cancel()
}
