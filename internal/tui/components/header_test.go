package components

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/osiview/internal/tui/styles"
	"github.com/opencode-ai/osiview/internal/visibility"
)

func TestHeaderFollowsProvider(t *testing.T) {
	provider := visibility.NewProvider(true)
	ctx := visibility.WithProvider(context.Background(), provider)
	header := NewHeader(ctx, "OSI Model")
	defer header.Close()

	styleSet := styles.DefaultStyles()
	require.Contains(t, header.View(styleSet, 60, ""), "OSI Model")

	provider.Toggle()
	require.Empty(t, header.View(styleSet, 60, ""))

	provider.SetVisible(true)
	require.Contains(t, header.View(styleSet, 60, ""), "OSI Model")
}

func TestHeaderInvalidatesOnChange(t *testing.T) {
	provider := visibility.NewProvider(true)
	ctx := visibility.WithProvider(context.Background(), provider)
	header := NewHeader(ctx, "OSI Model")
	defer header.Close()

	styleSet := styles.DefaultStyles()
	header.View(styleSet, 60, "light")

	header.mu.Lock()
	require.True(t, header.valid)
	header.mu.Unlock()

	provider.SetVisible(false)

	header.mu.Lock()
	require.False(t, header.valid)
	header.mu.Unlock()
}

func TestHeaderRightLabel(t *testing.T) {
	provider := visibility.NewProvider(true)
	header := NewHeader(visibility.WithProvider(context.Background(), provider), "OSI Model")
	defer header.Close()

	out := header.View(styles.DefaultStyles(), 60, "theme: dark")
	require.True(t, strings.Contains(out, "theme: dark"), out)
}

func TestHeaderOutsideProviderPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected error panic, got %v", r)
		require.True(t, errors.Is(err, visibility.ErrNoProvider))
	}()
	NewHeader(context.Background(), "OSI Model")
}

func TestHeaderCloseStopsUpdates(t *testing.T) {
	provider := visibility.NewProvider(true)
	header := NewHeader(visibility.WithProvider(context.Background(), provider), "OSI Model")
	header.View(styles.DefaultStyles(), 60, "")
	header.Close()

	provider.Toggle()

	header.mu.Lock()
	defer header.mu.Unlock()
	require.True(t, header.valid)
}
