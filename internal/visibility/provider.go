// Package visibility provides the header visibility flag shared by every
// component of the osiview shell.
package visibility

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNoProvider is raised when a consumer operates outside a live provider.
var ErrNoProvider = errors.New("visibility: not within provider")

// DefaultVisible is the header state a provider starts with unless configured.
const DefaultVisible = true

// Provider owns the header visibility flag for one application session.
type Provider struct {
	logger zerolog.Logger

	mu      sync.RWMutex
	visible bool
	mounted bool
	subs    []subscription
	nextID  int
}

type subscription struct {
	id int
	fn func(visible bool)
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for transition logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider mounts a provider holding defaultVisible.
func NewProvider(defaultVisible bool, opts ...Option) *Provider {
	p := &Provider{
		logger:  zerolog.Nop(),
		visible: defaultVisible,
		mounted: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Visible returns the current flag.
func (p *Provider) Visible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.mounted {
		panic(compositionError("Visible"))
	}
	return p.visible
}

// SetVisible replaces the flag and notifies every subscriber before returning.
func (p *Provider) SetVisible(visible bool) {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		panic(compositionError("SetVisible"))
	}
	p.visible = visible
	subs := p.snapshotLocked()
	p.mu.Unlock()

	p.logger.Debug().Bool("visible", visible).Msg("header visibility set")
	notify(subs, visible)
}

// Toggle flips the flag relative to its value at the time the flip is applied.
func (p *Provider) Toggle() {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		panic(compositionError("Toggle"))
	}
	p.visible = !p.visible
	visible := p.visible
	subs := p.snapshotLocked()
	p.mu.Unlock()

	p.logger.Debug().Bool("visible", visible).Msg("header visibility toggled")
	notify(subs, visible)
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription and is safe to call more than once.
func (p *Provider) Subscribe(fn func(visible bool)) func() {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		panic(compositionError("Subscribe"))
	}
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub.id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// Mounted reports whether the provider session is still live.
func (p *Provider) Mounted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mounted
}

// Unmount ends the session. The flag is discarded and any later operation
// fails with ErrNoProvider.
func (p *Provider) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mounted = false
	p.subs = nil
}

func (p *Provider) snapshotLocked() []subscription {
	if len(p.subs) == 0 {
		return nil
	}
	subs := make([]subscription, len(p.subs))
	copy(subs, p.subs)
	return subs
}

func compositionError(op string) error {
	return fmt.Errorf("%w: %s called after unmount", ErrNoProvider, op)
}

func notify(subs []subscription, visible bool) {
	for _, sub := range subs {
		sub.fn(visible)
	}
}
