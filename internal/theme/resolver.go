package theme

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/osiview/internal/events"
)

// Source identifies where a resolved theme came from.
type Source string

// Resolution sources.
const (
	SourceHeadless  Source = "headless"
	SourcePersisted Source = "persisted"
	SourceSystem    Source = "system"
	SourceDefault   Source = "default"
)

// Resolution is the outcome of Resolve.
type Resolution struct {
	Theme  Theme  `json:"theme" yaml:"theme"`
	Source Source `json:"source" yaml:"source"`
}

// Environment bundles the capabilities the resolver needs. A nil Root means
// there is no visual document, for example when rendering output for a pipe.
type Environment struct {
	Root   Root
	Store  Store
	Signal Signal
}

// Available reports whether a visual document and storage are present.
func (e Environment) Available() bool {
	return e.Root != nil && e.Store != nil
}

// Resolver reconciles stored, system and default theme signals and keeps
// the visual root and storage consistent.
type Resolver struct {
	env    Environment
	logger zerolog.Logger
	events events.Repository
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEventRepository records explicit theme changes in repo.
func WithEventRepository(repo events.Repository) Option {
	return func(r *Resolver) {
		r.events = repo
	}
}

// NewResolver creates a resolver over env.
func NewResolver(env Environment, logger zerolog.Logger, opts ...Option) *Resolver {
	if env.Signal == nil {
		env.Signal = Undetectable
	}
	r := &Resolver{
		env:    env,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Available reports whether the resolver has a visual document to act on.
func (r *Resolver) Available() bool {
	return r.env.Available()
}

// ResolveInitial resolves the startup theme and applies it to the root.
// It never writes to storage.
func (r *Resolver) ResolveInitial(ctx context.Context) Theme {
	return r.Resolve(ctx).Theme
}

// Resolve is ResolveInitial that also reports where the theme came from.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	if !r.env.Available() {
		return Resolution{Theme: Fallback, Source: SourceHeadless}
	}

	res := r.detect(ctx)
	applyToRoot(r.env.Root, res.Theme)

	r.logger.Debug().
		Str("theme", res.Theme.String()).
		Str("source", string(res.Source)).
		Msg("theme resolved")
	return res
}

func (r *Resolver) detect(ctx context.Context) Resolution {
	stored, ok, err := r.env.Store.Load(ctx)
	switch {
	case err != nil:
		r.logger.Warn().Err(err).Msg("ignoring stored theme preference")
	case ok && stored.Valid():
		return Resolution{Theme: stored, Source: SourcePersisted}
	case ok:
		r.logger.Warn().Str("stored", string(stored)).Msg("ignoring invalid stored theme")
	}

	if dark, ok := r.env.Signal.PrefersDark(); ok {
		if dark {
			return Resolution{Theme: Dark, Source: SourceSystem}
		}
		return Resolution{Theme: Light, Source: SourceSystem}
	}
	return Resolution{Theme: Fallback, Source: SourceDefault}
}

// Apply applies an explicit choice to the root and persists it.
// Applying the current theme again leaves root and storage unchanged.
// Without a visual document Apply does nothing.
func (r *Resolver) Apply(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidTheme, string(t))
	}
	if !r.env.Available() {
		return nil
	}

	previous, _ := Current(r.env.Root)
	applyToRoot(r.env.Root, t)
	if err := r.env.Store.Save(ctx, t); err != nil {
		err = fmt.Errorf("failed to persist theme: %w", err)
		r.recordError(ctx, "theme.apply", err)
		return err
	}

	r.logger.Info().
		Str("previous", previous.String()).
		Str("theme", t.String()).
		Msg("theme applied")

	if r.events != nil {
		if err := events.LogThemeApplied(ctx, r.events, StorageKey, previous.String(), t.String()); err != nil {
			r.logger.Warn().Err(err).Msg("failed to record theme event")
		}
	}
	return nil
}

// Reset clears the stored choice and re-resolves from the system signal.
func (r *Resolver) Reset(ctx context.Context) (Resolution, error) {
	if !r.env.Available() {
		return Resolution{Theme: Fallback, Source: SourceHeadless}, nil
	}

	previous, _ := Current(r.env.Root)
	if err := r.env.Store.Clear(ctx); err != nil {
		err = fmt.Errorf("failed to clear theme: %w", err)
		r.recordError(ctx, "theme.reset", err)
		return Resolution{}, err
	}
	res := r.Resolve(ctx)

	if r.events != nil {
		if err := events.LogThemeReset(ctx, r.events, StorageKey, previous.String(), res.Theme.String()); err != nil {
			r.logger.Warn().Err(err).Msg("failed to record theme event")
		}
	}
	return res, nil
}

func (r *Resolver) recordError(ctx context.Context, source string, cause error) {
	if r.events == nil {
		return
	}
	if err := events.LogError(ctx, r.events, source, cause); err != nil {
		r.logger.Warn().Err(err).Msg("failed to record error event")
	}
}
