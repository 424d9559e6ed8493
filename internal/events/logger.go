// Package events provides helper functions for logging preference events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/osiview/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeApplied records an explicit theme choice for a preference key.
func LogThemeApplied(ctx context.Context, repo Repository, key, previous, current string) error {
	return logThemeEvent(ctx, repo, models.EventTypeThemeApplied, key, previous, current)
}

// LogThemeReset records that a stored theme preference was cleared.
// current is the theme the root fell back to.
func LogThemeReset(ctx context.Context, repo Repository, key, previous, current string) error {
	return logThemeEvent(ctx, repo, models.EventTypeThemeReset, key, previous, current)
}

func logThemeEvent(ctx context.Context, repo Repository, eventType models.EventType, key, previous, current string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if key == "" {
		return fmt.Errorf("preference key is required")
	}
	if current == "" {
		return fmt.Errorf("current theme is required")
	}

	payload, err := json.Marshal(models.ThemeChangedPayload{
		Previous: previous,
		Current:  current,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme payload: %w", err)
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypePreference,
		EntityID:   key,
		Payload:    payload,
	}

	return repo.Create(ctx, event)
}

// LogError records a failure against the system entity. source names the
// operation that failed.
func LogError(ctx context.Context, repo Repository, source string, cause error) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if cause == nil {
		return nil
	}

	payload, err := json.Marshal(models.ErrorPayload{
		Error:   cause.Error(),
		Context: source,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal error payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeError,
		EntityType: models.EntityTypeSystem,
		EntityID:   "osiview",
		Payload:    payload,
	})
}
