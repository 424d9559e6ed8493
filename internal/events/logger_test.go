package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/opencode-ai/osiview/internal/models"
)

type fakeRepo struct {
	last *models.Event
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return nil
}

func TestLogThemeApplied(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogThemeApplied(context.Background(), repo, "theme", "light", "dark"); err != nil {
		t.Fatalf("LogThemeApplied failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeThemeApplied {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityType != models.EntityTypePreference {
		t.Fatalf("unexpected entity type: %q", repo.last.EntityType)
	}
	if repo.last.EntityID != "theme" {
		t.Fatalf("unexpected entity id: %q", repo.last.EntityID)
	}

	var payload models.ThemeChangedPayload
	if err := json.Unmarshal(repo.last.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Previous != "light" || payload.Current != "dark" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogThemeReset(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogThemeReset(context.Background(), repo, "theme", "dark", "light"); err != nil {
		t.Fatalf("LogThemeReset failed: %v", err)
	}
	if repo.last.Type != models.EventTypeThemeReset {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
}

func TestLogThemeEventRequiresInputs(t *testing.T) {
	ctx := context.Background()

	if err := LogThemeApplied(ctx, nil, "theme", "", "dark"); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogThemeApplied(ctx, &fakeRepo{}, "", "", "dark"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := LogThemeApplied(ctx, &fakeRepo{}, "theme", "light", ""); err == nil {
		t.Fatal("expected error for empty current theme")
	}
}

func TestLogError(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogError(context.Background(), repo, "theme.apply", errors.New("disk full")); err != nil {
		t.Fatalf("LogError failed: %v", err)
	}
	if repo.last == nil || repo.last.Type != models.EventTypeError {
		t.Fatalf("expected error event, got %+v", repo.last)
	}
	if repo.last.EntityType != models.EntityTypeSystem {
		t.Fatalf("unexpected entity type: %q", repo.last.EntityType)
	}

	var payload models.ErrorPayload
	if err := json.Unmarshal(repo.last.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Error != "disk full" || payload.Context != "theme.apply" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogErrorNilCause(t *testing.T) {
	repo := &fakeRepo{}
	if err := LogError(context.Background(), repo, "theme.apply", nil); err != nil {
		t.Fatalf("LogError failed: %v", err)
	}
	if repo.last != nil {
		t.Fatal("expected no event for nil cause")
	}
}
