package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/opencode-ai/osiview/internal/models"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	payload, err := json.Marshal(models.ThemeChangedPayload{Previous: "light", Current: "dark"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	event := &models.Event{
		Type:       models.EventTypeThemeApplied,
		EntityType: models.EntityTypePreference,
		EntityID:   "theme",
		Payload:    payload,
		Metadata:   map[string]string{"via": "test"},
	}
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if event.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be assigned")
	}

	got, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Type != models.EventTypeThemeApplied {
		t.Errorf("Type = %q", got.Type)
	}
	if got.Metadata["via"] != "test" {
		t.Errorf("Metadata = %v", got.Metadata)
	}
	if string(got.Payload) != string(payload) {
		t.Errorf("Payload = %s, want %s", got.Payload, payload)
	}
	if !got.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, event.Timestamp)
	}
}

func TestEventRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := NewEventRepository(db).Get(context.Background(), "nope")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventRepository_CreateRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := NewEventRepository(db).Create(context.Background(), &models.Event{Type: models.EventTypeThemeApplied})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestEventRepository_QueryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	types := []models.EventType{
		models.EventTypeThemeApplied,
		models.EventTypeThemeReset,
		models.EventTypeThemeApplied,
	}
	for i, eventType := range types {
		event := &models.Event{
			Timestamp:  base.Add(time.Duration(i) * 100 * time.Millisecond),
			Type:       eventType,
			EntityType: models.EntityTypePreference,
			EntityID:   "theme",
		}
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := repo.Query(ctx, EventQuery{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if !all[0].Timestamp.After(all[2].Timestamp) {
		t.Fatalf("expected newest first, got %v then %v", all[0].Timestamp, all[2].Timestamp)
	}

	applied := models.EventTypeThemeApplied
	filtered, err := repo.Query(ctx, EventQuery{Type: &applied, Limit: 1})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Type != applied {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}

	since := base.Add(150 * time.Millisecond)
	recent, err := repo.Query(ctx, EventQuery{Since: &since})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent event, got %d", len(recent))
	}
}
