package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/opencode-ai/osiview/internal/models"
)

// ErrPreferenceNotFound is returned when a preference key is not stored.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository handles key-value preference persistence.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves a preference by key.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (*models.Preference, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM preferences WHERE key = ?
	`, key)

	var pref models.Preference
	var updatedAt string
	if err := row.Scan(&pref.Key, &pref.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to scan preference: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		pref.UpdatedAt = t
	}
	return &pref, nil
}

// Lookup returns the value stored under key and whether it exists.
func (r *PreferenceRepository) Lookup(ctx context.Context, key string) (string, bool, error) {
	pref, err := r.Get(ctx, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// Set inserts or replaces the value stored under key.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	pref := &models.Preference{Key: key, Value: value}
	if err := pref.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}

// List returns every stored preference ordered by key.
func (r *PreferenceRepository) List(ctx context.Context) ([]*models.Preference, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT key, value, updated_at FROM preferences ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.Preference
	for rows.Next() {
		var pref models.Preference
		var updatedAt string
		if err := rows.Scan(&pref.Key, &pref.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			pref.UpdatedAt = t
		}
		prefs = append(prefs, &pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferences: %w", err)
	}
	return prefs, nil
}
