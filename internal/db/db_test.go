package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), DefaultConfig(MemoryPath), zerolog.Nop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestOpenCreatesFileAndMigratesIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "osiview.db")
	ctx := context.Background()

	db, err := Open(ctx, DefaultConfig(path), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if db.Path() != path {
		t.Fatalf("Path() = %q, want %q", db.Path(), path)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening an existing database keeps its data.
	db, err = Open(ctx, DefaultConfig(path), zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), Config{}, zerolog.Nop()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
