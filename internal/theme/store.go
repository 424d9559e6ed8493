package theme

import (
	"context"
	"fmt"
	"sync"
)

// StorageKey is the preference key the theme is persisted under.
const StorageKey = "theme"

// Store persists an explicit theme choice.
type Store interface {
	// Load returns the stored theme and whether one is present.
	Load(ctx context.Context) (Theme, bool, error)
	// Save stores t.
	Save(ctx context.Context, t Theme) error
	// Clear removes the stored theme. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// KeyValue is the minimal key-value repository a KeyValueStore needs.
type KeyValue interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KeyValueStore persists the theme as a single key-value pair.
type KeyValueStore struct {
	kv  KeyValue
	key string
}

// NewKeyValueStore creates a store over kv using StorageKey.
func NewKeyValueStore(kv KeyValue) *KeyValueStore {
	return &KeyValueStore{kv: kv, key: StorageKey}
}

// Load implements Store. A stored value that is not a valid theme is
// returned as an ErrInvalidTheme error.
func (s *KeyValueStore) Load(ctx context.Context) (Theme, bool, error) {
	value, ok, err := s.kv.Lookup(ctx, s.key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s preference: %w", s.key, err)
	}
	if !ok {
		return "", false, nil
	}
	t, err := ParseTheme(value)
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}

// Save implements Store.
func (s *KeyValueStore) Save(ctx context.Context, t Theme) error {
	if err := s.kv.Set(ctx, s.key, string(t)); err != nil {
		return fmt.Errorf("failed to write %s preference: %w", s.key, err)
	}
	return nil
}

// Clear implements Store.
func (s *KeyValueStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete %s preference: %w", s.key, err)
	}
	return nil
}

// MemoryStore keeps the theme in memory. It counts reads and writes so
// callers can assert a path did not touch storage.
type MemoryStore struct {
	mu     sync.Mutex
	value  Theme
	set    bool
	reads  int
	writes int
}

// NewMemoryStore creates a store, optionally seeded with a value.
func NewMemoryStore(initial ...Theme) *MemoryStore {
	s := &MemoryStore{}
	if len(initial) > 0 && initial[0] != "" {
		s.value = initial[0]
		s.set = true
	}
	return s
}

// Load implements Store.
func (s *MemoryStore) Load(context.Context) (Theme, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return s.value, s.set, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.value = t
	s.set = true
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.value = ""
	s.set = false
	return nil
}

// Reads returns how many times Load was called.
func (s *MemoryStore) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Writes returns how many times Save or Clear was called.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
