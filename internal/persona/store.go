// Package persona provides durable storage for persona profiles. Each user
// has exactly one profile, stored whole under a single key: callers load,
// mutate, and save the full record.
package persona

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vivi-ai/persona-engine/internal/model"
)

// Store is the persona persistence interface.
type Store interface {
	// Load returns the saved profile for userID. An absent or unreadable
	// record yields the default profile, never an error the caller must
	// handle as a failure.
	Load(ctx context.Context, userID string) (model.PersonaProfile, error)

	// Save serializes and persists the full profile, replacing any prior
	// value.
	Save(ctx context.Context, userID string, profile model.PersonaProfile) error
}

// decodeProfile unmarshals stored bytes, falling back to the default profile
// when the data is corrupt. The bool result reports whether the data was
// readable.
func decodeProfile(data []byte) (model.PersonaProfile, bool) {
	var p model.PersonaProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return model.DefaultPersonaProfile(), false
	}
	if p.ContentTypes == nil {
		p.ContentTypes = []string{}
	}
	if p.Platforms == nil {
		p.Platforms = []string{}
	}
	return p, true
}

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, userID string) (model.PersonaProfile, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return model.DefaultPersonaProfile(), nil
	}
	p, _ := decodeProfile(raw)
	return p, nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, userID string, profile model.PersonaProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[userID] = raw
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a record with unparseable bytes. Test helper.
func (s *MemoryStore) Corrupt(userID string) {
	s.mu.Lock()
	s.data[userID] = []byte("{not json")
	s.mu.Unlock()
}
