package persona

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

// KVStore persists profiles in a NATS JetStream KeyValue bucket, one key per
// user.
type KVStore struct {
	kv     jetstream.KeyValue
	logger *logger.Logger
}

// NewKVStore creates a Store backed by the given KeyValue bucket.
func NewKVStore(kv jetstream.KeyValue, log *logger.Logger) *KVStore {
	return &KVStore{
		kv:     kv,
		logger: log,
	}
}

// Load implements Store. A missing key returns the default profile; a
// corrupt value is logged and replaced by the default profile rather than
// surfaced as a failure.
func (s *KVStore) Load(ctx context.Context, userID string) (model.PersonaProfile, error) {
	entry, err := s.kv.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return model.DefaultPersonaProfile(), nil
		}
		return model.DefaultPersonaProfile(), fmt.Errorf("failed to load persona: %w", err)
	}

	p, ok := decodeProfile(entry.Value())
	if !ok {
		s.logger.Warn("stored persona is corrupt, falling back to defaults",
			zap.String("user_id", userID),
		)
	}
	return p, nil
}

// Save implements Store.
func (s *KVStore) Save(ctx context.Context, userID string, profile model.PersonaProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}

	if _, err := s.kv.Put(ctx, userID, raw); err != nil {
		return fmt.Errorf("failed to save persona: %w", err)
	}
	return nil
}
