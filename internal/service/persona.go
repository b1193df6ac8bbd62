// Package service provides business logic for the persona engine.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/agentpack"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/persona"
	"github.com/vivi-ai/persona-engine/pkg/logger"
	"github.com/vivi-ai/persona-engine/pkg/metrics"
)

// PersonaService handles persona profile operations.
type PersonaService struct {
	store  persona.Store
	logger *logger.Logger
}

// NewPersonaService creates a new persona service.
func NewPersonaService(store persona.Store, log *logger.Logger) *PersonaService {
	return &PersonaService{
		store:  store,
		logger: log,
	}
}

// Get returns the user's profile. The store guarantees a usable profile even
// when nothing was saved yet or the stored blob is unreadable, so a degraded
// backend only ever costs personalization, not availability.
func (s *PersonaService) Get(ctx context.Context, userID string) model.PersonaProfile {
	p, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Warn("persona load degraded, using defaults",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
	return p
}

// Save persists the full profile, replacing any prior value.
func (s *PersonaService) Save(ctx context.Context, userID string, profile model.PersonaProfile) (model.PersonaProfile, error) {
	if profile.ContentTypes == nil {
		profile.ContentTypes = []string{}
	}
	if profile.Platforms == nil {
		profile.Platforms = []string{}
	}

	if err := s.store.Save(ctx, userID, profile); err != nil {
		return model.PersonaProfile{}, err
	}

	metrics.PersonaSavesTotal.Inc()
	return profile, nil
}

// ApplyPack overlays an agent pack onto the user's profile and persists the
// result. An unknown pack id is a no-op: the profile is returned unchanged
// and nothing is written.
func (s *PersonaService) ApplyPack(ctx context.Context, userID, packID string) (model.PersonaProfile, bool, error) {
	current := s.Get(ctx, userID)

	if _, known := agentpack.Lookup(packID); !known {
		s.logger.Info("unknown agent pack, profile unchanged",
			zap.String("user_id", userID),
			zap.String("pack", packID),
		)
		return current, false, nil
	}

	applied := agentpack.Apply(current, packID)
	saved, err := s.Save(ctx, userID, applied)
	if err != nil {
		return model.PersonaProfile{}, false, err
	}

	metrics.AgentPackAppliesTotal.WithLabelValues(packID).Inc()
	return saved, true, nil
}
