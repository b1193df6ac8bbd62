package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/agentpack"
	"github.com/vivi-ai/persona-engine/internal/middleware"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

// PackHandler handles agent pack endpoints.
type PackHandler struct {
	service *service.PersonaService
	logger  *logger.Logger
}

// NewPackHandler creates a new agent pack handler.
func NewPackHandler(svc *service.PersonaService, log *logger.Logger) *PackHandler {
	return &PackHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/v1/agent-packs
func (h *PackHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"packs": agentpack.Packs(),
	})
}

// Apply handles POST /api/v1/agent-packs/{id}/apply. Applying an unknown
// pack is not an error: the profile comes back unchanged with applied=false,
// so installs are idempotent and safe to retry.
func (h *PackHandler) Apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	packID := chi.URLParam(r, "id")

	if err := middleware.ValidatePackID(packID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, applied, err := h.service.ApplyPack(ctx, userID, packID)
	if err != nil {
		h.logger.Error("failed to apply agent pack",
			zap.String("user_id", userID),
			zap.String("pack", packID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to apply agent pack")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applied": applied,
		"persona": profile,
	})
}
