package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/middleware"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

// PersonaHandler handles persona profile endpoints.
type PersonaHandler struct {
	service *service.PersonaService
	logger  *logger.Logger
}

// NewPersonaHandler creates a new persona handler.
func NewPersonaHandler(svc *service.PersonaService, log *logger.Logger) *PersonaHandler {
	return &PersonaHandler{
		service: svc,
		logger:  log,
	}
}

// Get handles GET /api/v1/persona
func (h *PersonaHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	profile := h.service.Get(ctx, userID)
	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /api/v1/persona. The full profile is replaced; there is
// no partial-update surface.
func (h *PersonaHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var profile model.PersonaProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.Save(ctx, userID, profile)
	if err != nil {
		h.logger.Error("failed to save persona", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save persona")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
