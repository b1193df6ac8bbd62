package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vivi-ai/persona-engine/internal/middleware"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

// NotificationHandler handles the notification feed endpoints. Consumers
// poll; there is no push transport.
type NotificationHandler struct {
	service *service.ComposerService
	logger  *logger.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(svc *service.ComposerService, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Notifications()

	writeJSON(w, http.StatusOK, model.ListNotificationsResponse{
		Notifications: entries,
		Total:         len(entries),
	})
}

// Push handles POST /api/v1/notifications. Internal surfaces (campaign
// runner, CRM sync, trend watcher) record events here.
func (h *NotificationHandler) Push(w http.ResponseWriter, r *http.Request) {
	if !middleware.HasScope(r.Context(), "notifications:write") {
		writeError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	var req model.PushNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidNotificationType(req.Type) {
		writeError(w, http.StatusBadRequest, "unknown notification type")
		return
	}
	if err := middleware.ValidateNotificationMessage(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := h.service.Notify(req.Type, req.Message, req.ActionLink)
	writeJSON(w, http.StatusCreated, entry)
}
