package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vivi-ai/persona-engine/internal/middleware"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

// ComposeHandler handles content composition endpoints.
type ComposeHandler struct {
	service *service.ComposerService
	logger  *logger.Logger
}

// NewComposeHandler creates a new compose handler.
func NewComposeHandler(svc *service.ComposerService, log *logger.Logger) *ComposeHandler {
	return &ComposeHandler{
		service: svc,
		logger:  log,
	}
}

// ReviewResponse handles POST /api/v1/compose/review-response
func (h *ComposeHandler) ReviewResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req model.ComposeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateReviewText(req.ReviewText); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.service.ReviewResponse(ctx, userID, req.ReviewText)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ComposeResponse{Text: text})
}

// FollowUp handles POST /api/v1/compose/follow-up
func (h *ComposeHandler) FollowUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req model.ComposeFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateLeadName(req.LeadName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ServiceInterest == "" {
		writeError(w, http.StatusBadRequest, "service_interest cannot be empty")
		return
	}

	text, err := h.service.FollowUp(ctx, userID, req.LeadName, req.ServiceInterest)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ComposeResponse{Text: text})
}

// Content handles POST /api/v1/compose/content
func (h *ComposeHandler) Content(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req model.ComposeContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ContentType == "" {
		req.ContentType = "social media post"
	}
	if err := middleware.ValidateTopic(req.Topic); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.service.Content(ctx, userID, req.ContentType, req.Topic)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ComposeResponse{Text: text})
}

// SchedulePost handles POST /api/v1/posts/schedule. The draft is produced in
// the background and surfaced through the notification feed.
func (h *ComposeHandler) SchedulePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req model.SchedulePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Platform == "" {
		writeError(w, http.StatusBadRequest, "platform cannot be empty")
		return
	}
	if err := middleware.ValidateTopic(req.Topic); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID := h.service.SchedulePost(ctx, userID, &req)

	writeJSON(w, http.StatusAccepted, model.SchedulePostResponse{
		JobID:    jobID,
		Accepted: true,
	})
}
