package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi-ai/persona-engine/internal/generation"
	"github.com/vivi-ai/persona-engine/internal/middleware"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/notify"
	"github.com/vivi-ai/persona-engine/internal/persona"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (*generation.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &generation.Result{Text: f.text}, nil
}

func (f *fakeGenerator) Name() string { return "fake" }

func newComposeHandler(gen generation.Client) (*ComposeHandler, *service.ComposerService) {
	log := logger.NewNop()
	personas := service.NewPersonaService(persona.NewMemoryStore(), log)
	composer := service.NewComposerService(personas, gen, notify.NewQueue(50), log)
	return NewComposeHandler(composer, log), composer
}

func authedRequest(method, path, body string) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, "user-1")
	return r.WithContext(ctx)
}

func TestReviewResponseHandlerSuccess(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "Thank you!"})

	w := httptest.NewRecorder()
	h.ReviewResponse(w, authedRequest(http.MethodPost, "/api/v1/compose/review-response",
		`{"review_text":"Great service!"}`))

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ComposeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Thank you!", resp.Text)
}

func TestReviewResponseHandlerGenerationFailure(t *testing.T) {
	genErr := &generation.Error{Provider: "fake", StatusCode: 500, Err: errors.New("down")}
	h, _ := newComposeHandler(&fakeGenerator{err: genErr})

	w := httptest.NewRecorder()
	h.ReviewResponse(w, authedRequest(http.MethodPost, "/api/v1/compose/review-response",
		`{"review_text":"Great service!"}`))

	// A distinguishable failure, never a 200 with empty text.
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "content generation failed", body["error"])
	assert.NotContains(t, body, "text")
}

func TestReviewResponseHandlerRejectsEmptyReview(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "x"})

	w := httptest.NewRecorder()
	h.ReviewResponse(w, authedRequest(http.MethodPost, "/api/v1/compose/review-response",
		`{"review_text":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowUpHandlerSuccess(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "Hi Jamie"})

	w := httptest.NewRecorder()
	h.FollowUp(w, authedRequest(http.MethodPost, "/api/v1/compose/follow-up",
		`{"lead_name":"Jamie","service_interest":"laser hair removal"}`))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestContentHandlerDefaultsContentType(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "a post"})

	w := httptest.NewRecorder()
	h.Content(w, authedRequest(http.MethodPost, "/api/v1/compose/content",
		`{"topic":"grand opening"}`))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSchedulePostHandlerAccepts(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "draft"})

	w := httptest.NewRecorder()
	h.SchedulePost(w, authedRequest(http.MethodPost, "/api/v1/posts/schedule",
		`{"platform":"instagram","topic":"summer special"}`))

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp model.SchedulePostResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Accepted)
	assert.NotEmpty(t, resp.JobID)
}

func TestSchedulePostHandlerRequiresPlatform(t *testing.T) {
	h, _ := newComposeHandler(&fakeGenerator{text: "draft"})

	w := httptest.NewRecorder()
	h.SchedulePost(w, authedRequest(http.MethodPost, "/api/v1/posts/schedule",
		`{"topic":"summer special"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationListAndScopedPush(t *testing.T) {
	log := logger.NewNop()
	personas := service.NewPersonaService(persona.NewMemoryStore(), log)
	composer := service.NewComposerService(personas, &fakeGenerator{text: "x"}, notify.NewQueue(50), log)
	h := NewNotificationHandler(composer, log)

	// Push without scope is forbidden.
	w := httptest.NewRecorder()
	h.Push(w, authedRequest(http.MethodPost, "/api/v1/notifications",
		`{"type":"crm","message":"lead captured"}`))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Push with scope succeeds.
	r := authedRequest(http.MethodPost, "/api/v1/notifications",
		`{"type":"crm","message":"lead captured","action_link":"/crm/leads/7"}`)
	ctx := context.WithValue(r.Context(), middleware.ScopesKey, []string{"notifications:write"})
	w = httptest.NewRecorder()
	h.Push(w, r.WithContext(ctx))
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown type is rejected.
	r = authedRequest(http.MethodPost, "/api/v1/notifications",
		`{"type":"bogus","message":"m"}`)
	ctx = context.WithValue(r.Context(), middleware.ScopesKey, []string{"notifications:write"})
	w = httptest.NewRecorder()
	h.Push(w, r.WithContext(ctx))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The pushed entry shows up in the feed.
	w = httptest.NewRecorder()
	h.List(w, authedRequest(http.MethodGet, "/api/v1/notifications", ""))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ListNotificationsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, model.NotificationTypeCRM, resp.Notifications[0].Type)
	assert.Equal(t, "lead captured", resp.Notifications[0].Message)
}
