package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/generation"
	"github.com/vivi-ai/persona-engine/internal/model"
	"github.com/vivi-ai/persona-engine/internal/notify"
	"github.com/vivi-ai/persona-engine/internal/prompt"
	"github.com/vivi-ai/persona-engine/pkg/logger"
	"github.com/vivi-ai/persona-engine/pkg/metrics"
)

// scheduleTimeout bounds the background generation of a scheduled post.
const scheduleTimeout = 90 * time.Second

// ComposerService is the set of generation call sites: review responder,
// lead follow-up composer, generic content composer, and post scheduler.
// All of them agree on one contract: build a prompt from the persona,
// generate, and either return the text or surface the failure untouched.
type ComposerService struct {
	personas  *PersonaService
	generator generation.Client
	queue     *notify.Queue
	logger    *logger.Logger
}

// NewComposerService creates a new composer service.
func NewComposerService(
	personas *PersonaService,
	generator generation.Client,
	queue *notify.Queue,
	log *logger.Logger,
) *ComposerService {
	return &ComposerService{
		personas:  personas,
		generator: generator,
		queue:     queue,
		logger:    log,
	}
}

// ReviewResponse composes a persona-voiced reply to a customer review.
func (s *ComposerService) ReviewResponse(ctx context.Context, userID, reviewText string) (string, error) {
	profile := s.personas.Get(ctx, userID)
	return s.generate(ctx, "review_response", prompt.ReviewResponse(profile, reviewText))
}

// FollowUp composes a follow-up message to a lead.
func (s *ComposerService) FollowUp(ctx context.Context, userID, leadName, serviceInterest string) (string, error) {
	profile := s.personas.Get(ctx, userID)
	return s.generate(ctx, "follow_up", prompt.LeadFollowUp(profile, leadName, serviceInterest))
}

// Content composes a generic piece of marketing content.
func (s *ComposerService) Content(ctx context.Context, userID, contentType, topic string) (string, error) {
	profile := s.personas.Get(ctx, userID)
	return s.generate(ctx, "content", prompt.Content(profile, contentType, topic))
}

// SchedulePost accepts a post-drafting job and runs the generation in the
// background. The outcome, success or failure, lands in the notification
// queue; the job never blocks the caller and never loses its result when the
// caller goes away.
func (s *ComposerService) SchedulePost(ctx context.Context, userID string, req *model.SchedulePostRequest) string {
	jobID := uuid.Must(uuid.NewV7()).String()
	profile := s.personas.Get(ctx, userID)
	p := prompt.ScheduledPost(profile, req.Platform, req.Topic)
	platform := req.Platform
	topic := req.Topic

	go func() {
		// Detached from the request context: the caller may be gone by the
		// time generation finishes.
		genCtx, cancel := context.WithTimeout(context.Background(), scheduleTimeout)
		defer cancel()

		text, err := s.generate(genCtx, "scheduled_post", p)
		if err != nil {
			s.Notify(model.NotificationTypePost,
				fmt.Sprintf("Drafting your %s post about %q failed. Try again from the planner.", platform, topic),
				"/planner",
			)
			return
		}

		s.Notify(model.NotificationTypePost,
			fmt.Sprintf("Your %s post about %q is ready: %s", platform, topic, text),
			"/planner/drafts/"+jobID,
		)
	}()

	return jobID
}

// Notify pushes an event into the notification queue and records metrics.
func (s *ComposerService) Notify(typ model.NotificationType, message, actionLink string) model.NotificationEntry {
	entry := s.queue.Push(typ, message, actionLink)
	metrics.RecordNotification(string(typ), s.queue.Len())
	return entry
}

// Notifications returns the current notification feed, most-recent-first.
func (s *ComposerService) Notifications() []model.NotificationEntry {
	return s.queue.List()
}

// generate runs one exactly-once generation call. Failures are logged and
// returned as-is; no placeholder text is ever substituted.
func (s *ComposerService) generate(ctx context.Context, task, p string) (string, error) {
	start := time.Now()

	res, err := s.generator.Generate(ctx, p)
	if err != nil {
		metrics.RecordGeneration(s.generator.Name(), task, "error", time.Since(start).Seconds())
		s.logger.Error("generation failed",
			zap.String("task", task),
			zap.String("provider", s.generator.Name()),
			zap.Error(err),
		)
		return "", err
	}

	metrics.RecordGeneration(s.generator.Name(), task, "success", time.Since(start).Seconds())
	return res.Text, nil
}
