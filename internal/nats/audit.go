package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/model"
)

const (
	// StreamName is the name of the notification audit stream.
	StreamName = "NOTIFICATIONS"

	// SubjectPrefix is the prefix for all notification subjects.
	SubjectPrefix = "notif"
)

// NotificationAuditor mirrors pushed notification entries into a JetStream
// stream as a durable audit trail. The in-memory queue stays the read model
// for consumers; publishes here are best-effort.
type NotificationAuditor struct {
	client *Client
}

// NewNotificationAuditor creates a new auditor on the given client.
func NewNotificationAuditor(client *Client) *NotificationAuditor {
	return &NotificationAuditor{client: client}
}

// EnsureStream ensures the audit stream exists with proper configuration.
func (a *NotificationAuditor) EnsureStream(ctx context.Context) error {
	js := a.client.JetStream()

	// Check if stream exists
	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Audit trail of user notification events",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// Subject returns the subject for a notification type.
func Subject(typ model.NotificationType) string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, typ)
}

// Audit publishes the entry fire-and-forget. Failures are logged and
// swallowed: the notification queue must never fail because the audit sink
// is unavailable.
func (a *NotificationAuditor) Audit(entry model.NotificationEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		a.client.logger.Warn("failed to marshal notification for audit", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := a.client.JetStream().Publish(ctx, Subject(entry.Type), data); err != nil {
		a.client.logger.Warn("failed to audit notification",
			zap.Uint64("notification_id", entry.ID),
			zap.Error(err),
		)
	}
}
