package model

import (
	"time"
)

// ComposeReviewRequest asks for a persona-voiced reply to a customer review.
type ComposeReviewRequest struct {
	ReviewText string `json:"review_text"`
}

// ComposeFollowUpRequest asks for a follow-up message to a lead.
type ComposeFollowUpRequest struct {
	LeadName        string `json:"lead_name"`
	ServiceInterest string `json:"service_interest"`
}

// ComposeContentRequest asks for a generic piece of marketing content.
type ComposeContentRequest struct {
	ContentType string `json:"content_type"`
	Topic       string `json:"topic"`
}

// ComposeResponse carries generated text back to the caller.
type ComposeResponse struct {
	Text string `json:"text"`
}

// SchedulePostRequest asks for a social post to be drafted in the background.
type SchedulePostRequest struct {
	Platform  string     `json:"platform"`
	Topic     string     `json:"topic"`
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

// SchedulePostResponse acknowledges an accepted scheduling job. The draft
// itself is surfaced later through the notification feed.
type SchedulePostResponse struct {
	JobID    string `json:"job_id"`
	Accepted bool   `json:"accepted"`
}

// ListNotificationsResponse is the response for listing notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationEntry `json:"notifications"`
	Total         int                 `json:"total"`
}

// PushNotificationRequest lets internal surfaces record an event.
type PushNotificationRequest struct {
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	ActionLink string           `json:"action_link,omitempty"`
}
