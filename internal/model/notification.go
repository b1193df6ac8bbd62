package model

import (
	"time"
)

// NotificationType represents the kind of event a notification describes.
type NotificationType string

const (
	NotificationTypeCampaign NotificationType = "campaign"
	NotificationTypePost     NotificationType = "post"
	NotificationTypeCRM      NotificationType = "crm"
	NotificationTypeTrend    NotificationType = "trend"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeCampaign, NotificationTypePost, NotificationTypeCRM, NotificationTypeTrend:
		return true
	}
	return false
}

// NotificationEntry is a bounded, timestamped event record surfaced to UI
// consumers. Entries are immutable after creation. The ID is a
// process-monotonic sequence number, so two pushes in the same clock tick
// still get distinct identities.
type NotificationEntry struct {
	ID         uint64           `json:"id"`
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	ActionLink string           `json:"action_link,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}
