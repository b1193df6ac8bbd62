package middleware

import (
	"errors"
	"unicode/utf8"
)

// Input is passed to the generation prompt verbatim, so validation here is
// about size and encoding, not content.

// ValidateReviewText validates customer review text.
func ValidateReviewText(text string) error {
	if len(text) == 0 {
		return errors.New("review_text cannot be empty")
	}
	if len(text) > 10000 {
		return errors.New("review_text exceeds maximum length")
	}
	if !utf8.ValidString(text) {
		return errors.New("review_text must be valid UTF-8")
	}
	return nil
}

// ValidateTopic validates a content topic or subject line.
func ValidateTopic(topic string) error {
	if len(topic) == 0 {
		return errors.New("topic cannot be empty")
	}
	if len(topic) > 1000 {
		return errors.New("topic exceeds maximum length")
	}
	if !utf8.ValidString(topic) {
		return errors.New("topic must be valid UTF-8")
	}
	return nil
}

// ValidateLeadName validates a lead's name.
func ValidateLeadName(name string) error {
	if len(name) == 0 {
		return errors.New("lead_name cannot be empty")
	}
	if len(name) > 256 {
		return errors.New("lead_name exceeds maximum length")
	}
	if !utf8.ValidString(name) {
		return errors.New("lead_name must be valid UTF-8")
	}
	return nil
}

// ValidatePackID validates an agent pack id.
func ValidatePackID(id string) error {
	if len(id) == 0 {
		return errors.New("pack id cannot be empty")
	}
	if len(id) > 64 {
		return errors.New("pack id exceeds maximum length")
	}
	return nil
}

// ValidateNotificationMessage validates a pushed notification message.
func ValidateNotificationMessage(msg string) error {
	if len(msg) == 0 {
		return errors.New("message cannot be empty")
	}
	if len(msg) > 4096 {
		return errors.New("message exceeds maximum length")
	}
	if !utf8.ValidString(msg) {
		return errors.New("message must be valid UTF-8")
	}
	return nil
}
