// Package prompt builds generation prompts from a persona profile and
// task-specific input. Every builder is a pure function: no I/O, no side
// effects, and no failure mode. Caller-supplied text (review content, topics,
// lead names) is passed through verbatim.
package prompt

import (
	"fmt"
	"strings"

	"github.com/vivi-ai/persona-engine/internal/model"
)

// Content builds the generic marketing content prompt.
func Content(profile model.PersonaProfile, contentType, topic string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the social media voice of %s, a business located in %s.\n",
		profile.BusinessType, profile.Location)
	fmt.Fprintf(&sb, "Write in a %s tone.\n", profile.ToneOrDefault())
	if profile.Goals != "" {
		fmt.Fprintf(&sb, "Business goals: %s.\n", profile.Goals)
	}
	if profile.Audience != "" {
		fmt.Fprintf(&sb, "Target audience: %s.\n", profile.Audience)
	}
	fmt.Fprintf(&sb, "Create a %s about: %s", contentType, topic)
	if profile.Hashtags != "" {
		fmt.Fprintf(&sb, "\nInclude these hashtags where natural: %s", profile.Hashtags)
	}
	return sb.String()
}

// ReviewResponse builds the prompt for answering a customer review in the
// persona's voice. The review text is embedded verbatim.
func ReviewResponse(profile model.PersonaProfile, reviewText string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the owner of %s in %s.\n",
		profile.BusinessType, profile.Location)
	fmt.Fprintf(&sb, "Respond to the following customer review in a %s tone, as that persona.\n",
		profile.ToneOrDefault())
	fmt.Fprintf(&sb, "Keep the reply short and personal.\n\nReview: %s", reviewText)
	return sb.String()
}

// LeadFollowUp builds the prompt for a follow-up message to a lead who
// expressed interest in a service.
func LeadFollowUp(profile model.PersonaProfile, leadName, serviceInterest string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You write follow-up messages for %s in a %s tone.\n",
		profile.BusinessType, profile.ToneOrDefault())
	if profile.Goals != "" {
		fmt.Fprintf(&sb, "Business goals: %s.\n", profile.Goals)
	}
	fmt.Fprintf(&sb, "Write a short follow-up message to %s, who asked about: %s",
		leadName, serviceInterest)
	if profile.TopOffers != "" {
		fmt.Fprintf(&sb, "\nMention a current offer if it fits: %s", profile.TopOffers)
	}
	return sb.String()
}

// ScheduledPost builds the prompt used by the post scheduler.
func ScheduledPost(profile model.PersonaProfile, platform, topic string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the social media voice of %s, a business located in %s.\n",
		profile.BusinessType, profile.Location)
	fmt.Fprintf(&sb, "Write a %s tone post for %s about: %s",
		profile.ToneOrDefault(), platform, topic)
	if profile.Hashtags != "" {
		fmt.Fprintf(&sb, "\nInclude these hashtags where natural: %s", profile.Hashtags)
	}
	return sb.String()
}
