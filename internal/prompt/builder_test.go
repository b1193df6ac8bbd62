package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivi-ai/persona-engine/internal/model"
)

func austinMedspa() model.PersonaProfile {
	return model.PersonaProfile{
		BusinessType: "MedSpa",
		Location:     "Austin, TX",
		Tone:         "friendly",
		Goals:        "Promote Hydrafacial",
		Hashtags:     "#medspa #glowup",
	}
}

func TestContentRoundTripsProfileAndTopic(t *testing.T) {
	p := Content(austinMedspa(), "Instagram caption", "spring glow special")

	assert.Contains(t, p, "MedSpa")
	assert.Contains(t, p, "Austin, TX")
	assert.Contains(t, p, "friendly")
	assert.Contains(t, p, "Instagram caption")
	assert.Contains(t, p, "spring glow special")
	assert.Contains(t, p, "#medspa #glowup")
}

func TestContentDefaultsToneWhenUnset(t *testing.T) {
	profile := austinMedspa()
	profile.Tone = ""

	p := Content(profile, "post", "anything")
	assert.Contains(t, p, model.DefaultTone)
}

func TestContentTotalOverEmptyProfile(t *testing.T) {
	p := Content(model.DefaultPersonaProfile(), "post", "topic")

	assert.NotEmpty(t, p)
	assert.Contains(t, p, "topic")
}

func TestReviewResponsePreservesReviewVerbatim(t *testing.T) {
	review := "Great service!\nBut the parking was <terrible> & weird…"
	p := ReviewResponse(austinMedspa(), review)

	assert.Contains(t, p, "MedSpa")
	assert.Contains(t, p, "Austin, TX")
	assert.Contains(t, p, "friendly")
	assert.Contains(t, p, review)
}

func TestLeadFollowUpEmbedsLeadDetails(t *testing.T) {
	profile := austinMedspa()
	profile.TopOffers = "20% off first visit"

	p := LeadFollowUp(profile, "Jamie", "laser hair removal")

	assert.Contains(t, p, "Jamie")
	assert.Contains(t, p, "laser hair removal")
	assert.Contains(t, p, "friendly")
	assert.Contains(t, p, "20% off first visit")
}

func TestScheduledPostEmbedsPlatform(t *testing.T) {
	p := ScheduledPost(austinMedspa(), "instagram", "summer special")

	assert.Contains(t, p, "instagram")
	assert.Contains(t, p, "summer special")
	assert.Contains(t, p, "MedSpa")
}

func TestBuildersAreDeterministic(t *testing.T) {
	profile := austinMedspa()

	assert.Equal(t,
		Content(profile, "post", "topic"),
		Content(profile, "post", "topic"),
	)
	assert.Equal(t,
		ReviewResponse(profile, "review"),
		ReviewResponse(profile, "review"),
	)
}
