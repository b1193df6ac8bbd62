package agentpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi-ai/persona-engine/internal/model"
)

func sampleProfile() model.PersonaProfile {
	return model.PersonaProfile{
		BusinessType: "MedSpa",
		Location:     "Austin, TX",
		Audience:     "locals",
		Tone:         "stern",
		Goals:        "existing goals",
		Hashtags:     "#old",
		ContentTypes: []string{"reel"},
		Platforms:    []string{"instagram"},
	}
}

func TestApplyUnknownPackIsNoOp(t *testing.T) {
	in := sampleProfile()
	out := Apply(in, "unknown_id")

	assert.Equal(t, in, out)
}

func TestApplyMedspaOverwritesToneGoalsHashtags(t *testing.T) {
	in := sampleProfile()
	out := Apply(in, "medspa")

	assert.Equal(t, "friendly", out.Tone)
	assert.Equal(t, "Promote Hydrafacial, Laser Hair Removal, Botox", out.Goals)
	assert.Equal(t, "#medspa #selfcare #glowup", out.Hashtags)

	// Everything else is untouched.
	assert.Equal(t, in.BusinessType, out.BusinessType)
	assert.Equal(t, in.Location, out.Location)
	assert.Equal(t, in.Audience, out.Audience)
	assert.Equal(t, in.ContentTypes, out.ContentTypes)
	assert.Equal(t, in.Platforms, out.Platforms)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	in := sampleProfile()
	want := sampleProfile()

	out := Apply(in, "real_estate")
	out.ContentTypes[0] = "mutated"

	assert.Equal(t, want, in)
}

func TestApplyOnEmptyProfile(t *testing.T) {
	out := Apply(model.DefaultPersonaProfile(), "cleaning")

	assert.Equal(t, "friendly", out.Tone)
	assert.Equal(t, "Promote Deep Clean Special, Move-Out Cleaning", out.Goals)
	assert.Equal(t, "#cleaningservice #sparklingclean", out.Hashtags)
}

func TestPacksStableOrderAndRequiredEntries(t *testing.T) {
	packs := Packs()
	require.GreaterOrEqual(t, len(packs), 3)

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
		assert.NotEmpty(t, p.DisplayName, "pack %s needs a display name", p.ID)
		assert.NotEmpty(t, p.Tone, "pack %s needs a tone", p.ID)
		assert.NotEmpty(t, p.Offers, "pack %s needs offers", p.ID)
	}

	assert.Contains(t, ids, "medspa")
	assert.Contains(t, ids, "real_estate")
	assert.Contains(t, ids, "cleaning")

	// Listing order is stable across calls.
	again := Packs()
	assert.Equal(t, packs, again)
}

func TestLookup(t *testing.T) {
	pack, ok := Lookup("medspa")
	require.True(t, ok)
	assert.Equal(t, "medspa", pack.ID)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
