// Package agentpack holds the built-in industry behavior presets and the
// logic for applying one onto a persona profile.
package agentpack

import (
	"strings"

	"github.com/vivi-ai/persona-engine/internal/model"
)

// catalog is the fixed pack mapping. Extend it by adding entries here; there
// is no runtime registration.
var catalog = map[string]model.AgentPack{
	"medspa": {
		ID:              "medspa",
		DisplayName:     "Med Spa",
		Tone:            "friendly",
		Offers:          []string{"Hydrafacial", "Laser Hair Removal", "Botox"},
		ExampleHashtags: []string{"#medspa", "#selfcare", "#glowup"},
	},
	"real_estate": {
		ID:              "real_estate",
		DisplayName:     "Real Estate",
		Tone:            "professional",
		Offers:          []string{"Free Home Valuation", "Buyer Consultation"},
		ExampleHashtags: []string{"#realestate", "#dreamhome", "#justlisted"},
	},
	"cleaning": {
		ID:              "cleaning",
		DisplayName:     "Cleaning Services",
		Tone:            "friendly",
		Offers:          []string{"Deep Clean Special", "Move-Out Cleaning"},
		ExampleHashtags: []string{"#cleaningservice", "#sparklingclean"},
	},
	"dental": {
		ID:              "dental",
		DisplayName:     "Dental Practice",
		Tone:            "professional",
		Offers:          []string{"New Patient Exam", "Teeth Whitening"},
		ExampleHashtags: []string{"#dentist", "#smile", "#dentalcare"},
	},
	"fitness": {
		ID:              "fitness",
		DisplayName:     "Fitness Studio",
		Tone:            "energetic",
		Offers:          []string{"Free First Class", "Personal Training Intro"},
		ExampleHashtags: []string{"#fitness", "#noexcuses", "#trainhard"},
	},
	"restaurant": {
		ID:              "restaurant",
		DisplayName:     "Restaurant",
		Tone:            "witty",
		Offers:          []string{"Happy Hour", "Weekend Brunch"},
		ExampleHashtags: []string{"#foodie", "#eatlocal", "#brunch"},
	},
}

// order fixes the listing order for the selection UI.
var order = []string{"medspa", "real_estate", "cleaning", "dental", "fitness", "restaurant"}

// Packs returns the catalog entries in a stable order.
func Packs() []model.AgentPack {
	packs := make([]model.AgentPack, 0, len(order))
	for _, id := range order {
		packs = append(packs, catalog[id])
	}
	return packs
}

// Lookup returns the pack for id, if present.
func Lookup(id string) (model.AgentPack, bool) {
	pack, ok := catalog[id]
	return pack, ok
}

// Apply overlays the pack identified by packID onto a copy of profile. It
// overwrites tone, derives goals from the pack's offers, and replaces
// hashtags with the pack's example hashtags; every other field is untouched.
// An unknown packID is a no-op returning the input unchanged, so pack
// installation is idempotent and safe to retry. Apply never mutates its
// input and never fails.
func Apply(profile model.PersonaProfile, packID string) model.PersonaProfile {
	pack, ok := catalog[packID]
	if !ok {
		return profile
	}

	out := profile.Clone()
	out.Tone = pack.Tone
	out.Goals = "Promote " + strings.Join(pack.Offers, ", ")
	out.Hashtags = strings.Join(pack.ExampleHashtags, " ")
	return out
}
