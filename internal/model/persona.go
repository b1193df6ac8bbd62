// Package model defines data structures for the persona engine.
package model

// DefaultTone is used whenever a profile has no tone configured.
const DefaultTone = "friendly"

// PersonaProfile is the durable configuration describing one business. It is
// always well-formed: every field defaults to its zero value, so a profile
// can be used before the first edit.
type PersonaProfile struct {
	BusinessType string   `json:"business_type"`
	Location     string   `json:"location"`
	Audience     string   `json:"audience"`
	Tone         string   `json:"tone"`
	Goals        string   `json:"goals"`
	Services     string   `json:"services"`
	Competitors  string   `json:"competitors"`
	ContentTypes []string `json:"content_types"`
	Frequency    string   `json:"frequency"`
	Platforms    []string `json:"platforms"`
	Hashtags     string   `json:"hashtags"`
	Objections   string   `json:"objections"`
	TopOffers    string   `json:"top_offers"`
}

// DefaultPersonaProfile returns the profile used before the first edit and
// whenever stored data is absent or unreadable.
func DefaultPersonaProfile() PersonaProfile {
	return PersonaProfile{
		ContentTypes: []string{},
		Platforms:    []string{},
	}
}

// ToneOrDefault returns the configured tone, or DefaultTone when unset.
func (p PersonaProfile) ToneOrDefault() string {
	if p.Tone == "" {
		return DefaultTone
	}
	return p.Tone
}

// Clone returns a deep copy so callers can mutate freely.
func (p PersonaProfile) Clone() PersonaProfile {
	cp := p
	if p.ContentTypes != nil {
		cp.ContentTypes = make([]string, len(p.ContentTypes))
		copy(cp.ContentTypes, p.ContentTypes)
	}
	if p.Platforms != nil {
		cp.Platforms = make([]string, len(p.Platforms))
		copy(cp.Platforms, p.Platforms)
	}
	return cp
}
