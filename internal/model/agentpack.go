package model

// AgentPack is an immutable industry behavior preset. Packs are defined in
// the catalog at process start and never mutated.
type AgentPack struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"display_name"`
	Tone            string   `json:"tone"`
	Offers          []string `json:"offers"`
	ExampleHashtags []string `json:"example_hashtags"`
}
