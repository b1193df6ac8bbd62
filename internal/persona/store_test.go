package persona

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi-ai/persona-engine/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	saved := model.PersonaProfile{
		BusinessType: "MedSpa",
		Location:     "Austin, TX",
		Tone:         "witty",
		Goals:        "Promote Botox",
		ContentTypes: []string{"reel", "story"},
		Platforms:    []string{"instagram", "facebook"},
		Hashtags:     "#medspa",
	}

	require.NoError(t, store.Save(ctx, "user-1", saved))

	loaded, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadAbsentKeyReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loaded, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPersonaProfile(), loaded)
}

func TestLoadCorruptDataFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "user-1", model.PersonaProfile{BusinessType: "MedSpa"}))
	store.Corrupt("user-1")

	loaded, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPersonaProfile(), loaded)
}

func TestSaveOverwritesPriorValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "user-1", model.PersonaProfile{BusinessType: "MedSpa", ContentTypes: []string{}, Platforms: []string{}}))
	require.NoError(t, store.Save(ctx, "user-1", model.PersonaProfile{BusinessType: "Dentist", ContentTypes: []string{}, Platforms: []string{}}))

	loaded, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Dentist", loaded.BusinessType)
}

func TestDecodeProfileNormalizesNilSets(t *testing.T) {
	p, ok := decodeProfile([]byte(`{"business_type":"MedSpa"}`))

	assert.True(t, ok)
	assert.Equal(t, "MedSpa", p.BusinessType)
	assert.NotNil(t, p.ContentTypes)
	assert.NotNil(t, p.Platforms)
}

func TestDecodeProfileCorrupt(t *testing.T) {
	p, ok := decodeProfile([]byte("{not json"))

	assert.False(t, ok)
	assert.Equal(t, model.DefaultPersonaProfile(), p)
}
