package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStages_CanonicalOrder(t *testing.T) {
	stages := Stages()
	require.Len(t, stages, StageCount)
	assert.Equal(t, StageOperator, stages[0])
	assert.Equal(t, StageTransitional, stages[1])
	assert.Equal(t, StageManaged, stages[2])
}

func TestArchetypes_CountAndUniqueness(t *testing.T) {
	archetypes := Archetypes()
	require.Len(t, archetypes, ArchetypeCount)

	seen := make(map[Archetype]bool)
	for _, a := range archetypes {
		assert.False(t, seen[a], "duplicate archetype %s", a)
		seen[a] = true
	}
}

func TestProfileFor_EveryArchetypeHasUsableProfile(t *testing.T) {
	// The fallback path takes 3 signals, 2 costs, and 1 fix from a profile,
	// so every profile must carry at least that much text.
	for _, a := range Archetypes() {
		p := ProfileFor(a)
		assert.Equal(t, a, p.Archetype)
		assert.NotEmpty(t, p.DisplayName, "%s missing display name", a)
		assert.GreaterOrEqual(t, len(p.Signals), 3, "%s needs >=3 signals", a)
		assert.GreaterOrEqual(t, len(p.Costs), 2, "%s needs >=2 costs", a)
		assert.GreaterOrEqual(t, len(p.Fixes), 1, "%s needs >=1 fix", a)
	}
}

func TestProfileFor_UnknownArchetypePanics(t *testing.T) {
	assert.Panics(t, func() {
		ProfileFor(Archetype("definitely_not_real"))
	})
}

func TestAllProfiles_MatchesCanonicalOrder(t *testing.T) {
	all := AllProfiles()
	require.Len(t, all, ArchetypeCount)
	for i, a := range Archetypes() {
		assert.Equal(t, a, all[i].Archetype)
	}
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StageOperator))
	assert.True(t, IsValidStage(StageManaged))
	assert.False(t, IsValidStage(Stage("imperial")))
}

func TestIsValidArchetype(t *testing.T) {
	assert.True(t, IsValidArchetype(ArchetypeReactiveSoloOperator))
	assert.False(t, IsValidArchetype(Archetype("nope")))
}
