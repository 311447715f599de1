// Package taxonomy defines the fixed stage and archetype model used by the
// assessment. Three coarse operating stages and eight behavioral archetypes;
// the set never changes at runtime, so everything here is static data.
package taxonomy

// Stage is a coarse operating maturity level.
type Stage string

// The three operating stages, ordered from least to most systematized.
const (
	StageOperator     Stage = "operator"
	StageTransitional Stage = "transitional"
	StageManaged      Stage = "managed"
)

// Stages returns all stages in canonical order. The order is load-bearing:
// stage score vectors are indexed by position in this slice.
func Stages() []Stage {
	return []Stage{StageOperator, StageTransitional, StageManaged}
}

// StageCount is the number of operating stages.
const StageCount = 3

// Archetype is a fine-grained behavioral pattern describing how a business
// currently runs.
type Archetype string

// The eight behavioral archetypes.
const (
	ArchetypeReactiveSoloOperator   Archetype = "reactive_solo_operator"
	ArchetypeOverbookedJuggler      Archetype = "overbooked_juggler"
	ArchetypePaperTrailOperator     Archetype = "paper_trail_operator"
	ArchetypePhoneTetheredOwner     Archetype = "phone_tethered_owner"
	ArchetypeInvisibleLocalBusiness Archetype = "invisible_local_business"
	ArchetypeGrowingButLeaking      Archetype = "growing_but_leaking"
	ArchetypePatchworkToolWrangler  Archetype = "patchwork_tool_wrangler"
	ArchetypeSystemsLedOperator     Archetype = "systems_led_operator"
)

// Archetypes returns all archetypes in canonical order. Runner-up ties are
// broken by position in this slice.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeReactiveSoloOperator,
		ArchetypeOverbookedJuggler,
		ArchetypePaperTrailOperator,
		ArchetypePhoneTetheredOwner,
		ArchetypeInvisibleLocalBusiness,
		ArchetypeGrowingButLeaking,
		ArchetypePatchworkToolWrangler,
		ArchetypeSystemsLedOperator,
	}
}

// ArchetypeCount is the number of behavioral archetypes.
const ArchetypeCount = 8

// IsValidStage reports whether s is a known stage.
func IsValidStage(s Stage) bool {
	switch s {
	case StageOperator, StageTransitional, StageManaged:
		return true
	}
	return false
}

// IsValidArchetype reports whether a is a known archetype.
func IsValidArchetype(a Archetype) bool {
	_, ok := profiles[a]
	return ok
}
