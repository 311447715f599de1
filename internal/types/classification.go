package types

import (
	"github.com/jordanh/pulsecheck/internal/taxonomy"
)

// Flag is a short behavioral marker contributed by individual answer values
// (e.g. "solo_operator", "no_system"). Flags are de-duplicated and sorted.
type Flag string

// Classification is the full output of the signal scorer for one request.
// Computed fresh per request, stateless, never persisted.
type Classification struct {
	// Raw accumulated scores, indexed by canonical taxonomy order.
	StageScores     [taxonomy.StageCount]float64     `json:"stageScores"`
	ArchetypeScores [taxonomy.ArchetypeCount]float64 `json:"archetypeScores"`

	// Softmax-normalized distributions; each sums to 1.
	StageProbabilities     [taxonomy.StageCount]float64     `json:"stageProbabilities"`
	ArchetypeProbabilities [taxonomy.ArchetypeCount]float64 `json:"archetypeProbabilities"`

	TopStage          taxonomy.Stage     `json:"topStage"`
	TopArchetype      taxonomy.Archetype `json:"topArchetype"`
	RunnerUpArchetype taxonomy.Archetype `json:"runnerUpArchetype"`

	// Confidence is clamped to [15, 95].
	Confidence int `json:"confidence"`

	Flags []Flag `json:"flags"`
}

// HasFlag reports whether f is among the classification's flags.
func (c *Classification) HasFlag(f Flag) bool {
	for _, have := range c.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// ProbabilityOf returns the normalized probability of an archetype, or 0 for
// an unknown one.
func (c *Classification) ProbabilityOf(a taxonomy.Archetype) float64 {
	for i, candidate := range taxonomy.Archetypes() {
		if candidate == a {
			return c.ArchetypeProbabilities[i]
		}
	}
	return 0
}
