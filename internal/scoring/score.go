// Package scoring implements the deterministic multi-factor signal scorer.
// It is pure logic: the same selections and evidence strength always produce
// a bit-identical classification, with no I/O and no state across calls.
package scoring

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

// softBudget is the soft wall-clock target for one scoring pass. Exceeding it
// is logged as a warning and never fails the request.
const softBudget = 50 * time.Millisecond

// Confidence bounds. The clamp prevents both false certainty and false
// hopelessness in the narrative.
const (
	minConfidence = 15
	maxConfidence = 95
)

// evidenceConfidenceWeight scales how much external corroboration can raise
// confidence independently of the answers themselves.
const evidenceConfidenceWeight = 30.0

// Score converts a validated selection set into a full classification.
// evidenceStrength must be in [0, 1]; pass 0 when no external evidence is
// available. Input validation happens before this component, so a malformed
// call is a caller bug and returns an error rather than a degraded result.
func Score(sel types.Selections, evidenceStrength float64) (*types.Classification, error) {
	start := time.Now()

	if evidenceStrength < 0 || evidenceStrength > 1 {
		return nil, fmt.Errorf("evidence strength %v outside [0,1]", evidenceStrength)
	}
	if len(sel.PresenceChannels) == 0 {
		return nil, fmt.Errorf("selections not validated: empty presence channels")
	}

	var acc accumulator

	// The multi-select accumulates additively across chosen channels.
	for _, ch := range sel.PresenceChannels {
		entry, ok := channelWeights[ch]
		if !ok {
			return nil, fmt.Errorf("selections not validated: unknown channel %q", ch)
		}
		acc.apply(entry, 1.0)
	}

	if err := applySingle(&acc, teamShapeWeights, sel.TeamShape, 1.0); err != nil {
		return nil, err
	}
	if err := applySingle(&acc, schedulingWeights, sel.Scheduling, 1.0); err != nil {
		return nil, err
	}
	if err := applySingle(&acc, invoicingWeights, sel.Invoicing, 1.0); err != nil {
		return nil, err
	}
	if err := applySingle(&acc, callHandlingWeights, sel.CallHandling, 1.0); err != nil {
		return nil, err
	}
	if err := applySingle(&acc, feelingWeights, sel.BusinessFeeling, feelingWeight); err != nil {
		return nil, err
	}

	c := &types.Classification{
		StageScores:     acc.stages,
		ArchetypeScores: acc.archetypes,
	}

	// Stage and archetype dimensions are normalized independently; they are
	// not outcomes of one joint distribution.
	c.StageProbabilities = softmax3(acc.stages)
	c.ArchetypeProbabilities = softmax8(acc.archetypes)

	stages := taxonomy.Stages()
	c.TopStage = stages[argMax(c.StageProbabilities[:])]

	topIdx, runnerIdx := topTwo(c.ArchetypeProbabilities[:])
	archetypes := taxonomy.Archetypes()
	c.TopArchetype = archetypes[topIdx]
	c.RunnerUpArchetype = archetypes[runnerIdx]

	separation := c.ArchetypeProbabilities[topIdx] - c.ArchetypeProbabilities[runnerIdx]
	raw := separation*100 + evidenceStrength*evidenceConfidenceWeight
	c.Confidence = clampConfidence(int(math.Round(raw)))

	c.Flags = acc.sortedFlags()

	if elapsed := time.Since(start); elapsed > softBudget {
		log.Printf("[scoring] budget warning: scoring took %v (target %v)", elapsed, softBudget)
	}

	return c, nil
}

// accumulator gathers weighted contributions before normalization.
type accumulator struct {
	stages     [taxonomy.StageCount]float64
	archetypes [taxonomy.ArchetypeCount]float64
	flags      map[types.Flag]struct{}
}

func (a *accumulator) apply(entry WeightEntry, mult float64) {
	for i := range entry.Stages {
		a.stages[i] += entry.Stages[i] * mult
	}
	for arch, delta := range entry.Archetypes {
		a.archetypes[archetypeIndex(arch)] += delta * mult
	}
	for _, f := range entry.Flags {
		if a.flags == nil {
			a.flags = make(map[types.Flag]struct{})
		}
		a.flags[f] = struct{}{}
	}
}

func applySingle[K comparable](a *accumulator, table map[K]WeightEntry, key K, mult float64) error {
	entry, ok := table[key]
	if !ok {
		return fmt.Errorf("selections not validated: unknown value %v", key)
	}
	a.apply(entry, mult)
	return nil
}

func (a *accumulator) sortedFlags() []types.Flag {
	if len(a.flags) == 0 {
		return nil
	}
	out := make([]types.Flag, 0, len(a.flags))
	for f := range a.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// archetypeIndex maps an archetype to its canonical position.
func archetypeIndex(a taxonomy.Archetype) int {
	for i, candidate := range taxonomy.Archetypes() {
		if candidate == a {
			return i
		}
	}
	panic("scoring: weight table references unknown archetype " + string(a))
}

func softmax3(scores [3]float64) [3]float64 {
	var out [3]float64
	softmaxInto(scores[:], out[:])
	return out
}

func softmax8(scores [8]float64) [8]float64 {
	var out [8]float64
	softmaxInto(scores[:], out[:])
	return out
}

// softmaxInto writes exp(s_i)/sum(exp(s_j)) into dst. Scores are shifted by
// the maximum first so large accumulations cannot overflow exp.
func softmaxInto(scores, dst []float64) {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	sum := 0.0
	for i, s := range scores {
		e := math.Exp(s - maxScore)
		dst[i] = e
		sum += e
	}
	for i := range dst {
		dst[i] /= sum
	}
}

func argMax(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}

// topTwo returns the indices of the highest and second-highest values.
// Ties are broken by lower index, i.e. enumeration order.
func topTwo(vals []float64) (top, runner int) {
	top, runner = 0, 1
	if vals[runner] > vals[top] {
		top, runner = runner, top
	}
	for i := 2; i < len(vals); i++ {
		switch {
		case vals[i] > vals[top]:
			runner = top
			top = i
		case vals[i] > vals[runner]:
			runner = i
		}
	}
	return top, runner
}

func clampConfidence(v int) int {
	if v < minConfidence {
		return minConfidence
	}
	if v > maxConfidence {
		return maxConfidence
	}
	return v
}
