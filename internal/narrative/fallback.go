package narrative

import (
	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

// How much of the top profile the fallback surfaces.
const (
	fallbackSignals = 3
	fallbackCosts   = 2
	fallbackFixes   = 1
)

// FallbackPanes deterministically builds panes from the top archetype's
// canonical profile. It is a first-class output path, not an error handler:
// the generative service is an external dependency this package must never
// depend on for correctness.
func FallbackPanes(c *types.Classification) *types.Panes {
	profile := taxonomy.ProfileFor(c.TopArchetype)

	panes := &types.Panes{
		WhatsHappening: firstN(profile.Signals, fallbackSignals),
		WhatItCosts:    firstN(profile.Costs, fallbackCosts),
		WhatToFixFirst: firstN(profile.Fixes, fallbackFixes),
	}

	if c.Confidence < types.ConfidenceCorrectionThreshold {
		panes.CorrectionPrompt = buildCorrectionPrompt(c)
	}

	return panes
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
