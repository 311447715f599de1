// Package narrative turns a classification plus optional evidence into the
// three recognition panes shown to the user. It is a two-path state machine
// with one guaranteed-shape exit: a generative primary path and a
// deterministic per-archetype fallback that activates whenever the primary
// path errors, times out, or returns malformed output. GeneratePanes never
// fails.
package narrative

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jordanh/pulsecheck/internal/llm"
	"github.com/jordanh/pulsecheck/internal/prompts"
	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

// DefaultTimeout bounds the single generative call. On expiry the fallback
// path runs; there is no retry.
const DefaultTimeout = 15 * time.Second

// Generator produces panes from classifications.
type Generator struct {
	client  llm.Client
	timeout time.Duration
}

// NewGenerator creates a Generator. A nil client is valid and routes every
// request straight to the deterministic fallback.
func NewGenerator(client llm.Client, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{client: client, timeout: timeout}
}

// GeneratePanes always returns a structurally valid Panes value. The
// correction prompt is present exactly when confidence is below the
// threshold, on both paths.
func (g *Generator) GeneratePanes(ctx context.Context, c *types.Classification, nuggets []types.EvidenceNugget, displayName string) *types.Panes {
	if g.client == nil {
		return FallbackPanes(c)
	}

	prompt := buildPanesPrompt(c, nuggets, displayName)

	gctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateJSON(gctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[narrative] generation failed, using fallback: %v", err)
		return FallbackPanes(c)
	}

	panes, err := parsePanes(raw)
	if err != nil {
		log.Printf("[narrative] invalid response, using fallback: %v", err)
		return FallbackPanes(c)
	}

	normalize(panes, c)
	return panes
}

// normalize enforces the pane invariants on a parsed generative response:
// size caps by truncation, and the correction prompt present iff confidence
// is low, synthesized from the profiles when the model omitted it.
func normalize(p *types.Panes, c *types.Classification) {
	p.Truncate()

	if c.Confidence < types.ConfidenceCorrectionThreshold {
		if p.CorrectionPrompt == nil {
			p.CorrectionPrompt = buildCorrectionPrompt(c)
		}
	} else {
		p.CorrectionPrompt = nil
	}
}

// buildCorrectionPrompt constructs the two-option disambiguation question
// from the top and runner-up profiles' first recognition signals.
func buildCorrectionPrompt(c *types.Classification) *types.CorrectionPrompt {
	top := taxonomy.ProfileFor(c.TopArchetype)
	runnerUp := taxonomy.ProfileFor(c.RunnerUpArchetype)
	return &types.CorrectionPrompt{
		Question: "Which of these sounds more like your week?",
		OptionA:  top.Signals[0],
		OptionB:  runnerUp.Signals[0],
	}
}

func buildPanesPrompt(c *types.Classification, nuggets []types.EvidenceNugget, displayName string) string {
	top := taxonomy.ProfileFor(c.TopArchetype)
	runnerUp := taxonomy.ProfileFor(c.RunnerUpArchetype)

	displayNameLine := ""
	if displayName != "" {
		displayNameLine = fmt.Sprintf(" The business is called %q.", displayName)
	}

	evidenceSection := ""
	if len(nuggets) > 0 {
		var lines []string
		for _, n := range nuggets {
			lines = append(lines, fmt.Sprintf("  - [%s, %s relevance] %s", n.Source, n.Relevance, n.Snippet))
		}
		evidenceSection = prompts.Format(prompts.MustGet("narrative.json", "evidence-section"), map[string]string{
			"Nuggets": strings.Join(lines, "\n"),
		})
	}

	correctionField := ""
	if c.Confidence < types.ConfidenceCorrectionThreshold {
		correctionField = prompts.MustGet("narrative.json", "correction-field")
	}

	template := prompts.MustGet("narrative.json", "generate-panes")
	return prompts.Format(template, map[string]string{
		"DisplayNameLine":       displayNameLine,
		"Stage":                 string(c.TopStage),
		"TopArchetype":          string(c.TopArchetype),
		"TopArchetypeName":      top.DisplayName,
		"TopSignals":            bulletList(top.Signals),
		"TopCosts":              bulletList(top.Costs),
		"TopFixes":              bulletList(top.Fixes),
		"RunnerUpArchetype":     string(c.RunnerUpArchetype),
		"RunnerUpArchetypeName": runnerUp.DisplayName,
		"RunnerUpSignals":       bulletList(runnerUp.Signals),
		"Confidence":            fmt.Sprintf("%d", c.Confidence),
		"EvidenceSection":       evidenceSection,
		"CorrectionField":       correctionField,
	})
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("  - ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
