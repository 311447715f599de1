package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

func sampleClassification() *types.Classification {
	c := &types.Classification{
		TopStage:          taxonomy.StageOperator,
		TopArchetype:      taxonomy.ArchetypeReactiveSoloOperator,
		RunnerUpArchetype: taxonomy.ArchetypePhoneTetheredOwner,
		Confidence:        85,
		Flags:             []types.Flag{"no_system", "solo_operator"},
	}
	c.ArchetypeProbabilities[0] = 0.85
	c.ArchetypeProbabilities[3] = 0.10
	c.StageProbabilities[0] = 0.95
	return c
}

func TestPrintClassification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(sampleClassification())
	output := buf.String()

	assert.Contains(t, output, "CLASSIFICATION")
	assert.Contains(t, output, "operator")
	assert.Contains(t, output, "Reactive Solo Operator")
	assert.Contains(t, output, "85/100")
	assert.Contains(t, output, "solo_operator")
}

func TestPrintClassification_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(nil)
	assert.Empty(t, buf.String())
}

func TestPrintNuggets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNuggets([]types.EvidenceNugget{
		{Source: types.SourceListing, Snippet: "4.8 stars across 132 reviews", Relevance: types.RelevanceHigh},
	})
	output := buf.String()

	assert.Contains(t, output, "EVIDENCE")
	assert.Contains(t, output, "listing")
	assert.Contains(t, output, "4.8 stars")
}

func TestPrintNuggets_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNuggets(nil)
	assert.Empty(t, buf.String())
}

func TestPrintPanes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPanes(&types.Panes{
		WhatsHappening: []string{"Everything runs through you"},
		WhatItCosts:    []string{"Missed calls become missed jobs"},
		WhatToFixFirst: []string{"Move the schedule to one shared calendar"},
		CorrectionPrompt: &types.CorrectionPrompt{
			Question: "Which of these sounds more like your week?",
			OptionA:  "Option A text",
			OptionB:  "Option B text",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ASSESSMENT")
	assert.Contains(t, output, "Everything runs through you")
	assert.Contains(t, output, "Missed calls")
	assert.Contains(t, output, "A) Option A text")
}
