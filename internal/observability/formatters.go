// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxProbabilitiesToShow is the number of archetype probabilities to display
	maxProbabilitiesToShow = 4
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs a human-readable summary of the classification:
// top stage and archetype, confidence, the leading probabilities, and flags.
func (p *Printer) PrintClassification(c *types.Classification) {
	if c == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Stage:      %s\n", c.TopStage))
	sb.WriteString(fmt.Sprintf("Archetype:  %s\n", taxonomy.ProfileFor(c.TopArchetype).DisplayName))
	sb.WriteString(fmt.Sprintf("Runner-up:  %s\n", taxonomy.ProfileFor(c.RunnerUpArchetype).DisplayName))
	sb.WriteString(fmt.Sprintf("Confidence: %d/100\n", c.Confidence))
	sb.WriteString("\n")

	sb.WriteString("Archetype probabilities:\n")
	type ranked struct {
		archetype taxonomy.Archetype
		prob      float64
	}
	var probs []ranked
	for i, a := range taxonomy.Archetypes() {
		probs = append(probs, ranked{a, c.ArchetypeProbabilities[i]})
	}
	for i := 0; i < len(probs); i++ {
		for j := i + 1; j < len(probs); j++ {
			if probs[j].prob > probs[i].prob {
				probs[i], probs[j] = probs[j], probs[i]
			}
		}
	}
	for i := 0; i < maxProbabilitiesToShow && i < len(probs); i++ {
		sb.WriteString(fmt.Sprintf("  %-28s %5.1f%%\n", probs[i].archetype, probs[i].prob*100))
	}

	if len(c.Flags) > 0 {
		sb.WriteString("\n")
		flags := make([]string, len(c.Flags))
		for i, f := range c.Flags {
			flags[i] = string(f)
		}
		sb.WriteString(fmt.Sprintf("Flags: %s\n", strings.Join(flags, ", ")))
	}

	p.printBox("CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNuggets outputs the evidence gathered during enrichment.
func (p *Printer) PrintNuggets(nuggets []types.EvidenceNugget) {
	if len(nuggets) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Evidence gathered: %d\n\n", len(nuggets)))

	for i, n := range nuggets {
		sb.WriteString(fmt.Sprintf("#%d  [%s] %s relevance\n", i+1, n.Source, n.Relevance))
		snippet := n.Snippet
		if len(snippet) > 48 {
			snippet = snippet[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", snippet))
	}

	p.printBox("EVIDENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPanes outputs the three narrative panes and any correction prompt.
func (p *Printer) PrintPanes(panes *types.Panes) {
	if panes == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("What's happening:\n")
	for _, item := range panes.WhatsHappening {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	sb.WriteString("\nWhat it costs:\n")
	for _, item := range panes.WhatItCosts {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	sb.WriteString("\nWhat to fix first:\n")
	for _, item := range panes.WhatToFixFirst {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}

	if panes.CorrectionPrompt != nil {
		sb.WriteString(fmt.Sprintf("\n%s\n", panes.CorrectionPrompt.Question))
		sb.WriteString(fmt.Sprintf("  A) %s\n", panes.CorrectionPrompt.OptionA))
		sb.WriteString(fmt.Sprintf("  B) %s\n", panes.CorrectionPrompt.OptionB))
	}

	p.printBox("ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}
