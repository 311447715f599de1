// Package enrich implements best-effort evidence extraction from optional
// external sources. Up to three independent extractions run in parallel,
// raced against a single wall-clock deadline for the whole batch.
//
// Timeout policy: attempts deliver into a buffered channel and the collector
// drains whatever arrived strictly before the deadline fired, so a slow
// source never discards nuggets that faster sources already produced. The
// batch is still reported as timed out.
//
// Enrich never returns an error. Every internal failure degrades to a weaker
// nugget, or to no nugget, and is logged.
package enrich

import (
	"context"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jordanh/pulsecheck/internal/fetch"
	"github.com/jordanh/pulsecheck/internal/types"
)

// DefaultBatchTimeout is the hard wall-clock cap for one enrichment batch.
const DefaultBatchTimeout = 5 * time.Second

// DefaultSourceTimeout bounds each individual source extraction inside the
// batch window.
const DefaultSourceTimeout = 2500 * time.Millisecond

// Relevance tier weights used when aggregating nuggets into a single
// evidence-strength scalar for the scorer.
const (
	strengthHigh   = 1.0
	strengthMedium = 0.6
	strengthLow    = 0.3
)

// Result is what one enrichment batch produced.
type Result struct {
	Nuggets  []types.EvidenceNugget
	Duration time.Duration
	TimedOut bool
}

// Strength aggregates the nuggets into an evidence-strength scalar in [0, 1]
// for the scorer's confidence term. No nuggets means zero strength.
func (r *Result) Strength() float64 {
	if len(r.Nuggets) == 0 {
		return 0
	}
	total := 0.0
	for _, n := range r.Nuggets {
		switch n.Relevance {
		case types.RelevanceHigh:
			total += strengthHigh
		case types.RelevanceMedium:
			total += strengthMedium
		default:
			total += strengthLow
		}
	}
	strength := total / float64(len(r.Nuggets))
	if strength > 1 {
		strength = 1
	}
	return strength
}

// Options configures an Enricher.
type Options struct {
	BatchTimeout  time.Duration
	SourceTimeout time.Duration
	Fetch         *fetch.Options
}

// DefaultOptions returns the production enrichment configuration.
func DefaultOptions() *Options {
	return &Options{
		BatchTimeout:  DefaultBatchTimeout,
		SourceTimeout: DefaultSourceTimeout,
		Fetch:         fetch.DefaultOptions(),
	}
}

// Enricher runs evidence extraction batches.
type Enricher struct {
	batchTimeout  time.Duration
	sourceTimeout time.Duration
	fetchOpts     *fetch.Options
}

// New creates an Enricher. nil opts use defaults.
func New(opts *Options) *Enricher {
	if opts == nil {
		opts = DefaultOptions()
	}
	e := &Enricher{
		batchTimeout:  opts.BatchTimeout,
		sourceTimeout: opts.SourceTimeout,
		fetchOpts:     opts.Fetch,
	}
	if e.batchTimeout <= 0 {
		e.batchTimeout = DefaultBatchTimeout
	}
	if e.sourceTimeout <= 0 {
		e.sourceTimeout = DefaultSourceTimeout
	}
	if e.fetchOpts == nil {
		e.fetchOpts = fetch.DefaultOptions()
	}
	return e
}

type attempt struct {
	kind types.SourceKind
	url  string
}

// Enrich extracts evidence from whichever source URLs were provided. It
// resolves within the batch timeout regardless of how slow individual
// sources are, and never returns an error.
func (e *Enricher) Enrich(ctx context.Context, sources types.SourceURLs) *Result {
	start := time.Now()
	res := &Result{}

	var attempts []attempt
	if sources.Website != "" {
		attempts = append(attempts, attempt{types.SourceWebsite, sources.Website})
	}
	if sources.Listing != "" {
		attempts = append(attempts, attempt{types.SourceListing, sources.Listing})
	}
	if sources.Social != "" {
		attempts = append(attempts, attempt{types.SourceSocial, sources.Social})
	}

	if len(attempts) == 0 {
		res.Duration = time.Since(start)
		return res
	}

	// Buffered so no attempt ever blocks on delivery; a timed-out batch
	// leaves stragglers free to finish and be garbage collected.
	delivered := make(chan types.EvidenceNugget, len(attempts))

	g := new(errgroup.Group)
	for _, at := range attempts {
		at := at
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, e.sourceTimeout)
			defer cancel()
			if nugget := e.extract(sctx, at.kind, at.url); nugget != nil {
				delivered <- *nugget
			}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait() // attempts never return errors; they degrade internally
		close(done)
	}()

	timer := time.NewTimer(e.batchTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		res.TimedOut = true
		log.Printf("[enrich] batch deadline (%v) passed with %d/%d sources settled",
			e.batchTimeout, len(delivered), len(attempts))
	case <-ctx.Done():
		res.TimedOut = true
	}

	// Collect whatever completed before the deadline.
drain:
	for {
		select {
		case n := <-delivered:
			res.Nuggets = append(res.Nuggets, n)
		default:
			break drain
		}
	}

	// Goroutine completion order is nondeterministic; report in canonical
	// source order.
	sort.Slice(res.Nuggets, func(i, j int) bool {
		return kindRank(res.Nuggets[i].Source) < kindRank(res.Nuggets[j].Source)
	})

	res.Duration = time.Since(start)
	return res
}

func kindRank(k types.SourceKind) int {
	switch k {
	case types.SourceWebsite:
		return 0
	case types.SourceListing:
		return 1
	case types.SourceSocial:
		return 2
	}
	return 3
}
