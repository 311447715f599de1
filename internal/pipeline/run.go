// Package pipeline orchestrates a full assessment: scoring, optional
// evidence enrichment, and narrative generation, assembled into one
// response with timing metadata.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jordanh/pulsecheck/internal/enrich"
	"github.com/jordanh/pulsecheck/internal/llm"
	"github.com/jordanh/pulsecheck/internal/narrative"
	"github.com/jordanh/pulsecheck/internal/scoring"
	"github.com/jordanh/pulsecheck/internal/types"
)

// Version is stamped into every response's metadata.
const Version = "1.0.0"

// DefaultCacheSize bounds the in-memory response cache.
const DefaultCacheSize = 512

// Options holds configuration for building a Runner.
type Options struct {
	Enrich           *enrich.Options
	NarrativeTimeout time.Duration
	CacheSize        int
	Verbose          bool
}

// Runner executes assessments. It is safe for concurrent use.
type Runner struct {
	enricher  *enrich.Enricher
	generator *narrative.Generator
	cache     *lru.Cache[string, *types.AssessmentResponse]
	verbose   bool
}

// NewRunner builds a Runner around the given generative client. A nil
// client is valid: the narrative step then always uses the deterministic
// fallback, so the whole pipeline works offline.
func NewRunner(client llm.Client, opts *Options) (*Runner, error) {
	if opts == nil {
		opts = &Options{}
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *types.AssessmentResponse](size)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}
	return &Runner{
		enricher:  enrich.New(opts.Enrich),
		generator: narrative.NewGenerator(client, opts.NarrativeTimeout),
		cache:     cache,
		verbose:   opts.Verbose,
	}, nil
}

// Assess runs the full pipeline for one request. Validation is the only
// error path: once the selections are accepted, every downstream step
// degrades instead of failing.
func (r *Runner) Assess(ctx context.Context, req *types.AssessmentRequest) (*types.AssessmentResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()

	key := cacheKey(req)
	if cached, ok := r.cache.Get(key); ok {
		resp := *cached
		resp.Metadata.RequestID = requestID
		resp.Metadata.CacheHit = true
		resp.Metadata.TotalDurationMs = time.Since(start).Milliseconds()
		if r.verbose {
			log.Printf("[pipeline] cache hit for %s", key[:12])
		}
		return &resp, nil
	}

	scoreStart := time.Now()
	classification, err := scoring.Score(req.Selections, 0)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}
	scoringMs := time.Since(scoreStart).Milliseconds()

	var nuggets []types.EvidenceNugget
	var enrichmentMs *int64
	if req.Sources.Count() > 0 {
		result := r.enricher.Enrich(ctx, req.Sources)
		ms := result.Duration.Milliseconds()
		enrichmentMs = &ms
		nuggets = result.Nuggets
		if r.verbose {
			log.Printf("[pipeline] enrichment produced %d nuggets in %dms (timed out: %t)",
				len(nuggets), ms, result.TimedOut)
		}

		// Evidence only sharpens confidence; the classification itself
		// stays a pure function of the selections, so a rescore with the
		// same selections cannot change the top archetype.
		if strength := result.Strength(); strength > 0 {
			rescored, err := scoring.Score(req.Selections, strength)
			if err == nil {
				classification = rescored
			} else {
				log.Printf("[pipeline] rescore with evidence failed, keeping initial classification: %v", err)
			}
		}
	}

	panes := r.generator.GeneratePanes(ctx, classification, nuggets, req.DisplayName)

	resp := &types.AssessmentResponse{
		Panes:           *panes,
		Classification:  *classification,
		EvidenceNuggets: nuggets,
		Metadata: types.Metadata{
			RequestID:            requestID,
			TotalDurationMs:      time.Since(start).Milliseconds(),
			ScoringDurationMs:    scoringMs,
			EnrichmentDurationMs: enrichmentMs,
			Version:              Version,
		},
	}
	r.cache.Add(key, resp)
	return resp, nil
}

// cacheKey derives a canonical digest of the request. Presence channels
// are order-insensitive, so they are sorted before hashing.
func cacheKey(req *types.AssessmentRequest) string {
	channels := make([]types.Channel, len(req.Selections.PresenceChannels))
	copy(channels, req.Selections.PresenceChannels)
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	canonical := struct {
		Selections  types.Selections `json:"selections"`
		DisplayName string           `json:"displayName"`
		Sources     types.SourceURLs `json:"sources"`
	}{
		Selections:  req.Selections,
		DisplayName: req.DisplayName,
		Sources:     req.Sources,
	}
	canonical.Selections.PresenceChannels = channels

	data, _ := json.Marshal(canonical)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
