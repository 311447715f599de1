package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jordanh/pulsecheck/internal/config"
	"github.com/jordanh/pulsecheck/internal/enrich"
	"github.com/jordanh/pulsecheck/internal/fetch"
	"github.com/jordanh/pulsecheck/internal/llm"
	"github.com/jordanh/pulsecheck/internal/pipeline"
)

// buildRunner assembles a pipeline runner from merged configuration. The
// returned cleanup closes the generative client; it is safe to call when
// no client was created.
func buildRunner(ctx context.Context, cfg config.Config) (*pipeline.Runner, func(), error) {
	var client llm.Client
	cleanup := func() {}

	if cfg.APIKey != "" {
		c, err := llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create generative client: %w", err)
		}
		client = c
		cleanup = func() { _ = c.Close() }
	} else if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "No API key configured; narratives will use the deterministic fallback")
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser

	enrichOpts := enrich.DefaultOptions()
	enrichOpts.Fetch = fetchOpts
	if cfg.EnrichmentTimeoutMs > 0 {
		enrichOpts.BatchTimeout = time.Duration(cfg.EnrichmentTimeoutMs) * time.Millisecond
	}
	if cfg.SourceTimeoutMs > 0 {
		enrichOpts.SourceTimeout = time.Duration(cfg.SourceTimeoutMs) * time.Millisecond
	}

	runner, err := pipeline.NewRunner(client, &pipeline.Options{
		Enrich:           enrichOpts,
		NarrativeTimeout: time.Duration(cfg.NarrativeTimeoutMs) * time.Millisecond,
		CacheSize:        cfg.CacheSize,
		Verbose:          cfg.Verbose,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return runner, cleanup, nil
}
