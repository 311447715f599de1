package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanh/pulsecheck/internal/enrich"
	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

func reactiveSoloRequest() *types.AssessmentRequest {
	return &types.AssessmentRequest{
		Selections: types.Selections{
			PresenceChannels: []types.Channel{types.ChannelWordOfMouth},
			TeamShape:        types.TeamSoloOrOneHelper,
			Scheduling:       types.SchedulingHeadNotebook,
			Invoicing:        types.InvoicingPaperVerbal,
			CallHandling:     types.CallsPersonalPhone,
			BusinessFeeling:  types.FeelingReactiveAllTheTime,
		},
	}
}

func newTestRunner(t *testing.T, opts *Options) *Runner {
	t.Helper()
	r, err := NewRunner(nil, opts)
	require.NoError(t, err)
	return r
}

func TestAssess_NoSources(t *testing.T) {
	r := newTestRunner(t, nil)

	resp, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)

	assert.Equal(t, taxonomy.ArchetypeReactiveSoloOperator, resp.Classification.TopArchetype)
	assert.Equal(t, taxonomy.StageOperator, resp.Classification.TopStage)
	assert.NotEmpty(t, resp.Panes.WhatsHappening)
	assert.NotEmpty(t, resp.Panes.WhatItCosts)
	assert.NotEmpty(t, resp.Panes.WhatToFixFirst)
	assert.Empty(t, resp.EvidenceNuggets)
	assert.Nil(t, resp.Metadata.EnrichmentDurationMs)
	assert.False(t, resp.Metadata.CacheHit)
	assert.Equal(t, Version, resp.Metadata.Version)
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.GreaterOrEqual(t, resp.Metadata.TotalDurationMs, resp.Metadata.ScoringDurationMs)
}

func TestAssess_InvalidRequest(t *testing.T) {
	r := newTestRunner(t, nil)

	req := reactiveSoloRequest()
	req.Selections.PresenceChannels = nil

	resp, err := r.Assess(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestAssess_WithSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head><title>Rosie's Plumbing</title>
			<meta name="description" content="Family plumbing serving the east side since 2009.">
			</head><body>ok</body></html>`))
	}))
	defer srv.Close()

	r := newTestRunner(t, nil)

	baseline, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)

	req := reactiveSoloRequest()
	req.Sources = types.SourceURLs{Website: srv.URL}

	resp, err := r.Assess(context.Background(), req)
	require.NoError(t, err)

	require.NotEmpty(t, resp.EvidenceNuggets)
	require.NotNil(t, resp.Metadata.EnrichmentDurationMs)
	assert.GreaterOrEqual(t, *resp.Metadata.EnrichmentDurationMs, int64(0))

	// Evidence sharpens confidence but never flips the classification.
	assert.Equal(t, baseline.Classification.TopArchetype, resp.Classification.TopArchetype)
	assert.Greater(t, resp.Classification.Confidence, baseline.Classification.Confidence)
}

func TestAssess_UnreachableSourceStillResolves(t *testing.T) {
	r := newTestRunner(t, &Options{
		Enrich: &enrich.Options{
			BatchTimeout:  500 * time.Millisecond,
			SourceTimeout: 200 * time.Millisecond,
		},
	})

	req := reactiveSoloRequest()
	req.Sources = types.SourceURLs{Website: "http://127.0.0.1:1/nothing-here"}

	resp, err := r.Assess(context.Background(), req)
	require.NoError(t, err)

	// A failed fetch still acknowledges the presence with a low-relevance nugget.
	require.Len(t, resp.EvidenceNuggets, 1)
	assert.Equal(t, types.RelevanceLow, resp.EvidenceNuggets[0].Relevance)
}

func TestAssess_CacheHit(t *testing.T) {
	r := newTestRunner(t, nil)

	first, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)

	second, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.Panes, second.Panes)
	assert.NotEqual(t, first.Metadata.RequestID, second.Metadata.RequestID)

	// The cached entry itself stays marked as a miss, so every later hit
	// reports CacheHit without compounding.
	third, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)
	assert.True(t, third.Metadata.CacheHit)
}

func TestAssess_CacheDistinguishesRequests(t *testing.T) {
	r := newTestRunner(t, nil)

	_, err := r.Assess(context.Background(), reactiveSoloRequest())
	require.NoError(t, err)

	req := reactiveSoloRequest()
	req.DisplayName = "Rosie's"
	resp, err := r.Assess(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Metadata.CacheHit)
}

func TestCacheKey_ChannelOrderInsensitive(t *testing.T) {
	a := reactiveSoloRequest()
	a.Selections.PresenceChannels = []types.Channel{types.ChannelWebsite, types.ChannelWordOfMouth}

	b := reactiveSoloRequest()
	b.Selections.PresenceChannels = []types.Channel{types.ChannelWordOfMouth, types.ChannelWebsite}

	assert.Equal(t, cacheKey(a), cacheKey(b))
	assert.NotEqual(t, cacheKey(a), cacheKey(reactiveSoloRequest()))
}

func TestCacheKey_DoesNotMutateRequest(t *testing.T) {
	req := reactiveSoloRequest()
	req.Selections.PresenceChannels = []types.Channel{types.ChannelWebsite, types.ChannelWordOfMouth}

	cacheKey(req)

	assert.Equal(t,
		[]types.Channel{types.ChannelWebsite, types.ChannelWordOfMouth},
		req.Selections.PresenceChannels)
}
