package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanh/pulsecheck/internal/types"
)

// testOptions returns enrichment options with short timeouts so the timeout
// tests run in milliseconds, not seconds.
func testOptions(batch, source time.Duration) *Options {
	opts := DefaultOptions()
	opts.BatchTimeout = batch
	opts.SourceTimeout = source
	return opts
}

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// hangingServer blocks every request until the test finishes.
func hangingServer(t *testing.T) *httptest.Server {
	t.Helper()
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})
	return server
}

func TestEnrich_NoSources(t *testing.T) {
	e := New(nil)

	start := time.Now()
	res := e.Enrich(context.Background(), types.SourceURLs{})
	elapsed := time.Since(start)

	assert.Empty(t, res.Nuggets)
	assert.False(t, res.TimedOut)
	assert.Less(t, elapsed, 50*time.Millisecond)
}

func TestEnrich_WebsiteDescription(t *testing.T) {
	server := htmlServer(t, `<html><head>
		<title>Rosie's Mobile Grooming</title>
		<meta name="description" content="Dog grooming that comes to you, serving the east side since 2019.">
	</head><body>hello</body></html>`)

	e := New(testOptions(2*time.Second, time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{Website: server.URL})

	require.Len(t, res.Nuggets, 1)
	assert.False(t, res.TimedOut)
	nugget := res.Nuggets[0]
	assert.Equal(t, types.SourceWebsite, nugget.Source)
	assert.Equal(t, types.RelevanceHigh, nugget.Relevance)
	assert.Contains(t, nugget.Snippet, "Dog grooming that comes to you")
}

func TestEnrich_WebsiteTitleOnly(t *testing.T) {
	server := htmlServer(t, `<html><head><title>Rosie's</title></head><body>x</body></html>`)

	e := New(testOptions(2*time.Second, time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{Website: server.URL})

	require.Len(t, res.Nuggets, 1)
	assert.Equal(t, types.RelevanceMedium, res.Nuggets[0].Relevance)
}

func TestEnrich_ListingWithReviews(t *testing.T) {
	server := htmlServer(t, `<html><head><title>Rosie's - Listing</title></head>
		<body><main>4.8 stars 132 reviews Open now</main></body></html>`)

	e := New(testOptions(2*time.Second, time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{Listing: server.URL})

	require.Len(t, res.Nuggets, 1)
	nugget := res.Nuggets[0]
	assert.Equal(t, types.SourceListing, nugget.Source)
	assert.Equal(t, types.RelevanceHigh, nugget.Relevance)
	assert.Contains(t, nugget.Snippet, "4.8")
	assert.Contains(t, nugget.Snippet, "132")
}

func TestEnrich_UnreachableSourceDegradesToPresence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	e := New(testOptions(2*time.Second, time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{Social: server.URL})

	// A supplied URL still proves presence even when the fetch fails.
	require.Len(t, res.Nuggets, 1)
	assert.Equal(t, types.SourceSocial, res.Nuggets[0].Source)
	assert.Equal(t, types.RelevanceLow, res.Nuggets[0].Relevance)
	assert.False(t, res.TimedOut)
}

func TestEnrich_AllSourcesHang_TimesOutAtDeadline(t *testing.T) {
	hang := hangingServer(t)

	batch := 300 * time.Millisecond
	e := New(testOptions(batch, 10*time.Second))

	start := time.Now()
	res := e.Enrich(context.Background(), types.SourceURLs{
		Website: hang.URL,
		Listing: hang.URL,
		Social:  hang.URL,
	})
	elapsed := time.Since(start)

	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Nuggets)
	assert.GreaterOrEqual(t, elapsed, batch)
	assert.Less(t, elapsed, batch+500*time.Millisecond, "enrich must not exceed the batch deadline")
}

func TestEnrich_FastNuggetsSurviveBatchTimeout(t *testing.T) {
	fast := htmlServer(t, `<html><head>
		<meta name="description" content="Fast source description.">
	</head><body>x</body></html>`)
	hang := hangingServer(t)

	e := New(testOptions(300*time.Millisecond, 10*time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{
		Website: fast.URL,
		Listing: hang.URL,
	})

	assert.True(t, res.TimedOut)
	require.Len(t, res.Nuggets, 1)
	assert.Equal(t, types.SourceWebsite, res.Nuggets[0].Source)
}

func TestEnrich_NuggetsInCanonicalSourceOrder(t *testing.T) {
	server := htmlServer(t, `<html><head><title>T</title></head><body>x</body></html>`)

	e := New(testOptions(2*time.Second, time.Second))
	res := e.Enrich(context.Background(), types.SourceURLs{
		Website: server.URL,
		Listing: server.URL,
		Social:  server.URL,
	})

	require.Len(t, res.Nuggets, 3)
	assert.Equal(t, types.SourceWebsite, res.Nuggets[0].Source)
	assert.Equal(t, types.SourceListing, res.Nuggets[1].Source)
	assert.Equal(t, types.SourceSocial, res.Nuggets[2].Source)
}

func TestEnrich_ContextCancellation(t *testing.T) {
	hang := hangingServer(t)

	e := New(testOptions(10*time.Second, 10*time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	res := e.Enrich(ctx, types.SourceURLs{Website: hang.URL})

	assert.True(t, res.TimedOut)
	assert.Less(t, time.Since(start), time.Second)
}

func TestResultStrength(t *testing.T) {
	assert.Zero(t, (&Result{}).Strength())

	res := &Result{Nuggets: []types.EvidenceNugget{
		{Relevance: types.RelevanceHigh},
		{Relevance: types.RelevanceMedium},
		{Relevance: types.RelevanceLow},
	}}
	assert.InDelta(t, (1.0+0.6+0.3)/3, res.Strength(), 1e-9)

	allHigh := &Result{Nuggets: []types.EvidenceNugget{
		{Relevance: types.RelevanceHigh},
		{Relevance: types.RelevanceHigh},
	}}
	assert.InDelta(t, 1.0, allHigh.Strength(), 1e-9)
}

func TestTruncateSnippet(t *testing.T) {
	short := "short snippet"
	assert.Equal(t, short, truncateSnippet(short))

	long := make([]rune, types.MaxSnippetLen*2)
	for i := range long {
		long[i] = 'a'
	}
	got := truncateSnippet(string(long))
	assert.LessOrEqual(t, len([]rune(got)), types.MaxSnippetLen)
}
