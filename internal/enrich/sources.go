package enrich

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/jordanh/pulsecheck/internal/fetch"
	"github.com/jordanh/pulsecheck/internal/types"
)

// extract runs one source attempt. It returns nil only when the URL itself
// is unusable; a reachable-but-unparseable or unreachable source still
// yields a low-relevance presence nugget, because a supplied URL is itself
// weak evidence of an online presence.
func (e *Enricher) extract(ctx context.Context, kind types.SourceKind, urlStr string) *types.EvidenceNugget {
	host := hostOf(urlStr)
	if host == "" {
		log.Printf("[enrich] %s source skipped: unusable URL %q", kind, urlStr)
		return nil
	}

	platform := fetch.DetectPlatform(urlStr)

	result, err := fetch.URL(ctx, urlStr, e.fetchOpts)
	if err != nil {
		log.Printf("[enrich] %s source unreachable: %v", kind, err)
		return presenceNugget(kind, host)
	}

	html := result.HTML
	meta, err := fetch.ExtractMetadata(html, fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		log.Printf("[enrich] %s source unparseable: %v", kind, err)
		return presenceNugget(kind, host)
	}

	// JS-heavy platforms often serve an empty shell to plain HTTP clients;
	// optionally re-render with a headless browser before settling for a
	// presence nugget.
	if e.fetchOpts.UseBrowser && fetch.JSHeavyPlatform(platform) && fetch.ShouldUseBrowser(meta.BodyText) {
		if rendered, berr := fetch.WithBrowser(ctx, urlStr, e.sourceTimeout, false); berr == nil {
			if remeta, merr := fetch.ExtractMetadata(rendered, fetch.PlatformNoiseSelectors(platform)...); merr == nil {
				meta = remeta
			}
		} else {
			log.Printf("[enrich] %s browser render failed: %v", kind, berr)
		}
	}

	switch kind {
	case types.SourceWebsite:
		return websiteNugget(meta, host)
	case types.SourceListing:
		return listingNugget(meta, platform, host)
	case types.SourceSocial:
		return socialNugget(meta, platform, host)
	}
	return presenceNugget(kind, host)
}

// websiteNugget prefers the site's own description of the business; a bare
// title still says something, just less.
func websiteNugget(meta *fetch.PageMetadata, host string) *types.EvidenceNugget {
	if meta.Description != "" {
		return &types.EvidenceNugget{
			Source:    types.SourceWebsite,
			Snippet:   truncateSnippet(meta.Description),
			Relevance: types.RelevanceHigh,
		}
	}
	if meta.Title != "" {
		return &types.EvidenceNugget{
			Source:    types.SourceWebsite,
			Snippet:   truncateSnippet(fmt.Sprintf("Website titled %q at %s", meta.Title, host)),
			Relevance: types.RelevanceMedium,
		}
	}
	return presenceNugget(types.SourceWebsite, host)
}

var (
	ratingPattern = regexp.MustCompile(`(\d(?:[.,]\d)?)\s*(?:out of 5|stars?|★)`)
	reviewPattern = regexp.MustCompile(`([\d,]+)\s+reviews?`)
)

// listingNugget looks for review evidence in the listing's visible text.
// Review counts and ratings are the strongest external corroboration a
// listing offers.
func listingNugget(meta *fetch.PageMetadata, platform fetch.Platform, host string) *types.EvidenceNugget {
	text := meta.BodyText
	if meta.Description != "" {
		text = meta.Description + "\n" + text
	}

	rating := ratingPattern.FindStringSubmatch(text)
	reviews := reviewPattern.FindStringSubmatch(text)

	switch {
	case rating != nil && reviews != nil:
		return &types.EvidenceNugget{
			Source:    types.SourceListing,
			Snippet:   truncateSnippet(fmt.Sprintf("Listed on %s with a %s-star rating across %s reviews", platformLabel(platform, host), rating[1], reviews[1])),
			Relevance: types.RelevanceHigh,
		}
	case reviews != nil:
		return &types.EvidenceNugget{
			Source:    types.SourceListing,
			Snippet:   truncateSnippet(fmt.Sprintf("Listed on %s with %s customer reviews", platformLabel(platform, host), reviews[1])),
			Relevance: types.RelevanceHigh,
		}
	case meta.Title != "":
		return &types.EvidenceNugget{
			Source:    types.SourceListing,
			Snippet:   truncateSnippet(fmt.Sprintf("Business listing %q on %s", meta.Title, platformLabel(platform, host))),
			Relevance: types.RelevanceMedium,
		}
	}
	return presenceNugget(types.SourceListing, host)
}

// socialNugget reads Open Graph metadata; social platforms rarely expose
// more than that without a login.
func socialNugget(meta *fetch.PageMetadata, platform fetch.Platform, host string) *types.EvidenceNugget {
	if meta.Description != "" {
		return &types.EvidenceNugget{
			Source:    types.SourceSocial,
			Snippet:   truncateSnippet(fmt.Sprintf("%s profile: %s", platformLabel(platform, host), meta.Description)),
			Relevance: types.RelevanceMedium,
		}
	}
	if meta.Title != "" {
		return &types.EvidenceNugget{
			Source:    types.SourceSocial,
			Snippet:   truncateSnippet(fmt.Sprintf("Active profile %q on %s", meta.Title, platformLabel(platform, host))),
			Relevance: types.RelevanceMedium,
		}
	}
	return presenceNugget(types.SourceSocial, host)
}

// presenceNugget is the weakest tier: the URL was supplied and points at a
// real host, nothing more could be confirmed.
func presenceNugget(kind types.SourceKind, host string) *types.EvidenceNugget {
	return &types.EvidenceNugget{
		Source:    kind,
		Snippet:   truncateSnippet(fmt.Sprintf("Maintains a presence at %s (content not verified)", host)),
		Relevance: types.RelevanceLow,
	}
}

func platformLabel(platform fetch.Platform, host string) string {
	switch platform {
	case fetch.PlatformGoogleBusiness:
		return "Google Business Profile"
	case fetch.PlatformYelp:
		return "Yelp"
	case fetch.PlatformFacebook:
		return "Facebook"
	case fetch.PlatformInstagram:
		return "Instagram"
	}
	return host
}

func hostOf(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
}

func truncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= types.MaxSnippetLen {
		return s
	}
	return string(runes[:types.MaxSnippetLen-1]) + "…"
}
