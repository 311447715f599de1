// Package fetch - platform.go provides platform detection and
// platform-specific noise selectors for enrichment sources.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known enrichment source platform.
type Platform string

const (
	// PlatformGoogleBusiness is a Google Business Profile / Maps listing
	PlatformGoogleBusiness Platform = "google_business"
	// PlatformYelp is a Yelp business listing
	PlatformYelp Platform = "yelp"
	// PlatformFacebook is a Facebook business page
	PlatformFacebook Platform = "facebook"
	// PlatformInstagram is an Instagram profile
	PlatformInstagram Platform = "instagram"
	// PlatformGeneric is an unrecognized platform, treated as a plain website
	PlatformGeneric Platform = "generic"
)

// DetectPlatform identifies the source platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformGeneric
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "google.com") ||
		strings.Contains(host, "goo.gl") ||
		strings.Contains(host, "g.page") {
		return PlatformGoogleBusiness
	}

	if strings.Contains(host, "yelp.com") {
		return PlatformYelp
	}

	if strings.Contains(host, "facebook.com") ||
		strings.Contains(host, "fb.com") {
		return PlatformFacebook
	}

	if strings.Contains(host, "instagram.com") {
		return PlatformInstagram
	}

	return PlatformGeneric
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform,
// applied before visible text is read.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Login walls and signup prompts
		"form",
		".login-form",
		".signup-prompt",
		"[data-testid='login-form']",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// App install banners
		".app-banner",
		".smart-banner",
	}

	switch platform {
	case PlatformYelp:
		return append(common,
			".sticky-sidebar",
			"[aria-label='Sponsored results']",
			".related-businesses",
		)
	case PlatformFacebook:
		return append(common,
			"[data-testid='cookie-policy-manage-dialog']",
			"#pagelet_growth_expanding_cta",
		)
	case PlatformInstagram:
		return append(common,
			"[role='presentation'] [role='dialog']",
		)
	default:
		return common
	}
}

// JSHeavyPlatform reports whether a platform usually serves little static
// HTML and benefits from browser rendering.
func JSHeavyPlatform(platform Platform) bool {
	switch platform {
	case PlatformFacebook, PlatformInstagram, PlatformGoogleBusiness:
		return true
	}
	return false
}
