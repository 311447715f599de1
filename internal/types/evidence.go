package types

// SourceKind identifies which optional external source an evidence nugget
// came from.
type SourceKind string

// Source kinds, one per optional URL the caller can supply.
const (
	SourceWebsite SourceKind = "website"
	SourceListing SourceKind = "listing"
	SourceSocial  SourceKind = "social"
)

// Relevance is how strongly a nugget corroborates the classification.
type Relevance string

// Relevance tiers.
const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// MaxSnippetLen is the hard cap on nugget snippet length in runes.
const MaxSnippetLen = 200

// EvidenceNugget is one opportunistic observation extracted from an optional
// external source. Created only by the enricher, consumed only by the
// narrative generator; never persisted.
type EvidenceNugget struct {
	Source    SourceKind `json:"source"`
	Snippet   string     `json:"snippet"`
	Relevance Relevance  `json:"relevance"`
}

// SourceURLs carries the up-to-three optional enrichment source URLs from a
// request. Empty strings mean the kind was not provided.
type SourceURLs struct {
	Website string `json:"website,omitempty" validate:"omitempty,url"`
	Listing string `json:"listing,omitempty" validate:"omitempty,url"`
	Social  string `json:"social,omitempty" validate:"omitempty,url"`
}

// Count returns how many source URLs were provided.
func (s SourceURLs) Count() int {
	n := 0
	if s.Website != "" {
		n++
	}
	if s.Listing != "" {
		n++
	}
	if s.Social != "" {
		n++
	}
	return n
}
