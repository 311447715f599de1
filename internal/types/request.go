package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AssessmentRequest is the single client-facing input: the six answers plus
// optional display name and enrichment source URLs.
type AssessmentRequest struct {
	Selections  Selections `json:"selections" validate:"required"`
	DisplayName string     `json:"displayName,omitempty" validate:"omitempty,max=120"`
	Sources     SourceURLs `json:"sources,omitempty"`
}

// Validate validates the AssessmentRequest using the validator, including the
// nested Selections enumerations.
func (r *AssessmentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid assessment request: %w", err)
	}
	return r.Selections.Validate()
}

// Metadata carries per-request timing and provenance for the response.
type Metadata struct {
	RequestID            string `json:"requestId"`
	TotalDurationMs      int64  `json:"totalDurationMs"`
	ScoringDurationMs    int64  `json:"scoringDurationMs"`
	EnrichmentDurationMs *int64 `json:"enrichmentDurationMs,omitempty"`
	CacheHit             bool   `json:"cacheHit"`
	Version              string `json:"version"`
}

// AssessmentResponse is the full assembled result returned to callers.
type AssessmentResponse struct {
	Panes           Panes            `json:"panes"`
	Classification  Classification   `json:"classification"`
	EvidenceNuggets []EvidenceNugget `json:"evidenceNuggets,omitempty"`
	Metadata        Metadata         `json:"metadata"`
}
