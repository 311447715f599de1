package narrative

import (
	"encoding/json"
	"fmt"

	"github.com/jordanh/pulsecheck/internal/schemas"
	"github.com/jordanh/pulsecheck/internal/types"
)

// panesSchema is the shape contract for the generative path. Size caps are
// deliberately absent: oversized lists are truncated, never rejected.
const panesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["whatsHappening", "whatItCosts", "whatToFixFirst"],
  "properties": {
    "whatsHappening": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "whatItCosts": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "whatToFixFirst": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "correctionPrompt": {
      "type": "object",
      "required": ["question", "optionA", "optionB"],
      "properties": {
        "question": {"type": "string", "minLength": 1},
        "optionA": {"type": "string", "minLength": 1},
        "optionB": {"type": "string", "minLength": 1}
      }
    }
  }
}`

// parsePanes validates a raw model response against the panes schema and
// unmarshals it. Any deviation from the contract is an error; the caller
// falls through to the deterministic path.
func parsePanes(raw string) (*types.Panes, error) {
	if err := schemas.ValidateJSONString(panesSchema, raw); err != nil {
		return nil, fmt.Errorf("response does not match panes schema: %w", err)
	}

	var panes types.Panes
	if err := json.Unmarshal([]byte(raw), &panes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal panes JSON: %w", err)
	}
	return &panes, nil
}
