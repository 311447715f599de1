package types

// Pane size caps. Longer lists are truncated, never rejected.
const (
	MaxWhatsHappening = 3
	MaxWhatItCosts    = 3
	MaxWhatToFixFirst = 2
)

// ConfidenceCorrectionThreshold is the confidence below which panes must
// carry a correction prompt, on every generation path.
const ConfidenceCorrectionThreshold = 65

// CorrectionPrompt is a two-option disambiguation question shown when
// classification confidence is low. The options come from the top and
// runner-up archetypes' canonical signal text.
type CorrectionPrompt struct {
	Question string `json:"question"`
	OptionA  string `json:"optionA"`
	OptionB  string `json:"optionB"`
}

// Panes is the final narrative shown to the user: three bounded lists plus
// an optional correction prompt.
type Panes struct {
	WhatsHappening   []string          `json:"whatsHappening"`
	WhatItCosts      []string          `json:"whatItCosts"`
	WhatToFixFirst   []string          `json:"whatToFixFirst"`
	CorrectionPrompt *CorrectionPrompt `json:"correctionPrompt,omitempty"`
}

// Truncate enforces the pane size caps in place.
func (p *Panes) Truncate() {
	if len(p.WhatsHappening) > MaxWhatsHappening {
		p.WhatsHappening = p.WhatsHappening[:MaxWhatsHappening]
	}
	if len(p.WhatItCosts) > MaxWhatItCosts {
		p.WhatItCosts = p.WhatItCosts[:MaxWhatItCosts]
	}
	if len(p.WhatToFixFirst) > MaxWhatToFixFirst {
		p.WhatToFixFirst = p.WhatToFixFirst[:MaxWhatToFixFirst]
	}
}
