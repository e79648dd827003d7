package model

// Label is the final veracity verdict for a claim
type Label string

const (
	LabelReal       Label = "real"
	LabelSuspicious Label = "suspicious"
	LabelFake       Label = "fake"
)

// TopTerm is a diagnostic (name, score) pair explaining a scoring contribution
type TopTerm struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AnalysisResult is the complete verdict for one claim. It is fully derived
// from the request that produced it and has no identity beyond it.
type AnalysisResult struct {
	Label       Label          `json:"label"`        // real / suspicious / fake
	PFake       float64        `json:"p_fake"`       // Final fake probability, clamped to [0,1]
	FinalScore  float64        `json:"final_score"`  // Confidence expressed toward Label
	SourceScore float64        `json:"source_score"` // Coarse trust signal: 0.95 with evidence, 0.10 without
	Evidence    []EvidenceItem `json:"evidence"`     // Provider return order, not re-sorted by score
	TopTerms    []TopTerm      `json:"top_terms"`    // Diagnostic contributions
	SourceType  string         `json:"source_type"`  // Constant pipeline descriptor
}
