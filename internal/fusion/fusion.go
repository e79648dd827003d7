// Package fusion combines the classifier's plausibility score with retrieved
// evidence into a final verdict.
package fusion

import (
	"context"
	"fmt"
	"math"

	"github.com/veridex/veridex/internal/model"
)

// SourceType is the constant pipeline descriptor attached to every result
const SourceType = "Hybrid (BERT + Google/NewsAPI)"

// diagnosticTerm names the classifier's raw contribution in top_terms
const diagnosticTerm = "DeepLearning_Analysis"

// PlausibilityScorer estimates the probability that a text is fake
type PlausibilityScorer interface {
	PredictProba(ctx context.Context, text string) (float64, error)
}

// EvidenceRetriever gathers corroborating evidence for a claim. It never
// fails; provider problems degrade to an empty list.
type EvidenceRetriever interface {
	Retrieve(ctx context.Context, query string) []model.EvidenceItem
}

// Engine is the decision core. Every step is a pure function of its inputs;
// the hand-tuned constants live in model.FusionConfig.
type Engine struct {
	scorer    PlausibilityScorer
	retriever EvidenceRetriever
	cfg       model.FusionConfig
}

// NewEngine creates a fusion engine
func NewEngine(scorer PlausibilityScorer, retriever EvidenceRetriever, cfg model.FusionConfig) *Engine {
	return &Engine{
		scorer:    scorer,
		retriever: retriever,
		cfg:       cfg,
	}
}

// Analyze produces the final verdict for a claim. The declared source is
// carried through as metadata and does not enter the fusion math.
func (e *Engine) Analyze(ctx context.Context, claim model.Claim) (*model.AnalysisResult, error) {
	pFake, err := e.scorer.PredictProba(ctx, claim.Text)
	if err != nil {
		return nil, fmt.Errorf("plausibility score: %w", err)
	}

	evidence := e.retriever.Retrieve(ctx, claim.Text)

	// Corroborating trusted coverage biases the verdict toward "real" by a
	// fixed offset, regardless of how many items were found or how similar
	// they are. Uncorroborated claims with a weak fake-probability settle at
	// the suspicious midpoint instead.
	var finalPFake float64
	if len(evidence) > 0 {
		finalPFake = pFake - e.cfg.EvidenceOffset
	} else if pFake > e.cfg.FakeThreshold {
		finalPFake = pFake
	} else {
		finalPFake = e.cfg.UncorroboratedDefault
	}
	finalPFake = clamp01(finalPFake)

	label := e.labelFor(finalPFake)

	finalScore := finalPFake
	if label == model.LabelReal {
		finalScore = 1 - finalPFake
	}

	sourceScore := e.cfg.NoEvidenceSourceScore
	if len(evidence) > 0 {
		sourceScore = e.cfg.EvidenceSourceScore
	}

	return &model.AnalysisResult{
		Label:       label,
		PFake:       finalPFake,
		FinalScore:  finalScore,
		SourceScore: sourceScore,
		Evidence:    evidence,
		TopTerms: []model.TopTerm{
			{Label: diagnosticTerm, Score: math.Round(pFake*100) / 100},
		},
		SourceType: SourceType,
	}, nil
}

// labelFor maps a final fake-probability to a verdict. Both threshold
// comparisons are strict: landing exactly on one keeps the claim suspicious.
func (e *Engine) labelFor(finalPFake float64) model.Label {
	switch {
	case finalPFake > e.cfg.FakeThreshold:
		return model.LabelFake
	case finalPFake < e.cfg.RealThreshold:
		return model.LabelReal
	default:
		return model.LabelSuspicious
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
