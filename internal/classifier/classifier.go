// Package classifier estimates the plausibility of a claim being fake.
package classifier

import (
	"context"
	"fmt"

	"github.com/veridex/veridex/internal/embed"
)

// LabelFake and LabelReal are the accepted training labels
const (
	LabelFake = "fake"
	LabelReal = "real"
)

// Model is a binary plausibility classifier: a logistic regression over
// embedding vectors. Train must complete before the model is exposed to any
// reader; after that the model is read-only and safe for concurrent use.
type Model struct {
	encoder embed.Encoder
	lr      logisticRegression
}

// New creates an untrained model over the given encoder
func New(encoder embed.Encoder) *Model {
	return &Model{encoder: encoder}
}

// Train fits the model on labeled claims. Labels must be "fake" or "real";
// fake maps to the positive class.
func (m *Model) Train(ctx context.Context, texts []string, labels []string) error {
	if len(texts) == 0 {
		return fmt.Errorf("empty training set")
	}
	if len(texts) != len(labels) {
		return fmt.Errorf("got %d texts but %d labels", len(texts), len(labels))
	}

	y := make([]int, len(labels))
	for i, label := range labels {
		switch label {
		case LabelFake:
			y[i] = 1
		case LabelReal:
			y[i] = 0
		default:
			return fmt.Errorf("unknown label %q at index %d", label, i)
		}
	}

	X, err := m.encoder.Encode(ctx, texts)
	if err != nil {
		return fmt.Errorf("encode training set: %w", err)
	}

	m.lr.fit(X, y)
	return nil
}

// PredictProba returns the estimated probability that the text is fake.
// Calling it on an untrained model is a programming error and panics.
func (m *Model) PredictProba(ctx context.Context, text string) (float64, error) {
	if !m.lr.trained {
		panic("classifier: PredictProba called before Train")
	}

	X, err := m.encoder.Encode(ctx, []string{text})
	if err != nil {
		return 0, fmt.Errorf("encode text: %w", err)
	}
	return m.lr.predictProba(X[0]), nil
}
