// Package embed maps text to fixed-width dense vectors.
package embed

import (
	"context"
	"fmt"
	"strings"

	"github.com/veridex/veridex/internal/model"
)

const (
	// batchSize bounds memory: texts are encoded in fixed-size batches
	batchSize = 4

	// maxTokens truncates each text before encoding
	maxTokens = 128
)

// Encoder converts texts into numeric vector representations. Encoding is
// inference-only and deterministic for a fixed backend and input.
type Encoder interface {
	// Name returns the backend name
	Name() string

	// Dimension returns the width of produced vectors
	Dimension() int

	// Encode returns one vector per text, in input order
	Encode(ctx context.Context, texts []string) ([][]float64, error)
}

// NewEncoder creates an encoder based on configuration
func NewEncoder(cfg model.EncoderConfig) (Encoder, error) {
	switch strings.ToLower(cfg.Backend) {
	case "openai":
		return NewOpenAIEncoder(cfg)

	case "hashing", "":
		return NewHashingEncoder(cfg.Dimension), nil

	default:
		return nil, fmt.Errorf("unknown encoder backend: %s (supported: openai, hashing)", cfg.Backend)
	}
}

// batchFunc encodes one prepared batch of texts
type batchFunc func(ctx context.Context, batch []string) ([][]float64, error)

// encodeBatched truncates each text to maxTokens and feeds the backend in
// fixed-size batches, preserving input order.
func encodeBatched(ctx context.Context, texts []string, fn batchFunc) ([][]float64, error) {
	prepared := make([]string, len(texts))
	for i, t := range texts {
		prepared[i] = truncateTokens(t, maxTokens)
	}

	vectors := make([][]float64, 0, len(prepared))
	for i := 0; i < len(prepared); i += batchSize {
		end := i + batchSize
		if end > len(prepared) {
			end = len(prepared)
		}
		batch, err := fn(ctx, prepared[i:end])
		if err != nil {
			return nil, fmt.Errorf("encode batch %d: %w", i/batchSize, err)
		}
		if len(batch) != end-i {
			return nil, fmt.Errorf("encode batch %d: got %d vectors for %d texts", i/batchSize, len(batch), end-i)
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

// truncateTokens keeps at most limit whitespace-delimited tokens
func truncateTokens(text string, limit int) string {
	fields := strings.Fields(text)
	if len(fields) <= limit {
		return text
	}
	return strings.Join(fields[:limit], " ")
}
