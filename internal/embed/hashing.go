package embed

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultDimension = 256

// HashingEncoder is a local, deterministic feature-hashing encoder. Each token
// is hashed into a fixed-width vector with a signed contribution, and the
// result is L2-normalized. It needs no network access or pretrained weights,
// which makes it the default backend and the test backend.
type HashingEncoder struct {
	dim int
}

// NewHashingEncoder creates a hashing encoder with the given vector width
func NewHashingEncoder(dim int) *HashingEncoder {
	if dim <= 0 {
		dim = defaultDimension
	}
	return &HashingEncoder{dim: dim}
}

// Name returns the backend name
func (e *HashingEncoder) Name() string {
	return "hashing"
}

// Dimension returns the vector width
func (e *HashingEncoder) Dimension() int {
	return e.dim
}

// Encode returns one vector per text, in input order
func (e *HashingEncoder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	return encodeBatched(ctx, texts, e.encodeBatch)
}

func (e *HashingEncoder) encodeBatch(ctx context.Context, batch []string) ([][]float64, error) {
	vectors := make([][]float64, len(batch))
	for i, text := range batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors[i] = e.embed(text)
	}
	return vectors, nil
}

func (e *HashingEncoder) embed(text string) []float64 {
	vec := make([]float64, e.dim)

	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum32()

		idx := int(sum % uint32(e.dim))
		sign := 1.0
		if sum&0x80000000 != 0 {
			sign = -1.0
		}
		vec[idx] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
