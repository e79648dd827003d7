package embed

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestTruncateTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short text untouched", "one two three", 128, "one two three"},
		{"exact limit untouched", "a b c", 3, "a b c"},
		{"over limit truncated", "a b c d", 3, "a b c"},
		{"empty", "", 128, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateTokens(tt.input, tt.limit); got != tt.want {
				t.Errorf("truncateTokens(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestEncodeBatched_FixedBatchSize(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = fmt.Sprintf("text number %d", i)
	}

	var batches [][]string
	fn := func(ctx context.Context, batch []string) ([][]float64, error) {
		batches = append(batches, batch)
		out := make([][]float64, len(batch))
		for i := range batch {
			out[i] = []float64{float64(len(batch[i]))}
		}
		return out, nil
	}

	vectors, err := encodeBatched(context.Background(), texts, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("expected %d vectors, got %d", len(texts), len(vectors))
	}

	// 10 texts in batches of 4 -> sizes 4, 4, 2
	wantSizes := []int{4, 4, 2}
	if len(batches) != len(wantSizes) {
		t.Fatalf("expected %d batches, got %d", len(wantSizes), len(batches))
	}
	for i, want := range wantSizes {
		if len(batches[i]) != want {
			t.Errorf("batch %d: expected size %d, got %d", i, want, len(batches[i]))
		}
	}
}

func TestEncodeBatched_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("word ", 300)

	fn := func(ctx context.Context, batch []string) ([][]float64, error) {
		for _, text := range batch {
			if n := len(strings.Fields(text)); n > maxTokens {
				t.Errorf("batch text has %d tokens, want <= %d", n, maxTokens)
			}
		}
		return [][]float64{{0}}, nil
	}

	if _, err := encodeBatched(context.Background(), []string{long}, fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEncodeBatched_PropagatesError(t *testing.T) {
	fn := func(ctx context.Context, batch []string) ([][]float64, error) {
		return nil, fmt.Errorf("backend down")
	}
	if _, err := encodeBatched(context.Background(), []string{"a"}, fn); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestNewEncoder_Backends(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"hashing", false},
		{"", false},
		{"openai", true}, // no API key configured
		{"bogus", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := testEncoderConfig(tt.backend)
			_, err := NewEncoder(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEncoder(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
		})
	}
}
