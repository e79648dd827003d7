package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veridex/veridex/internal/model"
)

type stubAnalyzer struct {
	failOn string
}

func (a *stubAnalyzer) Analyze(ctx context.Context, text, source string) (*model.AnalysisResult, error) {
	if a.failOn != "" && strings.Contains(text, a.failOn) {
		return nil, errors.New("analysis failed")
	}
	return &model.AnalysisResult{Label: model.LabelReal, PFake: 0.1}, nil
}

func TestBatchProcessor_ProcessClaims(t *testing.T) {
	bp := NewBatchProcessor(&stubAnalyzer{}, 2)

	claims := []string{"claim one", "claim two", "claim three"}
	results := bp.ProcessClaims(context.Background(), claims)

	if len(results) != len(claims) {
		t.Fatalf("expected %d results, got %d", len(claims), len(results))
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("unexpected error for %q: %v", r.Text, r.Error)
		}
		if r.Result == nil {
			t.Errorf("missing result for %q", r.Text)
		}
		seen[r.Text] = true
	}
	for _, c := range claims {
		if !seen[c] {
			t.Errorf("no result for claim %q", c)
		}
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	bp := NewBatchProcessor(&stubAnalyzer{}, 2)
	results := bp.ProcessClaims(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_MixedErrors(t *testing.T) {
	bp := NewBatchProcessor(&stubAnalyzer{failOn: "bad"}, 2)

	results := bp.ProcessClaims(context.Background(), []string{"good claim", "bad claim"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failed int
	for _, r := range results {
		if r.Error != nil {
			failed++
			if r.Result != nil {
				t.Error("failed claim should not carry a result")
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed claim, got %d", failed)
	}
}

func TestReadClaimsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	content := "first claim\n\n# a comment\n  second claim  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	claims, err := ReadClaimsFromFile(path)
	if err != nil {
		t.Fatalf("ReadClaimsFromFile failed: %v", err)
	}

	want := []string{"first claim", "second claim"}
	if len(claims) != len(want) {
		t.Fatalf("expected %d claims, got %d: %v", len(want), len(claims), claims)
	}
	for i := range want {
		if claims[i] != want[i] {
			t.Errorf("claim %d: expected %q, got %q", i, want[i], claims[i])
		}
	}
}

func TestReadClaimsFromFile_Missing(t *testing.T) {
	if _, err := ReadClaimsFromFile("/nonexistent/claims.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
