package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/veridex/veridex/internal/model"
)

// Analyzer verifies a single claim
type Analyzer interface {
	Analyze(ctx context.Context, text, source string) (*model.AnalysisResult, error)
}

// ClaimJob analyzes one claim through the shared analyzer
type ClaimJob struct {
	Text     string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *ClaimJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.Analyze(ctx, j.Text, "")
	return &ClaimResult{
		Text:   j.Text,
		Result: result,
		Error:  err,
	}
}

// ClaimResult is the outcome of one claim analysis
type ClaimResult struct {
	Text   string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the analysis error, if any
func (r *ClaimResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many claims concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessClaims analyzes the given claims concurrently
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []*ClaimResult {
	if len(claims) == 0 {
		return []*ClaimResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, claim := range claims {
		pool.Submit(&ClaimJob{
			Text:     claim,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	claimResults := make([]*ClaimResult, len(results))
	for i, result := range results {
		claimResults[i] = result.(*ClaimResult)
	}
	return claimResults
}

// ProcessFile reads claims from a file (one per line) and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ClaimResult, error) {
	claims, err := ReadClaimsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}
	return b.ProcessClaims(ctx, claims), nil
}

// ReadClaimsFromFile reads claims from a file, one per line, skipping blank
// lines and comments.
func ReadClaimsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var claims []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		claims = append(claims, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return claims, nil
}
