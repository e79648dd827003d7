package model

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the analyze boundary. Provider failures are
// never surfaced; they degrade to an empty evidence list inside the retriever.
var (
	// ErrEmptyInput indicates a missing or blank claim text
	ErrEmptyInput = errors.New("no text provided")

	// ErrNotReady indicates the classifier has not been published yet
	ErrNotReady = errors.New("model is still loading")
)

// AnalysisError wraps an unexpected internal failure (encoder or classifier).
// The request is dropped; no partial result is returned.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
