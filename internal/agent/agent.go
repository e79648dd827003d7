// Package agent owns the shared model slot and the analyze entry point.
package agent

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/veridex/veridex/internal/classifier"
	"github.com/veridex/veridex/internal/embed"
	"github.com/veridex/veridex/internal/fusion"
	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/verify"
	"github.com/veridex/veridex/internal/worker"
)

// State is the model slot's lifecycle stage
type State int32

const (
	// StateEmpty: no classifier yet, training not started
	StateEmpty State = iota

	// StateTraining: training in progress, requests get a not-ready signal
	StateTraining

	// StateReady: a fully trained engine is published and read-only
	StateReady
)

// Service owns the single shared model slot. Training runs once; the trained
// engine is published atomically, so a reader observes either "not ready" or
// a fully trained engine, never a partial one. After publication the engine
// is read-only and safe for concurrent use.
type Service struct {
	cfg    *model.Config
	state  atomic.Int32
	engine atomic.Pointer[fusion.Engine]
}

// New creates a service with an empty model slot
func New(cfg *model.Config) *Service {
	return &Service{cfg: cfg}
}

// State returns the current slot state
func (s *Service) State() State {
	return State(s.state.Load())
}

// Ready reports whether a trained engine has been published
func (s *Service) Ready() bool {
	return s.engine.Load() != nil
}

// Start trains the classifier in a background goroutine and publishes the
// engine when training completes. It returns immediately.
func (s *Service) Start(ctx context.Context) {
	go func() {
		if err := s.Load(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "model load failed: %v\n", err)
		}
	}()
}

// Load builds the encoder, trains the classifier on the bootstrap set, and
// publishes the fused engine. Only the first caller trains; concurrent calls
// while training is in progress return immediately.
func (s *Service) Load(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateEmpty), int32(StateTraining)) {
		return nil
	}

	engine, err := s.buildEngine(ctx)
	if err != nil {
		s.state.Store(int32(StateEmpty))
		return err
	}

	// Publish point: the engine becomes visible to readers only after
	// training has fully completed.
	s.engine.Store(engine)
	s.state.Store(int32(StateReady))

	if s.cfg.Output.Verbose {
		fmt.Fprintln(os.Stderr, "model ready")
	}
	return nil
}

func (s *Service) buildEngine(ctx context.Context) (*fusion.Engine, error) {
	encoder, err := embed.NewEncoder(s.cfg.Encoder)
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}

	clf := classifier.New(encoder)
	texts, labels := BootstrapSet()
	if err := clf.Train(ctx, texts, labels); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	limiter := worker.NewLimiter(s.cfg.Concurrency.ProviderRate, s.cfg.Concurrency.ProviderBurst)
	retriever := verify.NewRetriever(
		s.cfg.Output.Verbose,
		verify.NewNewsAPIProvider(s.cfg.NewsAPI, limiter),
		verify.NewGoogleNewsProvider(s.cfg.GoogleNews, limiter),
	)

	return fusion.NewEngine(clf, retriever, s.cfg.Fusion), nil
}

// Analyze verifies one claim. It returns model.ErrNotReady while the slot is
// unpublished, model.ErrEmptyInput for blank text, and wraps any unexpected
// internal failure in a model.AnalysisError.
func (s *Service) Analyze(ctx context.Context, text, source string) (*model.AnalysisResult, error) {
	engine := s.engine.Load()
	if engine == nil {
		return nil, model.ErrNotReady
	}

	if strings.TrimSpace(text) == "" {
		return nil, model.ErrEmptyInput
	}

	result, err := engine.Analyze(ctx, model.Claim{Text: text, Source: source})
	if err != nil {
		return nil, &model.AnalysisError{Err: err}
	}
	return result, nil
}
