// Package server exposes the analysis service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/veridex/veridex/internal/model"
)

// AnalyzerService is the boundary the HTTP layer talks to
type AnalyzerService interface {
	Ready() bool
	Analyze(ctx context.Context, text, source string) (*model.AnalysisResult, error)
}

// checkRequest is the /api/check request body
type checkRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Server serves the JSON API
type Server struct {
	svc    AnalyzerService
	cfg    model.ServerConfig
	router *mux.Router
}

// New creates a server around the analysis service
func New(svc AnalyzerService, cfg model.ServerConfig) *Server {
	s := &Server{
		svc:    svc,
		cfg:    cfg,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/check", s.handleCheck).Methods(http.MethodPost)
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":     "veridex",
		"description": "hybrid fake-news verdict API",
		"check":       "POST /api/check",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "loading"
	if s.svc.Ready() {
		status = "ok"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      status,
		"model_ready": s.svc.Ready(),
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	result, err := s.svc.Analyze(r.Context(), req.Text, req.Source)
	if err != nil {
		s.writeAnalyzeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeAnalyzeError maps the analyze error taxonomy to response states:
// not-ready is a retry signal, bad input is a client error, anything else is
// a server error with the request dropped.
func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotReady):
		writeJSON(w, http.StatusAccepted, map[string]any{
			"status":  "loading",
			"message": "Model is still loading...",
		})
	case errors.Is(err, model.ErrEmptyInput):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No text provided"})
	default:
		log.Printf("analysis error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}
