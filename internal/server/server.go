// Package server exposes the rewrite engine over a thin HTTP JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/optirewrite/optirewrite/internal/engine"
	"github.com/optirewrite/optirewrite/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	logger     *zap.Logger
}

// Config holds server configuration
type Config struct {
	Addr   string
	Engine *engine.Engine
	Logger *zap.Logger
}

// New creates a new server instance
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	eng := cfg.Engine
	if eng == nil {
		eng = engine.New(engine.WithLogger(logger))
	}

	s := &Server{
		engine: eng,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /rewrite", s.handleRewrite)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until an interrupt or
// termination signal, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// rewriteRequest is the body of POST /rewrite and POST /analyze.
type rewriteRequest struct {
	Text   string               `json:"text"`
	Config *types.RewriteConfig `json:"config,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	result, err := s.engine.Rewrite(r.Context(), req.Text, req.Config)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	analysis, err := s.engine.Analyze(req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps engine errors to HTTP statuses: rejected input is the
// caller's fault, pipeline failures are ours.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error()})
		return
	}

	var pipeline *engine.PipelineError
	if errors.As(err, &pipeline) {
		s.logger.Error("rewrite pipeline failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: pipeline.Error(),
			Stage: string(pipeline.Stage),
		})
		return
	}

	s.logger.Error("unexpected error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

//nolint:errcheck // response writing errors are not recoverable
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
