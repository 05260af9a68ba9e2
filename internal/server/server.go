// Package server provides the thin HTTP layer over the screening engine. It
// translates engine errors into transport status codes and enforces upload
// constraints before text reaches the core.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/analyzer"
	"github.com/jonathan/resume-screener/internal/config"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Server hosts the screening API.
type Server struct {
	httpServer *http.Server
	engine     *analyzer.Analyzer
	log        *zap.Logger
	maxBytes   int64
}

// New creates a server around an analyzer engine.
func New(cfg config.Config, engine *analyzer.Analyzer, log *zap.Logger) *Server {
	s := &Server{
		engine:   engine,
		log:      log,
		maxBytes: cfg.MaxRequestBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze-resume-text", s.handleAnalyzeResume)
	mux.HandleFunc("POST /analyze-jd", s.handleAnalyzeJob)
	mux.HandleFunc("POST /match-candidates", s.handleMatchCandidates)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
