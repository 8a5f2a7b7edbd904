// Package web exposes the doctor report over HTTP so the desktop app's
// setup screen (or an operator with curl) can read the environment status.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
)

// ReportFunc produces a fresh diagnostic report for a request.
type ReportFunc func(ctx context.Context) *probe.Report

// Server serves the diagnostics API.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	report     ReportFunc
}

func NewServer(port int, host string, report ReportFunc) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		report: report,
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	// Probe suites shell out to the Python interpreter; give them room.
	r.Use(chiMiddleware.Timeout(2 * time.Minute))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting diagnostics server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down diagnostics server...")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
