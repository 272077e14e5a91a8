package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// lookupTimeout bounds an on-demand geocode and forecast fetch.
const lookupTimeout = 45 * time.Second

// Service is the part of the pipeline the HTTP layer reads from.
type Service interface {
	CheckReadiness(ctx context.Context) error
	Latest(ctx context.Context) (domain.Snapshot, error)
	Lookup(ctx context.Context, name string) (domain.Snapshot, error)
}

// Server exposes the panel markup, display JSON, health, readiness, and
// metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	service    Service
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the panel, API, and probe routes.
func NewServer(addr string, service Service, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: lookupTimeout + 5*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(service))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /markup", s.handleMarkup)
	mux.HandleFunc("GET /api/v1/display", s.handleDisplay)
	mux.HandleFunc("GET /api/v1/merge-variables", s.handleMergeVariables)
	mux.HandleFunc("GET /api/v1/forecast", s.handleForecast)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type readinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

func handleReady(checker readinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleMarkup(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.latest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Last-Modified", snap.GeneratedAt.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(snap.Markup))
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Display)
}

func (s *Server) handleMergeVariables(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"merge_variables": domain.MergeVariables(snap.Display)})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("q"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
	defer cancel()

	snap, err := s.service.Lookup(ctx, name)
	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.logger.Warn("forecast lookup failed", "q", name, "error", err)
		writeError(w, http.StatusBadGateway, "forecast lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"location":     snap.Location,
		"generated_at": snap.GeneratedAt,
		"display":      snap.Display,
	})
}

// latest loads the stored snapshot, writing a 503 when none exists yet.
func (s *Server) latest(w http.ResponseWriter, r *http.Request) (domain.Snapshot, bool) {
	snap, err := s.service.Latest(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusServiceUnavailable, "forecast not available yet")
		return domain.Snapshot{}, false
	}
	if err != nil {
		s.logger.Error("load snapshot failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load forecast")
		return domain.Snapshot{}, false
	}
	return snap, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
