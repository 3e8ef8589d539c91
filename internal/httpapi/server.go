// Package httpapi serves the bot's optional HTTP surface: liveness and
// readiness probes plus a URL cleaning endpoint.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/edgard/fkusi/internal/health"
)

// Cleaner normalizes a single URL.
type Cleaner interface {
	Clean(rawURL string) string
}

// CleanResponse is the body returned by the clean endpoint.
type CleanResponse struct {
	Original string `json:"original"`
	Cleaned  string `json:"cleaned"`
	Changed  bool   `json:"changed"`
}

// Server wraps an http.Server routing the bot's endpoints.
type Server struct {
	logger  *slog.Logger
	cleaner Cleaner
	health  *health.Status
	srv     *http.Server
}

// NewServer builds a server listening on addr. The server does not listen until Run.
func NewServer(addr string, cleaner Cleaner, status *health.Status, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if status == nil {
		status = &health.Status{}
	}
	s := &Server{
		logger:  logger.With("component", "http_api"),
		cleaner: cleaner,
		health:  status,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router returns the request router.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", s.Healthz).Methods(http.MethodGet)
	router.HandleFunc("/readyz", s.Readyz).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/clean", s.Clean).Methods(http.MethodGet)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Error during HTTP server shutdown", "error", err)
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped.")
	return nil
}

// Healthz is the liveness probe. It always answers 200 "ok".
func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

// Readyz reports 503 while the latest gateway probe is failing.
func (s *Server) Readyz(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusOK
	if !s.health.Ready() {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, s.health.Snapshot())
}

// Clean returns the cleaned form of the url query parameter as a CleanResponse.
func (s *Server) Clean(w http.ResponseWriter, r *http.Request) {
	original := r.URL.Query().Get("url")
	if original == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}

	cleaned := s.cleaner.Clean(original)
	s.writeJSON(w, http.StatusOK, CleanResponse{
		Original: original,
		Cleaned:  cleaned,
		Changed:  cleaned != original,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}
