// Package web serves the risk engine over a JSON HTTP API for the dashboard
// frontend.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emiliopalmerini/cardiosim/internal/ports"
)

// Server wires the engine and the scenario store into an HTTP API. The engine
// itself is stateless; scenarioRepo may be nil when no database is
// configured, which disables the saved-scenario endpoints.
type Server struct {
	router       *http.ServeMux
	port         int
	scenarioRepo ports.ScenarioRepository
	metrics      ports.MetricsExporter
}

func NewServer(port int, repo ports.ScenarioRepository, metrics ports.MetricsExporter) *Server {
	s := &Server{
		router:       http.NewServeMux(),
		port:         port,
		scenarioRepo: repo,
		metrics:      metrics,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Engine endpoints
	s.router.HandleFunc("POST /api/risk", s.handleRisk)
	s.router.HandleFunc("POST /api/scenario", s.handleScenario)
	s.router.HandleFunc("POST /api/timeline", s.handleTimeline)
	s.router.HandleFunc("POST /api/timeline/interpolate", s.handleInterpolate)
	s.router.HandleFunc("GET /api/presets", s.handlePresets)

	// Saved scenarios
	s.router.HandleFunc("GET /api/scenarios", s.handleListScenarios)
	s.router.HandleFunc("POST /api/scenarios", s.handleSaveScenario)
	s.router.HandleFunc("DELETE /api/scenarios", s.handleClearScenarios)
	s.router.HandleFunc("DELETE /api/scenarios/{id}", s.handleDeleteScenario)
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
