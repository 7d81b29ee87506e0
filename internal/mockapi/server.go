// Package mockapi runs a local HTTP server that serves the substitute
// datasets over the real API paths. It lets the dashboard run end to
// end without the production backend, through the full transport path.
package mockapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server is the local mock API server.
type Server struct {
	Router *chi.Mux
	port   int
	logger *slog.Logger
	http   *http.Server
}

// New creates a server listening on the given port.
func New(port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))

	s := &Server{Router: r, port: port, logger: logger}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Post("/auth/login", s.handleLogin)
	s.Router.Post("/auth/logout", s.handleOK)
	s.Router.Post("/auth/refresh", s.handleRefresh)
	s.Router.Post("/auth/forgot-password", s.handleOK)
	s.Router.Post("/auth/reset-password", s.handleOK)
	s.Router.Get("/auth/me", s.handleMe)

	s.Router.Get("/municipios", s.handleMunicipios)
	s.Router.Get("/facts", s.handleFacts)
	s.Router.Get("/gold", s.handleGold)

	s.Router.Get("/api/v1/weather", s.handleWeatherList)
	s.Router.Get("/api/v1/weather/{city}", s.handleWeatherCity)
	s.Router.Get("/api/v1/weather/{city}/risk", s.handleWeatherCityRisk)

	s.Router.Get("/api/v1/risk/dashboard", s.handleRiskDashboard)
	s.Router.Post("/api/v1/risk/analyze", s.handleRiskAnalyze)
	s.Router.Get("/api/v1/risk/municipio/{codigo_ibge}", s.handleRiskMunicipio)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("mock API listening", slog.Int("port", s.port))
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
