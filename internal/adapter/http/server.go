// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bmicalc/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	bmi         *app.BMIService
	webDir      string
	metricsPath string
	logger      *slog.Logger
}

// New creates a Server wired to the given application service.
func New(svc *app.BMIService) *Server {
	return &Server{bmi: svc, logger: slog.Default()}
}

// WithWebDir serves static files from dir for requests no API route matches.
func (s *Server) WithWebDir(dir string) *Server {
	s.webDir = dir
	return s
}

// WithMetrics exposes Prometheus metrics at path. An empty path disables the
// endpoint; request metrics are still collected.
func (s *Server) WithMetrics(path string) *Server {
	s.metricsPath = path
	return s
}

// WithLogger replaces the logger used for request and error logging.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	if l != nil {
		s.logger = l
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/bmi/calculate", s.handleCalculate)
	mux.HandleFunc("GET /api/bmi/history", s.handleHistoryList)
	mux.HandleFunc("DELETE /api/bmi/history", s.handleHistoryClear)
	mux.HandleFunc("GET /api/bmi/history/{id}", s.handleHistoryGet)
	mux.HandleFunc("DELETE /api/bmi/history/{id}", s.handleHistoryDelete)
	mux.HandleFunc("GET /api/bmi/statistics", s.handleStatistics)

	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, promhttp.Handler())
	}

	// Matches every request the routes above do not, including known paths
	// with the wrong method.
	mux.Handle("/", s.fallback())

	return s.withMiddleware(mux)
}

// Route describes one endpoint served by the API.
type Route struct {
	Method string
	Path   string
}

// Routes lists the API endpoints in the order they are documented.
func Routes() []Route {
	return []Route{
		{http.MethodPost, "/api/bmi/calculate"},
		{http.MethodGet, "/api/bmi/history"},
		{http.MethodGet, "/api/bmi/history/:id"},
		{http.MethodGet, "/api/bmi/statistics"},
		{http.MethodDelete, "/api/bmi/history/:id"},
		{http.MethodDelete, "/api/bmi/history"},
		{http.MethodGet, "/health"},
	}
}
