package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/HerbHall/wifilens/internal/facts"
	"github.com/HerbHall/wifilens/internal/metrics"
	"github.com/HerbHall/wifilens/internal/platform"
	"github.com/HerbHall/wifilens/internal/version"
	"github.com/HerbHall/wifilens/pkg/models"
)

// Collector produces the facts for the current connection.
type Collector interface {
	Collect(ctx context.Context, l facts.Labels) (models.NetworkFacts, error)
}

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RateLimit is the sustained number of collections per second. Zero
	// or less disables limiting.
	RateLimit float64
	Burst     int
	// Locale is used when the request expresses no language preference.
	Locale string
}

// Server exposes WiFi facts over HTTP.
type Server struct {
	httpServer *http.Server
	collector  Collector
	metrics    *metrics.Collector
	limiter    *rate.Limiter
	locale     string
	logger     *zap.Logger
	mux        *http.ServeMux
}

// New creates a new Server instance. m may be nil to disable /metrics.
func New(opts Options, c Collector, m *metrics.Collector, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 15 * time.Second
	}

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      mux,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
		collector: c,
		metrics:   m,
		limiter:   rate.NewLimiter(limit, burst),
		locale:    opts.Locale,
		logger:    logger,
		mux:       mux,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/wifi/facts", s.handleFacts)
	s.mux.HandleFunc("GET /api/v1/wifi/report", s.handleReport)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		NotFound(w, "no such endpoint", r.URL.Path)
	})
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Wifilens-Version", version.Short())
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "wifilens",
		"version": version.Map(),
	})
}

// handleFacts returns the current facts as JSON, or as the text report
// with ?format=text.
func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "text" {
		BadRequest(w, fmt.Sprintf("unsupported format %q", format), r.URL.Path)
		return
	}

	f, l, ok := s.collect(w, r)
	if !ok {
		return
	}
	if format == "text" {
		writeReport(w, f, l)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Language", l.Tag.String())
	json.NewEncoder(w).Encode(f)
}

// handleReport returns the current facts as the localized text report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	f, l, ok := s.collect(w, r)
	if !ok {
		return
	}
	writeReport(w, f, l)
}

func writeReport(w http.ResponseWriter, f models.NetworkFacts, l facts.Labels) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Language", l.Tag.String())
	_, _ = w.Write([]byte(facts.RenderText(f, l)))
}

// collect runs one extraction for the request, writing a problem response
// and returning false on failure.
func (s *Server) collect(w http.ResponseWriter, r *http.Request) (models.NetworkFacts, facts.Labels, bool) {
	if !s.limiter.Allow() {
		RateLimited(w, "too many collection requests", r.URL.Path)
		return models.NetworkFacts{}, facts.Labels{}, false
	}

	l := facts.LabelsFor(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), s.locale)

	f, err := s.collector.Collect(r.Context(), l)
	if err != nil {
		s.metrics.Failed()
		s.logger.Warn("wifi fact collection failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, platform.ErrPermissionDenied):
			Forbidden(w, l.PermissionDenied, r.URL.Path)
		case errors.Is(err, platform.ErrUnsupported), errors.Is(err, platform.ErrNoWiFiInterface):
			Unavailable(w, err.Error(), r.URL.Path)
		default:
			InternalError(w, "failed to read wifi state", r.URL.Path)
		}
		return models.NetworkFacts{}, l, false
	}

	s.metrics.Observe(f)
	return f, l, true
}
