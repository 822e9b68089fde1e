package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flakytodo/internal/store"
	"flakytodo/internal/unreliable"
)

// maxRequestBody is the maximum allowed request body size (1 MB).
const maxRequestBody int64 = 1 << 20

// Server holds the HTTP handlers and dependencies.
type Server struct {
	store   store.ItemRepository
	faults  *unreliable.Injector
	mux     *http.ServeMux
	metrics *metrics
}

// New creates a new API server on top of the given store and fault injector.
func New(s store.ItemRepository, faults *unreliable.Injector) *Server {
	srv := &Server{
		store:   s,
		faults:  faults,
		mux:     http.NewServeMux(),
		metrics: newMetrics(s),
	}
	srv.routes()
	return srv
}

// Handler returns the root http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return logRequests(limitBody(s.mux))
}

func (s *Server) routes() {
	s.mux.Handle("GET /items", s.endpoint("GET /items", s.handleListItems))
	s.mux.Handle("POST /items", s.endpoint("POST /items", s.handleCreateItem))
	s.mux.Handle("GET /item/{id}", s.endpoint("GET /item/{id}", s.handleDescribeItem))
	s.mux.Handle("DELETE /item/{id}", s.endpoint("DELETE /item/{id}", s.handleDeleteItem))
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
}

// endpoint wraps an item handler with the failure draw and per-route metrics.
// When the draw fails the handler never runs, so no store side effects occur;
// the response is a plain 500, indistinguishable from a genuine backend fault.
func (s *Server) endpoint(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		}()

		if err := s.faults.Check(); err != nil {
			s.metrics.injected.Inc()
			slog.Debug("injected failure", "route", route)
			writeError(rec, http.StatusInternalServerError, "internal server error")
			return
		}
		h(rec, r)
	})
}

// ---------------------------------------------------------------------------
// Middleware
// ---------------------------------------------------------------------------

// logRequests assigns each request an id, echoes it as X-Request-ID, and
// logs the outcome.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
			"request_id", requestID,
		)
	})
}

// limitBody restricts the request body to maxRequestBody bytes.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written to a ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// ---------------------------------------------------------------------------
// Response helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
