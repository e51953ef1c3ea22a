// Package web exposes the check operations as a small JSON API for the
// presentation layer.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"firstaidcheck/internal/domain"
	"firstaidcheck/internal/service"
	"firstaidcheck/internal/validate"
)

type Server struct {
	service *service.CheckService
	mux     *http.ServeMux
	logger  *slog.Logger
}

func NewServer(svc *service.CheckService, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		mux:     http.NewServeMux(),
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /boxes", s.handleListBoxes)
	s.mux.HandleFunc("GET /checks", s.handleListChecks)
	s.mux.HandleFunc("POST /checks", s.handleSubmitCheck)
	s.mux.HandleFunc("GET /checks/new", s.handleNewCheckForm)
	s.mux.HandleFunc("GET /checks/{id}", s.handleGetCheck)
	s.mux.HandleFunc("GET /checks/{id}/form", s.handleEditCheckForm)
	s.mux.HandleFunc("GET /checks/{id}/restock-advice", s.handleRestockAdvice)
	s.mux.HandleFunc("DELETE /checks/{id}", s.handleDeleteCheck)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain and validation errors onto HTTP statuses. Every
// failure path reports an error body; nothing is swallowed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		qerr *validate.InvalidQuantityError
		derr *validate.InvalidDateError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &qerr), errors.As(err, &derr), errors.Is(err, validate.ErrInvalidBox):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAdvisorDisabled):
		status = http.StatusNotImplemented
	case errors.Is(err, domain.ErrSaveFailed), errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
