package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oguzatay/motorcheck/internal/auth"
	"github.com/oguzatay/motorcheck/internal/domain"
	"github.com/oguzatay/motorcheck/internal/photostore"
	"github.com/oguzatay/motorcheck/internal/service"
)

type Server struct {
	maintenance *service.MaintenanceService
	auth        *auth.AuthService
	tokens      *auth.TokenService
	photoStore  photostore.PhotoStore
	router      chi.Router
	validate    *validator.Validate
	logger      *slog.Logger
}

func NewServer(
	maintenance *service.MaintenanceService,
	authSvc *auth.AuthService,
	tokens *auth.TokenService,
	ps photostore.PhotoStore,
	logger *slog.Logger,
) *Server {
	s := &Server{
		maintenance: maintenance,
		auth:        authSvc,
		tokens:      tokens,
		photoStore:  ps,
		validate:    validator.New(),
		logger:      logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))

	r.Post("/api/login", s.handleLogin)
	r.Get("/api/motors/{motorID}", s.handleGetMotor)
	r.Get("/api/motors/{motorID}/report", s.handleGetReport)
	r.Get("/photos/*", s.handleGetPhoto)

	r.Group(func(r chi.Router) {
		r.Use(s.requireTechnician)
		r.Post("/api/motors/{motorID}/steps/{stepID}/complete", s.handleCompleteStep)
		r.Post("/api/motors/{motorID}/steps/{stepID}/photos", s.handleUploadPhoto)
	})

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
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

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
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
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// respondError maps engine errors onto HTTP statuses. Anything outside the
// caller-error taxonomy is a 500 with a generic message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMotorNotFound):
		s.respondJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownStep):
		s.respondJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrMissingRequiredPhoto), errors.Is(err, domain.ErrStepOutOfOrder):
		s.respondJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		s.respondJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
