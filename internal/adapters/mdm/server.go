package mdm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
)

const maxActionBytes = 1 << 20

// ActionHandler verifies and executes signed enterprise actions
type ActionHandler interface {
	HandleSigned(ctx context.Context, payload []byte, signature string) (domain.ActionResult, error)
}

// StatusSource reports the current session status
type StatusSource interface {
	Status() domain.SessionStatus
}

// ComplianceChecker evaluates device compliance
type ComplianceChecker interface {
	Check(ctx context.Context) (domain.ComplianceResult, error)
}

// ViolationReporter summarizes the violations of a session
type ViolationReporter interface {
	SessionViolations(ctx context.Context, sessionID string) (domain.ViolationReport, error)
}

// ServerDeps are the services the command channel exposes
type ServerDeps struct {
	Actions    ActionHandler
	Compliance ComplianceChecker
	Status     StatusSource
	Violations ViolationReporter
}

// Server is the inbound management command channel
type Server struct {
	deps    ServerDeps
	limiter *rate.Limiter
	router  *mux.Router
}

// NewServer creates a server allowing perSecond requests with the given burst
func NewServer(deps ServerDeps, perSecond float64, burst int) *Server {
	s := &Server{
		deps:    deps,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}

	r := mux.NewRouter()
	r.Use(s.rateLimit, logRequests)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/actions", s.handleAction).Methods(http.MethodPost)
	r.HandleFunc("/v1/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/v1/compliance", s.handleCompliance).Methods(http.MethodGet)
	r.HandleFunc("/v1/sessions/{id}/violations", s.handleViolations).Methods(http.MethodGet)
	s.router = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Command channel listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	result, err := s.deps.Actions.HandleSigned(r.Context(), payload, r.Header.Get(SignatureHeader))
	if err != nil {
		writeJSON(w, statusFor(err), result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Status.Status())
}

func (s *Server) handleCompliance(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.Compliance.Check(r.Context())
	if err != nil {
		// The result still carries the unknown verdict and its reasons
		logging.Logger.Warn("Compliance check degraded", "error", err)
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleViolations(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.Violations.SessionViolations(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// statusFor maps error categories to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case domain.IsAuthorizationError(err):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case domain.IsStateError(err):
		return http.StatusConflict
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	case domain.IsTransportError(err):
		return http.StatusBadGateway
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
