// Package server implements the HTTP positioning API.
//
// The API exposes the positioning core over two routes:
//   - POST /v1/position: compute coordinates for a JSON scene body
//   - GET /healthz: liveness probe
//
// Requests are tagged with a generated request ID, logged through
// charmbracelet/log, and reported to the observability server hooks.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/scene"
)

// Server serves the positioning API.
type Server struct {
	logger  *log.Logger
	handler http.Handler
}

// New creates a server logging through the given logger.
func New(logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/position", s.handlePosition)

	s.handler = r
	return s
}

// Handler returns the route tree, primarily for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves the API on addr until ctx is canceled, then shuts
// down gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	sc, err := scene.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	at, err := sc.Position()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, at)
}

// =============================================================================
// Responses
// =============================================================================

// errorResponse is the JSON error envelope returned for failed requests.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", requestIDFrom(r.Context()), "err", err)
	} else {
		s.logger.Debug("request rejected", "request_id", requestIDFrom(r.Context()), "err", err)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps structured error codes to HTTP statuses. Unknown errors are
// treated as internal.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidSettings,
		errors.ErrCodeInvalidSide,
		errors.ErrCodeInvalidAlign,
		errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidScene,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
