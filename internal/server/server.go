// Package server exposes the token decoder as a small HTTP API.
//
// The API is intended for local tooling: one decode endpoint plus a
// liveness probe. Every request decodes independently; the decoder holds no
// state, so the handlers need no locking.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	fwerrors "github.com/fractalwonder/fwdecode/pkg/errors"
	"github.com/fractalwonder/fwdecode/pkg/statetoken"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve context is canceled.
const shutdownTimeout = 5 * time.Second

// Server handles decode requests over HTTP.
type Server struct {
	logger *log.Logger
}

// New creates a Server that logs through the given logger.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/decode", s.handleDecode)

	return r
}

// ListenAndServe serves the API on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

// decodeRequest is the body of POST /api/v1/decode.
type decodeRequest struct {
	Token string `json:"token"`
}

// decodeResponse wraps the decoded state document. The document root is an
// arbitrary JSON value, passed through verbatim.
type decodeResponse struct {
	State any `json:"state"`
}

// errorResponse carries a classified decode error to the client.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth implements the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// handleDecode decodes the submitted token and returns the raw state
// document. Decode failures map to 400 with the pipeline stage's error code.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fwerrors.Wrap(fwerrors.ErrCodeInvalidInput, err, "request body is not valid JSON"))
		return
	}
	if req.Token == "" {
		s.writeError(w, fwerrors.New(fwerrors.ErrCodeInvalidInput, "missing token field"))
		return
	}

	state, err := statetoken.Decode(req.Token)
	if err != nil {
		s.logger.Debugf("decode failed: %v", err)
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, decodeResponse{State: state.Raw()})
}

// writeError maps a decode error onto an HTTP status and JSON body. All
// classified errors are client errors; anything unclassified is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := fwerrors.GetCode(err)
	status := http.StatusBadRequest
	if code == "" || code == fwerrors.ErrCodeInternal {
		code = fwerrors.ErrCodeInternal
		status = http.StatusInternalServerError
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: fwerrors.UserMessage(err),
	}})
}

// writeJSON writes v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("write response: %v", err)
	}
}
