package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// errorBody is the shape of every failure response. Details is only set
// outside production.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps a service error onto the HTTP error taxonomy. label names the
// resource in not-found and conflict messages (e.g. "Trip not found").
func (s *Server) fail(w http.ResponseWriter, r *http.Request, label string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: label + " not found"})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: unwrapMessage(err, domain.ErrValidation)})
	case errors.Is(err, domain.ErrConflict):
		body := errorBody{Error: label + " already exists"}
		if !s.d.Production {
			body.Details = err.Error()
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: unwrapMessage(err, domain.ErrUnauthorized)})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: unwrapMessage(err, domain.ErrForbidden)})
	case errors.Is(err, domain.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorBody{Error: domain.ErrRateLimited.Error()})
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		body := errorBody{Error: "internal server error"}
		if !s.d.Production {
			body.Details = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}

// badRequest rejects a request before it reaches the service layer
// (malformed id, query parameter or body).
func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// decode reads a JSON request body into dst, writing a 400 (or 413 when the
// body limit was hit) and returning false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "request body too large"})
	case errors.Is(err, io.EOF):
		s.badRequest(w, "request body is required")
	default:
		body := errorBody{Error: "invalid request body"}
		if !s.d.Production {
			body.Details = err.Error()
		}
		writeJSON(w, http.StatusBadRequest, body)
	}
	return false
}

// unwrapMessage extracts the human-readable part after a wrapped sentinel.
// e.g. "service.TripService.Create: validation error: title is required"
// -> "title is required"
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, sentinel.Error()+": "); ok && rest != "" {
		return rest
	}
	return sentinel.Error()
}
