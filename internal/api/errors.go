package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorType classifies API errors for clients.
type ErrorType string

const (
	ErrTypeValidation  ErrorType = "validation"
	ErrTypeNotFound    ErrorType = "not_found"
	ErrTypeConflict    ErrorType = "conflict"
	ErrTypeUnavailable ErrorType = "unavailable"
	ErrTypeInternal    ErrorType = "internal"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// writeError writes a structured error response. Internal errors are logged
// and their details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, typ ErrorType, message string, err error) {
	reqID := middleware.GetReqID(r.Context())
	if typ == ErrTypeInternal {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", reqID, "err", err)
		message = "internal error"
	}
	s.writeJSON(w, status, ErrorResponse{
		Type:      typ,
		Message:   message,
		RequestID: reqID,
	})
}
