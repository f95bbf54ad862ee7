package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glypha-labs/glypha/internal/font"
	"github.com/glypha-labs/glypha/internal/fontschema"
)

// errorBody is the JSON envelope for every failed request.
type errorBody struct {
	Message string                       `json:"message"`
	Error   string                       `json:"error"`
	Issues  []fontschema.ValidationIssue `json:"issues,omitempty"`
}

// schemaError carries schema issues alongside the validation error.
type schemaError struct {
	*font.ValidationError
	issues []fontschema.ValidationIssue
}

func (e *schemaError) Unwrap() error { return e.ValidationError }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case font.IsValidation(err):
		return http.StatusBadRequest
	case font.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	body := errorBody{Message: message, Error: err.Error()}

	var se *schemaError
	if errors.As(err, &se) {
		body.Issues = se.issues
	}
	if status == http.StatusInternalServerError {
		s.logger.Error(message, "error", err)
	}
	writeJSON(w, status, body)
}
