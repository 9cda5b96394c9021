package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint,omitempty"`
	Message    string `json:"message"`
}

// ErrorResponse defines the standard error response structure. Detail
// carries the human-readable message; Fields enumerates the failing
// fields for validation errors.
type ErrorResponse struct {
	Detail  string       `json:"detail"`
	Fields  []FieldError `json:"fields,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status
// code and detail message. It also sets the TraceID from the request
// context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	RespondWithFieldErrors(w, r, status, detail, nil)
}

// RespondWithFieldErrors writes a JSON error response enumerating the
// failing fields. 5xx responses are logged at ERROR level, everything
// else at DEBUG.
func RespondWithFieldErrors(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	detail string,
	fields []FieldError,
) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Detail:  detail,
		Fields:  fields,
		TraceID: traceID,
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("detail", detail),
		slog.Int("field_errors", len(fields)),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, errorResponse)
}
