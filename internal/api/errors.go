package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/perlow/catalog-api/internal/api/shared"
	"github.com/perlow/catalog-api/internal/domain"
	"github.com/perlow/catalog-api/internal/metrics"
	"github.com/perlow/catalog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrItemNotFound):
		return http.StatusNotFound

	// Shape and constraint violations
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrUnknownModelName):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, domain.ErrUnknownModelName):
		return "Unknown model name"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return "Validation failed"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for an error bubbling out of a
// handler body: structured 422 for validation failures, sanitized
// message otherwise.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusUnprocessableEntity {
		RespondWithValidationError(w, r, err)
		return
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}

// RespondWithDecodeError maps a body decode failure onto the error
// contract. Wrong-typed fields and malformed JSON are shape violations
// and answered with the structured 422; plain 400 is reserved for
// bodies that cannot be read at all.
func RespondWithDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		respondWithFieldList(w, r, []shared.FieldError{
			{Field: field, Constraint: "type", Message: "invalid type"},
		})
		return
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		respondWithFieldList(w, r, []shared.FieldError{
			{Field: "body", Message: "must be valid JSON"},
		})
		return
	}

	shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
}

// RespondWithValidationError writes the standard 422 response for any
// rejected input, enumerating the failing fields, and records the
// validation-failure metric for the matched route.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, err error) {
	respondWithFieldList(w, r, fieldErrorsFrom(err))
}

func respondWithFieldList(w http.ResponseWriter, r *http.Request, fields []shared.FieldError) {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		metrics.RecordValidationFailure(rctx.RoutePattern())
	}
	shared.RespondWithFieldErrors(
		w, r,
		http.StatusUnprocessableEntity,
		"Validation failed",
		fields,
	)
}

// fieldErrorsFrom converts a validation error into the per-field list
// carried by the 422 body. Handles both validator.ValidationErrors from
// struct validation and single domain.ValidationError values from the
// parameter schemas.
func fieldErrorsFrom(err error) []shared.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]shared.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, shared.FieldError{
				Field:      fieldPath(fe),
				Constraint: fe.Tag(),
				Message:    validationTagMessage(fe.Tag()),
			})
		}
		return fields
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return []shared.FieldError{{Field: verr.Field, Message: verr.Message}}
	}

	return nil
}

// fieldPath strips the root struct name from the validator namespace so
// nested failures read as "image.url" rather than "Item.image.url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be greater than zero"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
