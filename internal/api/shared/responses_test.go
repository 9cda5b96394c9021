package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(w, r, http.StatusNotFound, "Item not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Item not found", body.Detail)
	assert.Empty(t, body.Fields)
}

func TestRespondWithFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/items/", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	fields := []FieldError{
		{Field: "price", Constraint: "gt", Message: "must be greater than zero"},
		{Field: "name", Constraint: "required", Message: "required field"},
	}
	RespondWithFieldErrors(w, r, http.StatusUnprocessableEntity, "Validation failed", fields)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Detail)
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "price", body.Fields[0].Field)
	assert.Equal(t, GetTraceID(r.Context()), body.TraceID)
	assert.NotEmpty(t, body.TraceID)
}
