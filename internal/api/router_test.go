package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perlow/catalog-api/internal/store"
)

// TestRouter_ItemRouteSpecificity pins down the resolution of the
// overlapping item routes: the static listing path and the parameter
// path are matched by specificity, so neither shadows the other.
func TestRouter_ItemRouteSpecificity(t *testing.T) {
	router := newTestRouter(t)

	t.Run("trailing_slash_hits_the_listing", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/items/", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var records []store.ItemName
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 3)
	})

	t.Run("id_segment_hits_the_single_item_route", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/items/"+store.SeedItemID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, store.SeedItemID.String(), decodeBody(t, w)["item_id"])
	})
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		// Generate at least one request so the counters exist.
		doJSON(t, router, http.MethodGet, "/", nil)

		w := doJSON(t, router, http.MethodGet, "/metrics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "catalog_api_http_requests_total")
	})
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/no/such/route", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
