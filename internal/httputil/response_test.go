package httputil_test

import (
	"math"
	"strings"
	"net/http"
	"net/http/httptest"
	"testing"

	"academic-service/internal/httputil"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	httputil.RespondWithJSON(w, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestRespondWithJSON_MarshalFailure(t *testing.T) {
	w := httptest.NewRecorder()

	httputil.RespondWithJSON(w, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	httputil.NotFound(w, httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alice"}`))
		var got payload
		assert.NoError(t, httputil.DecodeJSON(req, &got))
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", http.NoBody)
		var got payload
		assert.NoError(t, httputil.DecodeJSON(req, &got))
		assert.Empty(t, got.Name)
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var got payload
		assert.ErrorIs(t, httputil.DecodeJSON(req, &got), httputil.ErrInvalidBody)
	})
}
