package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"academic-service/internal/config"
	"academic-service/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "test",
		Server: config.ServerConfig{
			Port:        "0",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Storage: config.StorageConfig{CourseCapacity: 3, Seed: true},
	}
}

func setupApp(t *testing.T) *App {
	t.Helper()
	a := NewWithConfig(testConfig(), logger.Discard())
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })
	return a
}

func serve(a *App, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func TestApp_Routes(t *testing.T) {
	t.Run("SeededStudents", func(t *testing.T) {
		a := setupApp(t)

		w := serve(a, http.MethodGet, "/students")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Students []map[string]any `json:"students"`
			Total    int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Total)
	})

	t.Run("SeededCourses", func(t *testing.T) {
		a := setupApp(t)

		w := serve(a, http.MethodGet, "/courses?limit=2")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Courses []map[string]any `json:"courses"`
			Total   int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Courses, 2)
		assert.Equal(t, 3, body.Total)
	})

	t.Run("SeedDisabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Storage.Seed = false
		a := NewWithConfig(cfg, logger.Discard())

		w := serve(a, http.MethodGet, "/students")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"students":[],"total":0}`, w.Body.String())
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		a := setupApp(t)

		w := serve(a, http.MethodGet, "/unknown")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
	})

	t.Run("UnsupportedMethod", func(t *testing.T) {
		a := setupApp(t)

		w := serve(a, http.MethodPatch, "/students")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
	})

	t.Run("PanicBecomesInternalServerError", func(t *testing.T) {
		a := setupApp(t)
		a.router.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

		w := serve(a, http.MethodGet, "/boom")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())

		metricsBody := serve(a, http.MethodGet, "/metrics").Body.String()
		assert.Contains(t, metricsBody, `academic_service_http_requests_total{method="GET",route="/boom",status="500"} 1`)
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		a := setupApp(t)
		req := httptest.NewRequest(http.MethodOptions, "/students", http.NoBody)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		a.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Health", func(t *testing.T) {
		a := setupApp(t)

		w := serve(a, http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Docs", func(t *testing.T) {
		a := setupApp(t)

		assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/api-docs").Code)
		assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/swagger.json").Code)
	})

	t.Run("MetricsCountRequestsByRoute", func(t *testing.T) {
		a := setupApp(t)
		serve(a, http.MethodGet, "/students/1")

		w := serve(a, http.MethodGet, "/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `route="/students/{id}"`)
	})
}

func TestApp_ShutdownWithoutRun(t *testing.T) {
	a := NewWithConfig(testConfig(), logger.Discard())
	assert.NoError(t, a.Shutdown(context.Background()))
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()

	require.Len(t, info, 6)
	assert.Equal(t, "version", info[0])
	assert.Equal(t, Version, info[1])
}
