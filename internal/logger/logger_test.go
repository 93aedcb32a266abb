package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"academic-service/internal/logger"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONIncludesRequestID(t *testing.T) {
	t.Setenv("ENV", "prod")

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	log.InfoContext(ctx, "creating student", "email", "alice@example.com")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "creating student", record["msg"])
	assert.Equal(t, "req-42", record["request_id"])
	assert.Equal(t, "alice@example.com", record["email"])
}

func TestLogger_TextColorsErrors(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("KUBERNETES_SERVICE_HOST", "")
	require.NoError(t, os.Unsetenv("KUBERNETES_SERVICE_HOST"))

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error("boom")
	assert.Contains(t, buf.String(), "\x1b[31mboom\x1b[0m")

	buf.Reset()
	log.Info("fine")
	assert.NotContains(t, buf.String(), "\x1b[31m")
}
