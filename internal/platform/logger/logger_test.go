package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"database_dsn", "postgres://u:p@h/db", "path", "/api/areas", "dangling"})
	require.Len(t, out, 5)
	assert.Equal(t, "[REDACTED]", out[1])
	assert.Equal(t, "/api/areas", out[3])
	assert.Equal(t, "dangling", out[4])
}

func TestNewWithFileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")
	log, err := NewWithOptions(Options{Mode: "production", File: path})
	require.NoError(t, err)

	log.With("component", "test").Info("hello", "rows", 3)
	log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))
	assert.Contains(t, line, `"msg":"hello"`)
	assert.Contains(t, line, `"component":"test"`)
	assert.Contains(t, line, `"rows":3`)
}
