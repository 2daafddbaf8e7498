package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.ImportAtomic)
	assert.EqualValues(t, 10<<20, cfg.ImportMaxBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres://postgres:@localhost:5432/commissioning?sslmode=disable", cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("PORT", ":9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("IMPORT_ATOMIC", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:test.db", cfg.DSN())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.ImportAtomic)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.Otel.Enabled)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestPostgresDSNEscapesPassword(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5432", User: "app", Password: "p@ss/w", Name: "c", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%2Fw@db:5432/c?sslmode=require", p.DSN())
}
