package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("ADMIN_PASSWORD", "skalette2026")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 15, cfg.AccessTTLMin)
}

func TestLoadSQLiteBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/res.db")

	cfg := Load()
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/res.db", cfg.SQLitePath)
}

func TestLoadMySQLBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", "mysql")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "reservations")

	cfg := Load()
	assert.Equal(t, BackendMySQL, cfg.Backend)
	assert.Equal(t, "app", cfg.DBUser)
	assert.Empty(t, cfg.DBPass, "password may legitimately be empty")
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, 3*time.Second, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.Equal(t, 15*time.Second, cfg.TTL)
	assert.True(t, cfg.Methods["GET"])
}
