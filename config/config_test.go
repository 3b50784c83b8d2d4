package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "https://thajanwar.onrender.com", cfg.CatalogAPI.BaseURL)
	assert.Equal(t, []string{"http://localhost:5000"}, cfg.CatalogAPI.FallbackURLs)
	assert.Equal(t, 3, cfg.CatalogAPI.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Draft.LockTTL)
	assert.Equal(t, 72*time.Hour, cfg.Draft.MaxAge)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("CATALOG_API_FALLBACK_URLS", " http://a:1 , ,http://b:2")
	t.Setenv("CATALOG_API_TIMEOUT", "2s")
	t.Setenv("CATALOG_API_MAX_RETRIES", "not-a-number")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	assert.Equal(t, []string{"http://a:1", "http://b:2"}, cfg.CatalogAPI.FallbackURLs)
	assert.Equal(t, 2*time.Second, cfg.CatalogAPI.Timeout)
	assert.Equal(t, 3, cfg.CatalogAPI.MaxRetries)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.True(t, cfg.Logger.DisableCaller)
}

func TestGetEnvSlice_Empty(t *testing.T) {
	t.Setenv("CATALOG_API_FALLBACK_URLS", "")
	assert.Empty(t, LoadEnv().CatalogAPI.FallbackURLs)
}
