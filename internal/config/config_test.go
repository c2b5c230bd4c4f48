package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkart/storefront/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, config.MirrorFile, cfg.Mirror.Backend)
	assert.Equal(t, "data", cfg.Mirror.Dir)
	assert.Equal(t, config.GatewayMock, cfg.Gateway.Mode)
	assert.Equal(t, 300*time.Millisecond, cfg.Gateway.MinDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Gateway.MaxDelay)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":9090")
	t.Setenv("STOREFRONT_NOTIFICATION_TTL", "2s")
	t.Setenv("STOREFRONT_MIRROR_BACKEND", config.MirrorMemory)
	t.Setenv("STOREFRONT_GATEWAY_MODE", config.GatewayHTTP)
	t.Setenv("STOREFRONT_GATEWAY_BASE_URL", "http://backend:3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.NotificationTTL)
	assert.Equal(t, config.MirrorMemory, cfg.Mirror.Backend)
	assert.Equal(t, config.GatewayHTTP, cfg.Gateway.Mode)
	assert.Equal(t, "http://backend:3000", cfg.Gateway.BaseURL)
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":7070\"\nmirror:\n  backend: redis\n  redis_addr: \"redis:6379\"\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("STOREFRONT_CONFIG_FILE", file)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, config.MirrorRedis, cfg.Mirror.Backend)
	assert.Equal(t, "redis:6379", cfg.Mirror.RedisAddr)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Setenv("STOREFRONT_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load()
	require.Error(t, err)
}
