package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, 10*time.Second, cfg.Geo.Timeout)
	assert.Nil(t, cfg.Geo.Device)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEO_TIMEOUT", "3s")
	t.Setenv("GEO_DEVICE_LAT", "28.98")
	t.Setenv("GEO_DEVICE_LNG", "77.70")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Geo.Timeout)
	require.NotNil(t, cfg.Geo.Device)
	assert.InDelta(t, 28.98, cfg.Geo.Device.Latitude, 1e-9)
	assert.InDelta(t, 77.70, cfg.Geo.Device.Longitude, 1e-9)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsHalfDevicePosition(t *testing.T) {
	t.Setenv("GEO_DEVICE_LAT", "28.98")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeDevice(t *testing.T) {
	t.Setenv("GEO_DEVICE_LAT", "95")
	t.Setenv("GEO_DEVICE_LNG", "77")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
