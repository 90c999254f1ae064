package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./datasets", cfg.Datasets.Dir)
	assert.Equal(t, "gares-de-voyageurs.csv", cfg.Datasets.Stations)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 300*time.Second, cfg.Cache.ViewCacheTTL)
	assert.Equal(t, 16, cfg.Datasets.CacheSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadFile_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nCORS_ALLOW_ORIGINS=https://track.example,http://localhost:3000\nDATASET_DIR=/data\nREDIS_ENABLED=true\nVIEW_CACHE_TTL=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	assert.Equal(t, []string{"https://track.example", "http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.ViewCacheTTL)
	assert.Equal(t, "/data/frequentation-gares.csv", cfg.Datasets.DatasetPath(cfg.Datasets.Frequentation))
}

func TestDatasetPath_Absolute(t *testing.T) {
	d := DatasetConfig{Dir: "./datasets"}
	assert.Equal(t, "/srv/lines.geojson", d.DatasetPath("/srv/lines.geojson"))
}
