package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg := DefaultConfig()
		cfg.SourcePath = "/rec/a.ts"
		cfg.Template = "$SCtitle$"
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
	})

	t.Run("out-of-range tuning coerced", func(t *testing.T) {
		cfg := base()
		cfg.SearchLen = 0
		cfg.TitleOffset = -3
		cfg.HTTPTimeoutSec = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 4, cfg.SearchLen)
		assert.Equal(t, 0, cfg.TitleOffset)
		assert.Equal(t, 30, cfg.HTTPTimeoutSec)
	})

	t.Run("service URL scheme required", func(t *testing.T) {
		cfg := base()
		cfg.ServiceURL = "ftp://cal.example"
		assert.Error(t, cfg.Validate())
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		cfg := base()
		cfg.ServiceURL = "https://cal.example/"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://cal.example", cfg.ServiceURL)
	})

	t.Run("missing positionals rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.Validate())
	})

	t.Run("check mode needs no positionals", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CheckOnly = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad color mode rejected", func(t *testing.T) {
		cfg := base()
		cfg.ColorMode = "sometimes"
		assert.Error(t, cfg.Validate())
	})
}

func TestDataFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", BroadcasterFile), cfg.DataFile(BroadcasterFile))
	assert.Equal(t, filepath.Join("/data", CacheFile), cfg.DataFile(CacheFile))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RECNAME_SERVICE_URL", "http://cal.test")
	t.Setenv("RECNAME_DATA_DIR", "/envdata")
	t.Setenv("RECNAME_HTTP_TIMEOUT", "7")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	assert.Equal(t, "http://cal.test", cfg.ServiceURL)
	assert.Equal(t, "/envdata", cfg.DataDir)
	assert.Equal(t, 7, cfg.HTTPTimeoutSec)

	t.Setenv("RECNAME_HTTP_TIMEOUT", "not a number")
	cfg = DefaultConfig()
	ApplyEnv(&cfg)
	assert.Equal(t, 30, cfg.HTTPTimeoutSec)
}
