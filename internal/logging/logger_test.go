package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunatsu/recname/internal/config"
)

func TestNewLoggerNoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLoggerWithFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "recname.log")
	cfg.Verbose = true

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	l.Debug("debug line")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.Contains(t, string(b), "[DEBUG] debug line")
}

func TestDebugGatedOnVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "recname.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Warn("shown")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "[WARN] shown")
}
