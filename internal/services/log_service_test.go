package services

import (
	"os"
	"path/filepath"
	"testing"

	"mscategory/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogService(t *testing.T) {
	cfg := &config.Configuration{}
	cfg.Server.LogConfig = config.LogConfig{Level: "DEBUG", Format: "json", Output: "stdout"}

	logService, cleanup, err := NewLogService(cfg)

	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, logrus.DebugLevel, logService.Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logService.Log.Formatter)
}

func TestNewLogService_FileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Configuration{}
	cfg.Server.LogConfig = config.LogConfig{Level: "info", Format: "text", Output: "file", LogPath: dir + "/"}

	logService, cleanup, err := NewLogService(cfg)
	require.NoError(t, err)
	logService.Log.Info("hello")
	file, ok := logService.Log.Out.(*os.File)
	require.True(t, ok)
	cleanup()

	_, err = file.WriteString("after cleanup")
	assert.ErrorIs(t, err, os.ErrClosed)
	logService.Log.Info("dropped")

	matches, err := filepath.Glob(filepath.Join(dir, "mscategory-*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello")
	assert.NotContains(t, string(content), "dropped")
}

func TestNewLogService_FileOutputWithoutPath(t *testing.T) {
	cfg := &config.Configuration{}
	cfg.Server.LogConfig = config.LogConfig{Output: "file"}

	_, _, err := NewLogService(cfg)

	assert.Error(t, err)
}
