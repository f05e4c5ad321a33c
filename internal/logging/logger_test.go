package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FileIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lessonloop.log")
	logger, err := New(Options{File: path, Level: "info"})
	require.NoError(t, err)

	logger.Info("run started", zap.Int("grade", 4))
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "run started", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 4, entry["grade"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Console: true, ConsoleWriter: &buf, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("offline reply")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "offline reply")
}

func TestNew_Nop(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(Options{File: path, Level: "debug", Console: true, ConsoleLevel: "warn", ConsoleWriter: &buf})
	require.NoError(t, err)

	logger.Info("file only")
	logger.Warn("both")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "file only")
	assert.Contains(t, buf.String(), "both")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
}
