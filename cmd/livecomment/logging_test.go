package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgnsrekt/livecomment/internal/config"
)

func TestNewLogger_WritesToErrOut(t *testing.T) {
	var errOut bytes.Buffer
	l, closeLog, err := newLogger(&errOut, false, &config.LoggingConfig{Level: "warn"}, time.Now())
	require.NoError(t, err)
	defer closeLog()

	l.Info("dropped below level")
	l.Warn("kept")
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(errOut.Bytes()), &entry), errOut.String())
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	var errOut bytes.Buffer
	l, closeLog, err := newLogger(&errOut, true, &config.LoggingConfig{Level: "error"}, time.Now())
	require.NoError(t, err)
	defer closeLog()

	l.Debug("debug line")
	assert.Contains(t, errOut.String(), "debug line")
}

func TestNewLogger_FileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	var errOut bytes.Buffer
	l, closeLog, err := newLogger(&errOut, false, &config.LoggingConfig{Enabled: true, Directory: dir, Level: "info"}, at)
	require.NoError(t, err)

	l.Info("to both")
	require.NoError(t, l.Sync())
	closeLog()

	data, err := os.ReadFile(filepath.Join(dir, "livecomment_2024-05-01_12-30-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, errOut.String(), "to both")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, _, err := newLogger(&bytes.Buffer{}, false, &config.LoggingConfig{Level: "loud"}, time.Now())
	assert.Error(t, err)
}
