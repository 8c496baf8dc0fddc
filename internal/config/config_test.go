package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "livecomment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendNiconico, cfg.Backend.Kind)
	assert.Equal(t, "https://live.nicovideo.jp/watch/", cfg.Niconico.WatchURL)
	assert.Equal(t, "wss://nx-jikkyo.tsukumijima.net", cfg.NXJikkyo.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout())
	assert.Equal(t, 500*time.Millisecond, cfg.HTTP.RetryDelay())
	assert.Equal(t, 5*time.Second, cfg.Session.JoinTimeout())
	assert.Equal(t, 5, cfg.Receiver.SocketAttempts)
	assert.Equal(t, 5*time.Second, cfg.Receiver.SocketBackoff())
	assert.Equal(t, time.Minute, cfg.Receiver.KeepAlive())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Channels)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend:
  kind: nxjikkyo
nxjikkyo:
  base_url: wss://jikkyo.example
  comment_url: wss://comments.example
receiver:
  socket_attempts: 3
channels:
  - network_id: 32736
    service_id: 1024
    broadcast_id: jk1
  - network_id: 32737
    service_id: 1032
    broadcast_id: jk2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendNXJikkyo, cfg.Backend.Kind)
	assert.Equal(t, "wss://comments.example", cfg.NXJikkyo.CommentURL)
	assert.Equal(t, 3, cfg.Receiver.SocketAttempts)
	require.Len(t, cfg.Channels, 2)
	assert.Equal(t, ChannelConfig{NetworkID: 32736, ServiceID: 1024, BroadcastID: "jk1"}, cfg.Channels[0])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LIVECOMMENT_VIEWER_USER_ID", "12345")
	t.Setenv("LIVECOMMENT_BACKEND_KIND", "nxjikkyo")
	t.Setenv("LIVECOMMENT_SERVER_ADDR", "127.0.0.1:9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "12345", cfg.Viewer.UserID)
	assert.Equal(t, BackendNXJikkyo, cfg.Backend.Kind)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoadInvalidBackend(t *testing.T) {
	path := writeConfig(t, "backend:\n  kind: twitter\n")

	_, err := Load(path)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "twitter", verrs.InvalidBackend)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
