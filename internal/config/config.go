package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Backend  BackendConfig   `mapstructure:"backend"`
	Niconico NiconicoConfig  `mapstructure:"niconico"`
	NXJikkyo NXJikkyoConfig  `mapstructure:"nxjikkyo"`
	HTTP     HTTPConfig      `mapstructure:"http"`
	Session  SessionConfig   `mapstructure:"session"`
	Receiver ReceiverConfig  `mapstructure:"receiver"`
	Viewer   ViewerConfig    `mapstructure:"viewer"`
	Channels []ChannelConfig `mapstructure:"channels"`
	Server   ServerConfig    `mapstructure:"server"`
	Logging  LoggingConfig   `mapstructure:"logging"`
}

type BackendConfig struct {
	Kind string `mapstructure:"kind"`
}

type NiconicoConfig struct {
	WatchURL   string `mapstructure:"watch_url"`
	ChannelURL string `mapstructure:"channel_url"`
}

type NXJikkyoConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	CommentURL string `mapstructure:"comment_url"`
}

type HTTPConfig struct {
	TimeoutSec    int    `mapstructure:"timeout_sec"`
	RatePerSecond int    `mapstructure:"rate_per_second"`
	RetryCount    int    `mapstructure:"retry_count"`
	RetryDelayMs  int    `mapstructure:"retry_delay_ms"`
	UserAgent     string `mapstructure:"user_agent"`
}

func (c HTTPConfig) Timeout() time.Duration { return time.Duration(c.TimeoutSec) * time.Second }
func (c HTTPConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

type SessionConfig struct {
	JoinTimeoutSec int `mapstructure:"join_timeout_sec"`
}

func (c SessionConfig) JoinTimeout() time.Duration {
	return time.Duration(c.JoinTimeoutSec) * time.Second
}

type ReceiverConfig struct {
	SocketAttempts  int `mapstructure:"socket_attempts"`
	SocketBackoffMs int `mapstructure:"socket_backoff_ms"`
	KeepaliveSec    int `mapstructure:"keepalive_sec"`
}

func (c ReceiverConfig) SocketBackoff() time.Duration {
	return time.Duration(c.SocketBackoffMs) * time.Millisecond
}

func (c ReceiverConfig) KeepAlive() time.Duration {
	return time.Duration(c.KeepaliveSec) * time.Second
}

type ViewerConfig struct {
	UserID string `mapstructure:"user_id"`
}

// ChannelConfig maps one broadcast service to the broadcast airing on it.
type ChannelConfig struct {
	NetworkID   uint16 `mapstructure:"network_id"`
	ServiceID   uint16 `mapstructure:"service_id"`
	BroadcastID string `mapstructure:"broadcast_id"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LoggingConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Directory string `mapstructure:"directory"`
	Level     string `mapstructure:"level"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("backend.kind", BackendNiconico)
	v.SetDefault("niconico.watch_url", "https://live.nicovideo.jp/watch/")
	v.SetDefault("niconico.channel_url", "https://ch.nicovideo.jp/")
	v.SetDefault("nxjikkyo.base_url", "wss://nx-jikkyo.tsukumijima.net")
	v.SetDefault("nxjikkyo.comment_url", "")
	v.SetDefault("http.timeout_sec", 30)
	v.SetDefault("http.rate_per_second", 2)
	v.SetDefault("http.retry_count", 3)
	v.SetDefault("http.retry_delay_ms", 500)
	v.SetDefault("http.user_agent", DefaultUserAgent)
	v.SetDefault("session.join_timeout_sec", 5)
	v.SetDefault("receiver.socket_attempts", 5)
	v.SetDefault("receiver.socket_backoff_ms", 5000)
	v.SetDefault("receiver.keepalive_sec", 60)
	v.SetDefault("viewer.user_id", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("LIVECOMMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// the viewer id is usually injected by the host rather than a file
	_ = v.BindEnv("viewer.user_id", "LIVECOMMENT_VIEWER_USER_ID")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("livecomment")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
