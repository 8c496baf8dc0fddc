package config

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidChannel represents a channels entry that cannot be mapped
type InvalidChannel struct {
	Index  int
	Reason string
}

// ValidationErrors collects all validation errors
type ValidationErrors struct {
	InvalidBackend  string
	InvalidLogLevel string
	InvalidFields   []string
	InvalidChannels []InvalidChannel
}

// HasErrors returns true if any validation errors exist
func (e *ValidationErrors) HasErrors() bool {
	return e.InvalidBackend != "" || e.InvalidLogLevel != "" ||
		len(e.InvalidFields) > 0 || len(e.InvalidChannels) > 0
}

func (e *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")

	if e.InvalidBackend != "" {
		fmt.Fprintf(&sb, "\nInvalid backend.kind: %q (valid: %s)\n", e.InvalidBackend, sortedKeys(ValidBackends))
	}

	if e.InvalidLogLevel != "" {
		fmt.Fprintf(&sb, "\nInvalid logging.level: %q (valid: %s)\n", e.InvalidLogLevel, sortedKeys(ValidLogLevels))
	}

	if len(e.InvalidFields) > 0 {
		sb.WriteString("\nOut of range:\n")
		for _, f := range e.InvalidFields {
			fmt.Fprintf(&sb, "  - %s\n", f)
		}
	}

	if len(e.InvalidChannels) > 0 {
		sb.WriteString("\nInvalid channels:\n")
		for _, ic := range e.InvalidChannels {
			fmt.Fprintf(&sb, "  - channels[%d]: %s\n", ic.Index, ic.Reason)
		}
	}

	return sb.String()
}

func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if !ValidBackends[c.Backend.Kind] {
		errs.InvalidBackend = c.Backend.Kind
	}
	if !ValidLogLevels[strings.ToLower(c.Logging.Level)] {
		errs.InvalidLogLevel = c.Logging.Level
	}

	atLeast := func(name string, got, min int) {
		if got < min {
			errs.InvalidFields = append(errs.InvalidFields, fmt.Sprintf("%s must be >= %d, got %d", name, min, got))
		}
	}
	atLeast("http.timeout_sec", c.HTTP.TimeoutSec, 1)
	atLeast("http.rate_per_second", c.HTTP.RatePerSecond, 1)
	atLeast("http.retry_count", c.HTTP.RetryCount, 1)
	atLeast("http.retry_delay_ms", c.HTTP.RetryDelayMs, 0)
	atLeast("session.join_timeout_sec", c.Session.JoinTimeoutSec, 1)
	atLeast("receiver.socket_attempts", c.Receiver.SocketAttempts, 1)
	atLeast("receiver.socket_backoff_ms", c.Receiver.SocketBackoffMs, 0)
	atLeast("receiver.keepalive_sec", c.Receiver.KeepaliveSec, 1)

	validateChannels(errs, c.Channels)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateChannels(errs *ValidationErrors, channels []ChannelConfig) {
	type key struct{ network, service uint16 }
	seen := make(map[key]int, len(channels))

	for i, ch := range channels {
		if ch.ServiceID == 0 {
			errs.InvalidChannels = append(errs.InvalidChannels, InvalidChannel{Index: i, Reason: "service_id is required"})
			continue
		}
		if strings.TrimSpace(ch.BroadcastID) == "" {
			errs.InvalidChannels = append(errs.InvalidChannels, InvalidChannel{Index: i, Reason: "broadcast_id is required"})
			continue
		}
		k := key{ch.NetworkID, ch.ServiceID}
		if prev, ok := seen[k]; ok {
			errs.InvalidChannels = append(errs.InvalidChannels, InvalidChannel{
				Index:  i,
				Reason: fmt.Sprintf("duplicates channels[%d] (%d/%d)", prev, ch.NetworkID, ch.ServiceID),
			})
			continue
		}
		seen[k] = i
	}
}

func sortedKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
