package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session Metrics
var (
	// ChatsReceived counts chats handed to the poll caller, by backend
	ChatsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livecomment_chats_received_total",
			Help: "Total chats delivered to the poll caller by backend",
		},
		[]string{"backend"},
	)

	// SessionRestarts counts broadcast id transitions that replaced a session
	SessionRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livecomment_session_restarts_total",
			Help: "Total session restarts by backend",
		},
		[]string{"backend"},
	)

	// OffAir is 1 while the current session reports the broadcast off air
	OffAir = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "livecomment_off_air",
			Help: "Whether the current broadcast is off air (1) or streaming (0)",
		},
		[]string{"backend"},
	)
)

// Transport Metrics
var (
	// ReconnectAttempts counts comment socket dial attempts after the first
	ReconnectAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "livecomment_socket_reconnect_attempts_total",
			Help: "Total comment socket reconnect attempts",
		},
	)

	// ControlReconnects counts server-requested control socket reconnects
	ControlReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "livecomment_control_reconnects_total",
			Help: "Total server-requested control socket reconnects",
		},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// Post Metrics
var (
	// PostResults counts comment posts by outcome
	PostResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livecomment_post_results_total",
			Help: "Total comment posts by outcome (ok or the rejection code)",
		},
		[]string{"outcome"},
	)

	// PostDuration tracks time from send to server acknowledgement
	PostDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "livecomment_post_duration_seconds",
			Help:    "Time between sending a post frame and receiving its result",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// SSE Metrics
var (
	// StreamClients tracks connected /chats/stream clients
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "livecomment_stream_clients",
			Help: "Number of connected chat stream clients",
		},
	)

	// StreamDropped counts chats dropped for slow stream clients
	StreamDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "livecomment_stream_dropped_total",
			Help: "Total chats dropped because a stream client was too slow",
		},
	)
)
