package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	metrics := []prometheus.Collector{
		ChatsReceived,
		SessionRestarts,
		OffAir,
		ReconnectAttempts,
		ControlReconnects,
		CircuitBreakerState,
		PostResults,
		PostDuration,
		StreamClients,
		StreamDropped,
	}

	for _, metric := range metrics {
		desc := make(chan *prometheus.Desc, 16)
		metric.Describe(desc)
		close(desc)

		require.NotNil(t, <-desc, "metric should have a valid descriptor")
	}
}

func TestCounterVecMetrics(t *testing.T) {
	tests := []struct {
		name    string
		metric  *prometheus.CounterVec
		labels  prometheus.Labels
		incBy   int
		wantVal float64
	}{
		{
			name:    "chats received",
			metric:  ChatsReceived,
			labels:  prometheus.Labels{"backend": "niconico"},
			incBy:   7,
			wantVal: 7,
		},
		{
			name:    "session restarts",
			metric:  SessionRestarts,
			labels:  prometheus.Labels{"backend": "nxjikkyo"},
			incBy:   2,
			wantVal: 2,
		},
		{
			name:    "post results",
			metric:  PostResults,
			labels:  prometheus.Labels{"outcome": "INVALID_MESSAGE"},
			incBy:   1,
			wantVal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metric.Reset()

			for i := 0; i < tt.incBy; i++ {
				tt.metric.With(tt.labels).Inc()
			}

			assert.Equal(t, tt.wantVal, testutil.ToFloat64(tt.metric.With(tt.labels)))
		})
	}
}

func TestGaugeMetrics(t *testing.T) {
	OffAir.WithLabelValues("niconico").Set(1)
	assert.Equal(t, float64(1), testutil.ToFloat64(OffAir.WithLabelValues("niconico")))

	CircuitBreakerState.WithLabelValues("comment-http").Set(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("comment-http")))

	StreamClients.Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(StreamClients))
}

func TestMetricNaming(t *testing.T) {
	expected := `
# HELP livecomment_socket_reconnect_attempts_total Total comment socket reconnect attempts
# TYPE livecomment_socket_reconnect_attempts_total counter
livecomment_socket_reconnect_attempts_total 1
`
	before := testutil.ToFloat64(ReconnectAttempts)
	ReconnectAttempts.Inc()
	if before != 0 {
		t.Skip("counter already incremented by another test")
	}

	require.NoError(t, testutil.CollectAndCompare(ReconnectAttempts, strings.NewReader(expected)))
}
