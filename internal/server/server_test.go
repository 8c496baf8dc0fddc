package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
)

type fakeInfo struct{}

func (fakeInfo) GetInformationText() string { return "backend: niconico\nbroadcast: lv1" }
func (fakeInfo) BroadcastID() string        { return "lv1" }
func (fakeInfo) OffAir() bool               { return false }

func newTestServer(t *testing.T) (*httptest.Server, *Broadcaster) {
	srv, b, _ := newTestServerWithHub(t)
	return srv, b
}

func newTestServerWithHub(t *testing.T) (*httptest.Server, *Broadcaster, *Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBroadcaster(fakeInfo{}, zap.NewNop())
	hub := NewHub(fakeInfo{}, zap.NewNop())
	go hub.Run(ctx)
	srv := httptest.NewServer(NewRouter(fakeInfo{}, b, hub, zap.NewNop()))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv, b, hub
}

func TestInfo(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/info")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var info Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "lv1", info.BroadcastID)
	assert.False(t, info.OffAir)
	assert.Contains(t, info.Text, "backend: niconico")
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// readEvent reads one SSE event and returns its type and data line.
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var event, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return event, data
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestChatStream(t *testing.T) {
	srv, b := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/chats/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	event, data := readEvent(t, r)
	require.Equal(t, "hello", event)
	var hello Hello
	require.NoError(t, json.Unmarshal([]byte(data), &hello))
	assert.NotEmpty(t, hello.ClientID)
	assert.Equal(t, "lv1", hello.Info.BroadcastID)

	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	b.Publish([]comment.Chat{{
		Time:     time.UnixMilli(1700000000123),
		Text:     "hello",
		Position: comment.PositionTop,
		Size:     comment.SizeLarge,
		Color:    comment.White,
		ID:       7,
	}})

	event, data = readEvent(t, r)
	require.Equal(t, "chats", event)
	var batch ChatBatch
	require.NoError(t, json.Unmarshal([]byte(data), &batch))
	assert.Equal(t, uint64(1), batch.Sequence)
	require.Len(t, batch.Chats, 1)
	assert.Equal(t, ChatEvent{
		Time:     1700000000123,
		Text:     "hello",
		Position: comment.PositionTop.String(),
		Size:     comment.SizeLarge.String(),
		Color:    "#FFFFFF",
		ID:       7,
	}, batch.Chats[0])

	cancel()
	require.Eventually(t, func() bool { return b.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestPublishDropsForFullClient(t *testing.T) {
	b := NewBroadcaster(fakeInfo{}, zap.NewNop())
	slow := &sseClient{dataCh: make(chan []byte, 1)}
	b.clients[slow] = true

	b.Publish([]comment.Chat{{Text: "a"}})
	b.Publish([]comment.Chat{{Text: "b"}})
	b.Publish(nil)

	require.Len(t, slow.dataCh, 1)
	assert.Contains(t, string(<-slow.dataCh), `"text":"a"`)
}

func TestPollerDeliversAndSurvivesErrors(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var mu sync.Mutex
	var got []string
	calls := 0
	p := &Poller{
		Clock:    clock,
		Interval: time.Second,
		Poll: func(ctx context.Context, now time.Time) ([]comment.Chat, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if calls == 1 {
				return nil, errors.New("collect failed")
			}
			return []comment.Chat{{Text: now.Format(time.RFC3339)}}, nil
		},
		Sink: func(chats []comment.Chat) {
			mu.Lock()
			defer mu.Unlock()
			for _, c := range chats {
				got = append(got, c.Text)
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestChatWebSocket(t *testing.T) {
	srv, _, hub := newTestServerWithHub(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/chats/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	var hello struct {
		Type string `json:"type"`
		Data Hello  `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "hello", hello.Type)
	assert.Equal(t, "lv1", hello.Data.Info.BroadcastID)

	hub.Publish([]comment.Chat{{Text: "over ws", Color: comment.White}})

	var msg struct {
		Type string    `json:"type"`
		Data ChatBatch `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "chats", msg.Type)
	require.Len(t, msg.Data.Chats, 1)
	assert.Equal(t, "over ws", msg.Data.Chats[0].Text)
}

func TestHubDisconnectsSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(fakeInfo{}, zap.NewNop())
	go hub.Run(ctx)

	slow := &wsClient{hub: hub, send: make(chan []byte, 1), id: "slow"}
	slow.send <- []byte("pending")
	hub.register <- slow

	hub.Publish([]comment.Chat{{Text: "a"}})

	assert.Equal(t, "pending", string(<-slow.send))
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-slow.send:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
