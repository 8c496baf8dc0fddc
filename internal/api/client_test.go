package api

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

func watchPage(wsURL, status string, openTime int64) string {
	props := fmt.Sprintf(`{"site":{"relive":{"webSocketUrl":%q}},"program":{"status":%q,"openTime":%d}}`, wsURL, status, openTime)
	return `<html><head><script id="embedded-data" data-props="` + html.EscapeString(props) + `"></script></head></html>`
}

func newTestClient(serverURL string, retryCount int) *HTTPClient {
	logger, _ := zap.NewDevelopment()
	return NewClient(Options{
		WatchURL:   serverURL + "/watch/",
		ChannelURL: serverURL + "/ch/",
		UserAgent:  "livecomment-test",
		RatePerSec: 100,
		Timeout:    5 * time.Second,
		RetryCount: retryCount,
		RetryDelay: time.Millisecond,
	}, logger)
}

func TestLiveData_OnAir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watch/lv123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != "livecomment-test" {
			t.Errorf("expected user agent livecomment-test, got %s", ua)
		}
		_, _ = io.WriteString(w, watchPage("wss://example.test/ws?a=1&b=2", "ON_AIR", 1700000000))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL, 0).LiveData(context.Background(), "lv123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.WebSocketURL != "wss://example.test/ws?a=1&b=2" {
		t.Errorf("unexpected websocket url: %s", data.WebSocketURL)
	}
	if data.OpenTime.Unix() != 1700000000 {
		t.Errorf("unexpected open time: %v", data.OpenTime)
	}
}

func TestLiveData_EndedLiveIDIsNotFound(t *testing.T) {
	var channelHits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watch/lv123" {
			atomic.AddInt32(&channelHits, 1)
		}
		_, _ = io.WriteString(w, watchPage("", "ENDED", 1))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 0).LiveData(context.Background(), "lv123")
	if liveerr.KindOf(err) != liveerr.LiveNotFound {
		t.Fatalf("expected live not found, got %v", err)
	}
	if atomic.LoadInt32(&channelHits) != 0 {
		t.Error("live ids must not fall back to the channel page")
	}
}

func TestLiveData_ChannelFallback(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch/ch2646436":
			_, _ = io.WriteString(w, watchPage("wss://stale.test/ws", "ENDED", 1))
		case "/ch/ch2646436":
			_, _ = io.WriteString(w, `<html><body><div class="item">
				<p class="g-live-airtime onair">on air</p>
				<h2><a href="`+server.URL+`/watch/lv999">program</a></h2>
			</div></body></html>`)
		case "/watch/lv999":
			_, _ = io.WriteString(w, watchPage("wss://real.test/ws", "ON_AIR", 1700000500))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	data, err := newTestClient(server.URL, 0).LiveData(context.Background(), "ch2646436")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.WebSocketURL != "wss://real.test/ws" {
		t.Errorf("expected fallback broadcast, got %s", data.WebSocketURL)
	}
}

func TestLiveData_ChannelWithoutOnAirMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ch/ch1" {
			_, _ = io.WriteString(w, `<html><body><p class="g-live-airtime">ended</p><a href="/x">x</a></body></html>`)
			return
		}
		_, _ = io.WriteString(w, watchPage("", "ENDED", 1))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 0).LiveData(context.Background(), "ch1")
	if liveerr.KindOf(err) != liveerr.LiveNotFound {
		t.Fatalf("expected live not found, got %v", err)
	}
}

func TestLiveData_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 3).LiveData(context.Background(), "lv1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if liveerr.KindOf(err) != liveerr.LiveNotFound {
		t.Errorf("expected live not found classification, got %v", liveerr.KindOf(err))
	}
}

func TestLiveData_BadFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 0).LiveData(context.Background(), "lv1")
	if liveerr.KindOf(err) != liveerr.Protocol {
		t.Fatalf("expected protocol classification, got %v", err)
	}
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat in chain, got %v", err)
	}
}

func TestLiveData_RetriesServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 2).LiveData(context.Background(), "lv1")
	if liveerr.KindOf(err) != liveerr.Network {
		t.Fatalf("expected network classification, got %v", err)
	}

	// Should have attempted 3 times (initial + 2 retries)
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("at") != "now" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "payload")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	body, err := client.Stream(context.Background(), server.URL+"/view?at=now")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()
	b, _ := io.ReadAll(body)
	if string(b) != "payload" {
		t.Errorf("unexpected body %q", b)
	}

	_, err = client.Stream(context.Background(), server.URL+"/view?at=other")
	if liveerr.KindOf(err) != liveerr.LiveNotFound {
		t.Errorf("expected live not found for 404, got %v", err)
	}
}

func TestStream_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "payload")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(server.URL, 0).Stream(ctx, server.URL)
	if liveerr.KindOf(err) != liveerr.Cancelled {
		t.Errorf("expected cancelled classification, got %v", err)
	}
}
