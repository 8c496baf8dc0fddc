// Package watch drives the control WebSocket of a broadcast: it holds the
// viewer seat, follows server-requested reconnects, hands the comment
// stream descriptor to the receiver and relays post results to the poster.
package watch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/metrics"
	"github.com/dgnsrekt/livecomment/internal/retry"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512 * 1024 // 512KB

	// Send buffer size per connection.
	sendBufferSize = 16

	defaultKeepSeat = 30 * time.Second
)

// Descriptor tells a receiver where the comment stream of a session lives.
type Descriptor struct {
	HashedViewerID   string
	ViewURI          string
	MessageServerURI string
	ThreadID         string
	PostKey          string
	OpenTime         time.Time
}

type Options struct {
	BroadcastID string
	Endpoint    Endpoint
	Dialer      *websocket.Dialer
	UserAgent   string
	Clock       clockwork.Clock
}

// Manager owns one control socket for the lifetime of a session.
type Manager struct {
	opts   Options
	clock  clockwork.Clock
	logger *zap.Logger

	descriptor chan Descriptor
	published  sync.Once
	results    chan string
	done       chan struct{}

	mu       sync.Mutex
	current  *conn
	openTime time.Time
	runErr   error
}

func NewManager(opts Options, logger *zap.Logger) *Manager {
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		opts:       opts,
		clock:      clock,
		logger:     logger.With(zap.String("broadcast_id", opts.BroadcastID)),
		descriptor: make(chan Descriptor, 1),
		results:    make(chan string, 1),
		done:       make(chan struct{}),
	}
}

// Run resolves the control socket and serves it until ctx is cancelled,
// the broadcast goes off air, or the server disconnects the viewer.
func (m *Manager) Run(ctx context.Context) (err error) {
	defer func() {
		m.mu.Lock()
		m.runErr = err
		m.mu.Unlock()
		close(m.done)
	}()

	target, err := m.opts.Endpoint.Resolve(ctx, m.opts.BroadcastID)
	if err != nil {
		return liveerr.FromIO(ctx, fmt.Errorf("resolving control socket: %w", err), liveerr.Network)
	}
	m.mu.Lock()
	m.openTime = target.OpenTime
	m.mu.Unlock()

	socketURL := target.URL
	for {
		next, err := m.serve(ctx, socketURL)
		if err != nil {
			return err
		}

		m.logger.Info("control socket reconnect requested",
			zap.Duration("wait", next.wait),
		)
		metrics.ControlReconnects.Inc()
		if err := retry.Sleep(ctx, m.clock, next.wait); err != nil {
			return liveerr.New(liveerr.Cancelled, err)
		}
		socketURL, err = reconnectURL(socketURL, next.token)
		if err != nil {
			return liveerr.New(liveerr.Protocol, err)
		}
	}
}

type reconnect struct {
	token string
	wait  time.Duration
}

// serve runs one control connection. It returns a reconnect request when
// the server asks for one and an error for every other way the
// connection ends.
func (m *Manager) serve(ctx context.Context, socketURL string) (*reconnect, error) {
	header := http.Header{}
	if m.opts.UserAgent != "" {
		header.Set("User-Agent", m.opts.UserAgent)
	}

	ws, resp, err := m.opts.Dialer.DialContext(ctx, socketURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, liveerr.FromIO(ctx, fmt.Errorf("dialing control socket: %w", err), liveerr.Network)
	}
	ws.SetReadLimit(maxMessageSize)

	connCtx, cancel := context.WithCancel(ctx)
	c := newConn(ws, m.logger)
	go c.writePump(connCtx)
	defer func() {
		cancel()
		<-c.done
		m.setCurrent(nil)
	}()
	m.setCurrent(c)

	if err := c.enqueue(connCtx, startWatchingFrame, nil); err != nil {
		return nil, err
	}
	m.logger.Debug("control socket connected", zap.String("url", socketURL))

	var stopSeat context.CancelFunc = func() {}
	defer func() { stopSeat() }()

	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			return nil, m.readErr(ctx, err)
		}

		env, err := parseEnvelope(message)
		if err != nil {
			m.logger.Debug("ignoring control frame", zap.Error(err))
			continue
		}

		switch env.Type {
		case "seat":
			data, err := decodeData[seatData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			interval := time.Duration(data.KeepIntervalSec) * time.Second
			if interval <= 0 {
				interval = defaultKeepSeat
			}
			stopSeat()
			var seatCtx context.Context
			seatCtx, stopSeat = context.WithCancel(connCtx)
			go m.keepSeat(seatCtx, c, interval)

		case "ping":
			if err := c.enqueue(connCtx, pongFrame, nil); err != nil {
				return nil, err
			}

		case "reconnect":
			data, err := decodeData[reconnectData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			return &reconnect{
				token: data.AudienceToken,
				wait:  time.Duration(data.WaitTimeSec) * time.Second,
			}, nil

		case "disconnect":
			data, _ := decodeData[disconnectData](env)
			m.pushResult("disconnect")
			reason := ""
			if data != nil {
				reason = data.Reason
			}
			return nil, liveerr.WithCode(liveerr.Disconnect, reason)

		case "error":
			data, err := decodeData[errorData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			if offAirCodes[data.Code] {
				m.logger.Info("broadcast not on air", zap.String("code", data.Code))
				return nil, liveerr.WithCode(liveerr.OffAir, data.Code)
			}
			m.pushResult(data.Code)

		case "postCommentResult":
			data, err := decodeData[postResultData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			m.pushResult(data.Chat.Content)

		case "messageServer":
			data, err := decodeData[messageServerData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			m.publish(Descriptor{
				HashedViewerID: data.HashedUserID,
				ViewURI:        data.ViewURI,
				OpenTime:       m.OpenTime(),
			})

		case "room":
			data, err := decodeData[roomData](env)
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			openTime, err := data.openTime(m.OpenTime())
			if err != nil {
				return nil, liveerr.New(liveerr.Protocol, err)
			}
			m.publish(Descriptor{
				MessageServerURI: data.MessageServer.URI,
				ThreadID:         data.ThreadID,
				PostKey:          data.YourPostKey,
				OpenTime:         openTime,
			})

		default:
			m.logger.Debug("unhandled control frame", zap.String("type", env.Type))
		}
	}
}

func (m *Manager) readErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return liveerr.New(liveerr.Cancelled, err)
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return liveerr.New(liveerr.ConnectionClosed, err)
	}
	return liveerr.New(liveerr.Network, fmt.Errorf("reading control socket: %w", err))
}

// keepSeat sends keepSeat every interval until ctx ends.
func (m *Manager) keepSeat(ctx context.Context, c *conn, interval time.Duration) {
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := c.enqueue(ctx, keepSeatFrame, nil); err != nil {
				return
			}
		}
	}
}

// publish hands the first descriptor of the session to the receiver.
// OpenTime is fixed from then on.
func (m *Manager) publish(d Descriptor) {
	m.published.Do(func() {
		m.mu.Lock()
		m.openTime = d.OpenTime
		m.mu.Unlock()
		m.descriptor <- d
		m.logger.Info("comment stream descriptor ready",
			zap.String("view_uri", d.ViewURI),
			zap.String("message_server", d.MessageServerURI),
			zap.String("thread_id", d.ThreadID),
		)
	})
}

func (m *Manager) pushResult(code string) {
	select {
	case m.results <- code:
	default:
		m.logger.Warn("dropping post result, slot is full", zap.String("result", code))
	}
}

func (m *Manager) setCurrent(c *conn) {
	m.mu.Lock()
	m.current = c
	m.mu.Unlock()
}

// Descriptor blocks until the comment stream descriptor is known. It
// succeeds at most once per session.
func (m *Manager) Descriptor(ctx context.Context) (Descriptor, error) {
	select {
	case d := <-m.descriptor:
		return d, nil
	default:
	}

	select {
	case d := <-m.descriptor:
		return d, nil
	case <-ctx.Done():
		return Descriptor{}, liveerr.New(liveerr.Cancelled, ctx.Err())
	case <-m.done:
		select {
		case d := <-m.descriptor:
			return d, nil
		default:
		}
		return Descriptor{}, m.endedErr()
	}
}

// Send writes frame on the live control socket and waits for the write
// to complete.
func (m *Manager) Send(ctx context.Context, frame []byte) error {
	m.mu.Lock()
	c := m.current
	m.mu.Unlock()
	if c == nil {
		return liveerr.Errorf(liveerr.NotReady, "control socket is not connected")
	}

	result := make(chan error, 1)
	if err := c.enqueue(ctx, frame, result); err != nil {
		return err
	}

	select {
	case err := <-result:
		if err != nil {
			return liveerr.FromIO(ctx, fmt.Errorf("writing frame: %w", err), liveerr.Network)
		}
		return nil
	case <-c.done:
		select {
		case err := <-result:
			if err == nil {
				return nil
			}
		default:
		}
		return liveerr.Errorf(liveerr.ConnectionClosed, "control socket closed before write")
	case <-ctx.Done():
		return liveerr.New(liveerr.Cancelled, ctx.Err())
	}
}

// ResetResult discards a result nobody waited for.
func (m *Manager) ResetResult() {
	select {
	case <-m.results:
	default:
	}
}

// AwaitResult blocks until the server answers a post.
func (m *Manager) AwaitResult(ctx context.Context) (string, error) {
	select {
	case r := <-m.results:
		return r, nil
	case <-ctx.Done():
		return "", liveerr.New(liveerr.Cancelled, ctx.Err())
	case <-m.done:
		select {
		case r := <-m.results:
			return r, nil
		default:
		}
		return "", m.endedErr()
	}
}

// OpenTime is the broadcast start used as the vpos origin.
func (m *Manager) OpenTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openTime
}

// Done is closed when Run returns.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

func (m *Manager) endedErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.runErr != nil {
		return m.runErr
	}
	return liveerr.Errorf(liveerr.NotReady, "watch session has ended")
}

func reconnectURL(current, token string) (string, error) {
	u, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("parsing socket url: %w", err)
	}
	u.RawQuery = "audience_token=" + url.QueryEscape(token)
	u.Fragment = ""
	return u.String(), nil
}
