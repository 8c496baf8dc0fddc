package receiver

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/metrics"
	"github.com/dgnsrekt/livecomment/internal/parser"
	"github.com/dgnsrekt/livecomment/internal/retry"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

// Subprotocol is the comment socket subprotocol.
const Subprotocol = "msg.nicovideo.jp#json"

const writeWait = 10 * time.Second

type SocketOptions struct {
	Attempts  int
	Step      time.Duration
	Jitter    time.Duration
	KeepAlive time.Duration
	ViewerID  string
	UserAgent string
	Dialer    *websocket.Dialer
	Clock     clockwork.Clock
}

// DefaultSocketOptions returns the connect schedule of the comment socket:
// five attempts, attempt n waiting n*5s plus up to 100ms jitter first.
func DefaultSocketOptions() SocketOptions {
	return SocketOptions{
		Attempts:  5,
		Step:      5 * time.Second,
		Jitter:    100 * time.Millisecond,
		KeepAlive: 60 * time.Second,
	}
}

// Socket reads JSON comment frames from a message server socket.
type Socket struct {
	opts   SocketOptions
	clock  clockwork.Clock
	logger *zap.Logger
}

func NewSocket(opts SocketOptions, logger *zap.Logger) *Socket {
	defaults := DefaultSocketOptions()
	if opts.Attempts < 1 {
		opts.Attempts = defaults.Attempts
	}
	if opts.KeepAlive <= 0 {
		opts.KeepAlive = defaults.KeepAlive
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Socket{opts: opts, clock: clock, logger: logger}
}

var errThreadEnded = liveerr.Errorf(liveerr.ConnectionClosed, "server ended the thread")

func (r *Socket) Receive(ctx context.Context, d watch.Descriptor) iter.Seq2[comment.Tag, error] {
	return func(yield func(comment.Tag, error) bool) {
		p := parser.NewJSON(r.opts.ViewerID, r.clock)
		policy := retry.Policy{
			MaxAttempts: r.opts.Attempts,
			Backoff:     retry.Linear(r.opts.Step, r.opts.Jitter),
			Clock:       r.clock,
			OnRetry: func(attempt int, err error, delay time.Duration) {
				metrics.ReconnectAttempts.Inc()
				r.logger.Info("reconnecting comment socket",
					zap.Int("attempt", attempt),
					zap.Duration("delay", delay),
					zap.Error(err),
				)
			},
		}

		err := retry.DoVoid(ctx, policy, classifySocketErr, func(ctx context.Context, attempt int) error {
			return r.attempt(ctx, d, p, yield)
		})

		var (
			exhausted *retry.ExhaustedError
			permanent *retry.PermanentError
		)
		switch {
		case errors.Is(err, errStopped):
			return
		case errors.As(err, &exhausted):
			yield(nil, liveerr.Errorf(liveerr.ConnectionClosed, "comment socket: %w", err))
		case errors.As(err, &permanent):
			yield(nil, liveerr.FromIO(ctx, permanent.Err, liveerr.Network))
		default:
			yield(nil, liveerr.FromIO(ctx, err, liveerr.Network))
		}
	}
}

func classifySocketErr(err error) retry.Action {
	if liveerr.Is(err, liveerr.ConnectionClosed) {
		return retry.Retry
	}
	return retry.Stop
}

// attempt runs one socket connection. It always returns an error: a
// ConnectionClosed error asks for another attempt.
func (r *Socket) attempt(ctx context.Context, d watch.Descriptor, p *parser.JSON, yield func(comment.Tag, error) bool) error {
	dialer := *r.opts.Dialer
	dialer.Subprotocols = []string{Subprotocol}
	header := http.Header{}
	if r.opts.UserAgent != "" {
		header.Set("User-Agent", r.opts.UserAgent)
	}

	ws, resp, err := dialer.DialContext(ctx, d.MessageServerURI, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if ctx.Err() != nil {
			return liveerr.New(liveerr.Cancelled, err)
		}
		return liveerr.New(liveerr.ConnectionClosed, fmt.Errorf("dialing comment socket: %w", err))
	}
	defer ws.Close()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-connCtx.Done()
		ws.Close()
	}()

	req, err := parser.ThreadRequest(d.ThreadID, d.PostKey)
	if err != nil {
		return liveerr.New(liveerr.Protocol, err)
	}
	ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteMessage(websocket.TextMessage, req); err != nil {
		return liveerr.FromIO(ctx, fmt.Errorf("sending thread request: %w", err), liveerr.Network)
	}
	r.logger.Debug("comment socket connected", zap.String("thread_id", d.ThreadID))

	go r.keepAlive(connCtx, ws)

	for {
		typ, msg, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return liveerr.New(liveerr.Cancelled, err)
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return liveerr.New(liveerr.ConnectionClosed, err)
			}
			return liveerr.New(liveerr.Network, fmt.Errorf("reading comment socket: %w", err))
		}
		if typ != websocket.TextMessage {
			continue
		}

		pushErr := p.Push(msg)
		if err := yieldAll(p.Drain(), yield); err != nil {
			return err
		}
		if errors.Is(pushErr, parser.ErrDisconnect) {
			r.logger.Info("comment thread ended by server")
			return errThreadEnded
		}
		if pushErr != nil {
			return pushErr
		}
	}
}

// keepAlive sends an empty frame every interval so idle threads stay open.
// It is the only writer once the thread request has gone out.
func (r *Socket) keepAlive(ctx context.Context, ws *websocket.Conn) {
	ticker := r.clock.NewTicker(r.opts.KeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.TextMessage, []byte{}); err != nil {
				return
			}
		}
	}
}
