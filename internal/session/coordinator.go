// Package session keeps one comment session per mapped broadcast and
// serves the once-a-second poll of the caller.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/metrics"
	"github.com/dgnsrekt/livecomment/internal/poster"
	"github.com/dgnsrekt/livecomment/internal/receiver"
)

const DefaultJoinTimeout = 5 * time.Second

type Options struct {
	Backend     Backend
	Resolver    Resolver
	JoinTimeout time.Duration
	Clock       clockwork.Clock
}

type session struct {
	id          uuid.UUID
	broadcastID string
	watcher     Watcher
	queue       *TagQueue
	cancel      context.CancelFunc
	done        chan struct{}
	err         error
}

// Coordinator owns at most one live session and restarts it whenever the
// broadcast mapped to the polled channel changes.
type Coordinator struct {
	opts   Options
	clock  clockwork.Clock
	poster *poster.Poster
	logger *zap.Logger

	mu          sync.Mutex
	current     *session
	broadcastID string
	offAir      bool
	disposed    bool
	received    atomic.Int64
}

func NewCoordinator(opts Options, logger *zap.Logger) *Coordinator {
	if opts.JoinTimeout <= 0 {
		opts.JoinTimeout = DefaultJoinTimeout
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Coordinator{
		opts:   opts,
		clock:  clock,
		poster: poster.New(clock, logger),
		logger: logger.With(zap.String("backend", opts.Backend.Name)),
	}
}

// GetChats is Poll under the name the orchestration layer uses.
func (c *Coordinator) GetChats(ctx context.Context, ch ChannelRef, now time.Time) ([]comment.Chat, error) {
	return c.Poll(ctx, ch, now)
}

// Poll returns the chats received since the previous poll. It restarts the
// session when the channel resolves to a different broadcast. A session
// that failed for any reason other than the broadcast being off air makes
// every poll fail with a Collect error until the channel resolves to
// another broadcast.
func (c *Coordinator) Poll(ctx context.Context, ch ChannelRef, _ time.Time) ([]comment.Chat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, liveerr.Errorf(liveerr.NotReady, "coordinator disposed")
	}

	broadcastID, err := c.opts.Resolver.Resolve(ctx, ch)
	if err != nil {
		return nil, fmt.Errorf("resolving channel %d/%d: %w", ch.NetworkID, ch.ServiceID, err)
	}

	if s := c.current; s != nil && broadcastID == c.broadcastID {
		select {
		case <-s.done:
			if s.err != nil {
				if !liveerr.IsOffAir(s.err) {
					return nil, liveerr.New(liveerr.Collect, s.err)
				}
				c.setOffAir(true)
			}
		default:
		}
	}

	if broadcastID != c.broadcastID {
		c.logger.Info("broadcast changed",
			zap.String("from", c.broadcastID),
			zap.String("to", broadcastID),
		)
		c.stop()
		c.broadcastID = broadcastID
		c.setOffAir(false)
		c.received.Store(0)
		if broadcastID != "" {
			c.current = c.start(broadcastID)
		}
	}

	if c.current == nil {
		return []comment.Chat{}, nil
	}

	chats := []comment.Chat{}
	for _, tag := range c.current.queue.Drain() {
		if chat, ok := tag.(*comment.ChatTag); ok {
			chats = append(chats, comment.ToChat(chat))
		}
	}
	c.received.Add(int64(len(chats)))
	metrics.ChatsReceived.WithLabelValues(c.opts.Backend.Name).Add(float64(len(chats)))
	return chats, nil
}

// PostChat posts text through the current session's control socket.
func (c *Coordinator) PostChat(ctx context.Context, text, modifiers string) error {
	c.mu.Lock()
	s := c.current
	c.mu.Unlock()

	if s == nil {
		return liveerr.Errorf(liveerr.NotReady, "no broadcast is mapped, try again later")
	}
	return c.poster.Post(ctx, s.watcher, text, modifiers)
}

// GetInformationText describes the coordinator state for display.
func (c *Coordinator) GetInformationText() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "backend: %s\n", c.opts.Backend.Name)
	if c.broadcastID == "" {
		b.WriteString("broadcast: none")
		return b.String()
	}
	fmt.Fprintf(&b, "broadcast: %s\n", c.broadcastID)
	state := "on air"
	if c.offAir {
		state = "off air"
	}
	fmt.Fprintf(&b, "state: %s\n", state)
	fmt.Fprintf(&b, "received: %d", c.received.Load())
	return b.String()
}

// BroadcastID returns the broadcast of the current session.
func (c *Coordinator) BroadcastID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broadcastID
}

// OffAir reports whether the current broadcast is known to be off air.
func (c *Coordinator) OffAir() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offAir
}

// Dispose stops the current session. Later polls fail with NotReady.
func (c *Coordinator) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stop()
	c.disposed = true
}

func (c *Coordinator) setOffAir(v bool) {
	c.offAir = v
	g := 0.0
	if v {
		g = 1
	}
	metrics.OffAir.WithLabelValues(c.opts.Backend.Name).Set(g)
}

func (c *Coordinator) start(broadcastID string) *session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		id:          uuid.New(),
		broadcastID: broadcastID,
		watcher:     c.opts.Backend.NewWatcher(broadcastID),
		queue:       &TagQueue{},
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	rcv := c.opts.Backend.NewReceiver(broadcastID)
	logger := c.logger.With(
		zap.String("session_id", s.id.String()),
		zap.String("broadcast_id", broadcastID),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.watcher.Run(gctx)
	})
	g.Go(func() error {
		return s.receive(gctx, rcv)
	})
	go func() {
		err := g.Wait()
		if err != nil && !liveerr.Is(err, liveerr.Cancelled) {
			logger.Info("session ended", zap.Error(err))
		}
		s.err = err
		close(s.done)
	}()

	metrics.SessionRestarts.WithLabelValues(c.opts.Backend.Name).Inc()
	logger.Info("session started")
	return s
}

// receive waits for the descriptor and feeds the session queue.
func (s *session) receive(ctx context.Context, rcv receiver.Receiver) error {
	d, err := s.watcher.Descriptor(ctx)
	if err != nil {
		return err
	}
	for tag, err := range rcv.Receive(ctx, d) {
		if err != nil {
			return err
		}
		s.queue.Push(tag)
	}
	return nil
}

// stop cancels the current session and waits for it up to JoinTimeout.
// Failures caused by the teardown itself are dropped.
func (c *Coordinator) stop() {
	s := c.current
	if s == nil {
		return
	}
	c.current = nil
	s.cancel()

	select {
	case <-s.done:
	case <-c.clock.After(c.opts.JoinTimeout):
		c.logger.Warn("session did not stop in time",
			zap.String("session_id", s.id.String()),
			zap.Duration("timeout", c.opts.JoinTimeout),
		)
		return
	}

	switch liveerr.KindOf(s.err) {
	case liveerr.Unknown:
		if s.err == nil {
			return
		}
	case liveerr.Cancelled, liveerr.Network, liveerr.ConnectionClosed:
		return
	}
	if liveerr.IsOffAir(s.err) {
		c.logger.Debug("previous session ended off air", zap.Error(s.err))
		return
	}
	c.logger.Warn("previous session failed", zap.String("session_id", s.id.String()), zap.Error(s.err))
}
