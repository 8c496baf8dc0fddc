package server

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
)

const DefaultPollInterval = time.Second

// PollFunc returns the chats that arrived since the previous call.
type PollFunc func(ctx context.Context, now time.Time) ([]comment.Chat, error)

// Poller calls a PollFunc on a fixed interval and hands each batch to a
// sink. Poll errors are logged once per distinct message and polling
// continues.
type Poller struct {
	Poll     PollFunc
	Sink     func([]comment.Chat)
	Interval time.Duration
	Clock    clockwork.Clock
	Logger   *zap.Logger
}

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	clock := p.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	lastErr := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.Chan():
			chats, err := p.Poll(ctx, now)
			if err != nil {
				if msg := err.Error(); msg != lastErr {
					logger.Warn("poll failed", zap.Error(err))
					lastErr = msg
				}
				continue
			}
			if lastErr != "" {
				logger.Info("poll recovered")
				lastErr = ""
			}
			if len(chats) > 0 && p.Sink != nil {
				p.Sink(chats)
			}
		}
	}
}
