// Package replay plays a saved comment log back against wall time.
package replay

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/parser"
	"github.com/dgnsrekt/livecomment/internal/receiver"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

const Window = time.Second

type Options struct {
	// Relative plays the log from its first chat, starting at the first
	// poll. Otherwise chats are matched against now directly.
	Relative bool
	ViewerID string
	Clock    clockwork.Clock
}

// Source holds a loaded comment log ordered by time.
type Source struct {
	chats    []comment.Chat
	relative bool

	mu       sync.Mutex
	baseTime time.Time
}

// Load reads every chat from r. Malformed chats are skipped.
func Load(ctx context.Context, r io.Reader, opts Options, logger *zap.Logger) (*Source, error) {
	rcv := receiver.NewText(r, parser.LogMode, opts.ViewerID, opts.Clock, logger)

	var chats []comment.Chat
	for tag, err := range rcv.Receive(ctx, watch.Descriptor{}) {
		if err != nil {
			return nil, fmt.Errorf("loading comment log: %w", err)
		}
		if chat, ok := tag.(*comment.ChatTag); ok {
			chats = append(chats, comment.ToChat(chat))
		}
	}
	sort.SliceStable(chats, func(i, j int) bool { return chats[i].Time.Before(chats[j].Time) })

	logger.Info("comment log loaded", zap.Int("chats", len(chats)))
	return &Source{chats: chats, relative: opts.Relative}, nil
}

func (s *Source) Len() int { return len(s.chats) }

// Poll returns the chats inside the one-second window that starts at the
// log time matching now.
func (s *Source) Poll(now time.Time) []comment.Chat {
	if len(s.chats) == 0 {
		return nil
	}

	t := now
	if s.relative {
		s.mu.Lock()
		if s.baseTime.IsZero() {
			s.baseTime = now
		}
		base := s.baseTime
		s.mu.Unlock()
		t = s.chats[0].Time.Add(now.Sub(base))
	}
	end := t.Add(Window)

	lo := sort.Search(len(s.chats), func(i int) bool { return !s.chats[i].Time.Before(t) })
	hi := sort.Search(len(s.chats), func(i int) bool { return !s.chats[i].Time.Before(end) })
	if lo >= hi {
		return nil
	}
	out := make([]comment.Chat, hi-lo)
	copy(out, s.chats[lo:hi])
	return out
}

// InformationText describes the loaded log for display.
func (s *Source) InformationText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "comments: %d", len(s.chats))
	if len(s.chats) > 0 {
		fmt.Fprintf(&b, "\nfirst: %s", s.chats[0].Time.In(comment.JST).Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "\nlast: %s", s.chats[len(s.chats)-1].Time.In(comment.JST).Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
