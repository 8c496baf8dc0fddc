package receiver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/parser"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

// Text reads legacy XML comments from r: saved comment logs in log mode,
// or NUL-separated socket captures in socket mode.
type Text struct {
	r        io.Reader
	mode     parser.XMLMode
	viewerID string
	clock    clockwork.Clock
	logger   *zap.Logger
}

func NewText(r io.Reader, mode parser.XMLMode, viewerID string, clock clockwork.Clock, logger *zap.Logger) *Text {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Text{r: r, mode: mode, viewerID: viewerID, clock: clock, logger: logger}
}

// Receive ignores the descriptor; the reader is the whole stream.
func (t *Text) Receive(ctx context.Context, _ watch.Descriptor) iter.Seq2[comment.Tag, error] {
	return func(yield func(comment.Tag, error) bool) {
		p := parser.NewXML(t.mode, t.viewerID, t.clock)
		br := bufio.NewReader(t.r)

		for {
			if err := ctx.Err(); err != nil {
				yield(nil, liveerr.New(liveerr.Cancelled, err))
				return
			}

			line, readErr := br.ReadString('\n')
			if line != "" {
				if err := p.Push(line); err != nil {
					t.logger.Warn("skipping malformed comment", zap.Error(err))
				}
				if err := yieldAll(p.Drain(), yield); err != nil {
					return
				}
			}
			if readErr == io.EOF {
				return
			}
			if readErr != nil {
				yield(nil, liveerr.FromIO(ctx, fmt.Errorf("reading comments: %w", readErr), liveerr.Network))
				return
			}
		}
	}
}
