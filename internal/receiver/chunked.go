package receiver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/url"
	"strconv"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livecomment/internal/api"
	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/parser"
	pb "github.com/dgnsrekt/livecomment/internal/parser/generated/ndgr"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

const (
	readBufferSize = 4096
	maxMessageSize = 16 << 20
)

var delimited = protodelim.UnmarshalOptions{MaxSize: maxMessageSize}

// Chunked follows the binary chunked-message stream of a niconico
// broadcast: a view stream of entries that point at message segments and
// at the cursor of the next view.
type Chunked struct {
	client api.Client
	clock  clockwork.Clock
	logger *zap.Logger
}

func NewChunked(client api.Client, clock clockwork.Clock, logger *zap.Logger) *Chunked {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Chunked{client: client, clock: clock, logger: logger}
}

func (r *Chunked) Receive(ctx context.Context, d watch.Descriptor) iter.Seq2[comment.Tag, error] {
	return func(yield func(comment.Tag, error) bool) {
		p := parser.NewProtobuf(d.HashedViewerID)
		at := strconv.FormatInt(r.clock.Now().Unix(), 10)

		for {
			next, err := r.pass(ctx, d.ViewURI, at, p, yield)
			if errors.Is(err, errStopped) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if next == "" {
				r.logger.Debug("view stream has no next cursor")
				return
			}
			at = next
		}
	}
}

// pass reads one view stream and returns the cursor of the following one.
func (r *Chunked) pass(ctx context.Context, viewURI, at string, p *parser.Protobuf, yield func(comment.Tag, error) bool) (string, error) {
	viewURL, err := withCursor(viewURI, at)
	if err != nil {
		return "", liveerr.New(liveerr.Protocol, err)
	}
	r.logger.Debug("reading view stream", zap.String("url", viewURL))

	next := ""
	err = stream(ctx, r.client, viewURL, func(entry *pb.ChunkedEntry) error {
		switch {
		case entry.GetSegment() != nil:
			return r.segment(ctx, entry.GetSegment().GetUri(), p, yield)
		case entry.GetNext() != nil:
			next = strconv.FormatInt(entry.GetNext().GetAt(), 10)
		}
		return nil
	})
	return next, err
}

func (r *Chunked) segment(ctx context.Context, uri string, p *parser.Protobuf, yield func(comment.Tag, error) bool) error {
	return stream(ctx, r.client, uri, func(msg *pb.ChunkedMessage) error {
		pushErr := p.Push(msg)
		if err := yieldAll(p.Drain(), yield); err != nil {
			return err
		}
		return pushErr
	})
}

// stream feeds every length-delimited message of uri to fn.
func stream[M any, PM interface {
	*M
	proto.Message
}](ctx context.Context, client api.Client, uri string, fn func(PM) error) error {
	body, err := client.Stream(ctx, uri)
	if err != nil {
		return err
	}
	defer body.Close()

	br := bufio.NewReaderSize(body, readBufferSize)
	for {
		msg := PM(new(M))
		err := delimited.UnmarshalFrom(br, msg)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, proto.Error):
			return liveerr.New(liveerr.Protocol, fmt.Errorf("decoding stream: %w", err))
		case err != nil:
			return liveerr.FromIO(ctx, fmt.Errorf("reading stream: %w", err), liveerr.Network)
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
}

func withCursor(rawURL, at string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing view uri: %w", err)
	}
	q := u.Query()
	q.Set("at", at)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
