package session

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/api"
	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/poster"
	"github.com/dgnsrekt/livecomment/internal/receiver"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

const (
	KindNiconico = "niconico"
	KindNXJikkyo = "nxjikkyo"
)

// Watcher is the control side of a session. *watch.Manager implements it.
type Watcher interface {
	poster.Channel
	Run(ctx context.Context) error
	Descriptor(ctx context.Context) (watch.Descriptor, error)
}

// Backend builds the per-session parts of one comment service.
type Backend struct {
	Name        string
	NewWatcher  func(broadcastID string) Watcher
	NewReceiver func(broadcastID string) receiver.Receiver
}

type WatchOptions struct {
	Dialer    *websocket.Dialer
	UserAgent string
	Clock     clockwork.Clock
}

func watcherFactory(endpoint watch.Endpoint, opts WatchOptions, logger *zap.Logger) func(string) Watcher {
	return func(broadcastID string) Watcher {
		return watch.NewManager(watch.Options{
			BroadcastID: broadcastID,
			Endpoint:    endpoint,
			Dialer:      opts.Dialer,
			UserAgent:   opts.UserAgent,
			Clock:       opts.Clock,
		}, logger)
	}
}

// NewNiconicoBackend reads comments from the chunked binary stream of a
// niconico live broadcast.
func NewNiconicoBackend(client api.Client, opts WatchOptions, logger *zap.Logger) Backend {
	return Backend{
		Name:       KindNiconico,
		NewWatcher: watcherFactory(&watch.NiconicoEndpoint{Client: client}, opts, logger),
		NewReceiver: func(string) receiver.Receiver {
			return receiver.NewChunked(client, opts.Clock, logger)
		},
	}
}

// NewNXJikkyoBackend reads comments from the JSON comment socket of an
// NX-Jikkyo channel. commentURL is the API root of the comment socket and
// defaults to baseURL; it is used when the room frame names no message
// server.
func NewNXJikkyoBackend(baseURL, commentURL string, socket receiver.SocketOptions, opts WatchOptions, logger *zap.Logger) Backend {
	if commentURL == "" {
		commentURL = baseURL
	}
	if commentURL == "" {
		commentURL = watch.DefaultNXJikkyoURL
	}
	if socket.UserAgent == "" {
		socket.UserAgent = opts.UserAgent
	}
	if socket.Dialer == nil {
		socket.Dialer = opts.Dialer
	}
	if socket.Clock == nil {
		socket.Clock = opts.Clock
	}

	return Backend{
		Name:       KindNXJikkyo,
		NewWatcher: watcherFactory(&watch.NXJikkyoEndpoint{BaseURL: baseURL}, opts, logger),
		NewReceiver: func(broadcastID string) receiver.Receiver {
			return &defaultMessageServer{
				Receiver: receiver.NewSocket(socket, logger),
				uri: fmt.Sprintf("%s/api/v1/channels/jk%s/ws/comment",
					strings.TrimRight(commentURL, "/"), strings.TrimPrefix(broadcastID, "jk")),
			}
		},
	}
}

// defaultMessageServer fills in the comment socket when the descriptor
// carries none.
type defaultMessageServer struct {
	receiver.Receiver
	uri string
}

func (r *defaultMessageServer) Receive(ctx context.Context, d watch.Descriptor) iter.Seq2[comment.Tag, error] {
	if d.MessageServerURI == "" {
		d.MessageServerURI = r.uri
	}
	return r.Receiver.Receive(ctx, d)
}
