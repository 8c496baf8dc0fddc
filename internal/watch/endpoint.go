package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgnsrekt/livecomment/internal/api"
)

// DefaultNXJikkyoURL is the public NX-Jikkyo API root.
const DefaultNXJikkyoURL = "wss://nx-jikkyo.tsukumijima.net"

// Target is a resolved control socket.
type Target struct {
	URL string
	// OpenTime is the broadcast start when the watch page reveals it.
	// Zero when it only arrives later in a room frame.
	OpenTime time.Time
}

// Endpoint resolves a broadcast id to its control socket.
type Endpoint interface {
	Resolve(ctx context.Context, broadcastID string) (Target, error)
}

// NiconicoEndpoint reads the control socket off the broadcast's watch page.
type NiconicoEndpoint struct {
	Client api.Client
}

func (e *NiconicoEndpoint) Resolve(ctx context.Context, broadcastID string) (Target, error) {
	data, err := e.Client.LiveData(ctx, broadcastID)
	if err != nil {
		return Target{}, err
	}
	return Target{URL: data.WebSocketURL, OpenTime: data.OpenTime}, nil
}

// NXJikkyoEndpoint builds the watch socket URL of an NX-Jikkyo channel.
// Broadcast ids are the numeric jikkyo channel id, with or without the
// "jk" prefix.
type NXJikkyoEndpoint struct {
	BaseURL string
}

func (e *NXJikkyoEndpoint) Resolve(ctx context.Context, broadcastID string) (Target, error) {
	base := e.BaseURL
	if base == "" {
		base = DefaultNXJikkyoURL
	}
	id := strings.TrimPrefix(broadcastID, "jk")
	return Target{
		URL: fmt.Sprintf("%s/api/v1/channels/jk%s/ws/watch", strings.TrimRight(base, "/"), id),
	}, nil
}
