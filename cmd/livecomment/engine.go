package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/api"
	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/config"
	"github.com/dgnsrekt/livecomment/internal/receiver"
	"github.com/dgnsrekt/livecomment/internal/session"
)

// channelFlags selects the channel to poll and optionally pins the
// broadcast mapped to it.
type channelFlags struct {
	channel   string
	broadcast string
}

func (f *channelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.channel, "channel", "", "channel as network_id:service_id (defaults to the first configured channel)")
	cmd.Flags().StringVarP(&f.broadcast, "broadcast", "b", "", "broadcast id to map to the channel (lv..., ch..., jk...)")
}

// resolve returns the channel to poll and a resolver seeded from config.
func (f *channelFlags) resolve(cfg *config.Config) (session.ChannelRef, *session.TableResolver, error) {
	resolver := session.NewTableResolver(channelTable(cfg.Channels))

	var ch session.ChannelRef
	switch {
	case f.channel != "":
		parsed, err := parseChannel(f.channel)
		if err != nil {
			return ch, nil, err
		}
		ch = parsed
	case len(cfg.Channels) > 0:
		ch = session.ChannelRef{NetworkID: cfg.Channels[0].NetworkID, ServiceID: cfg.Channels[0].ServiceID}
	case f.broadcast == "":
		return ch, nil, fmt.Errorf("no channel configured: pass --broadcast or --channel")
	}

	if f.broadcast != "" {
		resolver.Set(ch, f.broadcast)
	}
	return ch, resolver, nil
}

func channelTable(channels []config.ChannelConfig) map[session.ChannelRef]string {
	table := make(map[session.ChannelRef]string, len(channels))
	for _, c := range channels {
		table[session.ChannelRef{NetworkID: c.NetworkID, ServiceID: c.ServiceID}] = c.BroadcastID
	}
	return table
}

func parseChannel(s string) (session.ChannelRef, error) {
	network, service, ok := strings.Cut(s, ":")
	if !ok {
		return session.ChannelRef{}, fmt.Errorf("invalid channel %q (use network_id:service_id)", s)
	}
	n, err := strconv.ParseUint(network, 0, 16)
	if err != nil {
		return session.ChannelRef{}, fmt.Errorf("invalid network id %q: %w", network, err)
	}
	sv, err := strconv.ParseUint(service, 0, 16)
	if err != nil {
		return session.ChannelRef{}, fmt.Errorf("invalid service id %q: %w", service, err)
	}
	return session.ChannelRef{NetworkID: uint16(n), ServiceID: uint16(sv)}, nil
}

func buildBackend(cfg *config.Config, clock clockwork.Clock, logger *zap.Logger) (session.Backend, error) {
	dialer := &websocket.Dialer{
		Proxy:            websocket.DefaultDialer.Proxy,
		HandshakeTimeout: cfg.HTTP.Timeout(),
	}
	opts := session.WatchOptions{
		Dialer:    dialer,
		UserAgent: cfg.HTTP.UserAgent,
		Clock:     clock,
	}

	switch cfg.Backend.Kind {
	case config.BackendNiconico:
		client := api.NewClient(api.Options{
			WatchURL:   cfg.Niconico.WatchURL,
			ChannelURL: cfg.Niconico.ChannelURL,
			UserAgent:  cfg.HTTP.UserAgent,
			RatePerSec: cfg.HTTP.RatePerSecond,
			Timeout:    cfg.HTTP.Timeout(),
			RetryCount: cfg.HTTP.RetryCount,
			RetryDelay: cfg.HTTP.RetryDelay(),
		}, logger)
		return session.NewNiconicoBackend(client, opts, logger), nil
	case config.BackendNXJikkyo:
		socket := receiver.DefaultSocketOptions()
		socket.Attempts = cfg.Receiver.SocketAttempts
		socket.Step = cfg.Receiver.SocketBackoff()
		socket.KeepAlive = cfg.Receiver.KeepAlive()
		socket.ViewerID = cfg.Viewer.UserID
		return session.NewNXJikkyoBackend(cfg.NXJikkyo.BaseURL, cfg.NXJikkyo.CommentURL, socket, opts, logger), nil
	default:
		return session.Backend{}, fmt.Errorf("unknown backend %q", cfg.Backend.Kind)
	}
}

func newCoordinator(cfg *config.Config, resolver session.Resolver, clock clockwork.Clock, logger *zap.Logger) (*session.Coordinator, error) {
	backend, err := buildBackend(cfg, clock, logger)
	if err != nil {
		return nil, err
	}
	return session.NewCoordinator(session.Options{
		Backend:     backend,
		Resolver:    resolver,
		JoinTimeout: cfg.Session.JoinTimeout(),
		Clock:       clock,
	}, logger), nil
}

func printChats(w io.Writer, chats []comment.Chat) {
	for _, c := range chats {
		fmt.Fprintln(w, formatChat(c))
	}
}

func formatChat(c comment.Chat) string {
	var b strings.Builder
	b.WriteString(c.Time.In(comment.JST).Format("15:04:05"))
	fmt.Fprintf(&b, " [%s %s %s]", c.Position, c.Size, c.Color.Hex())
	if c.IsSelf {
		b.WriteString(" *")
	}
	b.WriteByte(' ')
	b.WriteString(strings.ReplaceAll(c.Text, "\n", " "))
	return b.String()
}
