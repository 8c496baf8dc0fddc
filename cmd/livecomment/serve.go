package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		flags channelFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Poll a channel and expose chats and diagnostics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, resolver, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			clock := clockwork.NewRealClock()
			coord, err := newCoordinator(cfg, resolver, clock, logger)
			if err != nil {
				return err
			}
			defer coord.Dispose()

			g, ctx := errgroup.WithContext(cmd.Context())

			broadcaster := server.NewBroadcaster(coord, logger)
			hub := server.NewHub(coord, logger)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.NewRouter(coord, broadcaster, hub, logger),
				ReadHeaderTimeout: 10 * time.Second,
				// stream handlers end with the group
				BaseContext: func(net.Listener) context.Context { return ctx },
			}
			poller := &server.Poller{
				Poll: func(ctx context.Context, now time.Time) ([]comment.Chat, error) {
					return coord.GetChats(ctx, ch, now)
				},
				Sink: func(chats []comment.Chat) {
					broadcaster.Publish(chats)
					hub.Publish(chats)
				},
				Clock:  clock,
				Logger: logger,
			}

			g.Go(func() error {
				logger.Info("server starting", zap.String("addr", addr))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				hub.Run(ctx)
				return nil
			})
			g.Go(func() error {
				return poller.Run(ctx)
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				logger.Info("server shutting down")
				return httpServer.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr)")
	return cmd
}
