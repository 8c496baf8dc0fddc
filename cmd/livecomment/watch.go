package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/server"
)

func watchCmd() *cobra.Command {
	var flags channelFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print chats of a channel as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, resolver, err := flags.resolve(cfg)
			if err != nil {
				return err
			}

			clock := clockwork.NewRealClock()
			coord, err := newCoordinator(cfg, resolver, clock, logger)
			if err != nil {
				return err
			}
			defer coord.Dispose()

			logger.Info("watching",
				zap.String("backend", cfg.Backend.Kind),
				zap.Uint16("network_id", ch.NetworkID),
				zap.Uint16("service_id", ch.ServiceID),
			)

			poller := &server.Poller{
				Poll: func(ctx context.Context, now time.Time) ([]comment.Chat, error) {
					return coord.GetChats(ctx, ch, now)
				},
				Sink:   func(chats []comment.Chat) { printChats(cmd.OutOrStdout(), chats) },
				Clock:  clock,
				Logger: logger,
			}
			err = poller.Run(cmd.Context())
			fmt.Fprintln(cmd.ErrOrStderr(), coord.GetInformationText())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
