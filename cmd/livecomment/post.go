package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/retry"
)

const postAttempts = 8

func postCmd() *cobra.Command {
	var (
		flags     channelFlags
		modifiers string
	)

	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Post one comment to the broadcast mapped to a channel",
		Args:  cobra.MinimumNArgs(1),
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

			text := strings.Join(args, " ")
			policy := retry.Policy{
				MaxAttempts: postAttempts,
				Backoff:     retry.Exponential(250 * time.Millisecond),
				Clock:       clock,
				OnRetry: func(attempt int, err error, delay time.Duration) {
					logger.Debug("session not ready", zap.Int("attempt", attempt), zap.Duration("delay", delay))
				},
			}
			// each attempt polls so the session starts and fatal errors surface
			err = retry.DoVoid(cmd.Context(), policy, classifyPost, func(ctx context.Context, _ int) error {
				if _, err := coord.GetChats(ctx, ch, clock.Now()); err != nil {
					return err
				}
				return coord.PostChat(ctx, text, modifiers)
			})
			if err != nil {
				return fmt.Errorf("posting comment: %w", err)
			}

			logger.Info("comment posted", zap.String("broadcast_id", coord.BroadcastID()))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&modifiers, "modifiers", "m", "", `comment commands, e.g. "184 ue big red"`)
	return cmd
}

func classifyPost(err error) retry.Action {
	if liveerr.Is(err, liveerr.NotReady) {
		return retry.Retry
	}
	return retry.Stop
}
