package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/replay"
	"github.com/dgnsrekt/livecomment/internal/server"
)

func replayCmd() *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Play a saved comment log (plain, gzip or zstd) against wall time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := replay.Open(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			clock := clockwork.NewRealClock()
			src, err := replay.Load(cmd.Context(), rc, replay.Options{
				Relative: !absolute,
				ViewerID: cfg.Viewer.UserID,
				Clock:    clock,
			}, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), src.InformationText())

			poller := &server.Poller{
				Poll: func(_ context.Context, now time.Time) ([]comment.Chat, error) {
					return src.Poll(now), nil
				},
				Sink:   func(chats []comment.Chat) { printChats(cmd.OutOrStdout(), chats) },
				Clock:  clock,
				Logger: logger,
			}
			err = poller.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&absolute, "absolute", false, "match chat times against the wall clock instead of starting from the first chat")
	return cmd
}
