package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/config"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
	cfg     *config.Config
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "livecomment: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	closeLog := func() {}

	root := &cobra.Command{
		Use:           "livecomment",
		Short:         "Receive and post live broadcast comments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var logCfg *config.LoggingConfig
			if cmd.Name() != "help" && cmd.Name() != "completion" {
				var err error
				if cfg, err = config.Load(cfgFile); err != nil {
					return err
				}
				logCfg = &cfg.Logging
			}

			l, closeFn, err := newLogger(cmd.ErrOrStderr(), verbose, logCfg, time.Now())
			if err != nil {
				return err
			}
			logger, closeLog = l, closeFn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
			closeLog()
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("LIVECOMMENT_CONFIG"), "config file path (or set LIVECOMMENT_CONFIG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(watchCmd(), postCmd(), replayCmd(), serveCmd())
	return root
}
