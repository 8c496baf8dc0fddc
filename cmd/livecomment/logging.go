package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dgnsrekt/livecomment/internal/config"
)

const logFilePrefix = "livecomment_"

// newLogger builds the process logger. Logs always go to errOut so that
// stdout only ever carries chats. When file logging is enabled every entry
// is also written as JSON to a timestamped file under the configured
// directory.
func newLogger(errOut io.Writer, verbose bool, logCfg *config.LoggingConfig, now time.Time) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	} else if logCfg != nil && logCfg.Level != "" {
		if err := level.UnmarshalText([]byte(logCfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("parsing log level: %w", err)
		}
	}

	console := zap.NewProductionEncoderConfig()
	console.EncodeTime = zapcore.ISO8601TimeEncoder
	var consoleEnc zapcore.Encoder
	if verbose {
		console.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEnc = zapcore.NewConsoleEncoder(console)
	} else {
		consoleEnc = zapcore.NewJSONEncoder(console)
	}

	cores := []zapcore.Core{zapcore.NewCore(consoleEnc, zapcore.Lock(zapcore.AddSync(errOut)), level)}
	closeFn := func() {}

	if logCfg != nil && logCfg.Enabled {
		if err := os.MkdirAll(logCfg.Directory, 0755); err != nil {
			return nil, nil, fmt.Errorf("creating logs directory: %w", err)
		}
		name := filepath.Join(logCfg.Directory, logFilePrefix+now.Format("2006-01-02_15-04-05")+".log")
		sink, closeSink, err := zap.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, sink, level))
		closeFn = closeSink
	}

	opts := []zap.Option{zap.AddCaller()}
	if verbose {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(zapcore.NewTee(cores...), opts...), closeFn, nil
}
