package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/metrics"
	"github.com/dgnsrekt/livecomment/internal/retry"
)

const (
	DefaultWatchURL   = "https://live.nicovideo.jp/watch/"
	DefaultChannelURL = "https://ch.nicovideo.jp/"
)

// Client interface for testability
type Client interface {
	LiveData(ctx context.Context, liveID string) (*LiveData, error)
	Stream(ctx context.Context, url string) (io.ReadCloser, error)
}

type Options struct {
	WatchURL   string
	ChannelURL string
	UserAgent  string
	RatePerSec int
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

type HTTPClient struct {
	httpClient   *http.Client
	streamClient *http.Client
	opts         Options
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker
	logger       *zap.Logger
}

func NewClient(opts Options, logger *zap.Logger) *HTTPClient {
	if opts.WatchURL == "" {
		opts.WatchURL = DefaultWatchURL
	}
	if opts.ChannelURL == "" {
		opts.ChannelURL = DefaultChannelURL
	}
	if opts.RatePerSec < 1 {
		opts.RatePerSec = 1
	}

	transport := &http.Transport{
		MaxIdleConns:       100,
		MaxConnsPerHost:    10,
		IdleConnTimeout:    90 * time.Second,
		DisableCompression: false,
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "comment-http",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return &HTTPClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		// segment bodies stay open as long as the broadcast produces comments
		streamClient: &http.Client{Transport: transport},
		opts:         opts,
		limiter:      rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.RatePerSec*2),
		breaker:      breaker,
		logger:       logger,
	}
}

// LiveData resolves the control-socket URL of a broadcast from its watch
// page. Channel ids that report a finished program fall back to the
// channel landing page, whose on-air link points at the real broadcast.
func (c *HTTPClient) LiveData(ctx context.Context, liveID string) (*LiveData, error) {
	data, err := c.fetchLiveData(ctx, c.opts.WatchURL+liveID)
	if err != nil {
		return nil, err
	}
	if data.OnAir() {
		return data, nil
	}

	if strings.Contains(liveID, "lv") {
		return nil, liveerr.Errorf(liveerr.LiveNotFound, "broadcast %s has ended", liveID)
	}

	c.logger.Info("program not on air, trying channel page",
		zap.String("live_id", liveID),
		zap.String("status", data.Status),
	)

	page, err := c.getPage(ctx, c.opts.ChannelURL+liveID)
	if err != nil {
		return nil, classify(ctx, err)
	}
	link, ok := OnAirLink(page)
	if !ok {
		return nil, liveerr.Errorf(liveerr.LiveNotFound, "channel %s has no broadcast on air", liveID)
	}

	data, err = c.fetchLiveData(ctx, link)
	if err != nil {
		return nil, err
	}
	if !data.OnAir() {
		return nil, liveerr.Errorf(liveerr.LiveNotFound, "broadcast %s has ended", link)
	}
	return data, nil
}

func (c *HTTPClient) fetchLiveData(ctx context.Context, url string) (*LiveData, error) {
	page, err := c.getPage(ctx, url)
	if err != nil {
		return nil, classify(ctx, err)
	}
	data, err := ExtractLiveData(page)
	if err != nil {
		return nil, liveerr.New(liveerr.Protocol, err)
	}
	return data, nil
}

// Stream opens url and returns its body without a read deadline.
func (c *HTTPClient) Stream(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, liveerr.FromIO(ctx, fmt.Errorf("rate limiter: %w", err), liveerr.Network)
	}

	resp, err := c.send(ctx, c.streamClient, url)
	if err != nil {
		return nil, classify(ctx, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, classify(ctx, statusErr(resp.StatusCode))
	}
	return resp.Body, nil
}

func (c *HTTPClient) getPage(ctx context.Context, url string) ([]byte, error) {
	policy := retry.Policy{
		MaxAttempts: c.opts.RetryCount + 1,
		Backoff:     retry.Exponential(c.opts.RetryDelay),
		OnRetry: func(attempt int, err error, delay time.Duration) {
			c.logger.Debug("retrying request",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		},
	}

	return retry.Do(ctx, policy, retryable, func(ctx context.Context, attempt int) ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		c.logger.Debug("requesting", zap.String("url", url))
		resp, err := c.send(ctx, c.httpClient, url)
		if err != nil {
			return nil, err
		}

		// Read body before closing for error messages
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("reading body: %w", readErr)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, statusErr(resp.StatusCode)
		}
		return body, nil
	})
}

// send runs one request through the circuit breaker. Only transport
// failures and 5xx responses count against the breaker.
func (c *HTTPClient) send(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		if resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			return nil, &StatusError{Code: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*http.Response), nil
}

func statusErr(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return &StatusError{Code: code}
}

func retryable(err error) retry.Action {
	var status *StatusError
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return retry.Stop
	case errors.As(err, &status) && status.Code < 500:
		return retry.Stop
	}
	return retry.Retry
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return liveerr.New(liveerr.LiveNotFound, err)
	case errors.Is(err, ErrFormat):
		return liveerr.New(liveerr.Protocol, err)
	}
	return liveerr.FromIO(ctx, err, liveerr.Network)
}
