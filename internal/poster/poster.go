// Package poster sends comments through a live watch session and
// classifies the server's answer.
package poster

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/metrics"
)

// Channel is the control socket a post travels through. *watch.Manager
// implements it.
type Channel interface {
	OpenTime() time.Time
	ResetResult()
	Send(ctx context.Context, frame []byte) error
	AwaitResult(ctx context.Context) (string, error)
}

type postFrame struct {
	Type string   `json:"type"`
	Data postData `json:"data"`
}

type postData struct {
	Text        string `json:"text"`
	Vpos        int64  `json:"vpos"`
	IsAnonymous bool   `json:"isAnonymous"`
	Color       string `json:"color"`
	Size        string `json:"size"`
	Position    string `json:"position"`
	Font        string `json:"font"`
}

type Poster struct {
	clock  clockwork.Clock
	logger *zap.Logger
}

func New(clock clockwork.Clock, logger *zap.Logger) *Poster {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poster{clock: clock, logger: logger}
}

// Vpos is the playback position of now in centiseconds since openTime.
func Vpos(now, openTime time.Time) int64 {
	return now.UnixMilli()/10 - openTime.UnixMilli()/10
}

// Post sends text with the given modifier string and waits for the
// server's verdict.
func (p *Poster) Post(ctx context.Context, ch Channel, text, modifiers string) error {
	mods := ParseModifiers(modifiers)
	frame, err := json.Marshal(postFrame{
		Type: "postComment",
		Data: postData{
			Text:        text,
			Vpos:        Vpos(p.clock.Now(), ch.OpenTime()),
			IsAnonymous: mods.Anonymous,
			Color:       mods.Color,
			Size:        mods.Size,
			Position:    mods.Position,
			Font:        mods.Font,
		},
	})
	if err != nil {
		return fmt.Errorf("encoding post frame: %w", err)
	}

	ch.ResetResult()
	start := p.clock.Now()
	if err := ch.Send(ctx, frame); err != nil {
		return err
	}

	result, err := ch.AwaitResult(ctx)
	if err != nil {
		return err
	}
	metrics.PostDuration.Observe(p.clock.Since(start).Seconds())

	err = Classify(result)
	outcome := "ok"
	if err != nil {
		outcome = result
	}
	metrics.PostResults.WithLabelValues(outcome).Inc()
	p.logger.Debug("comment posted",
		zap.String("outcome", outcome),
		zap.Int("length", len(text)),
	)
	return err
}

// Classify maps a post result to an error. Results that are not a known
// rejection code are the echoed comment and mean success.
func Classify(result string) error {
	switch result {
	case "disconnect":
		return liveerr.WithCode(liveerr.Disconnect, result)
	case "NOT_ON_AIR":
		return liveerr.WithCode(liveerr.LiveNotFound, result)
	case "CONTENT_NOT_READY",
		"NO_PERMISSION",
		"BROADCAST_NOT_FOUND",
		"INTERNAL_SERVERERROR",
		"INVALID_MESSAGE",
		"COMMENT_POST_NOT_ALLOWED":
		return liveerr.WithCode(liveerr.PostRejected, result)
	}
	return nil
}
