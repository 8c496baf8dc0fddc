// Package receiver streams comment tags from a broadcast's comment
// transport once the watch session has described where it lives.
package receiver

import (
	"context"
	"errors"
	"iter"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

// Receiver yields tags until ctx ends or the stream terminates. A terminal
// failure is yielded once as (nil, err). Sequences are single use.
type Receiver interface {
	Receive(ctx context.Context, d watch.Descriptor) iter.Seq2[comment.Tag, error]
}

// errStopped means the consumer stopped ranging over the sequence.
var errStopped = errors.New("consumer stopped")

func yieldAll(tags []comment.Tag, yield func(comment.Tag, error) bool) error {
	for _, tag := range tags {
		if !yield(tag, nil) {
			return errStopped
		}
	}
	return nil
}
