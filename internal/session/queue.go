package session

import (
	"sync"

	"github.com/dgnsrekt/livecomment/internal/comment"
)

// TagQueue is a FIFO filled by the receiver and drained by Poll.
type TagQueue struct {
	mu   sync.Mutex
	tags []comment.Tag
}

func (q *TagQueue) Push(tag comment.Tag) {
	q.mu.Lock()
	q.tags = append(q.tags, tag)
	q.mu.Unlock()
}

// Drain returns everything queued so far without blocking.
func (q *TagQueue) Drain() []comment.Tag {
	q.mu.Lock()
	defer q.mu.Unlock()
	tags := q.tags
	q.tags = nil
	return tags
}

func (q *TagQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tags)
}
