// Package comment defines the decoded comment tags shared by all parsers and
// the normalized Chat entity handed to callers.
package comment

import "time"

// Tag is one decoded unit from a comment stream. The concrete types are
// ChatTag, ThreadTag, LeaveThreadTag and ChatResultTag.
type Tag interface {
	tagName() string
}

// ChatTag is a single posted comment.
type ChatTag struct {
	Text      string
	Thread    string
	No        int
	Vpos      int
	Date      int64 // unix seconds
	DateUsec  int
	Mail      string
	UserID    string
	Premium   int
	Anonymity int
	Abone     int
	IsSelf    bool
}

// ThreadTag acknowledges a thread subscription.
type ThreadTag struct {
	Thread     string
	Ticket     string
	ServerTime int64
	ReceivedAt time.Time
}

// LeaveThreadTag marks the server leaving a thread.
type LeaveThreadTag struct{}

// ChatResultTag acknowledges a legacy post.
type ChatResultTag struct {
	Status int
}

func (*ChatTag) tagName() string        { return "chat" }
func (*ThreadTag) tagName() string      { return "thread" }
func (*LeaveThreadTag) tagName() string { return "leave_thread" }
func (*ChatResultTag) tagName() string  { return "chat_result" }

// Name returns the wire element name of t.
func Name(t Tag) string {
	if t == nil {
		return ""
	}
	return t.tagName()
}
