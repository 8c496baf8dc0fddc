package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

// disconnectContent is posted by an operator account to close a thread.
const disconnectContent = "/disconnect"

// JSON decodes frames of the JSON thread-subscription protocol:
// {"chat":{...}}, {"thread":{...}}, {"chat_result":{...}}, {"ping":{...}}.
type JSON struct {
	viewerID string
	clock    clockwork.Clock
	tags     []comment.Tag
}

func NewJSON(viewerID string, clock clockwork.Clock) *JSON {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &JSON{viewerID: viewerID, clock: clock}
}

type jsonFrame struct {
	Chat        *jsonChat       `json:"chat"`
	Thread      *jsonThread     `json:"thread"`
	ChatResult  *jsonChatResult `json:"chat_result"`
	LeaveThread *struct{}       `json:"leave_thread"`
	Ping        *struct{}       `json:"ping"`
}

type jsonChat struct {
	Thread    looseString `json:"thread"`
	No        int         `json:"no"`
	Vpos      int         `json:"vpos"`
	Date      int64       `json:"date"`
	DateUsec  int         `json:"date_usec"`
	Mail      string      `json:"mail"`
	UserID    looseString `json:"user_id"`
	Premium   int         `json:"premium"`
	Anonymity int         `json:"anonymity"`
	Deleted   int         `json:"deleted"`
	YourPost  int         `json:"yourpost"`
	Content   string      `json:"content"`
}

type jsonThread struct {
	ResultCode int         `json:"resultcode"`
	Thread     looseString `json:"thread"`
	Ticket     string      `json:"ticket"`
	ServerTime int64       `json:"server_time"`
}

type jsonChatResult struct {
	Status int `json:"status"`
}

// looseString accepts both JSON strings and numbers.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = looseString(n.String())
	return nil
}

// Push decodes one socket frame. A frame may hold a single object or an
// array of objects. ErrDisconnect is returned after the tags preceding the
// disconnect chat have been queued.
func (p *JSON) Push(frame []byte) error {
	frame = bytes.TrimSpace(frame)
	if len(frame) == 0 {
		return nil
	}

	if frame[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(frame, &items); err != nil {
			return liveerr.New(liveerr.Protocol, fmt.Errorf("decoding frame array: %w", err))
		}
		for _, item := range items {
			if err := p.pushObject(item); err != nil {
				return err
			}
		}
		return nil
	}
	return p.pushObject(frame)
}

// Drain returns and clears all decoded tags.
func (p *JSON) Drain() []comment.Tag {
	tags := p.tags
	p.tags = nil
	return tags
}

func (p *JSON) pushObject(raw []byte) error {
	var f jsonFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return liveerr.New(liveerr.Protocol, fmt.Errorf("decoding frame: %w", err))
	}

	switch {
	case f.Chat != nil:
		c := f.Chat
		if c.Content == disconnectContent && c.Premium >= 2 {
			return ErrDisconnect
		}
		userID := string(c.UserID)
		p.tags = append(p.tags, &comment.ChatTag{
			Text:      c.Content,
			Thread:    string(c.Thread),
			No:        c.No,
			Vpos:      c.Vpos,
			Date:      c.Date,
			DateUsec:  c.DateUsec,
			Mail:      c.Mail,
			UserID:    userID,
			Premium:   c.Premium,
			Anonymity: c.Anonymity,
			Abone:     c.Deleted,
			IsSelf:    c.YourPost == 1 || (p.viewerID != "" && userID == p.viewerID),
		})
	case f.Thread != nil:
		p.tags = append(p.tags, &comment.ThreadTag{
			Thread:     string(f.Thread.Thread),
			Ticket:     f.Thread.Ticket,
			ServerTime: f.Thread.ServerTime,
			ReceivedAt: p.clock.Now().In(comment.JST),
		})
	case f.ChatResult != nil:
		p.tags = append(p.tags, &comment.ChatResultTag{Status: f.ChatResult.Status})
	case f.LeaveThread != nil:
		p.tags = append(p.tags, &comment.LeaveThreadTag{})
	}
	return nil
}

// ThreadRequest is the composite subscription message sent when a comment
// socket opens.
func ThreadRequest(threadID, threadKey string) ([]byte, error) {
	type ping struct {
		Content string `json:"content"`
	}
	type thread struct {
		Thread     string `json:"thread"`
		Version    string `json:"version"`
		UserID     string `json:"user_id"`
		ResFrom    int    `json:"res_from"`
		WithGlobal int    `json:"with_global"`
		Scores     int    `json:"scores"`
		Nicoru     int    `json:"nicoru"`
		ThreadKey  string `json:"threadkey"`
	}

	msg := []any{
		map[string]ping{"ping": {Content: "rs:0"}},
		map[string]ping{"ping": {Content: "ps:0"}},
		map[string]thread{"thread": {
			Thread:     threadID,
			Version:    "20061206",
			ResFrom:    -10,
			WithGlobal: 1,
			Scores:     1,
			ThreadKey:  threadKey,
		}},
		map[string]ping{"ping": {Content: "pf:0"}},
		map[string]ping{"ping": {Content: "rf:0"}},
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshaling thread request: %w", err)
	}
	return b, nil
}

// ThreadNumber formats a numeric thread id.
func ThreadNumber(id int64) string {
	return strconv.FormatInt(id, 10)
}
