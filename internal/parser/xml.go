// Package parser decodes raw comment-stream bytes into comment tags.
//
// Parsers keep state across calls and queue decoded tags until Drain is
// called. They are not safe for concurrent use; each receiver owns one.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"golang.org/x/net/html"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

// XMLMode selects the framing of legacy XML input.
type XMLMode int

const (
	// LogMode scans free text for <chat>...</chat> and <thread .../>.
	LogMode XMLMode = iota
	// SocketMode splits the input on NUL bytes.
	SocketMode
)

var (
	reThread     = regexp.MustCompile(`thread="(\d+)"`)
	reDate       = regexp.MustCompile(`date="(\d+)"`)
	reDateUsec   = regexp.MustCompile(`date_usec="(\d+)"`)
	reMail       = regexp.MustCompile(` mail="(.*?)"`)
	reUserID     = regexp.MustCompile(` user_id="([0-9A-Za-z\-_]{0,27})`)
	rePremium    = regexp.MustCompile(` premium="(\d+)"`)
	reAnonymity  = regexp.MustCompile(` anonymity="(\d+)"`)
	reAbone      = regexp.MustCompile(` abone="(\d+)"`)
	reNo         = regexp.MustCompile(` no="(\d+)"`)
	reVpos       = regexp.MustCompile(`vpos="(-?\d+)"`)
	reTicket     = regexp.MustCompile(`ticket="([^"]*)"`)
	reServerTime = regexp.MustCompile(`server_time="(\d+)"`)
	reStatus     = regexp.MustCompile(`status="(\d+)"`)
)

// XML is an incremental parser for the legacy XML comment format.
type XML struct {
	mode     XMLMode
	viewerID string
	clock    clockwork.Clock

	buf      string
	inChat   bool
	inThread bool
	tags     []comment.Tag
}

// NewXML creates a parser. Chats whose user_id equals viewerID are marked
// as own posts; pass an empty viewerID to disable the check.
func NewXML(mode XMLMode, viewerID string, clock clockwork.Clock) *XML {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &XML{mode: mode, viewerID: viewerID, clock: clock}
}

// Push appends s to the buffer and decodes every complete tag. A malformed
// tag is skipped and reported after the rest of the input is processed.
func (p *XML) Push(s string) error {
	p.buf += s
	if p.mode == SocketMode {
		return p.pushSocket()
	}
	return p.pushLog()
}

// Drain returns and clears all decoded tags.
func (p *XML) Drain() []comment.Tag {
	tags := p.tags
	p.tags = nil
	return tags
}

// Reset discards buffered input and queued tags.
func (p *XML) Reset() {
	p.buf = ""
	p.inChat = false
	p.inThread = false
	p.tags = nil
}

func (p *XML) pushSocket() error {
	parts := strings.Split(p.buf, "\x00")
	p.buf = parts[len(parts)-1]

	var firstErr error
	for _, seg := range parts[:len(parts)-1] {
		tag, err := p.parseSegment(seg)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if tag != nil {
			p.tags = append(p.tags, tag)
		}
	}
	return firstErr
}

func (p *XML) parseSegment(seg string) (comment.Tag, error) {
	switch {
	case strings.HasPrefix(seg, "<chat_result"):
		m := reStatus.FindStringSubmatch(seg)
		if m == nil {
			return nil, liveerr.Errorf(liveerr.Protocol, "chat_result without status: %q", seg)
		}
		status, _ := strconv.Atoi(m[1])
		return &comment.ChatResultTag{Status: status}, nil
	case strings.HasPrefix(seg, "<chat"):
		return p.parseChat(seg)
	case strings.HasPrefix(seg, "<thread"):
		return p.parseThread(seg)
	case strings.HasPrefix(seg, "<leave_thread"):
		return &comment.LeaveThreadTag{}, nil
	}
	return nil, nil
}

func (p *XML) pushLog() error {
	var firstErr error
	keep := func(tag comment.Tag, err error) {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		p.tags = append(p.tags, tag)
	}

	for {
		switch {
		case p.inChat:
			idx := strings.Index(p.buf, "</chat>")
			if idx < 0 {
				return firstErr
			}
			idx += len("</chat>")
			raw := p.buf[:idx]
			p.buf = p.buf[idx:]
			p.inChat = false
			keep(p.parseChat(raw))

		case p.inThread:
			idx := strings.Index(p.buf, "/>")
			if idx < 0 {
				return firstErr
			}
			idx += len("/>")
			raw := p.buf[:idx]
			p.buf = p.buf[idx:]
			p.inThread = false
			keep(p.parseThread(raw))

		default:
			idx := strings.IndexByte(p.buf, '<')
			if idx < 0 {
				p.buf = ""
				return firstErr
			}
			p.buf = p.buf[idx:]
			switch {
			case opensElement(p.buf, "<chat"):
				p.inChat = true
			case opensElement(p.buf, "<thread"):
				p.inThread = true
			case partialElement(p.buf, "<chat"), partialElement(p.buf, "<thread"):
				// the element name is split across pushes
				return firstErr
			default:
				p.buf = p.buf[1:]
			}
		}
	}
}

// opensElement reports whether buf starts with the element name followed by
// a separator, so "<chat" does not match "<chat_result".
func opensElement(buf, name string) bool {
	if len(buf) <= len(name) || !strings.HasPrefix(buf, name) {
		return false
	}
	switch buf[len(name)] {
	case ' ', '\t', '\r', '\n', '/', '>':
		return true
	}
	return false
}

func partialElement(buf, name string) bool {
	return len(buf) <= len(name) && strings.HasPrefix(name, buf)
}

func (p *XML) parseChat(raw string) (comment.Tag, error) {
	open := raw
	text := ""
	if end := strings.IndexByte(raw, '>'); end >= 0 {
		open = raw[:end]
		body := raw[end+1:]
		if closing := strings.LastIndex(body, "</chat>"); closing >= 0 {
			body = body[:closing]
		}
		if !strings.HasSuffix(open, "/") {
			text = body
		}
	}

	date, err := requiredInt64(reDate, open)
	if err != nil {
		return nil, liveerr.Errorf(liveerr.Protocol, "chat date: %w", err)
	}
	vpos, err := requiredInt64(reVpos, open)
	if err != nil {
		return nil, liveerr.Errorf(liveerr.Protocol, "chat vpos: %w", err)
	}

	userID := submatch(reUserID, open)
	tag := &comment.ChatTag{
		Text:      html.UnescapeString(text),
		Thread:    html.UnescapeString(submatch(reThread, open)),
		No:        optionalInt(reNo, open),
		Vpos:      int(vpos),
		Date:      date,
		DateUsec:  optionalInt(reDateUsec, open),
		Mail:      html.UnescapeString(submatch(reMail, open)),
		UserID:    userID,
		Premium:   optionalInt(rePremium, open),
		Anonymity: optionalInt(reAnonymity, open),
		Abone:     optionalInt(reAbone, open),
		IsSelf:    p.viewerID != "" && userID == p.viewerID,
	}
	return tag, nil
}

func (p *XML) parseThread(raw string) (comment.Tag, error) {
	thread := submatch(reThread, raw)
	if thread == "" {
		return nil, liveerr.Errorf(liveerr.Protocol, "thread tag without thread: %q", raw)
	}
	serverTime, _ := strconv.ParseInt(submatch(reServerTime, raw), 10, 64)
	return &comment.ThreadTag{
		Thread:     thread,
		Ticket:     html.UnescapeString(submatch(reTicket, raw)),
		ServerTime: serverTime,
		ReceivedAt: p.clock.Now().In(comment.JST),
	}, nil
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

func optionalInt(re *regexp.Regexp, s string) int {
	v, err := strconv.Atoi(submatch(re, s))
	if err != nil {
		return 0
	}
	return v
}

func requiredInt64(re *regexp.Regexp, s string) (int64, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, errMissingAttribute
	}
	return strconv.ParseInt(m[1], 10, 64)
}
