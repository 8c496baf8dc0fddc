package parser

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

const logDocument = `<?xml version="1.0" encoding="UTF-8"?>
<packet><thread resultcode="0" thread="1234" last_res="10" ticket="0x9a" revision="1" server_time="1700000000"/>
<chat thread="123" no="7" vpos="456" date="1700000000" date_usec="123456" mail="184 ue red" user_id="abcDEF-_1" premium="1" anonymity="1">a &amp;lt; b &amp; &quot;c&quot;</chat>
<chat thread="123" no="8" vpos="-5" date="1700000001" user_id="viewer">こんにちは</chat>
<chat_result status="0"/>
</packet>
`

func newTestXML(mode XMLMode) *XML {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	return NewXML(mode, "viewer", clock)
}

func TestXML_LogModeWholeDocument(t *testing.T) {
	p := newTestXML(LogMode)
	require.NoError(t, p.Push(logDocument))

	tags := p.Drain()
	require.Len(t, tags, 3)

	thread, ok := tags[0].(*comment.ThreadTag)
	require.True(t, ok)
	assert.Equal(t, "1234", thread.Thread)
	assert.Equal(t, "0x9a", thread.Ticket)
	assert.Equal(t, int64(1700000000), thread.ServerTime)

	first, ok := tags[1].(*comment.ChatTag)
	require.True(t, ok)
	assert.Equal(t, "123", first.Thread)
	assert.Equal(t, 7, first.No)
	assert.Equal(t, 456, first.Vpos)
	assert.Equal(t, int64(1700000000), first.Date)
	assert.Equal(t, 123456, first.DateUsec)
	assert.Equal(t, "184 ue red", first.Mail)
	assert.Equal(t, "abcDEF-_1", first.UserID)
	assert.Equal(t, `a &lt; b & "c"`, first.Text, "entities are decoded exactly once")
	assert.False(t, first.IsSelf)

	second, ok := tags[2].(*comment.ChatTag)
	require.True(t, ok)
	assert.Equal(t, -5, second.Vpos)
	assert.Equal(t, "こんにちは", second.Text)
	assert.Equal(t, "", second.Mail)
	assert.Equal(t, 0, second.Premium)
	assert.Equal(t, 0, second.Anonymity)
	assert.Equal(t, 0, second.DateUsec)
	assert.True(t, second.IsSelf)

	assert.Empty(t, p.Drain(), "drain clears the queue")
}

func TestXML_LogModeBytewiseMatchesWhole(t *testing.T) {
	whole := newTestXML(LogMode)
	require.NoError(t, whole.Push(logDocument))
	expected := whole.Drain()

	bytewise := newTestXML(LogMode)
	var got []comment.Tag
	for i := 0; i < len(logDocument); i++ {
		require.NoError(t, bytewise.Push(logDocument[i:i+1]))
		got = append(got, bytewise.Drain()...)
	}

	assert.Equal(t, expected, got)
}

func TestXML_LogModeChunkedPushes(t *testing.T) {
	whole := newTestXML(LogMode)
	require.NoError(t, whole.Push(logDocument))
	expected := whole.Drain()

	for _, size := range []int{2, 3, 5, 17, 64} {
		p := newTestXML(LogMode)
		var got []comment.Tag
		for i := 0; i < len(logDocument); i += size {
			end := min(i+size, len(logDocument))
			require.NoError(t, p.Push(logDocument[i:end]))
			got = append(got, p.Drain()...)
		}
		assert.Equal(t, expected, got, "chunk size %d", size)
	}
}

func TestXML_PremiumAnonymityAboneAreIndependent(t *testing.T) {
	// Each flag is read from its own attribute. Reading all three from
	// abone would report premium=1 and anonymity=1 here.
	p := newTestXML(LogMode)
	require.NoError(t, p.Push(`<chat thread="1" vpos="0" date="1" premium="0" anonymity="1" abone="1">x</chat>`))

	tags := p.Drain()
	require.Len(t, tags, 1)
	chat := tags[0].(*comment.ChatTag)
	assert.Equal(t, 0, chat.Premium)
	assert.Equal(t, 1, chat.Anonymity)
	assert.Equal(t, 1, chat.Abone)
}

func TestXML_SocketMode(t *testing.T) {
	p := newTestXML(SocketMode)
	input := `<thread resultcode="0" thread="99" ticket="tk" server_time="5"/>` + "\x00" +
		`<chat thread="99" no="1" vpos="100" date="10" user_id="viewer" premium="1">hi</chat>` + "\x00" +
		`<chat_result thread="99" status="4"/>` + "\x00" +
		`<leave_thread/>` + "\x00" +
		`<chat thread="99" no="2"`

	require.NoError(t, p.Push(input))
	tags := p.Drain()
	require.Len(t, tags, 4)

	assert.Equal(t, "99", tags[0].(*comment.ThreadTag).Thread)
	chat := tags[1].(*comment.ChatTag)
	assert.Equal(t, "hi", chat.Text)
	assert.Equal(t, 1, chat.Premium)
	assert.True(t, chat.IsSelf)
	assert.Equal(t, 4, tags[2].(*comment.ChatResultTag).Status)
	assert.IsType(t, &comment.LeaveThreadTag{}, tags[3])

	require.NoError(t, p.Push(` vpos="1" date="11">later</chat>`+"\x00"))
	tags = p.Drain()
	require.Len(t, tags, 1)
	assert.Equal(t, "later", tags[0].(*comment.ChatTag).Text)
}

func TestXML_MalformedChatIsReportedAndSkipped(t *testing.T) {
	p := newTestXML(LogMode)
	err := p.Push(`<chat thread="1" vpos="0">no date</chat><chat thread="1" vpos="1" date="2">ok</chat>`)
	require.Error(t, err)
	assert.Equal(t, liveerr.Protocol, liveerr.KindOf(err))

	tags := p.Drain()
	require.Len(t, tags, 1)
	assert.Equal(t, "ok", tags[0].(*comment.ChatTag).Text)
}

func TestXML_LogModeIgnoresChatResult(t *testing.T) {
	p := newTestXML(LogMode)
	require.NoError(t, p.Push(`<chat_result status="0"/><chat thread="1" vpos="1" date="2">ok</chat>`))
	tags := p.Drain()
	require.Len(t, tags, 1)
	assert.Equal(t, "ok", tags[0].(*comment.ChatTag).Text)
}

func TestXML_ChatTagRoundTripToChat(t *testing.T) {
	p := newTestXML(LogMode)
	require.NoError(t, p.Push(`<chat thread="123" vpos="456" date="1700000000" mail="shita">&amp;amp;</chat>`))
	tag := p.Drain()[0].(*comment.ChatTag)

	assert.Equal(t, "123", tag.Thread)
	assert.Equal(t, 456, tag.Vpos)
	assert.Equal(t, int64(1700000000), tag.Date)

	chat := comment.ToChat(tag)
	assert.Equal(t, "&amp;", chat.Text)
	assert.Equal(t, int64(1700000000), chat.Time.Unix())
	assert.Equal(t, comment.PositionBottom, chat.Position)
}

func TestXML_Reset(t *testing.T) {
	p := newTestXML(LogMode)
	require.NoError(t, p.Push(`<chat thread="1" vpos="1" date="2">par`))
	p.Reset()
	require.NoError(t, p.Push(`<chat thread="1" vpos="1" date="2">ok</chat>`))
	tags := p.Drain()
	require.Len(t, tags, 1)
	assert.Equal(t, "ok", tags[0].(*comment.ChatTag).Text)
}
