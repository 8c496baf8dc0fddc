package receiver

import (
	"context"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	"github.com/dgnsrekt/livecomment/internal/parser"
	"github.com/dgnsrekt/livecomment/internal/watch"
)

const commentLog = `<?xml version="1.0" encoding="UTF-8"?>
<packet>
<thread thread="1700000000" server_time="1700000000" ticket="0x1"/>
<chat thread="1700000000" no="1" vpos="100" date="1700000001" mail="184 ue" user_id="u1">first &amp; foremost</chat>
<chat thread="1700000000" no="2" vpos="200" date="1700000002" user_id="u2">multi
line</chat>
<chat thread="1700000000" no="3" date="1700000003">no vpos</chat>
</packet>
`

func TestText_LogMode(t *testing.T) {
	r := NewText(strings.NewReader(commentLog), parser.LogMode, "", clockwork.NewFakeClock(), zap.NewNop())

	tags, err := collect(t, r, watch.Descriptor{})
	require.NoError(t, err)
	require.Len(t, tags, 3)

	assert.IsType(t, &comment.ThreadTag{}, tags[0])
	first := tags[1].(*comment.ChatTag)
	assert.Equal(t, "first & foremost", first.Text)
	assert.Equal(t, "184 ue", first.Mail)
	assert.Equal(t, "multi\nline", tags[2].(*comment.ChatTag).Text)
}

func TestText_SocketMode(t *testing.T) {
	capture := "<thread thread=\"1\" server_time=\"5\"/>\x00<chat thread=\"1\" no=\"1\" vpos=\"1\" date=\"2\">a</chat>\x00<chat_result status=\"0\"/>\x00"
	r := NewText(strings.NewReader(capture), parser.SocketMode, "", clockwork.NewFakeClock(), zap.NewNop())

	tags, err := collect(t, r, watch.Descriptor{})
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "a", tags[1].(*comment.ChatTag).Text)
	assert.IsType(t, &comment.ChatResultTag{}, tags[2])
}

func TestText_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewText(strings.NewReader(commentLog), parser.LogMode, "", clockwork.NewFakeClock(), zap.NewNop())
	var last error
	for _, err := range r.Receive(ctx, watch.Descriptor{}) {
		last = err
	}
	assert.True(t, liveerr.Is(last, liveerr.Cancelled), "got %v", last)
}
