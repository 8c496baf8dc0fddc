package poster

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

type fakeChannel struct {
	openTime time.Time
	sent     [][]byte
	results  []string
	resets   int
	sendErr  error
}

func (c *fakeChannel) OpenTime() time.Time { return c.openTime }
func (c *fakeChannel) ResetResult()        { c.resets++ }

func (c *fakeChannel) Send(ctx context.Context, frame []byte) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, frame)
	return nil
}

func (c *fakeChannel) AwaitResult(ctx context.Context) (string, error) {
	if len(c.results) == 0 {
		<-ctx.Done()
		return "", liveerr.New(liveerr.Cancelled, ctx.Err())
	}
	r := c.results[0]
	c.results = c.results[1:]
	return r, nil
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		name string
		mail string
		want Modifiers
	}{
		{
			name: "empty gives defaults",
			mail: "",
			want: Modifiers{Size: "medium", Position: "naka", Font: "defont", Color: "white"},
		},
		{
			name: "anonymous big top red",
			mail: "184 big ue red",
			want: Modifiers{Anonymous: true, Size: "big", Position: "ue", Font: "defont", Color: "red"},
		},
		{
			name: "first token of each class wins",
			mail: "small big shita ue mincho gothic blue2 red",
			want: Modifiers{Size: "small", Position: "shita", Font: "mincho", Color: "blue2"},
		},
		{
			name: "hex colors",
			mail: "#F0a",
			want: Modifiers{Size: "medium", Position: "naka", Font: "defont", Color: "#F0a"},
		},
		{
			name: "unknown tokens are ignored",
			mail: "sage niconicowhite #12345 gothic",
			want: Modifiers{Size: "medium", Position: "naka", Font: "gothic", Color: "white"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseModifiers(tt.mail))
		})
	}
}

func TestVpos(t *testing.T) {
	open := time.Unix(1700000000, 0)
	assert.Equal(t, int64(0), Vpos(open, open))
	assert.Equal(t, int64(12345), Vpos(open.Add(123450*time.Millisecond), open))
	assert.Equal(t, int64(-100), Vpos(open.Add(-time.Second), open))
}

func TestPost_SendsFrame(t *testing.T) {
	open := time.Unix(1700000000, 0)
	clock := clockwork.NewFakeClockAt(open.Add(90 * time.Second))
	ch := &fakeChannel{openTime: open, results: []string{"hello \"world\""}}

	err := New(clock, zap.NewNop()).Post(context.Background(), ch, "hello \"world\"", "184 shita #00ff00")
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)
	assert.Equal(t, 1, ch.resets)

	var frame struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ch.sent[0], &frame))
	assert.Equal(t, "postComment", frame.Type)
	assert.Equal(t, "hello \"world\"", frame.Data["text"])
	assert.Equal(t, float64(9000), frame.Data["vpos"])
	assert.Equal(t, true, frame.Data["isAnonymous"])
	assert.Equal(t, "#00ff00", frame.Data["color"])
	assert.Equal(t, "medium", frame.Data["size"])
	assert.Equal(t, "shita", frame.Data["position"])
	assert.Equal(t, "defont", frame.Data["font"])
}

func TestPost_ClassifiesResult(t *testing.T) {
	tests := []struct {
		result string
		kind   liveerr.Kind
	}{
		{"INTERNAL_SERVERERROR", liveerr.PostRejected},
		{"INVALID_MESSAGE", liveerr.PostRejected},
		{"COMMENT_POST_NOT_ALLOWED", liveerr.PostRejected},
		{"BROADCAST_NOT_FOUND", liveerr.PostRejected},
		{"NOT_ON_AIR", liveerr.LiveNotFound},
		{"disconnect", liveerr.Disconnect},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			ch := &fakeChannel{results: []string{tt.result}}
			err := New(clockwork.NewFakeClock(), zap.NewNop()).Post(context.Background(), ch, "x", "")
			assert.True(t, liveerr.Is(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.result, liveerr.CodeOf(err))
		})
	}
}

func TestPost_SendFailure(t *testing.T) {
	ch := &fakeChannel{sendErr: liveerr.Errorf(liveerr.NotReady, "not connected")}
	err := New(clockwork.NewFakeClock(), zap.NewNop()).Post(context.Background(), ch, "x", "")
	assert.True(t, liveerr.Is(err, liveerr.NotReady), "got %v", err)
}

func TestPost_WaitHonoursContext(t *testing.T) {
	ch := &fakeChannel{}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := New(clockwork.NewFakeClock(), zap.NewNop()).Post(ctx, ch, "x", "")
	assert.True(t, liveerr.Is(err, liveerr.Cancelled), "got %v", err)
}
