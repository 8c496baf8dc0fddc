package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	pb "github.com/dgnsrekt/livecomment/internal/parser/generated/ndgr"
)

func chatMessage(no int32, content string, hashed string) *pb.ChunkedMessage {
	chat := &pb.Chat{
		Content: content,
		Vpos:    no * 100,
		No:      no,
		Modifier: &pb.Modifier{
			Position:   pb.Position_POSITION_UE,
			Size:       pb.Size_SIZE_BIG,
			NamedColor: pb.ColorName_COLOR_NAME_RED.Enum(),
		},
	}
	if hashed != "" {
		chat.HashedUserId = proto.String(hashed)
	} else {
		chat.RawUserId = proto.Int64(int64(1000 + no))
		chat.Name = "name"
		chat.AccountStatus = pb.AccountStatus_ACCOUNT_STATUS_PREMIUM
	}
	return &pb.ChunkedMessage{
		Meta: &pb.Meta{
			Id:     "m",
			At:     &timestamppb.Timestamp{Seconds: 1700000000 + int64(no), Nanos: 250_000_000},
			Origin: &pb.NicoliveOrigin{Chat: &pb.OriginChat{LiveId: 345}},
		},
		Message: &pb.NicoliveMessage{Chat: chat},
	}
}

func pushWire(t *testing.T, p *Protobuf, msg *pb.ChunkedMessage) []comment.Tag {
	t.Helper()
	b, err := proto.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, p.PushBytes(b))
	return p.Drain()
}

func TestProtobuf_ChatFields(t *testing.T) {
	p := NewProtobuf("viewer-hash")
	tags := append(
		pushWire(t, p, chatMessage(1, "hashed", "viewer-hash")),
		pushWire(t, p, chatMessage(2, "raw", ""))...,
	)
	require.Len(t, tags, 2)

	hashed := tags[0].(*comment.ChatTag)
	assert.Equal(t, "hashed", hashed.Text)
	assert.Equal(t, "345", hashed.Thread)
	assert.Equal(t, 1, hashed.No)
	assert.Equal(t, 100, hashed.Vpos)
	assert.Equal(t, int64(1700000001), hashed.Date)
	assert.Equal(t, 250000, hashed.DateUsec)
	assert.Equal(t, "viewer-hash", hashed.UserID)
	assert.Equal(t, "184 normal ue big defont red", hashed.Mail)
	assert.Equal(t, 1, hashed.Anonymity)
	assert.Equal(t, 0, hashed.Premium)
	assert.True(t, hashed.IsSelf)

	raw := tags[1].(*comment.ChatTag)
	assert.Equal(t, "1002 (name)", raw.UserID)
	assert.Equal(t, "normal ue big defont red", raw.Mail)
	assert.Equal(t, 0, raw.Anonymity)
	assert.Equal(t, 1, raw.Premium)
	assert.False(t, raw.IsSelf)
}

func TestProtobuf_FullColor(t *testing.T) {
	msg := chatMessage(1, "c", "h")
	msg.Message.Chat.Modifier = &pb.Modifier{FullColor: &pb.FullColor{R: 0x12, G: 0xAB, B: 0x0F}}

	tags := pushWire(t, NewProtobuf(""), msg)
	require.Len(t, tags, 1)
	assert.Equal(t, "184 normal naka medium defont #12AB0F", tags[0].(*comment.ChatTag).Mail)
}

func TestProtobuf_Commands(t *testing.T) {
	tests := []struct {
		name string
		chat *pb.Chat
		want string
	}{
		{
			name: "no modifier",
			chat: &pb.Chat{RawUserId: proto.Int64(1)},
			want: "normal naka medium defont",
		},
		{
			name: "named white is explicit",
			chat: &pb.Chat{
				RawUserId: proto.Int64(1),
				Modifier:  &pb.Modifier{NamedColor: pb.ColorName_COLOR_NAME_WHITE.Enum()},
			},
			want: "normal naka medium defont white",
		},
		{
			name: "translucent shita small mincho",
			chat: &pb.Chat{
				HashedUserId: proto.String("h"),
				Modifier: &pb.Modifier{
					Position:   pb.Position_POSITION_SHITA,
					Size:       pb.Size_SIZE_SMALL,
					Font:       pb.Font_FONT_MINCHO,
					Opacity:    pb.Opacity_OPACITY_TRANSLUCENT,
					NamedColor: pb.ColorName_COLOR_NAME_PURPLE2.Enum(),
				},
			},
			want: "184 translucent shita small mincho purple2",
		},
		{
			name: "unknown values render nothing",
			chat: &pb.Chat{
				RawUserId: proto.Int64(1),
				Modifier: &pb.Modifier{
					Position:   pb.Position(9),
					NamedColor: pb.ColorName(99).Enum(),
				},
			},
			want: "normal medium defont",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands(tt.chat))
		})
	}
}

func TestProtobuf_SkipsMessagesWithoutChat(t *testing.T) {
	p := NewProtobuf("")
	require.NoError(t, p.Push(&pb.ChunkedMessage{Meta: &pb.Meta{Id: "x"}}))
	require.NoError(t, p.Push(&pb.ChunkedMessage{}))
	assert.Empty(t, p.Drain())
}

func TestProtobuf_ProgramEnded(t *testing.T) {
	ended := &pb.ChunkedMessage{State: &pb.NicoliveState{
		ProgramStatus: &pb.ProgramStatus{State: pb.ProgramState_PROGRAM_STATE_ENDED},
	}}

	p := NewProtobuf("")
	err := p.Push(ended)
	require.Error(t, err)
	assert.Equal(t, liveerr.Disconnect, liveerr.KindOf(err))

	b, err := proto.Marshal(ended)
	require.NoError(t, err)
	err = p.PushBytes(b)
	assert.Equal(t, liveerr.Disconnect, liveerr.KindOf(err))
}

func TestProtobuf_MalformedIsProtocol(t *testing.T) {
	p := NewProtobuf("")
	err := p.PushBytes([]byte{0x0A, 0x05, 0x01})
	require.Error(t, err)
	assert.Equal(t, liveerr.Protocol, liveerr.KindOf(err))
}
