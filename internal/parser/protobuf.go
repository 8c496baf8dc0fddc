package parser

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/liveerr"
	pb "github.com/dgnsrekt/livecomment/internal/parser/generated/ndgr"
)

// Protobuf turns chunked messages into chat tags.
type Protobuf struct {
	hashedViewerID string
	tags           []comment.Tag
}

// NewProtobuf creates a parser that marks chats from hashedViewerID as own
// posts.
func NewProtobuf(hashedViewerID string) *Protobuf {
	return &Protobuf{hashedViewerID: hashedViewerID}
}

// PushBytes decodes one length-stripped message and pushes it.
func (p *Protobuf) PushBytes(b []byte) error {
	var msg pb.ChunkedMessage
	if err := proto.Unmarshal(b, &msg); err != nil {
		return liveerr.New(liveerr.Protocol, fmt.Errorf("unmarshal chunked message: %w", err))
	}
	return p.Push(&msg)
}

// Push queues the chat carried by msg, if any. A program-ended state
// returns a Disconnect error.
func (p *Protobuf) Push(msg *pb.ChunkedMessage) error {
	if msg.GetState().GetProgramStatus().GetState() == pb.ProgramState_PROGRAM_STATE_ENDED {
		return liveerr.Errorf(liveerr.Disconnect, "program ended")
	}
	chat := msg.GetMessage().GetChat()
	if chat == nil {
		return nil
	}

	tag := &comment.ChatTag{
		Text:    chat.GetContent(),
		No:      int(chat.GetNo()),
		Vpos:    int(chat.GetVpos()),
		Mail:    commands(chat),
		Premium: boolInt(chat.GetAccountStatus() == pb.AccountStatus_ACCOUNT_STATUS_PREMIUM),
	}

	switch {
	case chat.RawUserId != nil:
		tag.UserID = fmt.Sprintf("%d (%s)", chat.GetRawUserId(), chat.GetName())
	case chat.HashedUserId != nil:
		tag.UserID = chat.GetHashedUserId()
		tag.Anonymity = 1
		tag.IsSelf = p.hashedViewerID != "" && tag.UserID == p.hashedViewerID
	}

	if meta := msg.GetMeta(); meta != nil {
		tag.Thread = ThreadNumber(meta.GetOrigin().GetChat().GetLiveId())
		if at := meta.GetAt(); at != nil {
			tag.Date = at.GetSeconds()
			tag.DateUsec = int(at.GetNanos() / 1000)
		}
	}

	p.tags = append(p.tags, tag)
	return nil
}

// Drain returns and clears all decoded tags.
func (p *Protobuf) Drain() []comment.Tag {
	tags := p.tags
	p.tags = nil
	return tags
}

// commands renders the chat modifier as a legacy mail command string.
func commands(chat *pb.Chat) string {
	var cmds []string
	if chat.HashedUserId != nil {
		cmds = append(cmds, "184")
	}

	m := chat.GetModifier()
	for _, s := range []string{
		enumName(pb.Opacity_name, int32(m.GetOpacity()), "OPACITY_"),
		enumName(pb.Position_name, int32(m.GetPosition()), "POSITION_"),
		enumName(pb.Size_name, int32(m.GetSize()), "SIZE_"),
		enumName(pb.Font_name, int32(m.GetFont()), "FONT_"),
	} {
		if s != "" {
			cmds = append(cmds, s)
		}
	}

	switch {
	case m != nil && m.NamedColor != nil:
		if s := enumName(pb.ColorName_name, int32(m.GetNamedColor()), "COLOR_NAME_"); s != "" {
			cmds = append(cmds, s)
		}
	case m.GetFullColor() != nil:
		c := m.GetFullColor()
		cmds = append(cmds, fmt.Sprintf("#%02X%02X%02X", uint8(c.GetR()), uint8(c.GetG()), uint8(c.GetB())))
	}
	return strings.Join(cmds, " ")
}

// enumName maps an enum value to its lower-case command word. Values the
// schema does not know render as nothing.
func enumName(names map[int32]string, v int32, prefix string) string {
	name, ok := names[v]
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(name, prefix))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
