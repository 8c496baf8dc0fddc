package server

import "github.com/dgnsrekt/livecomment/internal/comment"

// ChatEvent is one chat as sent on the stream.
type ChatEvent struct {
	Time     int64  `json:"time"`
	Text     string `json:"text"`
	Position string `json:"position"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Author   string `json:"author,omitempty"`
	ID       int    `json:"id"`
	IsSelf   bool   `json:"is_self"`
}

// ChatBatch is the payload of a "chats" event.
type ChatBatch struct {
	Sequence uint64      `json:"sequence"`
	Chats    []ChatEvent `json:"chats"`
}

// Hello is sent once when a subscriber connects.
type Hello struct {
	ClientID string `json:"client_id"`
	Info     Info   `json:"info"`
}

// Info describes the engine state.
type Info struct {
	BroadcastID string `json:"broadcast_id"`
	OffAir      bool   `json:"off_air"`
	Text        string `json:"text"`
}

func toEvent(c comment.Chat) ChatEvent {
	return ChatEvent{
		Time:     c.Time.UnixMilli(),
		Text:     c.Text,
		Position: c.Position.String(),
		Size:     c.Size.String(),
		Color:    c.Color.Hex(),
		Author:   c.Author,
		ID:       c.ID,
		IsSelf:   c.IsSelf,
	}
}
