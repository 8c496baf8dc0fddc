package watch

import (
	"encoding/json"
	"fmt"
	"time"
)

// Upstream frames.
var (
	startWatchingFrame = []byte(`{"type":"startWatching","data":{"reconnect":false}}`)
	keepSeatFrame      = []byte(`{"type":"keepSeat"}`)
	pongFrame          = []byte(`{"type":"pong"}`)
)

// Downstream message types for internal routing
type (
	envelope struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}

	seatData struct {
		KeepIntervalSec int `json:"keepIntervalSec"`
	}

	reconnectData struct {
		AudienceToken string `json:"audienceToken"`
		WaitTimeSec   int    `json:"waitTimeSec"`
	}

	errorData struct {
		Code string `json:"code"`
	}

	disconnectData struct {
		Reason string `json:"reason"`
	}

	postResultData struct {
		Chat struct {
			Content string `json:"content"`
		} `json:"chat"`
	}

	messageServerData struct {
		ViewURI      string `json:"viewUri"`
		HashedUserID string `json:"hashedUserId"`
	}

	roomData struct {
		ThreadID      string `json:"threadId"`
		YourPostKey   string `json:"yourPostKey"`
		VposBaseTime  string `json:"vposBaseTime"`
		MessageServer struct {
			URI string `json:"uri"`
		} `json:"messageServer"`
	}
)

// offAirCodes end the session quietly: the broadcast is not live.
var offAirCodes = map[string]bool{
	"CONTENT_NOT_READY":   true,
	"NO_PERMISSION":       true,
	"NOT_ON_AIR":          true,
	"BROADCAST_NOT_FOUND": true,
}

func parseEnvelope(raw []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("frame has no type")
	}
	return &env, nil
}

func decodeData[T any](env *envelope) (*T, error) {
	var v T
	if len(env.Data) == 0 {
		return &v, nil
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return nil, fmt.Errorf("decoding %s data: %w", env.Type, err)
	}
	return &v, nil
}

// openTime returns the vpos base time of the room, or fallback when the
// room does not carry one.
func (r *roomData) openTime(fallback time.Time) (time.Time, error) {
	if r.VposBaseTime == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339, r.VposBaseTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing room vposBaseTime: %w", err)
	}
	return t, nil
}
