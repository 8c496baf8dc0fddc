package server

import (
	"encoding/json"
	"net/http"
)

// InfoSource reports engine state. *session.Coordinator implements it.
type InfoSource interface {
	GetInformationText() string
	BroadcastID() string
	OffAir() bool
}

func currentInfo(src InfoSource) Info {
	return Info{
		BroadcastID: src.BroadcastID(),
		OffAir:      src.OffAir(),
		Text:        src.GetInformationText(),
	}
}

func infoHandler(src InfoSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(currentInfo(src))
	}
}
