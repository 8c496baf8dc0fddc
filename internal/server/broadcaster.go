package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/metrics"
)

const clientBuffer = 16

// Broadcaster fans polled chats out to connected SSE clients. A client
// whose buffer is full misses the batch.
type Broadcaster struct {
	info   InfoSource
	logger *zap.Logger

	mu       sync.RWMutex
	sequence uint64
	clients  map[*sseClient]bool
}

type sseClient struct {
	id      uuid.UUID
	dataCh  chan []byte
	flusher http.Flusher
	writer  http.ResponseWriter
}

func NewBroadcaster(info InfoSource, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		info:    info,
		logger:  logger,
		clients: make(map[*sseClient]bool),
	}
}

// Publish sends chats to every client. Empty batches are skipped.
func (b *Broadcaster) Publish(chats []comment.Chat) {
	if len(chats) == 0 {
		return
	}

	b.mu.Lock()
	b.sequence++
	seq := b.sequence
	clients := make([]*sseClient, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.Unlock()

	if len(clients) == 0 {
		return
	}

	batch := ChatBatch{Sequence: seq, Chats: make([]ChatEvent, len(chats))}
	for i, c := range chats {
		batch.Chats[i] = toEvent(c)
	}
	event, err := formatEvent("chats", seq, batch)
	if err != nil {
		b.logger.Error("failed to encode chat batch", zap.Error(err))
		return
	}

	for _, c := range clients {
		select {
		case c.dataCh <- event:
		default:
			metrics.StreamDropped.Inc()
			b.logger.Debug("client channel full, dropping batch",
				zap.String("client_id", c.id.String()),
				zap.Uint64("sequence", seq),
			)
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// HandleSSE streams chat batches until the request ends.
func (b *Broadcaster) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := &sseClient{
		id:      uuid.New(),
		dataCh:  make(chan []byte, clientBuffer),
		flusher: flusher,
		writer:  w,
	}

	hello, err := formatEvent("hello", 0, Hello{ClientID: client.id.String(), Info: currentInfo(b.info)})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(hello); err != nil {
		return
	}
	flusher.Flush()

	b.addClient(client)
	defer b.removeClient(client)

	b.logger.Info("stream client connected",
		zap.String("client_id", client.id.String()),
		zap.String("remote_addr", r.RemoteAddr),
	)

	for {
		select {
		case <-r.Context().Done():
			b.logger.Info("stream client disconnected", zap.String("client_id", client.id.String()))
			return
		case event := <-client.dataCh:
			if _, err := client.writer.Write(event); err != nil {
				b.logger.Debug("failed to write to client", zap.Error(err))
				return
			}
			client.flusher.Flush()
		}
	}
}

func (b *Broadcaster) addClient(c *sseClient) {
	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()
	metrics.StreamClients.Inc()
}

func (b *Broadcaster) removeClient(c *sseClient) {
	b.mu.Lock()
	delete(b.clients, c)
	b.mu.Unlock()
	metrics.StreamClients.Dec()
}

func formatEvent(eventType string, seq uint64, data any) ([]byte, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding %s event: %w", eventType, err)
	}
	return []byte(fmt.Sprintf("event: %s\nid: %d\ndata: %s\n\n", eventType, seq, jsonData)), nil
}
