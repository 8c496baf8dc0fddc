package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/comment"
	"github.com/dgnsrekt/livecomment/internal/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Subscribers only send control frames.
	maxMessageSize = 4096

	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsMessage is the envelope of every frame sent to a subscriber.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans polled chats out to WebSocket subscribers. Unlike the SSE
// stream, a subscriber that falls behind is disconnected.
type Hub struct {
	info       InfoSource
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan []byte
	done       chan struct{}
	logger     *zap.Logger

	mu       sync.Mutex
	sequence uint64
}

type wsClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	id   string
}

func NewHub(info InfoSource, logger *zap.Logger) *Hub {
	return &Hub{
		info:       info,
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes hub events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("hub shutting down")
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			metrics.StreamClients.Inc()
			h.logger.Debug("subscriber registered", zap.String("client_id", c.id))

		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
				h.logger.Debug("subscriber unregistered", zap.String("client_id", c.id))
			}

		case payload := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
					metrics.StreamDropped.Inc()
					h.logger.Debug("subscriber too slow, disconnecting", zap.String("client_id", c.id))
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *wsClient) {
	delete(h.clients, c)
	close(c.send)
	metrics.StreamClients.Dec()
}

// Publish queues chats for every subscriber. It never blocks; when the hub
// is backed up the batch is dropped.
func (h *Hub) Publish(chats []comment.Chat) {
	if len(chats) == 0 {
		return
	}

	h.mu.Lock()
	h.sequence++
	batch := ChatBatch{Sequence: h.sequence, Chats: make([]ChatEvent, len(chats))}
	h.mu.Unlock()
	for i, c := range chats {
		batch.Chats[i] = toEvent(c)
	}

	payload, err := json.Marshal(wsMessage{Type: "chats", Data: batch})
	if err != nil {
		h.logger.Error("failed to encode chat batch", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		metrics.StreamDropped.Inc()
		h.logger.Warn("hub backlog full, dropping batch", zap.Uint64("sequence", batch.Sequence))
	}
}

// HandleWS upgrades the request and subscribes it to chat batches.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &wsClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		id:   uuid.New().String(),
	}

	hello, err := json.Marshal(wsMessage{Type: "hello", Data: Hello{ClientID: c.id, Info: currentInfo(h.info)}})
	if err != nil {
		_ = conn.Close()
		return
	}
	c.send <- hello

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	case <-r.Context().Done():
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump only watches for pongs and the peer going away.
func (c *wsClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("websocket read error", zap.String("client_id", c.id), zap.Error(err))
			}
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.logger.Debug("websocket write error", zap.String("client_id", c.id), zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
