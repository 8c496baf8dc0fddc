package watch

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livecomment/internal/liveerr"
)

type outbound struct {
	data   []byte
	result chan<- error
}

// conn serialises every write to one control socket through writePump.
type conn struct {
	ws     *websocket.Conn
	send   chan outbound
	done   chan struct{}
	logger *zap.Logger
}

func newConn(ws *websocket.Conn, logger *zap.Logger) *conn {
	return &conn{
		ws:     ws,
		send:   make(chan outbound, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// writePump writes queued frames until ctx ends or a write fails, then
// closes the socket, which also ends the reader.
func (c *conn) writePump(ctx context.Context) {
	defer func() {
		c.ws.Close()
		close(c.done)
	}()

	for {
		select {
		case <-ctx.Done():
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.ws.WriteMessage(websocket.TextMessage, msg.data)
			if msg.result != nil {
				msg.result <- err
			}
			if err != nil {
				c.logger.Debug("control socket write error", zap.Error(err))
				return
			}
			c.logger.Debug("control frame sent", zap.ByteString("frame", msg.data))
		}
	}
}

// enqueue hands data to the writer. result, when set, receives the write
// outcome and must have capacity for it.
func (c *conn) enqueue(ctx context.Context, data []byte, result chan<- error) error {
	select {
	case c.send <- outbound{data: data, result: result}:
		return nil
	case <-c.done:
		return liveerr.Errorf(liveerr.ConnectionClosed, "control socket closed")
	case <-ctx.Done():
		return liveerr.New(liveerr.Cancelled, ctx.Err())
	}
}
